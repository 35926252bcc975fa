package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"siddhi-hotel-backend/middleware"
	"siddhi-hotel-backend/services"
	"siddhi-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type bookRoomPayload struct {
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	NumOfAdults   int    `json:"numOfAdults"`
	NumOfChildren int    `json:"numOfChildren"`
	// "WALLET" pays from the user's wallet at booking time; anything else
	// (or empty) means cash on check-in.
	PaymentMethod string `json:"paymentMethod"`
}

type BookingController struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
	Wallets  *services.WalletService
}

func NewBookingController(bookings *services.BookingService, rooms *services.RoomService, wallets *services.WalletService) *BookingController {
	return &BookingController{Bookings: bookings, Rooms: rooms, Wallets: wallets}
}

func nightsBetween(payload bookRoomPayload) (int, error) {
	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		return 0, err
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		return 0, err
	}
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n, nil
}

func (ctrl *BookingController) BookRoom(c *gin.Context) {
	roomID, ok := paramUint(c, "roomId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room id")
		return
	}
	userID, ok := paramUint(c, "userId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	// Booking on behalf of someone else would also spend their wallet, so
	// only admins may book for another account.
	if caller.ID != userID && !caller.IsAdmin() {
		utils.RespondError(c, http.StatusForbidden, "You can only book rooms for your own account")
		return
	}

	var payload bookRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.CheckInDate == "" || payload.CheckOutDate == "" || payload.NumOfAdults == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Check-in date, check-out date, and number of adults are required")
		return
	}

	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid checkInDate format")
		return
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid checkOutDate format")
		return
	}

	booking, err := ctrl.Bookings.Create(roomID, userID, checkIn, checkOut, payload.NumOfAdults, payload.NumOfChildren)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRange), errors.Is(err, services.ErrInvalidGuests):
			utils.RespondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRoomNotFound):
			utils.RespondError(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, services.ErrUserNotFound):
			utils.RespondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrRoomUnavailable):
			utils.RespondError(c, http.StatusBadRequest, "Room is not available for the selected dates")
		default:
			log.Printf("Book room error: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to book room")
		}
		return
	}

	// Wallet payment is a second aggregate: when the debit fails the booking
	// is deleted as the compensating action.
	if payload.PaymentMethod == "WALLET" {
		nights, _ := nightsBetween(payload)
		amount := booking.Room.RoomPrice * float64(nights)
		description := fmt.Sprintf("Booking payment for %s (%s)", booking.Room.RoomType, booking.ConfirmationCode)

		wallet, debitErr := ctrl.Wallets.Debit(userID, amount, description, &booking.ID)
		if debitErr != nil {
			if cErr := ctrl.Bookings.Delete(booking.ID); cErr != nil {
				log.Printf("compensation failed: booking %d left without payment: %v", booking.ID, cErr)
			}
			var short *services.InsufficientFundsError
			if errors.As(debitErr, &short) {
				utils.RespondError(c, http.StatusBadRequest, short.Error())
				return
			}
			if errors.Is(debitErr, services.ErrInvalidAmount) {
				utils.RespondError(c, http.StatusBadRequest, debitErr.Error())
				return
			}
			log.Printf("Wallet payment error: %v", debitErr)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to process payment")
			return
		}
		utils.Respond(c, http.StatusOK, "Room booked successfully", gin.H{
			"booking": booking,
			"wallet":  wallet,
		})
		return
	}

	utils.Respond(c, http.StatusOK, "Room booked successfully", gin.H{"booking": booking})
}

func (ctrl *BookingController) GetAll(c *gin.Context) {
	bookings, err := ctrl.Bookings.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	utils.Respond(c, http.StatusOK, "Bookings retrieved successfully", gin.H{"bookingList": bookings})
}

func (ctrl *BookingController) GetByConfirmationCode(c *gin.Context) {
	code := c.Param("confirmationCode")
	booking, err := ctrl.Bookings.FindByConfirmationCode(code)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Booking not found with this confirmation code")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve booking")
		return
	}
	utils.Respond(c, http.StatusOK, "Booking retrieved successfully", gin.H{"booking": booking})
}

func (ctrl *BookingController) Cancel(c *gin.Context) {
	bookingID, ok := paramUint(c, "bookingId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	if err := ctrl.Bookings.Cancel(bookingID, user.ID, user.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrForbidden):
			utils.RespondError(c, http.StatusForbidden, "You can only cancel your own bookings")
		default:
			log.Printf("Cancel booking error: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}
	utils.Respond(c, http.StatusOK, "Booking cancelled successfully", nil)
}
