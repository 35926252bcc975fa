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

type WalletController struct {
	Wallets *services.WalletService
}

func NewWalletController(wallets *services.WalletService) *WalletController {
	return &WalletController{Wallets: wallets}
}

type addMoneyPayload struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type spendMoneyPayload struct {
	Amount      float64 `json:"amount"`
	BookingID   *uint   `json:"bookingId"`
	Description string  `json:"description"`
}

type refundPayload struct {
	Amount    float64 `json:"amount"`
	BookingID *uint   `json:"bookingId"`
	Reason    string  `json:"reason"`
}

func (ctrl *WalletController) Balance(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	wallet, err := ctrl.Wallets.GetOrCreate(user.ID)
	if err != nil {
		log.Printf("Get wallet error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve wallet")
		return
	}
	utils.Respond(c, http.StatusOK, "Wallet retrieved successfully", gin.H{"wallet": wallet})
}

func (ctrl *WalletController) Add(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var payload addMoneyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	method := payload.PaymentMethod
	if method == "" {
		method = "Payment"
	}
	wallet, err := ctrl.Wallets.Credit(user.ID, payload.Amount, fmt.Sprintf("Money added via %s", method))
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			utils.RespondError(c, http.StatusBadRequest, "Amount must be greater than 0")
			return
		}
		log.Printf("Add money error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to add money")
		return
	}
	utils.Respond(c, http.StatusOK, "Money added successfully", gin.H{"wallet": wallet})
}

func (ctrl *WalletController) Spend(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var payload spendMoneyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	wallet, err := ctrl.Wallets.Debit(user.ID, payload.Amount, payload.Description, payload.BookingID)
	if err != nil {
		var short *services.InsufficientFundsError
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			utils.RespondError(c, http.StatusBadRequest, "Amount must be greater than 0")
		case errors.As(err, &short):
			utils.RespondError(c, http.StatusBadRequest, short.Error())
		default:
			log.Printf("Spend money error: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to process payment")
		}
		return
	}
	utils.Respond(c, http.StatusOK, "Payment successful", gin.H{"wallet": wallet})
}

func (ctrl *WalletController) Refund(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var payload refundPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	wallet, err := ctrl.Wallets.Refund(user.ID, payload.Amount, payload.BookingID, payload.Reason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			utils.RespondError(c, http.StatusBadRequest, "Refund amount must be greater than 0")
			return
		}
		log.Printf("Refund error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to process refund")
		return
	}
	utils.Respond(c, http.StatusOK, "Refund processed successfully", gin.H{"wallet": wallet})
}

func (ctrl *WalletController) Transactions(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	txns, err := ctrl.Wallets.Transactions(user.ID)
	if err != nil {
		log.Printf("Get transactions error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	utils.Respond(c, http.StatusOK, "Transactions retrieved successfully", gin.H{"transactions": txns})
}
