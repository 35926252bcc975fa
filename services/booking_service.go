package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"siddhi-hotel-backend/models"
	"siddhi-hotel-backend/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB with the booking lifecycle: creation behind
// an availability check, cancellation with ownership rules, lookups.
type BookingService struct {
	DB *gorm.DB

	// Now and GenerateCode are injected so tests can pin timestamps and
	// confirmation codes.
	Now          func() time.Time
	GenerateCode func() (string, error)
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
		GenerateCode: func() (string, error) {
			return utils.GenerateConfirmationCode(utils.ConfirmationCodeLength)
		},
	}
}

func isDuplicateErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

// Create books roomID for userID over [checkIn, checkOut]. Availability is
// re-checked inside the transaction so two concurrent requests for the same
// room cannot both pass the check. The confirmation code is regenerated on a
// uniqueness-constraint collision.
func (s *BookingService) Create(roomID, userID uint, checkIn, checkOut time.Time, numAdults, numChildren int) (*models.Booking, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}
	if numAdults < 1 {
		return nil, ErrInvalidGuests
	}
	if numChildren < 0 {
		numChildren = 0
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("db error checking user %d: %w", userID, err)
	}

	now := s.Now()
	booking := &models.Booking{
		RoomID:       roomID,
		UserID:       userID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumAdults:    numAdults,
		NumChildren:  numChildren,
		TotalGuests:  numAdults + numChildren,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		count, err := countConflictingBookings(tx, roomID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrRoomUnavailable
		}

		maxRetries := 5
		var createErr error
		for attempt := 0; attempt < maxRetries; attempt++ {
			code, gErr := s.GenerateCode()
			if gErr != nil {
				return fmt.Errorf("failed to generate confirmation code: %w", gErr)
			}
			booking.ConfirmationCode = code

			createErr = tx.Create(booking).Error
			if createErr == nil {
				return nil
			}
			if isDuplicateErr(createErr) {
				booking.ID = 0
				continue
			}
			return fmt.Errorf("failed to create booking: %w", createErr)
		}
		return fmt.Errorf("failed to create booking after retries: %w", createErr)
	})
	if txErr != nil {
		return nil, txErr
	}

	booking.Room = room
	booking.User = user
	return booking, nil
}

// Cancel removes a booking. Only the booking's owner or an admin may cancel;
// the record is hard-deleted, which frees the dates immediately.
func (s *BookingService) Cancel(bookingID, requestingUserID uint, requestingRole string) error {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to find booking: %w", err)
	}

	if requestingRole != models.RoleAdmin && booking.UserID != requestingUserID {
		return ErrForbidden
	}

	if err := s.DB.Delete(&models.Booking{}, bookingID).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// FindByConfirmationCode resolves the public booking reference.
func (s *BookingService) FindByConfirmationCode(code string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Room").
		Preload("User").
		Where("confirmation_code = ?", code).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// GetByID fetches a booking with its relations.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").Preload("User").First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// GetAll lists every booking, newest first.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Preload("Room").
		Preload("User").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// ListByUser lists a user's bookings, newest first.
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user bookings: %w", err)
	}
	return list, nil
}

// Delete removes a booking without an ownership check. Used by cascading
// deletes (room or user removal) where the caller already holds admin rights.
func (s *BookingService) Delete(bookingID uint) error {
	return s.DB.Delete(&models.Booking{}, bookingID).Error
}
