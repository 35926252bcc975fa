package services

import (
	"time"

	"siddhi-hotel-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers whether a room is free over a date range.
// It is read-only.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// countConflictingBookings returns how many stored bookings for roomID
// overlap [checkIn, checkOut]. Both endpoints are compared inclusively: a
// stay checking out on the day a new one checks in still conflicts
// (no same-day turnover). Callers pass a transaction handle when the count
// must be consistent with a write in the same transaction.
func countConflictingBookings(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ? AND check_in_date <= ? AND check_out_date >= ?", roomID, checkOut, checkIn).
		Count(&count).Error
	return count, err
}

// IsRoomAvailable reports whether roomID has no booking overlapping the
// requested range. Zero existing bookings means trivially available.
func (s *AvailabilityService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, ErrInvalidRange
	}
	count, err := countConflictingBookings(s.DB, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
