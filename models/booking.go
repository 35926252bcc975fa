package models

import (
	"time"
)

// Booking has no soft-delete column on purpose: cancellation removes the row,
// so every stored booking counts against availability.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID uint `gorm:"index;column:room_id" json:"room_id"`
	UserID uint `gorm:"index;column:user_id" json:"user_id"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	NumAdults   int `gorm:"column:num_adults;default:1" json:"numOfAdults"`
	NumChildren int `gorm:"column:num_children;default:0" json:"numOfChildren"`
	TotalGuests int `gorm:"column:total_guests" json:"totalNumOfGuests"`

	// public-facing booking reference, assigned once at creation
	ConfirmationCode string `gorm:"uniqueIndex;size:16;column:confirmation_code" json:"bookingConfirmationCode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
