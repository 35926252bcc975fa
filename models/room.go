package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	RoomType        string  `json:"roomType" gorm:"column:room_type;size:100;index"`
	RoomPrice       float64 `json:"roomPrice" gorm:"column:room_price"`
	RoomDescription string  `json:"roomDescription" gorm:"column:room_description;type:text"`
	RoomPhotoURL    string  `json:"roomPhotoUrl" gorm:"column:room_photo_url;size:512"`
}
