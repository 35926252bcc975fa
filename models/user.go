package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	Email       string         `gorm:"uniqueIndex;size:255" json:"email"`
	PhoneNumber string         `gorm:"size:32" json:"phoneNumber"`
	Password    string         `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	Role        string         `gorm:"size:16;default:USER" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
