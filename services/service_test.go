package services

import (
	"fmt"
	"testing"
	"time"

	"siddhi-hotel-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.AssistantConfig{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

var testUserSeq int

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	testUserSeq++
	user := &models.User{
		Name:        fmt.Sprintf("Test User %d", testUserSeq),
		Email:       fmt.Sprintf("user%d@example.com", testUserSeq),
		PhoneNumber: "9999999999",
		Password:    "not-a-real-hash",
		Role:        role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedRoom(t *testing.T, db *gorm.DB, roomType string, price float64) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomType:        roomType,
		RoomPrice:       price,
		RoomDescription: "test room",
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
