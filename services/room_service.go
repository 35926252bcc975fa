package services

import (
	"errors"
	"fmt"
	"time"

	"siddhi-hotel-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", id, err)
	}
	return &room, nil
}

// RoomTypes returns the distinct category labels in the catalogue.
func (s *RoomService) RoomTypes() ([]string, error) {
	var types []string
	err := s.DB.Model(&models.Room{}).Distinct().Order("room_type").Pluck("room_type", &types).Error
	return types, err
}

func (s *RoomService) Update(room *models.Room) error {
	return s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error
}

// Delete removes a room and cascades to every booking referencing it.
func (s *RoomService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete room bookings: %w", err)
		}
		if err := tx.Delete(&models.Room{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}
		return nil
	})
}

// AvailableRooms lists rooms free over [checkIn, checkOut], optionally
// filtered by type ("" or "All" means any).
func (s *RoomService) AvailableRooms(checkIn, checkOut time.Time, roomType string) ([]models.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}

	q := s.DB.Model(&models.Room{})
	if roomType != "" && roomType != "All" {
		q = q.Where("room_type = ?", roomType)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		count, err := countConflictingBookings(s.DB, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			available = append(available, room)
		}
	}
	return available, nil
}
