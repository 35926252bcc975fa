package services

import (
	"errors"
	"testing"

	"siddhi-hotel-backend/models"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	first := &models.User{Name: "A", Email: "same@example.com", Password: "x", Role: models.RoleUser}
	if err := users.Create(first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := &models.User{Name: "B", Email: "same@example.com", Password: "y", Role: models.RoleUser}
	if err := users.Create(second); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserFindByEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	seeded := seedUser(t, db, models.RoleUser)

	found, err := users.FindByEmail(seeded.Email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != seeded.ID {
		t.Errorf("found user %d, want %d", found.ID, seeded.ID)
	}

	if _, err := users.FindByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserDeleteCascadesBookings(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	bookings := NewBookingService(db)
	room := seedRoom(t, db, "Deluxe", 2500)
	user := seedUser(t, db, models.RoleUser)

	booking, err := bookings.Create(room.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := users.Delete(user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := users.GetByID(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("user still present: %v", err)
	}
	if _, err := bookings.GetByID(booking.ID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("booking survived user delete: %v", err)
	}
}
