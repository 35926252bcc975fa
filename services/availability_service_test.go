package services

import (
	"errors"
	"testing"

	"siddhi-hotel-backend/models"
)

func TestIsRoomAvailable(t *testing.T) {
	db := newTestDB(t)
	availability := NewAvailabilityService(db)
	bookings := NewBookingService(db)
	room := seedRoom(t, db, "Deluxe", 2500)
	user := seedUser(t, db, models.RoleUser)

	t.Run("no bookings means available", func(t *testing.T) {
		free, err := availability.IsRoomAvailable(room.ID, date(t, "2025-06-01"), date(t, "2025-06-03"))
		if err != nil {
			t.Fatalf("IsRoomAvailable: %v", err)
		}
		if !free {
			t.Error("empty room reported unavailable")
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		if _, err := availability.IsRoomAvailable(room.ID, date(t, "2025-06-03"), date(t, "2025-06-01")); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("err = %v, want ErrInvalidRange", err)
		}
	})

	if _, err := bookings.Create(room.ID, user.ID, date(t, "2025-06-10"), date(t, "2025-06-12"), 1, 0); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	cases := []struct {
		name     string
		in, out  string
		wantFree bool
	}{
		{"fully inside the stay", "2025-06-10", "2025-06-12", false},
		{"straddles the check-in", "2025-06-09", "2025-06-11", false},
		{"starts on the check-out day", "2025-06-12", "2025-06-14", false},
		{"ends on the check-in day", "2025-06-08", "2025-06-10", false},
		{"before the stay", "2025-06-07", "2025-06-09", true},
		{"after the stay", "2025-06-13", "2025-06-15", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			free, err := availability.IsRoomAvailable(room.ID, date(t, tc.in), date(t, tc.out))
			if err != nil {
				t.Fatalf("IsRoomAvailable: %v", err)
			}
			if free != tc.wantFree {
				t.Errorf("free = %v, want %v", free, tc.wantFree)
			}
		})
	}
}
