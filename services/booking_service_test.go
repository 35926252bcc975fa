package services

import (
	"errors"
	"testing"
	"time"

	"siddhi-hotel-backend/models"
	"siddhi-hotel-backend/utils"
)

func newTestBookingService(t *testing.T) *BookingService {
	t.Helper()
	svc := NewBookingService(newTestDB(t))
	svc.Now = func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestBookingCreate(t *testing.T) {
	t.Run("creates booking with confirmation code", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)
		user := seedUser(t, svc.DB, models.RoleUser)

		booking, err := svc.Create(room.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 2, 1)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if booking.TotalGuests != 3 {
			t.Errorf("TotalGuests = %d, want 3", booking.TotalGuests)
		}
		if !utils.IsValidConfirmationCode(booking.ConfirmationCode) {
			t.Errorf("confirmation code %q is not valid", booking.ConfirmationCode)
		}
		if booking.Room.ID != room.ID || booking.User.ID != user.ID {
			t.Errorf("relations not attached: room %d user %d", booking.Room.ID, booking.User.ID)
		}

		stored, err := svc.GetByID(booking.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if stored.ConfirmationCode != booking.ConfirmationCode {
			t.Errorf("stored code %q, want %q", stored.ConfirmationCode, booking.ConfirmationCode)
		}
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)
		user := seedUser(t, svc.DB, models.RoleUser)

		_, err := svc.Create(room.ID, user.ID, date(t, "2025-06-03"), date(t, "2025-06-01"), 1, 0)
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("err = %v, want ErrInvalidRange", err)
		}
	})

	t.Run("rejects equal check-in and check-out", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)
		user := seedUser(t, svc.DB, models.RoleUser)

		_, err := svc.Create(room.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-01"), 1, 0)
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("err = %v, want ErrInvalidRange", err)
		}
	})

	t.Run("rejects zero adults", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)
		user := seedUser(t, svc.DB, models.RoleUser)

		_, err := svc.Create(room.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 0, 2)
		if !errors.Is(err, ErrInvalidGuests) {
			t.Fatalf("err = %v, want ErrInvalidGuests", err)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		svc := newTestBookingService(t)
		user := seedUser(t, svc.DB, models.RoleUser)

		_, err := svc.Create(999, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
		if !errors.Is(err, ErrRoomNotFound) {
			t.Fatalf("err = %v, want ErrRoomNotFound", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)

		_, err := svc.Create(room.ID, 999, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestBookingCreateOverlap(t *testing.T) {
	svc := newTestBookingService(t)
	room := seedRoom(t, svc.DB, "Deluxe", 2500)
	other := seedRoom(t, svc.DB, "Standard", 1500)
	user := seedUser(t, svc.DB, models.RoleUser)

	if _, err := svc.Create(room.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 2, 0); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	t.Run("overlapping range rejected", func(t *testing.T) {
		_, err := svc.Create(room.ID, user.ID, date(t, "2025-06-02"), date(t, "2025-06-04"), 1, 0)
		if !errors.Is(err, ErrRoomUnavailable) {
			t.Fatalf("err = %v, want ErrRoomUnavailable", err)
		}
	})

	t.Run("back-to-back on the check-out day rejected", func(t *testing.T) {
		// Both endpoints count as occupied, so a stay starting on the
		// existing booking's check-out date still conflicts.
		_, err := svc.Create(room.ID, user.ID, date(t, "2025-06-03"), date(t, "2025-06-05"), 1, 0)
		if !errors.Is(err, ErrRoomUnavailable) {
			t.Fatalf("err = %v, want ErrRoomUnavailable", err)
		}
	})

	t.Run("range ending on the check-in day rejected", func(t *testing.T) {
		_, err := svc.Create(room.ID, user.ID, date(t, "2025-05-30"), date(t, "2025-06-01"), 1, 0)
		if !errors.Is(err, ErrRoomUnavailable) {
			t.Fatalf("err = %v, want ErrRoomUnavailable", err)
		}
	})

	t.Run("disjoint range allowed", func(t *testing.T) {
		if _, err := svc.Create(room.ID, user.ID, date(t, "2025-06-04"), date(t, "2025-06-06"), 1, 0); err != nil {
			t.Fatalf("Create: %v", err)
		}
	})

	t.Run("same dates on another room allowed", func(t *testing.T) {
		if _, err := svc.Create(other.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0); err != nil {
			t.Fatalf("Create: %v", err)
		}
	})
}

func TestBookingCodeCollisionRetry(t *testing.T) {
	svc := newTestBookingService(t)
	room := seedRoom(t, svc.DB, "Deluxe", 2500)
	other := seedRoom(t, svc.DB, "Standard", 1500)
	user := seedUser(t, svc.DB, models.RoleUser)

	codes := []string{"AAAAAAAAAA", "AAAAAAAAAA", "BBBBBBBBBB"}
	svc.GenerateCode = func() (string, error) {
		code := codes[0]
		if len(codes) > 1 {
			codes = codes[1:]
		}
		return code, nil
	}

	first, err := svc.Create(room.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if first.ConfirmationCode != "AAAAAAAAAA" {
		t.Fatalf("first code = %q", first.ConfirmationCode)
	}

	second, err := svc.Create(other.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if second.ConfirmationCode != "BBBBBBBBBB" {
		t.Errorf("second code = %q, want collision retried to BBBBBBBBBB", second.ConfirmationCode)
	}
}

func TestBookingCancel(t *testing.T) {
	t.Run("owner can cancel and dates free up", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)
		owner := seedUser(t, svc.DB, models.RoleUser)

		booking, err := svc.Create(room.ID, owner.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := svc.Cancel(booking.ID, owner.ID, owner.Role); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if _, err := svc.GetByID(booking.ID); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("GetByID after cancel: %v, want ErrBookingNotFound", err)
		}
		if _, err := svc.Create(room.ID, owner.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0); err != nil {
			t.Fatalf("rebook after cancel: %v", err)
		}
	})

	t.Run("admin can cancel another user's booking", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)
		owner := seedUser(t, svc.DB, models.RoleUser)
		admin := seedUser(t, svc.DB, models.RoleAdmin)

		booking, err := svc.Create(room.ID, owner.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := svc.Cancel(booking.ID, admin.ID, admin.Role); err != nil {
			t.Fatalf("Cancel as admin: %v", err)
		}
	})

	t.Run("other user is forbidden and record survives", func(t *testing.T) {
		svc := newTestBookingService(t)
		room := seedRoom(t, svc.DB, "Deluxe", 2500)
		owner := seedUser(t, svc.DB, models.RoleUser)
		stranger := seedUser(t, svc.DB, models.RoleUser)

		booking, err := svc.Create(room.ID, owner.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := svc.Cancel(booking.ID, stranger.ID, stranger.Role); !errors.Is(err, ErrForbidden) {
			t.Fatalf("Cancel by stranger: %v, want ErrForbidden", err)
		}
		if _, err := svc.GetByID(booking.ID); err != nil {
			t.Fatalf("booking should still exist: %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := newTestBookingService(t)
		user := seedUser(t, svc.DB, models.RoleUser)
		if err := svc.Cancel(999, user.ID, user.Role); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("err = %v, want ErrBookingNotFound", err)
		}
	})
}

func TestBookingFindByConfirmationCode(t *testing.T) {
	svc := newTestBookingService(t)
	room := seedRoom(t, svc.DB, "Deluxe", 2500)
	user := seedUser(t, svc.DB, models.RoleUser)

	booking, err := svc.Create(room.ID, user.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := svc.FindByConfirmationCode(booking.ConfirmationCode)
	if err != nil {
		t.Fatalf("FindByConfirmationCode: %v", err)
	}
	if found.ID != booking.ID {
		t.Errorf("found booking %d, want %d", found.ID, booking.ID)
	}
	if found.Room.RoomType != "Deluxe" {
		t.Errorf("room not preloaded: %+v", found.Room)
	}

	if _, err := svc.FindByConfirmationCode("ZZZZZZZZZZ"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("unknown code: %v, want ErrBookingNotFound", err)
	}
}

func TestBookingListByUser(t *testing.T) {
	svc := newTestBookingService(t)
	room := seedRoom(t, svc.DB, "Deluxe", 2500)
	alice := seedUser(t, svc.DB, models.RoleUser)
	bob := seedUser(t, svc.DB, models.RoleUser)

	if _, err := svc.Create(room.ID, alice.ID, date(t, "2025-06-01"), date(t, "2025-06-03"), 1, 0); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(room.ID, bob.ID, date(t, "2025-06-10"), date(t, "2025-06-12"), 1, 0); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.ListByUser(alice.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].UserID != alice.ID {
		t.Fatalf("ListByUser = %+v, want exactly alice's booking", list)
	}
}
