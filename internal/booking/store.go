package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/studiobook/studio-booking-backend/internal/pkg/kv"
)

// storageKey is where the full booking snapshot lives in the durable
// medium.
const storageKey = "bookings"

// Store is the in-memory booking collection, mirrored to a durable
// key-value medium. It owns the in-memory copy exclusively and writes
// the full snapshot through on every mutation.
//
// Store assumes a single logical writer: Add is a plain append with no
// locking, and the check-then-act sequence around IsAvailable is not
// atomic. Extending this to concurrent writers requires an atomic
// insert-if-absent instead.
type Store struct {
	kv       kv.Store
	bookings []Booking
}

// NewStore loads the persisted snapshot and returns a ready store.
// A missing or unparsable snapshot is not fatal: the store starts
// empty and the next write replaces whatever was there.
func NewStore(ctx context.Context, medium kv.Store) (*Store, error) {
	s := &Store{kv: medium}

	data, err := medium.Get(ctx, storageKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("discarding unparsable booking snapshot: %v", err)
		return s, nil
	}
	s.bookings = bookings
	return s, nil
}

// IsAvailable reports whether no stored booking occupies the exact
// (studioID, date, time) slot. Pure query, no side effect.
func (s *Store) IsAvailable(studioID int64, date, timeStr string) bool {
	for _, b := range s.bookings {
		if b.StudioID == studioID && b.Date == date && b.Time == timeStr {
			return false
		}
	}
	return true
}

// Add appends the booking and writes the full snapshot through to the
// durable medium. It does not check availability itself; callers are
// expected to query IsAvailable first.
func (s *Store) Add(ctx context.Context, b Booking) error {
	s.bookings = append(s.bookings, b)

	if err := s.persist(ctx); err != nil {
		// Roll the in-memory copy back so memory and medium agree.
		s.bookings = s.bookings[:len(s.bookings)-1]
		return err
	}
	return nil
}

// ForStudio returns all bookings for one studio in insertion order.
func (s *Store) ForStudio(studioID int64) []Booking {
	var out []Booking
	for _, b := range s.bookings {
		if b.StudioID == studioID {
			out = append(out, b)
		}
	}
	return out
}

// All returns every stored booking in insertion order.
func (s *Store) All() []Booking {
	return s.bookings
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.bookings)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}
	if err := s.kv.Put(ctx, storageKey, data); err != nil {
		return fmt.Errorf("failed to persist bookings: %w", err)
	}
	return nil
}
