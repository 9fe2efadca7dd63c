package booking

import (
	"context"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/studiobook/studio-booking-backend/internal/studio"
	"github.com/studiobook/studio-booking-backend/internal/timeutil"
)

// CreateRequest carries the data for a new booking. Date and Time may
// arrive in any representation the normalizers accept; they are
// canonicalized before anything else happens.
type CreateRequest struct {
	ID       string // optional; generated when empty
	StudioID int64
	Date     string
	Time     string
	Name     string
	Email    string

	// Studio, when set, has its display fields denormalized onto the
	// stored record.
	Studio *studio.Studio
}

type Service interface {
	// Create validates the request, checks the slot and stores the
	// booking. Conflicts and validation failures come back as
	// apperror values for the transport layer.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	// IsAvailable reports whether the slot is free, normalizing the
	// date and time inputs first.
	IsAvailable(studioID int64, date, timeStr string) bool

	// ForStudio lists all bookings for one studio in insertion order.
	ForStudio(studioID int64) []Booking

	// List returns one page of all bookings plus the total count.
	List(page, pageSize int) ([]Booking, int)
}

type service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) Service {
	return &service{
		store: store,
		now:   time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	date := timeutil.FormatDate(timeutil.DateString(req.Date))
	slot := timeutil.FormatTime(timeutil.TimeString(req.Time))

	// Counted in runes, matching the transport layer's min=3,max=50.
	if n := utf8.RuneCountInString(req.Name); n < 3 || n > 50 {
		return nil, ErrInvalidName
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	// Canonical date strings order correctly as plain strings.
	today := s.now().Format(timeutil.DateLayout)
	if date < today {
		return nil, ErrPastSlot
	}
	if date == today && timeutil.IsTimeBefore(slot, s.now().Format(timeutil.TimeLayout)) {
		return nil, ErrPastSlot
	}

	// Check-then-act: fine under the single-writer model this service
	// runs with.
	if !s.store.IsAvailable(req.StudioID, date, slot) {
		return nil, ErrSlotTaken
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	b := Booking{
		ID:       id,
		StudioID: req.StudioID,
		Date:     date,
		Time:     slot,
		Name:     req.Name,
		Email:    req.Email,
	}
	if req.Studio != nil {
		b.SetExtra("studioName", req.Studio.Name)
		b.SetExtra("city", req.Studio.Location.City)
		b.SetExtra("area", req.Studio.Location.Area)
	}

	if err := s.store.Add(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) IsAvailable(studioID int64, date, timeStr string) bool {
	return s.store.IsAvailable(
		studioID,
		timeutil.FormatDate(timeutil.DateString(date)),
		timeutil.FormatTime(timeutil.TimeString(timeStr)),
	)
}

func (s *service) ForStudio(studioID int64) []Booking {
	return s.store.ForStudio(studioID)
}

func (s *service) List(page, pageSize int) ([]Booking, int) {
	all := s.store.All()
	total := len(all)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	start := (page - 1) * pageSize
	if start >= total {
		return nil, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return all[start:end], total
}
