package booking

import (
	"encoding/json"
	"net/http"

	"github.com/studiobook/studio-booking-backend/internal/pkg/apperror"
)

var (
	ErrSlotTaken    = apperror.New(http.StatusConflict, "time slot already booked")
	ErrPastSlot     = apperror.New(http.StatusBadRequest, "cannot book a time slot in the past")
	ErrInvalidName  = apperror.New(http.StatusBadRequest, "name must be between 3 and 50 characters")
	ErrInvalidEmail = apperror.New(http.StatusBadRequest, "email address is not valid")
)

// Booking is one confirmed reservation of a (studio, date, time) slot.
// Date and Time are always in canonical form (YYYY-MM-DD, HH:mm).
// Bookings are never updated or deleted once stored.
type Booking struct {
	ID       string
	StudioID int64
	Date     string
	Time     string
	Name     string
	Email    string

	// extra holds denormalized studio fields and any other keys found
	// in the persisted record. They are carried through load/save
	// untouched and never validated.
	extra map[string]json.RawMessage
}

// knownKeys are the persisted field names owned by Booking itself.
var knownKeys = map[string]bool{
	"id": true, "studioId": true, "date": true,
	"time": true, "name": true, "email": true,
}

// persistedBooking is the fixed part of the stored JSON object.
type persistedBooking struct {
	ID       string `json:"id"`
	StudioID int64  `json:"studioId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// UnmarshalJSON decodes the known fields and keeps every other key as
// an opaque raw value.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var fixed persistedBooking
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = fixed.ID
	b.StudioID = fixed.StudioID
	b.Date = fixed.Date
	b.Time = fixed.Time
	b.Name = fixed.Name
	b.Email = fixed.Email

	b.extra = nil
	for key, val := range raw {
		if knownKeys[key] {
			continue
		}
		if b.extra == nil {
			b.extra = map[string]json.RawMessage{}
		}
		b.extra[key] = val
	}
	return nil
}

// MarshalJSON re-emits the known fields together with any opaque keys
// captured at load or creation time.
func (b Booking) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(b.extra)+6)
	for key, val := range b.extra {
		out[key] = val
	}

	fixed, err := json.Marshal(persistedBooking{
		ID:       b.ID,
		StudioID: b.StudioID,
		Date:     b.Date,
		Time:     b.Time,
		Name:     b.Name,
		Email:    b.Email,
	})
	if err != nil {
		return nil, err
	}
	var fixedMap map[string]json.RawMessage
	if err := json.Unmarshal(fixed, &fixedMap); err != nil {
		return nil, err
	}
	for key, val := range fixedMap {
		out[key] = val
	}

	return json.Marshal(out)
}

// SetExtra attaches an opaque string value (e.g. a denormalized studio
// field) that will ride along with the persisted record.
func (b *Booking) SetExtra(key, value string) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if b.extra == nil {
		b.extra = map[string]json.RawMessage{}
	}
	b.extra[key] = raw
}

// Extra reads back an opaque string value, if present.
func (b *Booking) Extra(key string) (string, bool) {
	raw, ok := b.extra[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
