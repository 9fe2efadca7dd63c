package http

import (
	"github.com/studiobook/studio-booking-backend/internal/booking"
	"github.com/studiobook/studio-booking-backend/internal/pkg/request"
)

// CreateBookingRequest is the payload for booking a slot. Date and
// time accept any representation the normalizers understand; the
// canonical forms come back in the response.
type CreateBookingRequest struct {
	ID       string `json:"id" binding:"omitempty,max=64"`
	StudioID int64  `json:"studio_id" binding:"required,min=1"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
}

// AvailabilityRequest defines query parameters for the slot check.
type AvailabilityRequest struct {
	StudioID int64  `form:"studio_id" binding:"required,min=1"`
	Date     string `form:"date" binding:"required"`
	Time     string `form:"time" binding:"required"`
}

type BookingResponse struct {
	ID       string `json:"id"`
	StudioID int64  `json:"studio_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		StudioID: b.StudioID,
		Date:     b.Date,
		Time:     b.Time,
		Name:     b.Name,
		Email:    b.Email,
	}
}

type AvailabilityResponse struct {
	StudioID  int64  `json:"studio_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
