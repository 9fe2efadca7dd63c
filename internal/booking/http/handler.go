package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiobook/studio-booking-backend/internal/booking"
	"github.com/studiobook/studio-booking-backend/internal/pkg/request"
	"github.com/studiobook/studio-booking-backend/internal/pkg/response"
	"github.com/studiobook/studio-booking-backend/internal/studio"
)

type Handler struct {
	service       booking.Service
	studioService studio.Service
}

func NewHandler(service booking.Service, studioService studio.Service) *Handler {
	return &Handler{
		service:       service,
		studioService: studioService,
	}
}

// Create books a slot. The studio must exist in the catalog snapshot;
// its display fields are denormalized onto the stored record.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	st, err := h.studioService.GetByID(body.StudioID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "studio not found"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ID:       body.ID,
		StudioID: body.StudioID,
		Date:     body.Date,
		Time:     body.Time,
		Name:     body.Name,
		Email:    body.Email,
		Studio:   st,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List returns one page of all bookings.
func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	bookings, total := h.service.List(req.Page, req.PageSize)

	items := make([]BookingResponse, len(bookings))
	for i := range bookings {
		items[i] = NewBookingResponse(&bookings[i])
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// ListForStudio returns every booking for one studio in insertion order.
func (h *Handler) ListForStudio(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid studio id"})
		return
	}

	bookings := h.service.ForStudio(req.ID)

	items := make([]BookingResponse, len(bookings))
	for i := range bookings {
		items[i] = NewBookingResponse(&bookings[i])
	}

	c.JSON(http.StatusOK, gin.H{"bookings": items})
}

// Availability reports whether a slot is still free.
func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	available := h.service.IsAvailable(req.StudioID, req.Date, req.Time)

	c.JSON(http.StatusOK, AvailabilityResponse{
		StudioID:  req.StudioID,
		Date:      req.Date,
		Time:      req.Time,
		Available: available,
	})
}
