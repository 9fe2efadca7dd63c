package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiobook/studio-booking-backend/internal/schedule"
	"github.com/studiobook/studio-booking-backend/internal/timeutil"
)

// Handler serves time-slot constraint queries. The booking day window
// and slot interval are fixed service-wide configuration.
type Handler struct {
	opensAt         string
	closesAt        string
	intervalMinutes int
	now             func() time.Time
}

func NewHandler(opensAt, closesAt string, intervalMinutes int) *Handler {
	return &Handler{
		opensAt:         opensAt,
		closesAt:        closesAt,
		intervalMinutes: intervalMinutes,
		now:             time.Now,
	}
}

// Constraints returns the disabled hour values for a date, and the
// disabled minute values when an hour is supplied.
func (h *Handler) Constraints(c *gin.Context) {
	var req ConstraintsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date := timeutil.FormatDate(timeutil.DateString(req.Date))
	selected, _ := time.Parse(timeutil.DateLayout, date)
	now := h.now()

	resp := ConstraintsResponse{
		Date:          date,
		DisabledHours: intSet(schedule.DisabledHours(selected, now)),
	}
	if req.Hour != nil {
		minutes := intSet(schedule.DisabledMinutes(selected, *req.Hour, now))
		resp.DisabledMinutes = &minutes
	}

	c.JSON(http.StatusOK, resp)
}

// Slots lists the HH:mm values still selectable on a date within the
// configured day window.
func (h *Handler) Slots(c *gin.Context) {
	var req SlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date := timeutil.FormatDate(timeutil.DateString(req.Date))
	slots := schedule.SelectableSlots(date, h.opensAt, h.closesAt, h.intervalMinutes, h.now())
	if slots == nil {
		slots = make([]string, 0)
	}

	c.JSON(http.StatusOK, SlotsResponse{Date: date, Slots: slots})
}

// intSet avoids JSON null for empty constraint sets.
func intSet(vals []int) []int {
	if vals == nil {
		return make([]int, 0)
	}
	return vals
}
