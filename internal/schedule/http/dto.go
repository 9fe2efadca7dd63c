package http

// ConstraintsRequest defines query parameters for the time constraint
// lookup. Hour is optional; without it only the hour set is returned.
type ConstraintsRequest struct {
	Date string `form:"date" binding:"required"`
	Hour *int   `form:"hour" binding:"omitempty,min=0,max=23"`
}

// SlotsRequest defines query parameters for the selectable slot list.
type SlotsRequest struct {
	Date string `form:"date" binding:"required"`
}

type ConstraintsResponse struct {
	Date          string `json:"date"`
	DisabledHours []int  `json:"disabled_hours"`
	// DisabledMinutes is present only when an hour was supplied.
	DisabledMinutes *[]int `json:"disabled_minutes,omitempty"`
}

type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
