package http

import (
	"github.com/studiobook/studio-booking-backend/internal/studio"
)

// SearchStudiosRequest defines query parameters for the studio search.
type SearchStudiosRequest struct {
	Query    string   `form:"q"`
	RadiusKm *float64 `form:"radius" binding:"omitempty,gt=0"`
}

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type StudioResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	City        string              `json:"city"`
	Area        string              `json:"area"`
	Coordinates CoordinatesResponse `json:"coordinates"`
}

func NewStudioResponse(s *studio.Studio) StudioResponse {
	return StudioResponse{
		ID:   s.ID,
		Name: s.Name,
		City: s.Location.City,
		Area: s.Location.Area,
		Coordinates: CoordinatesResponse{
			Latitude:  s.Location.Coordinates.Latitude,
			Longitude: s.Location.Coordinates.Longitude,
		},
	}
}
