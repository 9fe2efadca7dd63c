package studio

import (
	"errors"
)

var (
	ErrNotFound = errors.New("studio not found")
)

// Coordinates is a latitude/longitude pair in floating degrees.
// Values are taken from the catalog as-is and never range-checked;
// out-of-range or non-numeric coordinates surface as NaN distances and
// drop out of radius filtering.
type Coordinates struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

// Location describes where a studio sits.
type Location struct {
	City        string      `json:"City"`
	Area        string      `json:"Area"`
	Coordinates Coordinates `json:"Coordinates"`
}

// Studio is a catalog entry. The catalog is externally sourced and
// read-only to this service; JSON tags follow the upstream document.
type Studio struct {
	ID       int64    `json:"Id"`
	Name     string   `json:"Name"`
	Location Location `json:"Location"`
}
