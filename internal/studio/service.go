package studio

import (
	"strings"

	"github.com/studiobook/studio-booking-backend/internal/geo"
)

// Service answers catalog queries against a fixed snapshot.
type Service interface {
	// Search filters the catalog by a location query and an optional
	// radius in kilometers, preserving catalog order.
	Search(query string, radiusKm *float64) []Studio

	// GetByID looks a studio up by its catalog id.
	GetByID(id int64) (*Studio, error)

	// All returns the full catalog snapshot.
	All() []Studio
}

type service struct {
	catalog    []Studio
	defaultRef geo.Point
}

// NewService builds a Service over a catalog snapshot. defaultRef is
// the reference point used for radius filtering when the query matches
// no studio, or when there is no query at all.
func NewService(catalog []Studio, defaultRef geo.Point) Service {
	return &service{
		catalog:    catalog,
		defaultRef: defaultRef,
	}
}

func (s *service) Search(query string, radiusKm *float64) []Studio {
	term := strings.ToLower(strings.TrimSpace(query))
	ref := s.referencePoint(term)

	results := make([]Studio, 0)
	for _, st := range s.catalog {
		if term != "" && !matchesLocation(st, term) {
			continue
		}
		if radiusKm != nil {
			d := ref.DistanceFrom(st.Location.Coordinates.Latitude, st.Location.Coordinates.Longitude)
			// NaN fails this comparison, excluding studios with
			// broken coordinates.
			if !(d <= *radiusKm) {
				continue
			}
		}
		results = append(results, st)
	}
	return results
}

func (s *service) GetByID(id int64) (*Studio, error) {
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			st := s.catalog[i]
			return &st, nil
		}
	}
	return nil, ErrNotFound
}

func (s *service) All() []Studio {
	return s.catalog
}

// referencePoint resolves the coordinate that radius filtering
// measures from. The first studio whose area or city contains the
// query becomes the reference; with no query or no match the
// configured default applies.
func (s *service) referencePoint(term string) geo.Point {
	if term == "" {
		return s.defaultRef
	}
	for _, st := range s.catalog {
		if matchesLocation(st, term) {
			return geo.Point{
				Lat: st.Location.Coordinates.Latitude,
				Lng: st.Location.Coordinates.Longitude,
			}
		}
	}
	return s.defaultRef
}

func matchesLocation(st Studio, term string) bool {
	return strings.Contains(strings.ToLower(st.Location.Area), term) ||
		strings.Contains(strings.ToLower(st.Location.City), term)
}
