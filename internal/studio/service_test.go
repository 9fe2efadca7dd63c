package studio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiobook/studio-booking-backend/internal/geo"
)

var dhakaRef = geo.Point{Lat: 23.8103, Lng: 90.4125}

func testCatalog() []Studio {
	return []Studio{
		{
			ID:   1,
			Name: "Lumen Studio",
			Location: Location{
				City: "Dhaka",
				Area: "Gulshan",
				Coordinates: Coordinates{
					Latitude:  23.78,
					Longitude: 90.41,
				},
			},
		},
		{
			ID:   2,
			Name: "Frame Factory",
			Location: Location{
				City: "Dhaka",
				Area: "Banani",
				Coordinates: Coordinates{
					Latitude:  23.79,
					Longitude: 90.40,
				},
			},
		},
		{
			ID:   3,
			Name: "Hill Light",
			Location: Location{
				City: "Chattogram",
				Area: "Khulshi",
				Coordinates: Coordinates{
					Latitude:  22.3569,
					Longitude: 91.7832,
				},
			},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestSearch(t *testing.T) {
	svc := NewService(testCatalog(), dhakaRef)

	t.Run("empty query returns the whole catalog in order", func(t *testing.T) {
		got := svc.Search("", nil)
		require.Len(t, got, 3)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
		assert.Equal(t, int64(3), got[2].ID)
	})

	t.Run("area match is case-insensitive", func(t *testing.T) {
		got := svc.Search("GULSHAN", nil)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("city match includes every studio in that city", func(t *testing.T) {
		got := svc.Search("dhaka", nil)
		require.Len(t, got, 2)
	})

	t.Run("first match becomes the reference point", func(t *testing.T) {
		// Gulshan and Banani are about 1.5 km apart, so a city-wide
		// query with a 5 km radius measured from studio 1 keeps both
		// Dhaka studios and drops Chattogram.
		got := svc.Search("dhaka", floatPtr(5))
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("no match falls back to the default reference point", func(t *testing.T) {
		// Nothing matches, so the radius is measured from the
		// configured default. The result is deterministic regardless
		// of catalog contents.
		got := svc.Search("nonexistent-area", floatPtr(1))
		assert.Empty(t, got)
	})

	t.Run("radius alone filters from the default reference", func(t *testing.T) {
		got := svc.Search("", floatPtr(10))
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("radius boundary is inclusive", func(t *testing.T) {
		ref := geo.Point{Lat: 23.8103, Lng: 90.4125}
		exact := ref.DistanceFrom(23.78, 90.41)
		got := svc.Search("gulshan", floatPtr(exact))
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("NaN coordinates are excluded, not matched", func(t *testing.T) {
		catalog := testCatalog()
		catalog[1].Location.Coordinates.Latitude = math.NaN()
		broken := NewService(catalog, dhakaRef)

		got := broken.Search("dhaka", floatPtr(5000))
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})
}

func TestGetByID(t *testing.T) {
	svc := NewService(testCatalog(), dhakaRef)

	st, err := svc.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Frame Factory", st.Name)

	_, err = svc.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
