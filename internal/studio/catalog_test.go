package studio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
  "studios": [
    {
      "Id": 1,
      "Name": "Lumen Studio",
      "Location": {
        "City": "Dhaka",
        "Area": "Gulshan",
        "Coordinates": {"Latitude": 23.78, "Longitude": 90.41}
      }
    },
    {
      "Id": 2,
      "Name": "Frame Factory",
      "Location": {
        "City": "Dhaka",
        "Area": "Banani",
        "Coordinates": {"Latitude": 23.79, "Longitude": 90.40}
      }
    }
  ]
}`

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studios.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0644))

	studios, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, studios, 2)

	assert.Equal(t, int64(1), studios[0].ID)
	assert.Equal(t, "Lumen Studio", studios[0].Name)
	assert.Equal(t, "Gulshan", studios[0].Location.Area)
	assert.Equal(t, 23.78, studios[0].Location.Coordinates.Latitude)
	assert.Equal(t, 90.41, studios[0].Location.Coordinates.Longitude)
}

func TestLoadCatalogFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := LoadCatalogFile(path)
		assert.Error(t, err)
	})
}
