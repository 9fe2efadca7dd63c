package booking

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiobook/studio-booking-backend/internal/pkg/kv"
)

func newTestStore(t *testing.T) (*Store, kv.Store) {
	t.Helper()
	medium, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)

	store, err := NewStore(context.Background(), medium)
	require.NoError(t, err)
	return store, medium
}

func TestStoreAvailability(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Free slot before any booking.
	assert.True(t, store.IsAvailable(1, "2025-06-01", "10:00"))

	require.NoError(t, store.Add(ctx, Booking{
		ID:       "b1",
		StudioID: 1,
		Date:     "2025-06-01",
		Time:     "10:00",
		Name:     "Ayesha Rahman",
		Email:    "ayesha@example.com",
	}))

	// The exact slot is now taken; neighbors are untouched.
	assert.False(t, store.IsAvailable(1, "2025-06-01", "10:00"))
	assert.True(t, store.IsAvailable(1, "2025-06-01", "10:30"))
	assert.True(t, store.IsAvailable(2, "2025-06-01", "10:00"))
	assert.True(t, store.IsAvailable(1, "2025-06-02", "10:00"))
}

func TestStoreWriteThroughAndReload(t *testing.T) {
	store, medium := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, Booking{ID: "b1", StudioID: 1, Date: "2025-06-01", Time: "10:00"}))
	require.NoError(t, store.Add(ctx, Booking{ID: "b2", StudioID: 2, Date: "2025-06-01", Time: "11:00"}))

	// Every Add rewrites the full snapshot.
	data, err := medium.Get(ctx, "bookings")
	require.NoError(t, err)
	var persisted []map[string]any
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted, 2)

	// A fresh store over the same medium sees the same bookings.
	reloaded, err := NewStore(ctx, medium)
	require.NoError(t, err)
	assert.False(t, reloaded.IsAvailable(1, "2025-06-01", "10:00"))
	assert.Len(t, reloaded.All(), 2)
}

func TestStoreCorruptSnapshotIsNonFatal(t *testing.T) {
	medium, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, medium.Put(ctx, "bookings", []byte("{definitely not json")))

	store, err := NewStore(ctx, medium)
	require.NoError(t, err)
	assert.Empty(t, store.All())

	// The next write replaces the corrupt content.
	require.NoError(t, store.Add(ctx, Booking{ID: "b1", StudioID: 1, Date: "2025-06-01", Time: "10:00"}))

	data, err := medium.Get(ctx, "bookings")
	require.NoError(t, err)
	var persisted []Booking
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "b1", persisted[0].ID)
}

func TestStoreForStudioKeepsInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, Booking{ID: "b1", StudioID: 1, Date: "2025-06-01", Time: "10:00"}))
	require.NoError(t, store.Add(ctx, Booking{ID: "b2", StudioID: 2, Date: "2025-06-01", Time: "10:00"}))
	require.NoError(t, store.Add(ctx, Booking{ID: "b3", StudioID: 1, Date: "2025-06-01", Time: "11:00"}))

	got := store.ForStudio(1)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b3", got[1].ID)

	assert.Empty(t, store.ForStudio(99))
}
