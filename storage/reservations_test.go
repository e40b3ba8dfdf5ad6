package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendagol-cli/api"
	"agendagol-cli/storage"
)

func seedReservations(t *testing.T) []api.Reservation {
	t.Helper()
	return []api.Reservation{
		{
			ID: 1, FieldID: 7, FieldName: "Cancha Norte", FieldLocation: "Bogotá",
			StartTime: "2026-09-10T14:00:00", EndTime: "2026-09-10T16:00:00",
			DurationHours: 2, TotalPrice: 50000, Status: api.StatusConfirmed,
		},
		{
			ID: 2, FieldID: 7, FieldName: "Cancha Norte", FieldLocation: "Bogotá",
			StartTime: "2026-08-01T10:00:00", EndTime: "2026-08-01T11:00:00",
			DurationHours: 1, TotalPrice: 25000, Status: api.StatusConfirmed,
		},
		{
			ID: 3, FieldID: 9, FieldName: "Cancha Sur", FieldLocation: "Medellín",
			StartTime: "2026-09-12T18:00:00", EndTime: "2026-09-12T19:00:00",
			DurationHours: 1, TotalPrice: 30000, Status: api.StatusCancelled,
			CancelledAt: "2026-09-02T09:00:00",
		},
	}
}

func TestReplaceAndListReservations(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db, err := storage.OpenReservationsDB()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, storage.ReplaceReservations(db, seedReservations(t), time.Now()))

	all, err := storage.ListReservations(db, storage.ReservationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Ordered by start time.
	assert.Equal(t, 2, all[0].ID)
	assert.Equal(t, 1, all[1].ID)
	assert.Equal(t, 3, all[2].ID)
}

func TestListReservationsFilters(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db, err := storage.OpenReservationsDB()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, storage.ReplaceReservations(db, seedReservations(t), time.Now()))
	now := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	cancelled, err := storage.ListReservations(db, storage.ReservationFilter{Status: api.StatusCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, 3, cancelled[0].ID)
	assert.NotEmpty(t, cancelled[0].CancelledAt)

	upcoming, err := storage.ListReservations(db, storage.ReservationFilter{
		Status: api.StatusConfirmed, Upcoming: true, Now: now,
	})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, 1, upcoming[0].ID)

	past, err := storage.ListReservations(db, storage.ReservationFilter{
		Status: api.StatusConfirmed, Past: true, Now: now,
	})
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, 2, past[0].ID)
}

func TestSyncReplacesWholesale(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db, err := storage.OpenReservationsDB()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, storage.ReplaceReservations(db, seedReservations(t), time.Now()))

	// Server-side cancellation shows up after resync; nothing lingers.
	updated := seedReservations(t)[:1]
	updated[0].Status = api.StatusCancelled
	require.NoError(t, storage.ReplaceReservations(db, updated, time.Now()))

	all, err := storage.ListReservations(db, storage.ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, api.StatusCancelled, all[0].Status)
}

func TestReservationCacheStats(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db, err := storage.OpenReservationsDB()
	require.NoError(t, err)
	defer db.Close()

	synced := time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC)
	require.NoError(t, storage.ReplaceReservations(db, seedReservations(t), synced))

	stats, err := storage.ReservationCacheStats(db)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 75000.0, stats.TotalSpent, "cancelled reservations do not count as spend")
	assert.Equal(t, synced.Format(time.RFC3339), stats.LastSynced)
}
