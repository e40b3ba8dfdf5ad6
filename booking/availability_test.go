package booking_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendagol-cli/api"
	"agendagol-cli/booking"
)

func TestResolverReturnsFetchedHours(t *testing.T) {
	fetch := func(ctx context.Context, fieldID int, date string) (api.FieldAvailability, error) {
		return api.FieldAvailability{
			FieldID:        fieldID,
			Date:           date,
			AvailableHours: []string{"14:00", "15:00", "16:00"},
		}, nil
	}

	resolver := booking.NewResolver(fetch)
	resolver.Resolve(context.Background(), testField(), "2026-09-10")

	assert.Equal(t, []string{"14:00", "15:00", "16:00"}, resolver.Hours())
	assert.Equal(t, "2026-09-10", resolver.SelectedDate())
}

func TestResolverFailsSoftToEmptyHours(t *testing.T) {
	fetch := func(ctx context.Context, fieldID int, date string) (api.FieldAvailability, error) {
		return api.FieldAvailability{}, fmt.Errorf("connection refused")
	}

	resolver := booking.NewResolver(fetch)
	resolver.Resolve(context.Background(), testField(), "2026-09-10")

	// A transport failure renders as "no slots", never as an error state.
	assert.Empty(t, resolver.Hours())
	assert.Equal(t, "2026-09-10", resolver.SelectedDate())
}

func TestResolverKeysOnRequestedDateNotServerEcho(t *testing.T) {
	fetch := func(ctx context.Context, fieldID int, date string) (api.FieldAvailability, error) {
		// Echoes the date in a different shape, as a reformatting service
		// deploy might.
		return api.FieldAvailability{
			FieldID:        fieldID,
			Date:           "10/09/2026",
			AvailableHours: []string{"14:00", "15:00"},
		}, nil
	}

	resolver := booking.NewResolver(fetch)
	resolver.Resolve(context.Background(), testField(), "2026-09-10")

	// A fresh response for the selected date must apply even when the echoed
	// date does not match byte-for-byte.
	assert.Equal(t, []string{"14:00", "15:00"}, resolver.Hours())
	assert.Equal(t, "2026-09-10", resolver.SelectedDate())
}

func TestResolverDiscardsOutOfOrderResponse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context, fieldID int, date string) (api.FieldAvailability, error) {
		if date == "2026-09-10" {
			close(started)
			<-release // resolves only after the second date has been applied
			return api.FieldAvailability{FieldID: fieldID, Date: date, AvailableHours: []string{"08:00"}}, nil
		}
		return api.FieldAvailability{FieldID: fieldID, Date: date, AvailableHours: []string{"14:00", "15:00"}}, nil
	}

	resolver := booking.NewResolver(fetch)
	field := testField()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		resolver.Resolve(context.Background(), field, "2026-09-10")
	}()

	<-started
	resolver.Resolve(context.Background(), field, "2026-09-11")
	close(release)
	wg.Wait()

	// The late response for the first date must not overwrite the second.
	assert.Equal(t, "2026-09-11", resolver.SelectedDate())
	assert.Equal(t, []string{"14:00", "15:00"}, resolver.Hours())
}

func TestResolverFiltersHoursOutsideOpeningWindow(t *testing.T) {
	fetch := func(ctx context.Context, fieldID int, date string) (api.FieldAvailability, error) {
		return api.FieldAvailability{
			FieldID:        fieldID,
			Date:           date,
			AvailableHours: []string{"06:00", "08:00", "21:00", "22:00", "23:00"},
		}, nil
	}

	resolver := booking.NewResolver(fetch)
	resolver.Resolve(context.Background(), testField(), "2026-09-10") // open 08:00-22:00

	assert.Equal(t, []string{"08:00", "21:00"}, resolver.Hours())
}

func TestWithinBookingWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	require.True(t, booking.WithinBookingWindow("2026-09-01", now))
	require.True(t, booking.WithinBookingWindow("2026-09-15", now))
	require.True(t, booking.WithinBookingWindow("2026-09-30", now))

	assert.False(t, booking.WithinBookingWindow("2026-08-31", now), "yesterday")
	assert.False(t, booking.WithinBookingWindow("2026-10-01", now), "past the rolling window")
	assert.False(t, booking.WithinBookingWindow("not-a-date", now))
}
