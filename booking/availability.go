package booking

import (
	"context"
	"sync"
	"time"

	"agendagol-cli/api"
)

// BookingWindowDays is how far ahead a slot can be booked, rolling from today.
const BookingWindowDays = 30

// AvailabilityFunc fetches the open hours for a field on a date. Satisfied by
// (*api.Client).Availability.
type AvailabilityFunc func(ctx context.Context, fieldID int, date string) (api.FieldAvailability, error)

// Resolver tracks the currently selected date and applies availability
// responses last-write-wins by date key: a response for a date the user has
// already navigated away from is discarded, whatever order the requests
// resolve in.
type Resolver struct {
	fetch AvailabilityFunc

	mu       sync.Mutex
	selected string
	snapshot api.FieldAvailability
}

func NewResolver(fetch AvailabilityFunc) *Resolver {
	return &Resolver{fetch: fetch}
}

// Resolve fetches availability for the field on the given date and records
// the date as the active selection. Fetch failures degrade to an empty-hours
// snapshot rather than an error: the caller renders "no slots available".
func (r *Resolver) Resolve(ctx context.Context, field api.Field, date string) {
	r.mu.Lock()
	r.selected = date
	r.mu.Unlock()

	snapshot, err := r.fetch(ctx, field.ID, date)
	if err != nil {
		snapshot = api.FieldAvailability{FieldID: field.ID}
	}
	// The requested date is the staleness key, whatever the server echoes.
	snapshot.Date = date
	snapshot.AvailableHours = filterOpenHours(snapshot.AvailableHours, field.OpeningTime, field.ClosingTime)
	r.apply(snapshot)
}

func (r *Resolver) apply(snapshot api.FieldAvailability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if snapshot.Date != r.selected {
		// Stale response for a date that is no longer selected.
		return
	}
	r.snapshot = snapshot
}

// Hours returns the open hours for the currently selected date. Empty until a
// matching response has been applied.
func (r *Resolver) Hours() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot.Date != r.selected {
		return nil
	}
	return r.snapshot.AvailableHours
}

func (r *Resolver) SelectedDate() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

// filterOpenHours drops any hour outside the field's opening window. The
// server should never send one, but the window is the field's invariant and
// cheap to hold locally. Empty bounds disable the check.
func filterOpenHours(hours []string, opening, closing string) []string {
	if opening == "" || closing == "" {
		return hours
	}
	opensAt := clockLabel(opening)
	closesAt := clockLabel(closing)
	filtered := make([]string, 0, len(hours))
	for _, hour := range hours {
		label := clockLabel(hour)
		if label >= opensAt && label < closesAt {
			filtered = append(filtered, hour)
		}
	}
	return filtered
}

// clockLabel normalizes "HH:MM" and "HH:MM:SS" to "HH:MM" for lexicographic
// comparison.
func clockLabel(value string) string {
	if len(value) > 5 {
		return value[:5]
	}
	return value
}

// WithinBookingWindow reports whether the date falls inside the rolling
// booking window starting today.
func WithinBookingWindow(date string, now time.Time) bool {
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return false
	}
	return !day.After(today.AddDate(0, 0, BookingWindowDays-1))
}
