// Package booking implements the slot-selection and checkout workflow: an
// in-progress reservation draft, an availability resolver that tolerates
// out-of-order responses, a checkout state machine gating payment, and a
// single-shot reservation submitter.
package booking

import (
	"fmt"

	"agendagol-cli/api"
)

// Durations the reservations service accepts, in hours.
const (
	MinDurationHours = 1
	MaxDurationHours = 2
)

// Draft is the in-progress, unsubmitted reservation selection. It lives only
// for the duration of one booking flow and is discarded after a terminal
// submission outcome.
type Draft struct {
	field    api.Field
	date     string // YYYY-MM-DD
	hour     string // HH:MM, one of the fetched available hours
	duration int
	notes    string
}

func NewDraft(field api.Field, date string) *Draft {
	return &Draft{field: field, date: date, duration: MinDurationHours}
}

// SetField switches the draft to another field. Any selected hour is cleared:
// it was picked under the old field's availability and means nothing here.
func (d *Draft) SetField(field api.Field) {
	d.field = field
	d.hour = ""
}

// SetDate moves the draft to another date and clears the selected hour for
// the same reason as SetField.
func (d *Draft) SetDate(date string) {
	d.date = date
	d.hour = ""
}

func (d *Draft) SetHour(hour string) {
	d.hour = hour
}

func (d *Draft) SetDuration(hours int) error {
	if hours < MinDurationHours || hours > MaxDurationHours {
		return fmt.Errorf("duration must be %d or %d hours, got %d", MinDurationHours, MaxDurationHours, hours)
	}
	d.duration = hours
	return nil
}

func (d *Draft) SetNotes(notes string) {
	d.notes = notes
}

// TotalPrice is always derived from the field's current rate so it cannot
// drift from what the server will charge.
func (d *Draft) TotalPrice() float64 {
	return d.field.PricePerHour * float64(d.duration)
}

// StartTime renders the draft's slot as the ISO local timestamp the
// reservations service expects, e.g. "2026-01-20T14:00:00".
func (d *Draft) StartTime() string {
	return fmt.Sprintf("%sT%s:00", d.date, d.hour)
}

// Complete reports whether the draft has everything submission needs.
func (d *Draft) Complete() bool {
	return d.field.ID > 0 && d.date != "" && d.hour != ""
}

// Reset discards the selection, keeping the field so the user can start over
// on the same screen.
func (d *Draft) Reset() {
	d.date = ""
	d.hour = ""
	d.duration = MinDurationHours
	d.notes = ""
}

func (d *Draft) Field() api.Field { return d.field }
func (d *Draft) Date() string     { return d.date }
func (d *Draft) Hour() string     { return d.hour }
func (d *Draft) Duration() int    { return d.duration }
func (d *Draft) Notes() string    { return d.notes }
