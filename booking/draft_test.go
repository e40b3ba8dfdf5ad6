package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendagol-cli/api"
	"agendagol-cli/booking"
)

func testField() api.Field {
	return api.Field{
		ID:           7,
		Name:         "Cancha Norte",
		Location:     "Bogotá",
		PricePerHour: 25000,
		OpeningTime:  "08:00",
		ClosingTime:  "22:00",
		IsActive:     true,
	}
}

func TestDraftPriceIsDerivedFromDuration(t *testing.T) {
	draft := booking.NewDraft(testField(), "2026-09-10")
	draft.SetHour("14:00")

	assert.Equal(t, 25000.0, draft.TotalPrice())

	require.NoError(t, draft.SetDuration(2))
	assert.Equal(t, 50000.0, draft.TotalPrice())

	require.NoError(t, draft.SetDuration(1))
	assert.Equal(t, 25000.0, draft.TotalPrice())
}

func TestDraftPriceFollowsFieldRate(t *testing.T) {
	draft := booking.NewDraft(testField(), "2026-09-10")
	require.NoError(t, draft.SetDuration(2))

	cheaper := testField()
	cheaper.ID = 8
	cheaper.PricePerHour = 18000
	draft.SetField(cheaper)

	assert.Equal(t, 36000.0, draft.TotalPrice())
}

func TestDraftRejectsInvalidDurations(t *testing.T) {
	draft := booking.NewDraft(testField(), "2026-09-10")

	assert.Error(t, draft.SetDuration(0))
	assert.Error(t, draft.SetDuration(3))
	assert.Error(t, draft.SetDuration(-1))
	assert.Equal(t, 1, draft.Duration())
}

func TestChangingDateClearsSelectedHour(t *testing.T) {
	draft := booking.NewDraft(testField(), "2026-09-10")
	draft.SetHour("14:00")
	require.True(t, draft.Complete())

	draft.SetDate("2026-09-11")
	assert.Empty(t, draft.Hour())
	assert.False(t, draft.Complete())
}

func TestChangingFieldClearsSelectedHour(t *testing.T) {
	draft := booking.NewDraft(testField(), "2026-09-10")
	draft.SetHour("14:00")

	other := testField()
	other.ID = 9
	draft.SetField(other)

	assert.Empty(t, draft.Hour())
}

func TestDraftStartTimeIsISOLocal(t *testing.T) {
	draft := booking.NewDraft(testField(), "2026-01-20")
	draft.SetHour("14:00")

	assert.Equal(t, "2026-01-20T14:00:00", draft.StartTime())
}

func TestDraftReset(t *testing.T) {
	draft := booking.NewDraft(testField(), "2026-09-10")
	draft.SetHour("14:00")
	require.NoError(t, draft.SetDuration(2))
	draft.SetNotes("bring bibs")

	draft.Reset()

	assert.Empty(t, draft.Hour())
	assert.Empty(t, draft.Date())
	assert.Empty(t, draft.Notes())
	assert.Equal(t, 1, draft.Duration())
	// The field survives so the user can start over on the same screen.
	assert.Equal(t, 7, draft.Field().ID)
}
