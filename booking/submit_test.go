package booking_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"agendagol-cli/api"
	"agendagol-cli/booking"
)

func TestExplainSubmitError(t *testing.T) {
	conflict := errors.Mark(&api.Error{StatusCode: 409, Message: "slot already reserved"}, api.ErrConflict)
	auth := errors.Mark(&api.Error{StatusCode: 401, Message: "token expired"}, api.ErrUnauthorized)
	validation := errors.Mark(&api.Error{StatusCode: 422, Message: "duration_hours must be 1 or 2"}, api.ErrValidation)
	transport := fmt.Errorf("dial tcp: connection refused")

	assert.Empty(t, booking.ExplainSubmitError(nil))
	assert.Contains(t, booking.ExplainSubmitError(conflict), "Pick another time")
	assert.Contains(t, booking.ExplainSubmitError(auth), "Log in")
	assert.Equal(t, "duration_hours must be 1 or 2", booking.ExplainSubmitError(validation))
	assert.Contains(t, booking.ExplainSubmitError(transport), "connection")
}
