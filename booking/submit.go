package booking

import (
	"context"

	"agendagol-cli/api"
)

// CreateFunc performs the reservation-create call. Satisfied by
// (*api.Client).CreateReservation.
type CreateFunc func(ctx context.Context, payload api.CreateReservationRequest) (api.Reservation, error)

// ExplainSubmitError maps a failed reservation creation to the message shown
// to the user. Conflicts get an actionable prompt: the slot was taken by
// another booker between selection and submission, and the flow does not
// retry on the user's behalf.
func ExplainSubmitError(err error) string {
	switch {
	case err == nil:
		return ""
	case api.IsConflict(err):
		return "That slot was just taken by someone else. Pick another time and try again."
	case api.IsAuth(err):
		return "Your session expired. Log in and try again."
	case api.IsValidation(err):
		return err.Error()
	case api.IsTransport(err):
		return "Could not reach the reservations service. Check your connection and try again."
	default:
		return err.Error()
	}
}
