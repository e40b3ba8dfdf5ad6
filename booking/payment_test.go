package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendagol-cli/booking"
)

func TestSimulatedGatewayApprovesValidCharges(t *testing.T) {
	gateway := booking.SimulatedGateway{Delay: time.Millisecond}

	auth, err := gateway.Authorize(context.Background(), booking.Charge{
		Method: booking.MethodNequi,
		Amount: 50000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Reference)
	assert.Equal(t, 50000.0, auth.Amount)
}

func TestSimulatedGatewayRejectsNonPositiveAmounts(t *testing.T) {
	gateway := booking.SimulatedGateway{Delay: time.Millisecond}

	_, err := gateway.Authorize(context.Background(), booking.Charge{
		Method: booking.MethodNequi,
		Amount: 0,
	})
	assert.Error(t, err)
}

func TestSimulatedGatewayValidatesCardDetails(t *testing.T) {
	gateway := booking.SimulatedGateway{Delay: time.Millisecond}
	ctx := context.Background()

	_, err := gateway.Authorize(ctx, booking.Charge{Method: booking.MethodCard, Amount: 25000})
	assert.Error(t, err, "card method without card details")

	_, err = gateway.Authorize(ctx, booking.Charge{
		Method: booking.MethodCard,
		Amount: 25000,
		Card:   &booking.Card{Number: "411111", Holder: "A B", Expiry: "12/28", CVC: "123"},
	})
	assert.Error(t, err, "number too short")

	_, err = gateway.Authorize(ctx, booking.Charge{
		Method: booking.MethodCard,
		Amount: 25000,
		Card:   &booking.Card{Number: "4111 1111 1111 1111", Holder: "A B", Expiry: "12/28", CVC: "123"},
	})
	assert.NoError(t, err)
}

func TestSimulatedGatewayHonoursContextCancellation(t *testing.T) {
	gateway := booking.SimulatedGateway{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Authorize(ctx, booking.Charge{Method: booking.MethodPSE, Amount: 10000})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCardValidate(t *testing.T) {
	cases := []struct {
		name string
		card booking.Card
		ok   bool
	}{
		{"valid", booking.Card{Number: "4111111111111111", Holder: "Ana Gómez", Expiry: "11/27", CVC: "123"}, true},
		{"spaces in number", booking.Card{Number: "4111 1111 1111 1111", Holder: "Ana Gómez", Expiry: "11/27", CVC: "1234"}, true},
		{"letters in number", booking.Card{Number: "4111-1111-1111-1111", Holder: "Ana Gómez", Expiry: "11/27", CVC: "123"}, false},
		{"missing holder", booking.Card{Number: "4111111111111111", Holder: " ", Expiry: "11/27", CVC: "123"}, false},
		{"bad expiry", booking.Card{Number: "4111111111111111", Holder: "Ana Gómez", Expiry: "1127", CVC: "123"}, false},
		{"bad cvc", booking.Card{Number: "4111111111111111", Holder: "Ana Gómez", Expiry: "11/27", CVC: "12"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.card.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := booking.ParsePaymentMethod("CARD")
	require.NoError(t, err)
	assert.Equal(t, booking.MethodCard, method)

	_, err = booking.ParsePaymentMethod("bitcoin")
	assert.Error(t, err)
}
