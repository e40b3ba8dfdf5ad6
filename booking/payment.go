package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	MethodCard      PaymentMethod = "card"
	MethodPSE       PaymentMethod = "pse"
	MethodNequi     PaymentMethod = "nequi"
	MethodDaviplata PaymentMethod = "daviplata"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodCard, MethodPSE, MethodNequi, MethodDaviplata}
}

func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, method := range PaymentMethods() {
		if strings.EqualFold(string(method), value) {
			return method, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q (card, pse, nequi, daviplata)", value)
}

// Card holds the details collected for the card method. Only superficially
// validated client-side; a real gateway does the rest.
type Card struct {
	Number string
	Holder string
	Expiry string // MM/YY
	CVC    string
}

func (c Card) Validate() error {
	digits := strings.ReplaceAll(c.Number, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("card number must be 13-19 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("card number must contain only digits")
		}
	}
	if strings.TrimSpace(c.Holder) == "" {
		return fmt.Errorf("cardholder name is required")
	}
	if len(c.Expiry) != 5 || c.Expiry[2] != '/' {
		return fmt.Errorf("expiry must be MM/YY")
	}
	if len(c.CVC) < 3 || len(c.CVC) > 4 {
		return fmt.Errorf("cvc must be 3 or 4 digits")
	}
	return nil
}

// Charge is one payment authorization request.
type Charge struct {
	Method      PaymentMethod
	Card        *Card // required for MethodCard
	Amount      float64
	Description string
}

type Authorization struct {
	Reference    string
	Amount       float64
	AuthorizedAt time.Time
}

// Gateway authorizes charges. Authorization must reach a terminal outcome:
// an error is a failed payment, never a partial state.
type Gateway interface {
	Authorize(ctx context.Context, charge Charge) (Authorization, error)
}

// SimulatedGateway approves every well-formed charge after a fixed settlement
// delay, standing in for a hosted checkout. Real integrations must treat any
// negative or timed-out response as a payment failure, not a pass-through.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Authorize(ctx context.Context, charge Charge) (Authorization, error) {
	if charge.Amount <= 0 {
		return Authorization{}, fmt.Errorf("charge amount must be positive")
	}
	if charge.Method == MethodCard {
		if charge.Card == nil {
			return Authorization{}, fmt.Errorf("card details are required")
		}
		if err := charge.Card.Validate(); err != nil {
			return Authorization{}, err
		}
	}

	select {
	case <-ctx.Done():
		return Authorization{}, ctx.Err()
	case <-time.After(g.Delay):
	}

	return Authorization{
		Reference:    uuid.NewString(),
		Amount:       charge.Amount,
		AuthorizedAt: time.Now().UTC(),
	}, nil
}
