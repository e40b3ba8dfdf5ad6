package booking

import (
	"context"
	"fmt"

	"agendagol-cli/api"
)

// Step is the checkout flow's state. The flow authorizes payment first and
// creates the reservation only on explicit Finish from StepSuccess, so a
// retried payment interaction can never double-book.
type Step string

const (
	StepSummary    Step = "summary"
	StepPayment    Step = "payment"
	StepProcessing Step = "processing"
	StepSuccess    Step = "success"
	StepClosed     Step = "closed"
)

type Event string

const (
	EventConfirm         Event = "confirm"          // summary reviewed, proceed to payment
	EventPay             Event = "pay"              // payment submitted, authorization starts
	EventPaymentSettled  Event = "payment_settled"  // gateway approved
	EventPaymentDeclined Event = "payment_declined" // gateway declined or timed out
	EventCancel          Event = "cancel"           // user abandons the flow
	EventFinish          Event = "finish"           // leave success, create the reservation
)

// Transition is the pure step function of the checkout machine. Processing is
// non-interactive: the only way out is a settled or declined payment, so a
// user cannot abandon mid-authorization and start a second attempt.
func Transition(step Step, event Event) (Step, error) {
	switch step {
	case StepSummary:
		switch event {
		case EventConfirm:
			return StepPayment, nil
		case EventCancel:
			return StepClosed, nil
		}
	case StepPayment:
		switch event {
		case EventPay:
			return StepProcessing, nil
		case EventCancel:
			return StepClosed, nil
		}
	case StepProcessing:
		switch event {
		case EventPaymentSettled:
			return StepSuccess, nil
		case EventPaymentDeclined:
			return StepPayment, nil
		}
	case StepSuccess:
		if event == EventFinish {
			return StepClosed, nil
		}
	}
	return step, fmt.Errorf("cannot %s while checkout is in %s", event, step)
}

// Checkout drives one booking draft through summary, payment, and submission.
// One checkout owns its draft exclusively; no second flow can run against it.
type Checkout struct {
	step      Step
	draft     *Draft
	gateway   Gateway
	auth      Authorization
	submitted bool
}

func NewCheckout(draft *Draft, gateway Gateway) (*Checkout, error) {
	if !draft.Complete() {
		return nil, fmt.Errorf("draft is missing a field, date, or hour")
	}
	return &Checkout{step: StepSummary, draft: draft, gateway: gateway}, nil
}

func (c *Checkout) Step() Step          { return c.step }
func (c *Checkout) Draft() *Draft       { return c.draft }
func (c *Checkout) Reference() string   { return c.auth.Reference }
func (c *Checkout) TotalPrice() float64 { return c.draft.TotalPrice() }

// Confirm accepts the summary and moves to payment. No network call happens
// here.
func (c *Checkout) Confirm() error {
	next, err := Transition(c.step, EventConfirm)
	if err != nil {
		return err
	}
	c.step = next
	return nil
}

// Cancel abandons the flow. Rejected while processing: authorization must
// reach a terminal outcome first.
func (c *Checkout) Cancel() error {
	next, err := Transition(c.step, EventCancel)
	if err != nil {
		return err
	}
	c.step = next
	return nil
}

// Pay submits the selected method for authorization. The machine sits in
// StepProcessing for the duration of the call; a declined charge returns the
// flow to StepPayment with the gateway's error so the user can retry there.
func (c *Checkout) Pay(ctx context.Context, method PaymentMethod, card *Card) error {
	next, err := Transition(c.step, EventPay)
	if err != nil {
		return err
	}
	c.step = next

	auth, err := c.gateway.Authorize(ctx, Charge{
		Method:      method,
		Card:        card,
		Amount:      c.draft.TotalPrice(),
		Description: fmt.Sprintf("%s %s %s", c.draft.Field().Name, c.draft.Date(), c.draft.Hour()),
	})
	if err != nil {
		c.step, _ = Transition(c.step, EventPaymentDeclined)
		return err
	}

	c.auth = auth
	c.step, _ = Transition(c.step, EventPaymentSettled)
	return nil
}

// Finish leaves the success screen and performs the actual reservation
// creation, at most once per checkout. A conflict or validation failure is
// returned as-is: the flow closes without a reservation and the user must
// restart slot selection. There is no automatic retry.
func (c *Checkout) Finish(ctx context.Context, create CreateFunc) (api.Reservation, error) {
	next, err := Transition(c.step, EventFinish)
	if err != nil {
		return api.Reservation{}, err
	}
	if c.submitted {
		return api.Reservation{}, fmt.Errorf("reservation already submitted for this checkout")
	}
	c.submitted = true
	c.step = next

	reservation, err := create(ctx, api.CreateReservationRequest{
		FieldID:       c.draft.Field().ID,
		StartTime:     c.draft.StartTime(),
		DurationHours: c.draft.Duration(),
		Notes:         c.draft.Notes(),
	})
	if err != nil {
		return api.Reservation{}, err
	}

	c.draft.Reset()
	return reservation, nil
}
