package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"agendagol-cli/booking"
)

const paymentSettleDelay = 2 * time.Second

func bookCmd() *cobra.Command {
	var fieldID int
	var date string
	var hour string
	var duration int
	var notes string
	var method string
	var yes bool
	var card booking.Card

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a field slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fieldID <= 0 || hour == "" {
				return fmt.Errorf("--field and --hour are required")
			}

			// Login is checked before anything touches payment or
			// reservations: an unauthenticated run stops here with no call
			// made.
			if _, err := requireLogin(); err != nil {
				return err
			}

			day, err := parseDateInput(date)
			if err != nil {
				return err
			}
			if !booking.WithinBookingWindow(day, time.Now()) {
				return fmt.Errorf("date %s is outside the %d-day booking window", day, booking.BookingWindowDays)
			}

			paymentMethod, err := booking.ParsePaymentMethod(method)
			if err != nil {
				return err
			}
			var cardDetails *booking.Card
			if paymentMethod == booking.MethodCard {
				if card.Number == "" {
					return fmt.Errorf("--card-number, --card-name, --card-expiry, and --card-cvc are required for card payments")
				}
				cardDetails = &card
			}

			ctx := context.Background()
			field, err := client.Field(ctx, fieldID)
			if err != nil {
				return err
			}
			if !field.IsActive {
				return fmt.Errorf("field %s is not accepting reservations", field.Name)
			}

			resolver := booking.NewResolver(client.Availability)
			resolver.Resolve(ctx, field, day)
			hours := resolver.Hours()
			if !containsHour(hours, hour) {
				if len(hours) == 0 {
					return fmt.Errorf("no slots available for %s on %s", field.Name, day)
				}
				return fmt.Errorf("%s is not available on %s. Open hours: %s", hour, day, strings.Join(hours, ", "))
			}

			draft := booking.NewDraft(field, day)
			draft.SetHour(hour)
			if err := draft.SetDuration(duration); err != nil {
				return err
			}
			draft.SetNotes(notes)

			checkout, err := booking.NewCheckout(draft, booking.SimulatedGateway{Delay: paymentSettleDelay})
			if err != nil {
				return err
			}

			// Summary step: show the draft and total before any payment.
			fmt.Printf("Booking summary\n")
			fmt.Printf("  Field:    %s (%s)\n", field.Name, field.Location)
			fmt.Printf("  Slot:     %s %s, %dh\n", day, hour, draft.Duration())
			fmt.Printf("  Total:    %s\n", formatCOP(draft.TotalPrice()))
			if !yes && !confirm("Continue to payment") {
				_ = checkout.Cancel()
				fmt.Println("Booking cancelled.")
				return nil
			}
			if err := checkout.Confirm(); err != nil {
				return err
			}

			fmt.Println("Processing payment...")
			if err := checkout.Pay(ctx, paymentMethod, cardDetails); err != nil {
				return fmt.Errorf("payment failed: %w", err)
			}
			fmt.Printf("Payment approved. Reference: %s\n", checkout.Reference())

			reservation, err := checkout.Finish(ctx, client.CreateReservation)
			if err != nil {
				return fmt.Errorf("%s", booking.ExplainSubmitError(err))
			}

			fmt.Printf("Reservation #%d confirmed: %s, %s to %s, %s\n",
				reservation.ID, reservation.FieldName,
				dateTimeLabel(reservation.StartTime), dateTimeLabel(reservation.EndTime),
				formatCOP(reservation.TotalPrice))

			// Reconcile with the server's canonical record set.
			if err := syncReservations(ctx); err != nil {
				fmt.Printf("Warning: could not refresh local reservations: %v\n", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fieldID, "field", 0, "Field id")
	cmd.Flags().StringVar(&date, "date", "today", "Date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVar(&hour, "hour", "", "Start hour (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 1, "Duration in hours (1 or 2)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.Flags().StringVar(&method, "method", "card", "Payment method (card, pse, nequi, daviplata)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the summary confirmation")
	cmd.Flags().StringVar(&card.Number, "card-number", "", "Card number")
	cmd.Flags().StringVar(&card.Holder, "card-name", "", "Cardholder name")
	cmd.Flags().StringVar(&card.Expiry, "card-expiry", "", "Card expiry (MM/YY)")
	cmd.Flags().StringVar(&card.CVC, "card-cvc", "", "Card CVC")
	return cmd
}

func containsHour(hours []string, hour string) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
