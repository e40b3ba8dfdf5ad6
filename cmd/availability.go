package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"agendagol-cli/booking"
)

type availabilityOutput struct {
	FieldID   int      `json:"field_id"`
	FieldName string   `json:"field_name"`
	Date      string   `json:"date"`
	Hours     []string `json:"available_hours"`
}

func availabilityCmd() *cobra.Command {
	var fieldID int
	var date string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Show open hours for a field on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fieldID <= 0 {
				return fmt.Errorf("--field is required")
			}
			day, err := parseDateInput(date)
			if err != nil {
				return err
			}
			if !booking.WithinBookingWindow(day, time.Now()) {
				return fmt.Errorf("date %s is outside the %d-day booking window", day, booking.BookingWindowDays)
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

			if outputJSON {
				return writeJSON(availabilityOutput{
					FieldID:   field.ID,
					FieldName: field.Name,
					Date:      day,
					Hours:     hours,
				})
			}

			fmt.Printf("%s on %s\n", field.Name, day)
			if len(hours) == 0 {
				fmt.Println("No slots available.")
				return nil
			}
			for _, hour := range hours {
				fmt.Printf("  %s  (%s/hour)\n", hour, formatCOP(field.PricePerHour))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fieldID, "field", 0, "Field id")
	cmd.Flags().StringVar(&date, "date", "today", "Date (YYYY-MM-DD, today, tomorrow)")
	return cmd
}
