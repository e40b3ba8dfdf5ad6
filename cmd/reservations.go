package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"agendagol-cli/api"
	"agendagol-cli/storage"
)

func reservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "Manage your reservations",
	}

	cmd.AddCommand(reservationsListCmd())
	cmd.AddCommand(reservationsAllCmd())
	cmd.AddCommand(reservationsCancelCmd())
	cmd.AddCommand(reservationsSyncCmd())
	cmd.AddCommand(reservationsStatsCmd())
	return cmd
}

func reservationsListCmd() *cobra.Command {
	var status string
	var past bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}

			filter := storage.ReservationFilter{Now: time.Now()}
			switch status {
			case "", "all":
			case "active":
				filter.Status = api.StatusConfirmed
			case "cancelled":
				filter.Status = api.StatusCancelled
			default:
				return fmt.Errorf("invalid --status %q (active, cancelled, all)", status)
			}
			if past {
				filter.Past = true
			} else if filter.Status != api.StatusCancelled {
				filter.Upcoming = true
			}

			ctx := context.Background()
			if !offline {
				// Best-effort refresh; a fetch failure leaves the cache
				// usable and is reported, not fatal.
				if err := syncReservations(ctx); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not refresh from server: %v\n", err)
				}
			}

			db, err := storage.OpenReservationsDB()
			if err != nil {
				return err
			}
			defer db.Close()

			reservations, err := storage.ListReservations(db, filter)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(reservations)
			}

			if len(reservations) == 0 {
				fmt.Println("No reservations found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFIELD\tSTART\tEND\tPRICE\tSTATUS")
			for _, r := range reservations {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.FieldName, dateTimeLabel(r.StartTime), dateTimeLabel(r.EndTime),
					formatCOP(r.TotalPrice), r.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "active", "Filter by status (active, cancelled, all)")
	cmd.Flags().BoolVar(&past, "past", false, "Show past reservations")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the server refresh and list the local cache")
	return cmd
}

func reservationsAllCmd() *cobra.Command {
	var status string
	var fieldID int
	var userID int
	var skip int
	var limit int

	cmd := &cobra.Command{
		Use:   "all",
		Short: "List every reservation on the platform (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}

			list, err := client.Reservations(context.Background(), api.ReservationListOptions{
				Skip:    skip,
				Limit:   limit,
				Status:  status,
				FieldID: fieldID,
				UserID:  userID,
			})
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(list)
			}

			if len(list.Reservations) == 0 {
				fmt.Println("No reservations found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSER\tFIELD\tSTART\tPRICE\tSTATUS")
			for _, r := range list.Reservations {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
					r.ID, r.UserID, r.FieldName, dateTimeLabel(r.StartTime),
					formatCOP(r.TotalPrice), r.Status)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d reservations.\n", len(list.Reservations), list.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (confirmada, cancelada)")
	cmd.Flags().IntVar(&fieldID, "field", 0, "Filter by field id")
	cmd.Flags().IntVar(&userID, "user", 0, "Filter by user id")
	cmd.Flags().IntVar(&skip, "skip", 0, "Number of reservations to skip")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum reservations to return")
	return cmd
}

func reservationsCancelCmd() *cobra.Command {
	var reason string
	var yes bool

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid reservation id %q", args[0])
			}

			ctx := context.Background()
			reservation, err := client.Reservation(ctx, id)
			if err != nil {
				return err
			}
			if reservation.Status == api.StatusCancelled {
				return fmt.Errorf("reservation #%d is already cancelled", id)
			}

			prompt := fmt.Sprintf("Cancel reservation #%d (%s, %s)? This cannot be undone",
				id, reservation.FieldName, dateTimeLabel(reservation.StartTime))
			if !yes && !confirm(prompt) {
				fmt.Println("Aborted.")
				return nil
			}

			cancelled, err := client.CancelReservation(ctx, id, reason)
			if err != nil {
				return err
			}

			fmt.Printf("Reservation #%d cancelled.\n", cancelled.ID)
			if err := syncReservations(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not refresh local reservations: %v\n", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Cancellation reason")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

func reservationsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local cache from the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			if err := syncReservations(context.Background()); err != nil {
				return err
			}
			fmt.Println("Reservations synced.")
			return nil
		},
	}
}

func reservationsStatsCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reservation statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}

			if remote {
				stats, err := client.ReservationStats(context.Background())
				if err != nil {
					return err
				}
				if outputJSON {
					return writeJSON(stats)
				}
				fmt.Printf("Total reservations:     %d\n", stats.TotalReservations)
				fmt.Printf("Active reservations:    %d\n", stats.ActiveReservations)
				fmt.Printf("Cancelled reservations: %d\n", stats.CancelledReservations)
				fmt.Printf("Reservations today:     %d\n", stats.ReservationsToday)
				fmt.Printf("Total revenue:          %s\n", formatCOP(stats.TotalRevenue))
				return nil
			}

			db, err := storage.OpenReservationsDB()
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := storage.ReservationCacheStats(db)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(stats)
			}
			fmt.Printf("Your reservations: %d (%d active, %d cancelled)\n", stats.Total, stats.Active, stats.Cancelled)
			fmt.Printf("Total spent:       %s\n", formatCOP(stats.TotalSpent))
			if stats.LastSynced != "" {
				fmt.Printf("Last synced:       %s\n", stats.LastSynced)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Show platform-wide statistics (admin)")
	return cmd
}
