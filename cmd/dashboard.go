package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agendagol-cli/api"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Admin analytics",
	}

	cmd.AddCommand(dashboardOverviewCmd())
	cmd.AddCommand(dashboardStatsCmd())
	cmd.AddCommand(dashboardFieldsCmd())
	cmd.AddCommand(dashboardRevenueCmd())
	cmd.AddCommand(dashboardHealthCmd())
	return cmd
}

// dashboardOverviewCmd issues the four dashboard fetches concurrently. They
// are independent; each section renders from whatever resolved, and a failed
// section degrades to a notice instead of sinking the others.
func dashboardOverviewCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Full dashboard overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}

			ctx := context.Background()
			var (
				wg         sync.WaitGroup
				stats      api.DashboardStats
				statsErr   error
				fields     api.FieldsStatsResponse
				fieldsErr  error
				revenue    []api.DailyRevenue
				revenueErr error
				health     api.ServiceHealthResponse
				healthErr  error
			)

			wg.Add(4)
			go func() { defer wg.Done(); stats, statsErr = client.DashboardStats(ctx) }()
			go func() { defer wg.Done(); fields, fieldsErr = client.FieldsStats(ctx) }()
			go func() { defer wg.Done(); revenue, revenueErr = client.DailyRevenue(ctx, days) }()
			go func() { defer wg.Done(); health, healthErr = client.HealthCheck(ctx) }()
			wg.Wait()

			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Stats unavailable: %v\n", statsErr)
			} else {
				printGeneralStats(stats.GeneralStats)
			}
			fmt.Println()
			if fieldsErr != nil {
				fmt.Fprintf(os.Stderr, "Field stats unavailable: %v\n", fieldsErr)
			} else {
				printFieldStats(fields)
			}
			fmt.Println()
			if revenueErr != nil {
				fmt.Fprintf(os.Stderr, "Revenue unavailable: %v\n", revenueErr)
			} else {
				printRevenue(revenue)
			}
			fmt.Println()
			if healthErr != nil {
				fmt.Fprintf(os.Stderr, "Health unavailable: %v\n", healthErr)
			} else {
				printHealth(health)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Days of revenue history")
	return cmd
}

func dashboardStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "General platform statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			stats, err := client.DashboardStats(context.Background())
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(stats)
			}
			printGeneralStats(stats.GeneralStats)
			return nil
		},
	}
}

func dashboardFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Per-field statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			stats, err := client.FieldsStats(context.Background())
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(stats)
			}
			printFieldStats(stats)
			return nil
		},
	}
}

func dashboardRevenueCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Daily revenue history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			revenue, err := client.DailyRevenue(context.Background(), days)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(revenue)
			}
			printRevenue(revenue)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Days of history")
	return cmd
}

func dashboardHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Service health check",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			health, err := client.HealthCheck(context.Background())
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(health)
			}
			printHealth(health)
			return nil
		},
	}
}

func printGeneralStats(stats api.GeneralStats) {
	fmt.Println("Platform statistics")
	fmt.Printf("  Users:        %d\n", stats.TotalUsers)
	fmt.Printf("  Fields:       %d (%d active)\n", stats.TotalFields, stats.ActiveFields)
	fmt.Printf("  Reservations: %d (%d active, %d cancelled, %d today)\n",
		stats.TotalReservations, stats.ActiveReservations, stats.CancelledReservations, stats.ReservationsToday)
	fmt.Printf("  Revenue:      %s\n", formatCOP(stats.TotalRevenue))
}

func printFieldStats(stats api.FieldsStatsResponse) {
	fmt.Println("Field statistics")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tLOCATION\tRESERVATIONS\tWEEKLY\tREVENUE\tACTIVE")
	for _, field := range stats.FieldsStatistics {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%t\n",
			field.FieldName, field.FieldLocation, field.TotalReservations,
			field.WeeklyReservations, formatCOP(field.TotalRevenue), field.IsActive)
	}
	w.Flush()
	if stats.Summary.MostPopularField != nil {
		fmt.Printf("Most popular: %s\n", stats.Summary.MostPopularField.FieldName)
	}
}

func printRevenue(revenue []api.DailyRevenue) {
	fmt.Println("Daily revenue")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tREVENUE\tRESERVATIONS")
	for _, day := range revenue {
		fmt.Fprintf(w, "%s\t%s\t%d\n", day.Date, formatCOP(day.Revenue), day.Reservations)
	}
	w.Flush()
}

func printHealth(health api.ServiceHealthResponse) {
	fmt.Printf("Services: %s\n", health.OverallStatus)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tSTATUS\tLATENCY")
	for _, service := range health.Services {
		latency := "-"
		if service.LatencyMs > 0 {
			latency = fmt.Sprintf("%.0fms", service.LatencyMs)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", service.Service, service.Status, latency)
	}
	w.Flush()
}
