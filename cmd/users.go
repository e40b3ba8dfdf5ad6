package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User administration",
	}

	cmd.AddCommand(usersListCmd())
	cmd.AddCommand(usersStatsCmd())
	return cmd
}

func usersListCmd() *cobra.Command {
	var skip int
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			list, err := client.Users(context.Background(), skip, limit)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(list)
			}
			if len(list.Users) == 0 {
				fmt.Println("No users found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tACTIVE\tADMIN")
			for _, user := range list.Users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					user.ID, user.Username, user.Email, yesNo(user.IsActive), yesNo(user.IsAdmin))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d users.\n", len(list.Users), list.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of users to skip")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum users to return")
	return cmd
}

func usersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show user registration statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			stats, err := client.UserStats(context.Background())
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(stats)
			}
			fmt.Printf("Total users:     %d\n", stats.TotalUsers)
			fmt.Printf("Active users:    %d\n", stats.ActiveUsers)
			fmt.Printf("Admin users:     %d\n", stats.AdminUsers)
			fmt.Printf("New users today: %d\n", stats.NewUsersToday)
			return nil
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
