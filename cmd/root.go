package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"agendagol-cli/api"
	"agendagol-cli/config"
	"agendagol-cli/storage"
)

var (
	outputJSON bool
	cfg        config.Config
	client     *api.Client
)

var rootCmd = &cobra.Command{
	Use:          "agendagol",
	Short:        "AgendaGol CLI for booking sports fields",
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initClient)
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(fieldsCmd())
	rootCmd.AddCommand(availabilityCmd())
	rootCmd.AddCommand(bookCmd())
	rootCmd.AddCommand(reservationsCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(rolesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
}

func initClient() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	client = api.NewClient(cfg)
	client.OnAuthExpired = func() {
		// Drop persisted credentials so later runs don't retry a dead token.
		_ = storage.ClearCredentials()
		fmt.Fprintln(os.Stderr, "Session expired. Run 'agendagol auth login' to re-authenticate.")
	}

	if creds, err := storage.LoadCredentials(); err == nil && creds != nil && !creds.Expired(time.Now()) {
		client.SetAccessToken(creds.AccessToken)
	}
}
