package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"agendagol-cli/api"
	"agendagol-cli/storage"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authRegisterCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authProfileCmd())
	return cmd
}

func authLoginCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to AgendaGol",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			ctx := context.Background()
			token, err := client.Login(ctx, email, password)
			if err != nil {
				return err
			}

			user, err := client.Me(ctx)
			if err != nil {
				return err
			}

			creds := storage.Credentials{
				AccessToken: token.AccessToken,
				TokenType:   token.TokenType,
				UserID:      user.ID,
				Email:       user.Email,
				Username:    user.Username,
				IsAdmin:     user.IsAdmin,
				SavedAt:     time.Now().UTC().Format(time.RFC3339),
			}
			if err := storage.SaveCredentials(&creds); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func authRegisterCmd() *cobra.Command {
	var username string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				username, err = promptLine("Username: ")
				if err != nil {
					return err
				}
			}
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}
			if username == "" || email == "" || password == "" {
				return fmt.Errorf("username, email, and password are required")
			}

			user, err := client.Register(context.Background(), api.RegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Account created for %s. Run 'agendagol auth login' to sign in.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check auth status",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := storage.LoadCredentials()
			if err != nil {
				return err
			}
			if creds == nil || creds.AccessToken == "" {
				fmt.Println("Not logged in.")
				return nil
			}

			if creds.Expired(time.Now()) {
				fmt.Printf("Session expired for %s. Run 'agendagol auth login' to re-authenticate.\n", creds.Email)
				return nil
			}
			fmt.Printf("Logged in as %s.\n", creds.Email)
			if creds.IsAdmin {
				fmt.Println("Role: admin")
			}
			fmt.Printf("Session expires: %s\n", creds.ExpiresAt().Format(time.RFC3339))
			return nil
		},
	}
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.ClearCredentials(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func authProfileCmd() *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := requireLogin()
			if err != nil {
				return err
			}
			if username == "" && password == "" {
				return fmt.Errorf("nothing to update: pass --username or --password")
			}

			payload := api.UpdateProfileRequest{}
			if username != "" {
				payload.Username = &username
			}
			if password != "" {
				payload.Password = &password
			}

			user, err := client.UpdateProfile(context.Background(), payload)
			if err != nil {
				return err
			}

			creds.Username = user.Username
			if err := storage.SaveCredentials(creds); err != nil {
				return err
			}

			fmt.Printf("Profile updated for %s.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().StringVar(&password, "password", "", "New password")
	return cmd
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
