package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"agendagol-cli/api"
	"agendagol-cli/storage"
)

func parseDateInput(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("date is required")
	}
	now := time.Now()
	switch strings.ToLower(input) {
	case "today":
		return now.Format("2006-01-02"), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format("2006-01-02"), nil
	}
	parsed, err := time.Parse("2006-01-02", input)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed.Format("2006-01-02"), nil
}

// formatCOP renders a peso amount with thousands separators, e.g. $50,000.
// Fractional pesos, as revenue aggregates can carry, round to the nearest
// whole peso.
func formatCOP(amount float64) string {
	value := strconv.FormatInt(int64(math.Round(amount)), 10)
	negative := strings.HasPrefix(value, "-")
	digits := strings.TrimPrefix(value, "-")

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "$" + strings.Join(groups, ",")
}

// dateTimeLabel trims an ISO timestamp to "YYYY-MM-DD HH:MM" for tables.
func dateTimeLabel(iso string) string {
	if len(iso) >= 16 {
		return iso[:10] + " " + iso[11:16]
	}
	return iso
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// confirm asks a yes/no question on stdin. Anything but y/yes declines.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(value))
	return answer == "y" || answer == "yes"
}

// requireLogin loads stored credentials, rejects expired or absent sessions,
// and attaches the token to the client.
func requireLogin() (*storage.Credentials, error) {
	creds, err := storage.LoadCredentials()
	if err != nil {
		return nil, err
	}
	if creds == nil || creds.AccessToken == "" {
		return nil, fmt.Errorf("not logged in. Run 'agendagol auth login' first")
	}
	if creds.Expired(time.Now()) {
		return nil, fmt.Errorf("session expired. Run 'agendagol auth login' to re-authenticate")
	}
	client.SetAccessToken(creds.AccessToken)
	return creds, nil
}

// syncReservations refreshes the local cache from the server's canonical
// list. Callers treat failures as non-fatal: the cache just stays stale.
func syncReservations(ctx context.Context) error {
	list, err := client.MyReservations(ctx, api.ReservationListOptions{Limit: 200})
	if err != nil {
		return err
	}

	db, err := storage.OpenReservationsDB()
	if err != nil {
		return err
	}
	defer db.Close()

	return storage.ReplaceReservations(db, list.Reservations, time.Now())
}
