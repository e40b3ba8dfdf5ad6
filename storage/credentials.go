package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenLifetime is assumed when the token carries no readable exp
// claim, matching the auth service's session length.
const DefaultTokenLifetime = 7 * 24 * time.Hour

type Credentials struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	IsAdmin     bool   `json:"is_admin"`
	SavedAt     string `json:"saved_at"` // RFC3339 UTC
}

func LoadCredentials() (*Credentials, error) {
	path, err := CredentialsPath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("credentials path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var creds Credentials
	if err := json.NewDecoder(file).Decode(&creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func SaveCredentials(creds *Credentials) error {
	if _, err := ensureConfigDir(); err != nil {
		return err
	}
	path, err := CredentialsPath()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(creds)
}

func ClearCredentials() error {
	path, err := CredentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// ExpiresAt resolves when the stored token stops being usable. The bearer
// token is a JWT minted by the auth service; its exp claim is read without
// signature verification, which is fine here: the CLI only needs a local
// hint, the services enforce the real expiry. Opaque tokens fall back to
// SavedAt plus the default lifetime.
func (c *Credentials) ExpiresAt() time.Time {
	if exp, ok := tokenExpiry(c.AccessToken); ok {
		return exp
	}
	saved, err := time.Parse(time.RFC3339, c.SavedAt)
	if err != nil {
		return time.Time{}
	}
	return saved.Add(DefaultTokenLifetime)
}

func (c *Credentials) Expired(now time.Time) bool {
	exp := c.ExpiresAt()
	if exp.IsZero() {
		return true
	}
	return now.UTC().After(exp)
}

func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
