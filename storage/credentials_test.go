package storage_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendagol-cli/storage"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestExpiryReadFromTokenClaim(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	creds := storage.Credentials{AccessToken: signedToken(t, exp)}

	assert.Equal(t, exp.UTC(), creds.ExpiresAt().UTC())
	assert.False(t, creds.Expired(time.Now()))
	assert.True(t, creds.Expired(exp.Add(time.Minute)))
}

func TestOpaqueTokenFallsBackToSavedAtLifetime(t *testing.T) {
	saved := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	creds := storage.Credentials{
		AccessToken: "not-a-jwt",
		SavedAt:     saved.Format(time.RFC3339),
	}

	assert.Equal(t, saved.Add(storage.DefaultTokenLifetime), creds.ExpiresAt())
	assert.False(t, creds.Expired(saved.Add(6*24*time.Hour)))
	assert.True(t, creds.Expired(saved.Add(8*24*time.Hour)))
}

func TestMissingExpiryDataMeansExpired(t *testing.T) {
	creds := storage.Credentials{AccessToken: "not-a-jwt"}
	assert.True(t, creds.Expired(time.Now()))
}

func TestSaveLoadClearCredentials(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	loaded, err := storage.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, loaded, "no credentials saved yet")

	creds := storage.Credentials{
		AccessToken: "abc",
		TokenType:   "bearer",
		UserID:      3,
		Email:       "ana@example.com",
		Username:    "ana",
		SavedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	require.NoError(t, storage.SaveCredentials(&creds))

	loaded, err = storage.LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "abc", loaded.AccessToken)
	assert.Equal(t, "ana@example.com", loaded.Email)

	require.NoError(t, storage.ClearCredentials())
	loaded, err = storage.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing twice is fine.
	assert.NoError(t, storage.ClearCredentials())
}
