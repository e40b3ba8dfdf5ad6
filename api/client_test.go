package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendagol-cli/api"
	"agendagol-cli/config"
)

func newTestClient(server *httptest.Server) *api.Client {
	cfg := config.Config{
		Services: config.ServicesConfig{
			AuthURL:         server.URL,
			RolesURL:        server.URL,
			FieldsURL:       server.URL,
			ReservationsURL: server.URL,
			DashboardURL:    server.URL,
		},
		HTTP: config.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "agendagol-cli-test"},
	}
	return api.NewClient(cfg)
}

func TestBearerTokenAttachedToRequests(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fields": [], "total": 0, "page": 1, "size": 50}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.SetAccessToken("token-123")

	_, err := client.Fields(context.Background(), api.FieldListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "abc", "token_type": "bearer"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	token, err := client.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "abc", client.AccessToken())
}

func TestUnauthorizedClearsTokenAndFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.SetAccessToken("stale")
	hookFired := false
	client.OnAuthExpired = func() { hookFired = true }

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsAuth(err))
	assert.Empty(t, client.AccessToken())
	assert.True(t, hookFired)
}

func TestConcurrentUnauthorizedFiresHookOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.SetAccessToken("expired")
	var hookCalls atomic.Int32
	client.OnAuthExpired = func() { hookCalls.Add(1) }

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = client.DashboardStats(context.Background())
		}()
	}
	wg.Wait()

	assert.Empty(t, client.AccessToken())
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestValidationDetailArrayIsJoinedAndPrefixStripped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [
			{"loc": ["body", "duration_hours"], "msg": "Value error, duration must be 1 or 2"},
			{"loc": ["body", "start_time"], "msg": "field required"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.CreateReservation(context.Background(), api.CreateReservationRequest{})
	require.Error(t, err)
	assert.True(t, api.IsValidation(err))
	assert.Equal(t, "duration must be 1 or 2; field required", err.Error())
}

func TestConflictClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "Time slot is no longer available"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.CreateReservation(context.Background(), api.CreateReservationRequest{
		FieldID:       7,
		StartTime:     "2026-09-10T14:00:00",
		DurationHours: 1,
	})
	require.Error(t, err)
	assert.True(t, api.IsConflict(err))
	assert.False(t, api.IsTransport(err))
	assert.Equal(t, "Time slot is no longer available", err.Error())
}

func TestTransportErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server)
	_, err := client.Fields(context.Background(), api.FieldListOptions{})
	require.Error(t, err)
	assert.True(t, api.IsTransport(err))
	assert.False(t, api.IsAuth(err))
	assert.False(t, api.IsConflict(err))
}

func TestAvailabilityRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fields/7/availability", r.URL.Path)
		require.Equal(t, "2026-09-10", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"field_id": 7, "date": "2026-09-10", "available_hours": ["14:00", "15:00"]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	availability, err := client.Availability(context.Background(), 7, "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, 7, availability.FieldID)
	assert.Equal(t, []string{"14:00", "15:00"}, availability.AvailableHours)
}

func TestFieldsListQueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fields", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("skip"))
		require.Equal(t, "25", r.URL.Query().Get("limit"))
		require.Equal(t, "true", r.URL.Query().Get("is_active"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fields": [{"id": 1, "name": "Cancha Norte", "price_per_hour": 25000}], "total": 1, "page": 1, "size": 25}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	active := true
	list, err := client.Fields(context.Background(), api.FieldListOptions{Skip: 10, Limit: 25, IsActive: &active})
	require.NoError(t, err)
	require.Len(t, list.Fields, 1)
	assert.Equal(t, "Cancha Norte", list.Fields[0].Name)
}

func TestCancelReservationRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/reservations/42/cancel", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "status": "cancelada"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	reservation, err := client.CancelReservation(context.Background(), 42, "rain")
	require.NoError(t, err)
	assert.Equal(t, api.StatusCancelled, reservation.Status)
}
