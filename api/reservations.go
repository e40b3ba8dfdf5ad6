package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type CreateReservationRequest struct {
	FieldID       int    `json:"field_id"`
	StartTime     string `json:"start_time"` // ISO, field-local: "2026-01-20T14:00:00"
	DurationHours int    `json:"duration_hours"`
	Notes         string `json:"notes,omitempty"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason,omitempty"`
}

type ReservationListOptions struct {
	Skip    int
	Limit   int
	Status  string
	FieldID int
	UserID  int
}

func (opts ReservationListOptions) query() url.Values {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	q := url.Values{}
	q.Set("skip", strconv.Itoa(opts.Skip))
	q.Set("limit", strconv.Itoa(opts.Limit))
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.FieldID > 0 {
		q.Set("field_id", strconv.Itoa(opts.FieldID))
	}
	if opts.UserID > 0 {
		q.Set("user_id", strconv.Itoa(opts.UserID))
	}
	return q
}

// MyReservations lists the authenticated user's reservations.
func (c *Client) MyReservations(ctx context.Context, opts ReservationListOptions) (ReservationsList, error) {
	req, err := c.newReservationsRequest(ctx, http.MethodGet, "/reservations/my", opts.query(), nil)
	if err != nil {
		return ReservationsList{}, err
	}

	var list ReservationsList
	if err := c.doJSON(req, &list); err != nil {
		return ReservationsList{}, err
	}
	return list, nil
}

// Reservations lists all reservations. Admin only.
func (c *Client) Reservations(ctx context.Context, opts ReservationListOptions) (ReservationsList, error) {
	req, err := c.newReservationsRequest(ctx, http.MethodGet, "/reservations", opts.query(), nil)
	if err != nil {
		return ReservationsList{}, err
	}

	var list ReservationsList
	if err := c.doJSON(req, &list); err != nil {
		return ReservationsList{}, err
	}
	return list, nil
}

func (c *Client) Reservation(ctx context.Context, id int) (Reservation, error) {
	req, err := c.newReservationsRequest(ctx, http.MethodGet, "/reservations/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return Reservation{}, err
	}

	var reservation Reservation
	if err := c.doJSON(req, &reservation); err != nil {
		return Reservation{}, err
	}
	return reservation, nil
}

// CreateReservation books a slot. The server is the source of truth for
// availability; a slot taken between selection and submission comes back as a
// conflict (check with IsConflict) and must be surfaced, not retried.
func (c *Client) CreateReservation(ctx context.Context, payload CreateReservationRequest) (Reservation, error) {
	req, err := c.newReservationsRequest(ctx, http.MethodPost, "/reservations/", nil, payload)
	if err != nil {
		return Reservation{}, err
	}

	var reservation Reservation
	if err := c.doJSON(req, &reservation); err != nil {
		return Reservation{}, err
	}
	return reservation, nil
}

// CancelReservation requests the confirmed -> cancelled transition. Terminal:
// a cancelled reservation cannot be reactivated.
func (c *Client) CancelReservation(ctx context.Context, id int, reason string) (Reservation, error) {
	path := "/reservations/" + strconv.Itoa(id) + "/cancel"
	req, err := c.newReservationsRequest(ctx, http.MethodPost, path, nil, CancelReservationRequest{Reason: reason})
	if err != nil {
		return Reservation{}, err
	}

	var reservation Reservation
	if err := c.doJSON(req, &reservation); err != nil {
		return Reservation{}, err
	}
	return reservation, nil
}

// ReservationStats returns platform-wide reservation totals. Admin only.
func (c *Client) ReservationStats(ctx context.Context) (ReservationStats, error) {
	req, err := c.newReservationsRequest(ctx, http.MethodGet, "/reservations/stats", nil, nil)
	if err != nil {
		return ReservationStats{}, err
	}

	var stats ReservationStats
	if err := c.doJSON(req, &stats); err != nil {
		return ReservationStats{}, err
	}
	return stats, nil
}
