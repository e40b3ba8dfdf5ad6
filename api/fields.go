package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type FieldListOptions struct {
	Skip     int
	Limit    int
	IsActive *bool
}

type FieldCreateRequest struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"`
	Description  string  `json:"description,omitempty"`
	OpeningTime  string  `json:"opening_time,omitempty"`
	ClosingTime  string  `json:"closing_time,omitempty"`
}

type FieldUpdateRequest struct {
	Name         *string  `json:"name,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
	Description  *string  `json:"description,omitempty"`
	OpeningTime  *string  `json:"opening_time,omitempty"`
	ClosingTime  *string  `json:"closing_time,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

func (c *Client) Fields(ctx context.Context, opts FieldListOptions) (FieldsList, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	q := url.Values{}
	q.Set("skip", strconv.Itoa(opts.Skip))
	q.Set("limit", strconv.Itoa(opts.Limit))
	if opts.IsActive != nil {
		q.Set("is_active", strconv.FormatBool(*opts.IsActive))
	}

	req, err := c.newFieldsRequest(ctx, http.MethodGet, "/fields", q, nil)
	if err != nil {
		return FieldsList{}, err
	}

	var list FieldsList
	if err := c.doJSON(req, &list); err != nil {
		return FieldsList{}, err
	}
	return list, nil
}

func (c *Client) Field(ctx context.Context, id int) (Field, error) {
	req, err := c.newFieldsRequest(ctx, http.MethodGet, "/fields/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return Field{}, err
	}

	var field Field
	if err := c.doJSON(req, &field); err != nil {
		return Field{}, err
	}
	return field, nil
}

// Availability returns the open start hours for a field on a calendar date
// (YYYY-MM-DD). The result is authoritative only at fetch time: another user
// can take a slot between this call and submission.
func (c *Client) Availability(ctx context.Context, fieldID int, date string) (FieldAvailability, error) {
	q := url.Values{}
	q.Set("date", date)

	req, err := c.newFieldsRequest(ctx, http.MethodGet, "/fields/"+strconv.Itoa(fieldID)+"/availability", q, nil)
	if err != nil {
		return FieldAvailability{}, err
	}

	var availability FieldAvailability
	if err := c.doJSON(req, &availability); err != nil {
		return FieldAvailability{}, err
	}
	return availability, nil
}

func (c *Client) CreateField(ctx context.Context, payload FieldCreateRequest) (Field, error) {
	req, err := c.newFieldsRequest(ctx, http.MethodPost, "/fields/", nil, payload)
	if err != nil {
		return Field{}, err
	}

	var field Field
	if err := c.doJSON(req, &field); err != nil {
		return Field{}, err
	}
	return field, nil
}

func (c *Client) UpdateField(ctx context.Context, id int, payload FieldUpdateRequest) (Field, error) {
	req, err := c.newFieldsRequest(ctx, http.MethodPatch, "/fields/"+strconv.Itoa(id), nil, payload)
	if err != nil {
		return Field{}, err
	}

	var field Field
	if err := c.doJSON(req, &field); err != nil {
		return Field{}, err
	}
	return field, nil
}

func (c *Client) DeleteField(ctx context.Context, id int) error {
	req, err := c.newFieldsRequest(ctx, http.MethodDelete, "/fields/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
