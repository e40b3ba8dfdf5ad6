package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Dashboard endpoints are admin analytics. The four fetches are independent;
// callers may issue them concurrently and apply each as it resolves.

func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	req, err := c.newDashboardRequest(ctx, http.MethodGet, "/dashboard/stats", nil, nil)
	if err != nil {
		return DashboardStats{}, err
	}

	var stats DashboardStats
	if err := c.doJSON(req, &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

func (c *Client) FieldsStats(ctx context.Context) (FieldsStatsResponse, error) {
	req, err := c.newDashboardRequest(ctx, http.MethodGet, "/dashboard/fields/stats", nil, nil)
	if err != nil {
		return FieldsStatsResponse{}, err
	}

	var stats FieldsStatsResponse
	if err := c.doJSON(req, &stats); err != nil {
		return FieldsStatsResponse{}, err
	}
	return stats, nil
}

func (c *Client) DailyRevenue(ctx context.Context, days int) ([]DailyRevenue, error) {
	if days <= 0 {
		days = 7
	}
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))

	req, err := c.newDashboardRequest(ctx, http.MethodGet, "/dashboard/revenue/daily", q, nil)
	if err != nil {
		return nil, err
	}

	var revenue []DailyRevenue
	if err := c.doJSON(req, &revenue); err != nil {
		return nil, err
	}
	return revenue, nil
}

func (c *Client) HealthCheck(ctx context.Context) (ServiceHealthResponse, error) {
	req, err := c.newDashboardRequest(ctx, http.MethodGet, "/dashboard/health-check", nil, nil)
	if err != nil {
		return ServiceHealthResponse{}, err
	}

	var health ServiceHealthResponse
	if err := c.doJSON(req, &health); err != nil {
		return ServiceHealthResponse{}, err
	}
	return health, nil
}
