package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Login exchanges credentials for a bearer token. The token is attached to
// the client so subsequent calls carry it.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	req, err := c.newAuthRequest(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password})
	if err != nil {
		return TokenResponse{}, err
	}

	var resp TokenResponse
	if err := c.doJSON(req, &resp); err != nil {
		return TokenResponse{}, err
	}
	if resp.AccessToken == "" {
		return TokenResponse{}, fmt.Errorf("login failed: missing access_token")
	}

	c.SetAccessToken(resp.AccessToken)
	return resp, nil
}

func (c *Client) Register(ctx context.Context, payload RegisterRequest) (User, error) {
	req, err := c.newAuthRequest(ctx, http.MethodPost, "/auth/register", nil, payload)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := c.doJSON(req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Me resolves the authenticated user for the current token.
func (c *Client) Me(ctx context.Context) (User, error) {
	req, err := c.newAuthRequest(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := c.doJSON(req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, payload UpdateProfileRequest) (User, error) {
	req, err := c.newAuthRequest(ctx, http.MethodPatch, "/auth/profile", nil, payload)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := c.doJSON(req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Users lists registered users. Admin only.
func (c *Client) Users(ctx context.Context, skip, limit int) (UsersList, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	req, err := c.newAuthRequest(ctx, http.MethodGet, "/auth/users", q, nil)
	if err != nil {
		return UsersList{}, err
	}

	var list UsersList
	if err := c.doJSON(req, &list); err != nil {
		return UsersList{}, err
	}
	return list, nil
}

func (c *Client) UserStats(ctx context.Context) (UserStats, error) {
	req, err := c.newAuthRequest(ctx, http.MethodGet, "/auth/users/stats", nil, nil)
	if err != nil {
		return UserStats{}, err
	}

	var stats UserStats
	if err := c.doJSON(req, &stats); err != nil {
		return UserStats{}, err
	}
	return stats, nil
}
