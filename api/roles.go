package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type RoleCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type RoleUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	req, err := c.newRolesRequest(ctx, http.MethodGet, "/roles/roles", nil, nil)
	if err != nil {
		return nil, err
	}

	var roles []Role
	if err := c.doJSON(req, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) Role(ctx context.Context, id int) (Role, error) {
	req, err := c.newRolesRequest(ctx, http.MethodGet, "/roles/roles/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return Role{}, err
	}

	var role Role
	if err := c.doJSON(req, &role); err != nil {
		return Role{}, err
	}
	return role, nil
}

func (c *Client) CreateRole(ctx context.Context, payload RoleCreateRequest) (Role, error) {
	req, err := c.newRolesRequest(ctx, http.MethodPost, "/roles/roles", nil, payload)
	if err != nil {
		return Role{}, err
	}

	var role Role
	if err := c.doJSON(req, &role); err != nil {
		return Role{}, err
	}
	return role, nil
}

func (c *Client) UpdateRole(ctx context.Context, id int, payload RoleUpdateRequest) (Role, error) {
	req, err := c.newRolesRequest(ctx, http.MethodPatch, "/roles/roles/"+strconv.Itoa(id), nil, payload)
	if err != nil {
		return Role{}, err
	}

	var role Role
	if err := c.doJSON(req, &role); err != nil {
		return Role{}, err
	}
	return role, nil
}

func (c *Client) DeleteRole(ctx context.Context, id int) error {
	req, err := c.newRolesRequest(ctx, http.MethodDelete, "/roles/roles/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

// Permissions lists known permissions, optionally filtered by resource.
func (c *Client) Permissions(ctx context.Context, resource string) ([]Permission, error) {
	var q url.Values
	if resource != "" {
		q = url.Values{}
		q.Set("resource", resource)
	}

	req, err := c.newRolesRequest(ctx, http.MethodGet, "/roles/permissions", q, nil)
	if err != nil {
		return nil, err
	}

	var permissions []Permission
	if err := c.doJSON(req, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

func (c *Client) AddRolePermission(ctx context.Context, roleID, permissionID int) error {
	path := "/roles/roles/" + strconv.Itoa(roleID) + "/permissions"
	payload := map[string]int{"permission_id": permissionID}
	req, err := c.newRolesRequest(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

func (c *Client) AssignRole(ctx context.Context, userID, roleID int) error {
	path := "/roles/users/" + strconv.Itoa(userID) + "/assign-role"
	payload := map[string]int{"role_id": roleID}
	req, err := c.newRolesRequest(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
