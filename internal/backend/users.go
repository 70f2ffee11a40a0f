package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/voyago/admin-panel/internal/domain"
)

// ListUsersParams filters the user listing. Zero values are omitted from the
// query string and the backend applies its defaults.
type ListUsersParams struct {
	Search string
	Role   domain.Role
	Page   int
	Limit  int
}

func (p ListUsersParams) encode() string {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Role != "" {
		q.Set("role", string(p.Role))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListUsers fetches one page of platform users.
func (c *Client) ListUsers(ctx context.Context, params ListUsersParams) (*domain.UserPage, error) {
	var page domain.UserPage
	if err := c.do(ctx, http.MethodGet, "/admin/users"+params.encode(), nil, true, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateUserRole changes the single mutable field this panel exposes.
func (c *Client) UpdateUserRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	body := map[string]string{"role": string(role)}
	var user domain.User
	path := fmt.Sprintf("/admin/users/%s/role", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPatch, path, body, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
