package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/careercore/internal/schemas"
	"github.com/jonathan/careercore/internal/types"
)

// LoginPath is where the user is sent after logging out.
const LoginPath = "/login"

// Register creates an account and stores the returned access token.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, &resp,
		SkipAuth(), WithSchema(schemas.AuthResponse)); err != nil {
		return nil, err
	}

	if err := c.store.SetToken(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("registered but failed to store session: %w", err)
	}
	return &resp, nil
}

// Login exchanges credentials for an access token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	req := types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/login", req, &resp,
		SkipAuth(), WithSchema(schemas.AuthResponse)); err != nil {
		return nil, err
	}

	if err := c.store.SetToken(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("logged in but failed to store session: %w", err)
	}
	return &resp, nil
}

// Logout clears the stored token and returns the login entry point to navigate to.
// No request is made to the server.
func (c *Client) Logout() (string, error) {
	if err := c.store.ClearToken(); err != nil {
		return LoginPath, err
	}
	return LoginPath, nil
}

// Me fetches the current user.
func (c *Client) Me(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, &user, WithSchema(schemas.User)); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe changes the current user's name, school or major.
func (c *Client) UpdateMe(ctx context.Context, update types.UserUpdate) (*types.User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var user types.User
	if err := c.Do(ctx, http.MethodPatch, "/auth/me", update, &user, WithSchema(schemas.User)); err != nil {
		return nil, err
	}
	return &user, nil
}
