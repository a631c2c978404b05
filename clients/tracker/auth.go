package tracker

import (
	"context"
	"fmt"
	"net/http"

	"habitdash/internal/models"
)

func (c *Client) SignIn(ctx context.Context, creds models.LoginData) (models.Session, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "mobile/auth/login", creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("unable to create request: %w", err)
	}

	var session models.Session
	if err := c.do(c.anon, req, &session); err != nil {
		return models.Session{}, fmt.Errorf("error signing in: %w", err)
	}
	return session, nil
}

func (c *Client) SignUp(ctx context.Context, data models.RegisterData) (models.Session, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "mobile/auth/register", data)
	if err != nil {
		return models.Session{}, fmt.Errorf("unable to create request: %w", err)
	}

	var session models.Session
	if err := c.do(c.anon, req, &session); err != nil {
		return models.Session{}, fmt.Errorf("error signing up: %w", err)
	}
	return session, nil
}

// Logout tells the API to discard the current token.
func (c *Client) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "mobile/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	if err := c.do(c.authed, req, nil); err != nil {
		return fmt.Errorf("error logging out: %w", err)
	}
	return nil
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "mobile/auth/me", nil)
	if err != nil {
		return models.User{}, fmt.Errorf("unable to create request: %w", err)
	}

	var user models.User
	if err := c.do(c.authed, req, &user); err != nil {
		return models.User{}, fmt.Errorf("error getting current user: %w", err)
	}
	return user, nil
}
