package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"habitdash/internal/models"
	"habitdash/internal/token"
)

type AuthAPI interface {
	SignIn(context.Context, models.LoginData) (models.Session, error)
	SignUp(context.Context, models.RegisterData) (models.Session, error)
	Logout(context.Context) error
	Me(context.Context) (models.User, error)
}

type SessionService struct {
	api   AuthAPI
	store token.Store
}

func NewSessionService(api AuthAPI, store token.Store) SessionService {
	return SessionService{api: api, store: store}
}

func (s *SessionService) SignIn(ctx context.Context, creds models.LoginData) (models.User, error) {
	session, err := s.api.SignIn(ctx, creds)
	if err != nil {
		return models.User{}, err
	}
	if err := s.save(session); err != nil {
		return models.User{}, err
	}
	return session.User, nil
}

func (s *SessionService) SignUp(ctx context.Context, data models.RegisterData) (models.User, error) {
	session, err := s.api.SignUp(ctx, data)
	if err != nil {
		return models.User{}, err
	}
	if err := s.save(session); err != nil {
		return models.User{}, err
	}
	return session.User, nil
}

func (s *SessionService) save(session models.Session) error {
	if session.Token == "" {
		return errors.New("sign in succeeded but no token was returned")
	}
	if err := s.store.Set(session.Token); err != nil {
		return fmt.Errorf("error storing token: %w", err)
	}
	return nil
}

// SignOut asks the API to revoke the token, then forgets it locally. A
// failed revoke does not stop the local sign-out.
func (s *SessionService) SignOut(ctx context.Context) error {
	if _, err := s.store.Get(); errors.Is(err, token.ErrNotFound) {
		return nil
	}
	if err := s.api.Logout(ctx); err != nil {
		slog.Warn("logout call failed", "err", err)
	}
	if err := s.store.Delete(); err != nil && !errors.Is(err, token.ErrNotFound) {
		return fmt.Errorf("error deleting token: %w", err)
	}
	return nil
}

func (s *SessionService) CurrentUser(ctx context.Context) (models.User, error) {
	return s.api.Me(ctx)
}

// StoredToken returns the saved token, or "" when signed out.
func (s *SessionService) StoredToken() (string, error) {
	tok, err := s.store.Get()
	if errors.Is(err, token.ErrNotFound) {
		return "", nil
	}
	return tok, err
}
