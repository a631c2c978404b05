// Package app assembles the API client, token store and analytics engine
// shared by the habitdash binaries.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"habitdash/clients/tracker"
	"habitdash/internal/analytics"
	"habitdash/internal/config"
	"habitdash/internal/database"
	"habitdash/internal/token"
)

type App struct {
	Config config.Config
	Client *tracker.Client
	Store  token.Store
	Engine *analytics.Engine

	// DB is nil unless tokens live in sqlite.
	DB database.Service
}

// Open builds an App from cfg. A configured HABIT_API_TOKEN takes precedence
// over the stored session for authenticated calls.
func Open(cfg config.Config) (*App, error) {
	a := &App{
		Config: cfg,
		Engine: analytics.New(analytics.WithLocation(cfg.Timezone)),
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	a.Store = store
	a.DB = db

	tc := tracker.Config{
		BaseURL:        cfg.APIURL,
		Timeout:        cfg.APITimeout,
		Tokens:         token.Source(store),
		OnUnauthorized: a.clearSession,
	}
	// a rejected static token says nothing about the stored session
	if cfg.APIToken != "" {
		tc.Tokens = tracker.StaticToken(cfg.APIToken)
		tc.OnUnauthorized = nil
	}
	a.Client = tracker.NewClient(tc)
	return a, nil
}

func openStore(cfg config.Config) (token.Store, database.Service, error) {
	if cfg.TokenStore == config.TokenStoreKeyring {
		if token.KeyringAvailable() {
			return token.NewKeyringStore(), nil, nil
		}
		slog.Warn("keyring unavailable, falling back to sqlite token store")
		if cfg.DBURL == "" {
			cfg.DBURL = "habitdash.db"
		}
	}

	db, err := database.New(cfg.DBURL)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening token store: %w", err)
	}
	return db, db, nil
}

// clearSession drops the stored token after the API rejects it.
func (a *App) clearSession() {
	if err := a.Store.Delete(); err != nil && !errors.Is(err, token.ErrNotFound) {
		slog.Error("error clearing session", "err", err)
		return
	}
	slog.Info("session expired, stored token cleared")
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
