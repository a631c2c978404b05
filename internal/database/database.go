package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"habitdash/internal/token"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	Init() error

	token.Store
}

type service struct {
	db    *sql.DB
	dburl string
}

// New opens the sqlite database at dburl and creates its tables.
func New(dburl string) (Service, error) {
	db, err := sql.Open("sqlite3", dburl)
	if err != nil {
		// This will not be a connection error, but a DSN parse error or
		// another initialization error.
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// every connection to ":memory:" is its own database
	db.SetMaxOpenConns(1)

	s := &service{db: db, dburl: dburl}
	if err := s.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	err := s.db.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		slog.Error("db down", "err", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	slog.Info("disconnected from database", "url", s.dburl)
	return s.db.Close()
}

// Create initial tables in the database
func (s *service) Init() error {
	_, err := s.db.Exec(
		`CREATE TABLE IF NOT EXISTS Session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			updatedAt TEXT NOT NULL
		)`,
	)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	return nil
}

func (s *service) Get() (string, error) {
	var tok string
	row := s.db.QueryRow(`SELECT token FROM Session WHERE id = 1`)
	if err := row.Scan(&tok); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", token.ErrNotFound
		}
		return "", fmt.Errorf("error retrieving session token: %w", err)
	}
	return tok, nil
}

func (s *service) Set(tok string) error {
	if tok == "" {
		return errors.New("token cannot be empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO Session (id, token, updatedAt) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, updatedAt = excluded.updatedAt`,
		tok,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("error saving session token: %w", err)
	}
	return nil
}

func (s *service) Delete() error {
	res, err := s.db.Exec(`DELETE FROM Session WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("error deleting session token: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return token.ErrNotFound
	}
	return nil
}
