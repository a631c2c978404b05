// Package token stores the API bearer token between runs.
package token

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

var ErrNotFound = errors.New("no stored token")

// Store persists a single bearer token.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// Source adapts a Store into an oauth2.TokenSource that re-reads the store
// on every call.
func Source(s Store) oauth2.TokenSource {
	return storeSource{s}
}

type storeSource struct {
	store Store
}

func (s storeSource) Token() (*oauth2.Token, error) {
	tok, err := s.store.Get()
	if err != nil {
		return nil, fmt.Errorf("loading token: %w", err)
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", ErrNotFound
	}
	return m.token, nil
}

func (m *MemoryStore) Set(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return ErrNotFound
	}
	m.token = ""
	return nil
}
