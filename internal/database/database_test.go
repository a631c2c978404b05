package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitdash/internal/token"
)

func newTestDB(t *testing.T) Service {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessionTokenLifecycle(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Get()
	assert.True(t, errors.Is(err, token.ErrNotFound))

	require.NoError(t, db.Set("first"))
	require.NoError(t, db.Set("second"))

	got, err := db.Get()
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	require.NoError(t, db.Delete())
	assert.ErrorIs(t, db.Delete(), token.ErrNotFound)
}

func TestSetRejectsEmptyToken(t *testing.T) {
	assert.Error(t, newTestDB(t).Set(""))
}

func TestInitIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Set("kept"))
	require.NoError(t, db.Init())

	got, err := db.Get()
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestHealth(t *testing.T) {
	stats := newTestDB(t).Health()
	assert.Equal(t, "up", stats["status"])
}
