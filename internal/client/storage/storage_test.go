package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSessionTable(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "mealmate.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO session (key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)
}

func TestOpen_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "mealmate.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening an already-migrated database must not fail.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
