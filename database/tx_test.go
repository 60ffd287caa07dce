package database

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	migrationsFS, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func countUsers(t *testing.T, db *DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	return n
}

func TestWithTx_Commit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, username, password_hash, email) VALUES (?, ?, ?, ?)`,
			"u1", "tx-user", "h", "a@b.c")
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countUsers(t, db))
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, username, password_hash, email) VALUES (?, ?, ?, ?)`,
			"u1", "tx-user", "h", "a@b.c")
		require.NoError(t, err)

		// Duplicate username → UNIQUE ihlali, tüm transaction geri alınmalı
		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, username, password_hash, email) VALUES (?, ?, ?, ?)`,
			"u2", "tx-user", "h", "d@e.f")
		return err
	})
	require.Error(t, err)
	require.Equal(t, 0, countUsers(t, db))
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.Panics(t, func() {
		_ = WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO users (id, username, password_hash, email) VALUES (?, ?, ?, ?)`,
				"u1", "tx-user", "h", "a@b.c")
			require.NoError(t, err)
			panic("boom")
		})
	})
	require.Equal(t, 0, countUsers(t, db))
}

func TestMigrationsRunOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	migrationsFS, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := New(path, migrationsFS)
	require.NoError(t, err)

	var applied int
	require.NoError(t, db.Conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	require.NoError(t, db.Close())

	// Aynı dosyayı tekrar aç — migration'lar ikinci kez uygulanmamalı
	db, err = New(path, migrationsFS)
	require.NoError(t, err)
	defer db.Close()

	var appliedAgain int
	require.NoError(t, db.Conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&appliedAgain))
	require.Equal(t, applied, appliedAgain)
}
