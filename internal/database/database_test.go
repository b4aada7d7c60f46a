package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/deppfellow/go-adverts/internal/config"
	loggerConfig "github.com/deppfellow/go-adverts/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "adverts.db")

	logger := zerolog.Nop()
	db, err := New(cfg, &logger, loggerConfig.NewLoggerService(cfg.Observability))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestNewCreatesSchema(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	var tables []string
	err := db.DB.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('user', 'advert') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"advert", "user"}, tables)

	// Running it again is a no-op.
	require.NoError(t, db.EnsureSchema(ctx))
}

func TestSessionInTx(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	sess, err := db.Acquire(ctx)
	require.NoError(t, err)
	defer sess.Close()

	t.Run("commits on success", func(t *testing.T) {
		err := sess.InTx(ctx, func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO "user" (name, password) VALUES (?, ?)`), "alice", "hash")
			return err
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, sess.Get(ctx, &count, `SELECT COUNT(*) FROM "user" WHERE name = ?`, "alice"))
		assert.Equal(t, 1, count)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := sess.InTx(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO "user" (name, password) VALUES (?, ?)`), "bob", "hash"); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		var count int
		require.NoError(t, sess.Get(ctx, &count, `SELECT COUNT(*) FROM "user" WHERE name = ?`, "bob"))
		assert.Zero(t, count)
	})
}

func TestSQLiteEnforcesForeignKeys(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	_, err := db.DB.ExecContext(ctx,
		`INSERT INTO advert (title, created_at, owner_id) VALUES (?, CURRENT_TIMESTAMP, ?)`, "orphan", 999)
	assert.Error(t, err)
}

func TestSessionCloseNil(t *testing.T) {
	var sess *Session
	assert.NoError(t, sess.Close())
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id INT);\n\n CREATE TABLE b (id INT);\n")
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"}, stmts)
}
