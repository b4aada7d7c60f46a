package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Session is a single pooled connection scoped to one request. It is acquired
// before the handler runs and released after the response is produced, on
// both success and error paths.
type Session struct {
	conn *sqlx.Conn
}

// Acquire takes a connection from the pool for the lifetime of one request.
func (db *Database) Acquire(ctx context.Context) (*Session, error) {
	conn, err := db.DB.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &Session{conn: conn}, nil
}

// Rebind converts a query written with '?' placeholders into the driver's bindvar form.
func (s *Session) Rebind(query string) string {
	return s.conn.Rebind(query)
}

// Get scans a single row into dest.
func (s *Session) Get(ctx context.Context, dest any, query string, args ...any) error {
	return s.conn.GetContext(ctx, dest, s.Rebind(query), args...)
}

// InTx runs fn inside a transaction on the session's connection. The
// transaction is rolled back if fn returns an error and committed otherwise.
func (s *Session) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close returns the connection to the pool. It is safe to call on a nil Session.
func (s *Session) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
