package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// schemaFile picks the DDL dialect for the pool's driver.
func (db *Database) schemaFile() string {
	if db.DriverName() == sqliteDriverName {
		return "schema/sqlite.sql"
	}
	return "schema/postgres.sql"
}

// EnsureSchema creates the user and advert tables if they do not exist yet.
// Every statement is idempotent, so it runs on each start-up.
func (db *Database) EnsureSchema(ctx context.Context) error {
	name := db.schemaFile()

	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	for _, stmt := range splitStatements(string(raw)) {
		if _, err := db.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}

	db.log.Info().Str("schema", name).Msg("schema is up to date")
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
