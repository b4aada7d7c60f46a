// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every method takes the request's *database.Session explicitly. Queries are
// written once with '?' placeholders and rebound for the active driver.
// Driver failures are passed through sqlerr.Wrap so callers can classify
// them without importing driver packages.
package repository

import (
	"database/sql"
	"errors"

	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/deppfellow/go-adverts/internal/sqlerr"
)

// notFoundOr maps sql.ErrNoRows to a 404 with message and classifies anything else.
func notFoundOr(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError(message, nil)
	}
	return sqlerr.Wrap(err)
}
