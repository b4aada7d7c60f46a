package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPgError(t *testing.T) {
	raw := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "user_name_key"`,
		TableName:      "user",
		ConstraintName: "user_name_key",
	}

	err := Wrap(fmt.Errorf("insert user: %w", raw))

	assert.Equal(t, UniqueViolation, ErrCode(err))
	assert.True(t, IsUniqueViolation(err))

	var pgerr *pgconn.PgError
	require.True(t, errors.As(err, &pgerr), "driver error stays reachable")
	assert.Equal(t, "23505", pgerr.Code)
}

func TestWrapSQLiteError(t *testing.T) {
	cases := []struct {
		ext  sqlite3.ErrNoExtended
		want Code
	}{
		{sqlite3.ErrConstraintUnique, UniqueViolation},
		{sqlite3.ErrConstraintPrimaryKey, UniqueViolation},
		{sqlite3.ErrConstraintForeignKey, ForeignKeyViolation},
		{sqlite3.ErrConstraintNotNull, NotNullViolation},
		{sqlite3.ErrConstraintCheck, CheckViolation},
	}

	for _, tc := range cases {
		err := Wrap(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: tc.ext})
		assert.Equal(t, tc.want, ErrCode(err))
	}

	assert.True(t, IsForeignKeyViolation(Wrap(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	})))
}

func TestWrapLeavesOtherErrorsAlone(t *testing.T) {
	plain := errors.New("connection reset")

	assert.Same(t, plain, Wrap(plain))
	assert.Nil(t, Wrap(nil))
	assert.Equal(t, Other, ErrCode(plain))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, Other, MapCode("40001"))
}

func TestHandleError(t *testing.T) {
	t.Run("http errors pass through", func(t *testing.T) {
		in := errs.NewNotFoundError("User not found", nil)
		assert.Same(t, in, HandleError(in))
	})

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{Code: "23505", TableName: "user"})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "User already exists", httpErr.Message)
	})

	t.Run("foreign key violation becomes bad request", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{Code: "23503", TableName: "advert", ColumnName: "owner_id"})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "The referenced Owner does not exist", httpErr.Message)
	})

	t.Run("not null violation carries the field", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{Code: "23502", TableName: "advert", ColumnName: "title"})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "title", httpErr.Errors[0].Field)
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(sql.ErrNoRows), &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(errors.New("disk full")), &httpErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal Server Error", httpErr.Message)
	})
}

func TestSQLiteColumnExtraction(t *testing.T) {
	m := sqliteColumnRe.FindStringSubmatch("UNIQUE constraint failed: user.name")
	require.Len(t, m, 3)
	assert.Equal(t, "user", m[1])
	assert.Equal(t, "name", m[2])
}
