package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyRendersMessage(t *testing.T) {
	raw, err := json.Marshal(NewNotFoundError("User not found", nil).Body())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"User not found"}`, string(raw))
}

func TestBodyRendersFirstFieldError(t *testing.T) {
	e := NewValidationError("password", "Minimal length of password is 8")

	raw, err := json.Marshal(e.Body())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"field":"password","error":"Minimal length of password is 8"}}`, string(raw))
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, "VALIDATION_FAILED", e.Code)
}

func TestConstructorsStatusAndCode(t *testing.T) {
	cases := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewBadRequestError("bad", nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("missing", nil), http.StatusNotFound, "NOT_FOUND"},
		{NewConflictError("User already exists", nil), http.StatusConflict, "CONFLICT"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating user: %w", NewConflictError("User already exists", nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
}

func TestErrorsIsComparesStatusAndCode(t *testing.T) {
	wrapped := fmt.Errorf("creating user: %w", NewConflictError("User already exists", nil))

	assert.True(t, errors.Is(wrapped, NewConflictError("Advert already exists", nil)))
	assert.False(t, errors.Is(wrapped, NewNotFoundError("User not found", nil)))
	assert.False(t, errors.Is(wrapped, &HTTPError{}))

	validation := NewValidationError("owner_id", "User not found")
	assert.True(t, errors.Is(validation, NewValidationError("name", "Field required")))
	assert.False(t, errors.Is(validation, NewBadRequestError("Invalid JSON body", nil, nil)))
}
