package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFieldError(t *testing.T, err *errs.HTTPError, field, message string) {
	t.Helper()

	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, field, err.Errors[0].Field)
	assert.Equal(t, message, err.Errors[0].Error)
}

func TestCreateUserSchema(t *testing.T) {
	t.Run("valid payload keeps declared fields only", func(t *testing.T) {
		fields, err := CreateUser.Validate([]byte(`{"name":"alice","email":"a@example.com","password":"secret123","admin":true}`))
		require.Nil(t, err)

		assert.Equal(t, Fields{"name": "alice", "email": "a@example.com", "password": "secret123"}, fields)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := CreateUser.Validate([]byte(`{"name":"alice","email":"a@example.com","password":"short"}`))
		requireFieldError(t, err, "password", "Minimal length of password is 8")
	})

	t.Run("password length counts characters", func(t *testing.T) {
		_, err := CreateUser.Validate([]byte(`{"name":"alice","email":"a@example.com","password":"ééééééé"}`))
		requireFieldError(t, err, "password", "Minimal length of password is 8")

		fields, err := CreateUser.Validate([]byte(`{"name":"alice","email":"a@example.com","password":"éééééééé"}`))
		require.Nil(t, err)
		assert.Equal(t, "éééééééé", fields.String("password"))
	})

	t.Run("long values have no upper bound", func(t *testing.T) {
		name := strings.Repeat("n", 500)
		password := strings.Repeat("é", 200)
		body := `{"name":"` + name + `","email":"` + strings.Repeat("e", 300) + `@example.com","password":"` + password + `"}`

		fields, err := CreateUser.Validate([]byte(body))
		require.Nil(t, err)
		assert.Equal(t, name, fields.String("name"))
		assert.Equal(t, password, fields.String("password"))
	})

	t.Run("last duplicate key wins", func(t *testing.T) {
		fields, err := CreateUser.Validate([]byte(`{"name":"first","name":"second","email":"a@example.com","password":"secret123"}`))
		require.Nil(t, err)
		assert.Equal(t, "second", fields.String("name"))
	})

	t.Run("duplicate key is checked by its last value", func(t *testing.T) {
		_, err := CreateUser.Validate([]byte(`{"name":"alice","email":"a@example.com","password":"secret123","password":"short"}`))
		requireFieldError(t, err, "password", "Minimal length of password is 8")
	})

	t.Run("type check runs before length check", func(t *testing.T) {
		_, err := CreateUser.Validate([]byte(`{"name":"alice","email":"a@example.com","password":123}`))
		requireFieldError(t, err, "password", MsgInvalidString)
	})

	t.Run("fails fast in declared order", func(t *testing.T) {
		_, err := CreateUser.Validate([]byte(`{"password":"x"}`))
		requireFieldError(t, err, "name", MsgFieldRequired)
	})

	t.Run("null is a type error", func(t *testing.T) {
		_, err := CreateUser.Validate([]byte(`{"name":null,"email":"a@example.com","password":"secret123"}`))
		requireFieldError(t, err, "name", MsgInvalidString)
	})
}

func TestCreateAdvertSchema(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		field   string
		message string
		ownerID int64
	}{
		{name: "integer owner", body: `{"title":"Bike","note":"red","owner_id":5}`, ownerID: 5},
		{name: "integral float owner", body: `{"title":"Bike","note":"red","owner_id":5.0}`, ownerID: 5},
		{name: "numeric string owner", body: `{"title":"Bike","note":"red","owner_id":"7"}`, ownerID: 7},
		{name: "fractional owner", body: `{"title":"Bike","note":"red","owner_id":5.5}`, field: "owner_id", message: MsgFractionalInteger},
		{name: "word owner", body: `{"title":"Bike","note":"red","owner_id":"five"}`, field: "owner_id", message: MsgUnparsableInteger},
		{name: "bool owner", body: `{"title":"Bike","note":"red","owner_id":true}`, field: "owner_id", message: MsgInvalidInteger},
		{name: "missing note", body: `{"title":"Bike","owner_id":1}`, field: "note", message: MsgFieldRequired},
		{name: "numeric title", body: `{"title":1,"note":"red","owner_id":1}`, field: "title", message: MsgInvalidString},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields, err := CreateAdvert.Validate([]byte(tc.body))
			if tc.field != "" {
				requireFieldError(t, err, tc.field, tc.message)
				return
			}

			require.Nil(t, err)
			assert.Equal(t, tc.ownerID, fields.Int("owner_id"))
			assert.Equal(t, "Bike", fields.String("title"))
		})
	}
}

func TestSchemaRejectsMalformedBodies(t *testing.T) {
	_, err := CreateAdvert.Validate([]byte(`{"title":`))
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidJSON, err.Message)
	assert.Empty(t, err.Errors)

	_, err = CreateAdvert.Validate([]byte(`[1,2,3]`))
	require.NotNil(t, err)
	assert.Equal(t, MsgNotAnObject, err.Message)

	_, err = CreateAdvert.Validate(nil)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidJSON, err.Message)

	_, err = CreateUser.Validate([]byte("{\"name\":\"bad\xff\",\"email\":\"a@example.com\",\"password\":\"secret123\"}"))
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidJSON, err.Message)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("42"))
	assert.True(t, IsValidID("0"))
	assert.False(t, IsValidID("-1"))
	assert.False(t, IsValidID("abc"))
	assert.False(t, IsValidID(""))
}

func newContext(method, body string, params ...string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	c := e.NewContext(req, httptest.NewRecorder())

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c
}

func TestBindAndValidate(t *testing.T) {
	t.Run("path id", func(t *testing.T) {
		req := &GetAdvertRequest{}
		require.NoError(t, BindAndValidate(newContext(http.MethodGet, "", "id", "12"), req))
		assert.Equal(t, int64(12), req.ID)
	})

	t.Run("non-numeric id is an unknown route", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodGet, "", "id", "abc"), &GetUserRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Route not found", httpErr.Message)
	})

	t.Run("overflowing id is an unknown route", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodDelete, "", "id", "99999999999999999999"), &DeleteAdvertRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("json body", func(t *testing.T) {
		req := &CreateUserRequest{}
		err := BindAndValidate(newContext(http.MethodPost, `{"name":"bob","email":"b@example.com","password":"password1"}`), req)
		require.NoError(t, err)

		assert.Equal(t, "bob", req.Name)
		assert.Equal(t, "b@example.com", req.Email)
		assert.Equal(t, "password1", req.Password)
	})

	t.Run("invalid body", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"title":"x"}`), &CreateAdvertRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "note", httpErr.Errors[0].Field)
	})
}
