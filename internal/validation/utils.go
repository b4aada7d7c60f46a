package validation

import (
	"fmt"
	"io"
	"regexp"

	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Receive the raw body and/or path params through BodyReceiver / PathBinder
// - Implement Validate() error that runs the payload's Schema and copies the
//   typed fields into the request struct
type Validatable interface {
	Validate() error
}

// BodyReceiver is implemented by requests that carry a JSON body.
type BodyReceiver interface {
	SetBody(raw []byte)
}

// PathBinder is implemented by requests that read path parameters.
type PathBinder interface {
	BindPath(c echo.Context) error
}

// idRegex matches the decimal ids used in resource paths.
var idRegex = regexp.MustCompile(`^[0-9]+$`)

// IsValidID checks whether a path segment is a decimal id.
func IsValidID(id string) bool {
	return idRegex.MatchString(id)
}

// routeNotFound is returned for path segments that could never name a resource.
func routeNotFound() error {
	return errs.NewNotFoundError("Route not found", nil)
}

// BindID reads the named path param as an int64 id. Anything that is not a
// plain decimal number is reported as an unknown route.
func BindID(c echo.Context, name string) (int64, error) {
	if !IsValidID(c.Param(name)) {
		return 0, routeNotFound()
	}

	var id int64
	if err := echo.PathParamsBinder(c).Int64(name, &id).BindError(); err != nil {
		return 0, routeNotFound()
	}

	return id, nil
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) path params are bound when payload implements PathBinder.
// 2) the raw body is handed over when payload implements BodyReceiver.
// 3) payload.Validate() applies the schema.
//
// Errors are *errs.HTTPError ready for the global error handler.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if binder, ok := payload.(PathBinder); ok {
		if err := binder.BindPath(c); err != nil {
			return err
		}
	}

	if receiver, ok := payload.(BodyReceiver); ok {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return fmt.Errorf("read request body: %w", err)
		}
		receiver.SetBody(raw)
	}

	return payload.Validate()
}
