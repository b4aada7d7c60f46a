package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Check inspects an already type-checked value and returns an error
// message, or "" if the value passes.
type Check func(field string, value any) string

// validate is shared by every check. It is safe for concurrent use.
var validate = validator.New()

// rule builds a Check from a validator tag.
func rule(tag string, message func(field string) string) Check {
	return func(field string, value any) string {
		if err := validate.Var(value, tag); err != nil {
			return message(field)
		}
		return ""
	}
}

// MinLength requires at least n characters.
func MinLength(n int) Check {
	return rule(fmt.Sprintf("min=%d", n), func(field string) string {
		return fmt.Sprintf("Minimal length of %s is %d", field, n)
	})
}
