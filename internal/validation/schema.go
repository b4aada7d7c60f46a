package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/tidwall/gjson"
)

// Kind is the JSON type a schema field must carry.
type Kind int

const (
	KindString Kind = iota
	KindInteger
)

// Messages reported for type and presence failures.
const (
	MsgFieldRequired     = "Field required"
	MsgInvalidString     = "Input should be a valid string"
	MsgInvalidInteger    = "Input should be a valid integer"
	MsgFractionalInteger = "Input should be a valid integer, got a number with a fractional part"
	MsgUnparsableInteger = "Input should be a valid integer, unable to parse string as an integer"
	MsgInvalidJSON       = "Invalid JSON body"
	MsgNotAnObject       = "Input should be a valid dictionary"
)

var integerStringRe = regexp.MustCompile(`^\s*[-+]?[0-9]+\s*$`)

// Field declares one payload key.
type Field struct {
	Name   string
	Kind   Kind
	Checks []Check
}

// Schema is an ordered list of fields. Validation is fail-fast in that order.
type Schema []Field

// Fields is the validated payload, restricted to the keys the schema declares.
type Fields map[string]any

// String returns a validated string field, or "" if absent.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Int returns a validated integer field, or 0 if absent.
func (f Fields) Int(name string) int64 {
	n, _ := f[name].(int64)
	return n
}

// Validate checks raw against the schema. On success the returned Fields
// hold exactly the declared keys, typed as string or int64. On failure the
// error names the first offending field.
//
// A body that is not valid UTF-8 is rejected as invalid JSON. When a key is
// repeated, its last occurrence wins.
func (s Schema) Validate(raw []byte) (Fields, *errs.HTTPError) {
	if !utf8.Valid(raw) || !gjson.ValidBytes(raw) {
		return nil, errs.NewBadRequestError(MsgInvalidJSON, nil, nil)
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, errs.NewBadRequestError(MsgNotAnObject, nil, nil)
	}

	members := make(map[string]gjson.Result)
	doc.ForEach(func(key, value gjson.Result) bool {
		members[key.String()] = value
		return true
	})

	out := make(Fields, len(s))

	for _, field := range s {
		result, ok := members[field.Name]
		if !ok {
			return nil, errs.NewValidationError(field.Name, MsgFieldRequired)
		}

		value, msg := coerce(field.Kind, result)
		if msg != "" {
			return nil, errs.NewValidationError(field.Name, msg)
		}

		for _, check := range field.Checks {
			if msg := check(field.Name, value); msg != "" {
				return nil, errs.NewValidationError(field.Name, msg)
			}
		}

		out[field.Name] = value
	}

	return out, nil
}

// coerce converts a JSON value to the field's Go type, or returns the type error message.
func coerce(kind Kind, result gjson.Result) (any, string) {
	switch kind {
	case KindString:
		if result.Type != gjson.String {
			return nil, MsgInvalidString
		}
		return result.Str, ""

	case KindInteger:
		return coerceInteger(result)
	}

	return nil, MsgInvalidInteger
}

// coerceInteger accepts JSON integers, integral floats such as 5.0 and
// numeric strings such as "5".
func coerceInteger(result gjson.Result) (any, string) {
	switch result.Type {
	case gjson.Number:
		if n, err := strconv.ParseInt(result.Raw, 10, 64); err == nil {
			return n, ""
		}

		f := result.Num
		if f != math.Trunc(f) {
			return nil, MsgFractionalInteger
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, MsgInvalidInteger
		}
		return int64(f), ""

	case gjson.String:
		if !integerStringRe.MatchString(result.Str) {
			return nil, MsgUnparsableInteger
		}
		n, err := strconv.ParseInt(strings.TrimSpace(result.Str), 10, 64)
		if err != nil {
			return nil, MsgUnparsableInteger
		}
		return n, ""
	}

	return nil, MsgInvalidInteger
}
