// Package validation contains the logic for validating
// request data.
//
// Payloads are checked against explicit schemas: an ordered list of
// fields, each with a JSON type and a set of checks. Types are read
// straight off the raw bytes with gjson, length rules are evaluated with
// the `validator` library, and the first failure is turned into an
// error the client can understand.
package validation
