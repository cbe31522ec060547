// Package errs defines the error taxonomy shared by the registry's
// domain packages: input that cannot be parsed or contradicts itself,
// writes that reference missing rows, and store-level failures.
package errs

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError reports request input that is malformed or contradictory.
// Handlers map it to a 400 response.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

// Validationf builds a ValidationError for the given field.
func Validationf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// ReferentialError reports an insert whose foreign-key target does not exist.
// Handlers map it to a 422 response.
type ReferentialError struct {
	Table string
	Msg   string
}

func (e *ReferentialError) Error() string {
	return e.Msg
}

// QueryExecutionError reports a store that is unreachable or rejected a
// statement. Handlers map it to a 500 response; the wrapped cause stays
// server-side and is never sent to the client.
type QueryExecutionError struct {
	Op  string
	Err error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryExecutionError) Unwrap() error { return e.Err }

// Query wraps a store-level failure. Foreign-key violations (SQLSTATE
// 23503) become ReferentialError so write handlers can report them as
// client errors rather than server failures.
func Query(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return &ReferentialError{Table: pgErr.TableName, Msg: "referenced record does not exist"}
	}
	return &QueryExecutionError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsReferential reports whether err is a ReferentialError.
func IsReferential(err error) bool {
	var re *ReferentialError
	return errors.As(err, &re)
}
