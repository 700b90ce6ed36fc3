package apperror

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type RemoteKind string

const (
	KindNetwork             RemoteKind = "network"
	KindAuth                RemoteKind = "auth"
	KindConstraintViolation RemoteKind = "constraint_violation"
	KindNotFound            RemoteKind = "not_found"
	KindUnknown             RemoteKind = "unknown"
)

// RemoteError is a failure reported by the backing store. It is never retried.
type RemoteError struct {
	Op   string
	Kind RemoteKind
	Err  error
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func Remote(op string, kind RemoteKind, err error) *RemoteError {
	return &RemoteError{Op: op, Kind: kind, Err: err}
}

func NotFound(op string) *RemoteError {
	return &RemoteError{Op: op, Kind: KindNotFound}
}

// ValidationError is a client-side precondition failure; the operation was not attempted.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(code, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// PartialFetchError marks a dependent lookup for a single row that failed while
// its siblings succeeded. It is logged, never surfaced to the user.
type PartialFetchError struct {
	ProductID string
	Err       error
}

func (e *PartialFetchError) Error() string {
	return fmt.Sprintf("partial fetch for product %s: %v", e.ProductID, e.Err)
}

func (e *PartialFetchError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Kind == KindNotFound
}

func IsConstraint(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Kind == KindConstraintViolation
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// pg error classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidPassword     = "28P01"
	pgInvalidAuthSpec     = "28000"
	pgInsufficientPriv    = "42501"
)

// FromDB translates a database/sql or pgx error into a RemoteError. nil stays nil.
func FromDB(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return Remote(op, KindNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation:
			return Remote(op, KindConstraintViolation, err)
		case pgInvalidPassword, pgInvalidAuthSpec, pgInsufficientPriv:
			return Remote(op, KindAuth, err)
		}
		return Remote(op, KindUnknown, err)
	}
	return Remote(op, KindNetwork, err)
}
