// Package errs classifies failures of the data access layer into
// validation, not-found and store errors.
package errs

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind uint8

const (
	Other Kind = iota
	Validation
	NotFound
	Store
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not found"
	case Store:
		return "store"
	default:
		return "other"
	}
}

// Error is the single error type returned by the repository.
// Op names the operation that failed, e.g. "repository.AddOrderItem".
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

var (
	ErrValidation = &Error{Kind: Validation}
	ErrNotFound   = &Error{Kind: NotFound}
	ErrStore      = &Error{Kind: Store}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match on kind, so errors.Is(err, errs.ErrNotFound) works
// for every not-found error regardless of operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Validationf(op, format string, args ...any) error {
	return &Error{Kind: Validation, Op: op, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(op, format string, args ...any) error {
	return &Error{Kind: NotFound, Op: op, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// FromDB converts an error coming out of gorm or a driver. Errors that are
// already classified pass through untouched.
func FromDB(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: NotFound, Op: op, Message: "record not found", Err: err}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Error{Kind: Store, Op: op, Message: "duplicate key", Err: err}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &Error{Kind: Store, Op: op, Message: "foreign key violated", Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: Store, Op: op, Message: "operation timed out", Err: err}
	}
	return &Error{Kind: Store, Op: op, Err: err}
}

// KindOf returns Other for nil and unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}
