package httperr

import (
	"errors"
	"fmt"
)

// BusinessError is a comparable domain failure identified by its code, so
// errors.Is matches two errors carrying the same code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ======================================================
// Taxonomy
// ======================================================

const (
	CodeNotFound          = "not_found"
	CodeForbidden         = "forbidden"
	CodeSlotUnavailable   = "slot_unavailable"
	CodeAlreadyCancelled  = "already_cancelled"
	CodeInvalidTransition = "invalid_transition"
	CodeValidation        = "validation_error"
	CodePersistence       = "persistence_error"
	CodeUnauthenticated   = "unauthenticated"
)

var (
	ErrForbidden         = ErrBusiness(CodeForbidden)
	ErrSlotUnavailable   = ErrBusiness(CodeSlotUnavailable)
	ErrAlreadyCancelled  = ErrBusiness(CodeAlreadyCancelled)
	ErrInvalidTransition = ErrBusiness(CodeInvalidTransition)
)

// NotFoundError names the missing entity; it still matches CodeNotFound.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + "_not_found"
}

func (e NotFoundError) Is(target error) bool {
	be, ok := target.(BusinessError)
	return ok && be.Code == CodeNotFound
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

var ErrNotFoundAny = ErrBusiness(CodeNotFound)

// ValidationError reports the violated field and a readable message.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ErrValidation(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a storage failure. Callers never see the cause.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}

func ErrPersistence(op string, err error) error {
	return PersistenceError{Op: op, Err: err}
}

func IsPersistence(err error) bool {
	var pe PersistenceError
	return errors.As(err, &pe)
}

// ======================================================
// Catalog and account codes
// ======================================================

const (
	CodeServiceHasDependents = "service_has_dependents"
	CodeTimeSlotExists       = "time_slot_exists"
	CodeImageStorageDisabled = "image_storage_disabled"
	CodeInvalidImage         = "invalid_image"
	CodeEmailTaken           = "email_already_registered"
	CodeInvalidCredentials   = "invalid_credentials"
)

var (
	ErrServiceHasDependents = ErrBusiness(CodeServiceHasDependents)
	ErrTimeSlotExists       = ErrBusiness(CodeTimeSlotExists)
	ErrImageStorageDisabled = ErrBusiness(CodeImageStorageDisabled)
	ErrInvalidImage         = ErrBusiness(CodeInvalidImage)
	ErrEmailTaken           = ErrBusiness(CodeEmailTaken)
	ErrInvalidCredentials   = ErrBusiness(CodeInvalidCredentials)
)
