package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isUniqueViolation recognizes unique constraint failures from PostgreSQL
// and SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation recognizes rows pointing at a missing parent.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// wrap maps a gorm error onto the business taxonomy. Missing rows become
// NotFound for entity, anything else a PersistenceError.
func wrap(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity)
	}
	return httperr.ErrPersistence(op, err)
}

// passthrough keeps business errors raised inside a transaction callback
// and wraps everything else as a persistence failure.
func passthrough(op string, err error) error {
	if err == nil {
		return nil
	}

	var be httperr.BusinessError
	var nf httperr.NotFoundError
	var ve httperr.ValidationError
	var pe httperr.PersistenceError
	if errors.As(err, &be) || errors.As(err, &nf) || errors.As(err, &ve) || errors.As(err, &pe) {
		return err
	}
	return httperr.ErrPersistence(op, err)
}
