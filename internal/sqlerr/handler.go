package sqlerr

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the sqlerr.Code for a given error.
//
// Behavior:
//   - If err unwraps into *sqlerr.Error, return its Code.
//   - If err unwraps into a raw *pgconn.PgError, map its SQLSTATE.
//   - Otherwise return sqlerr.Other.
//
// Callers typically wrap driver errors with %w, so errors.As walks the
// chain regardless of how many layers wrapped the failure.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}

	return Other
}

// ConstraintColumn infers the violating column from a unique-violation
// error's constraint name. It returns "" when the error is not a unique
// violation or the constraint name follows no known convention.
//
// Supported conventions:
//
//  1. "unique_<table>_<column>"   e.g. unique_users_email -> "email"
//  2. "<table>_<column>_(key|ukey)" e.g. users_email_key  -> "email"
func ConstraintColumn(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || MapCode(pgErr.Code) != UniqueViolation {
		return ""
	}
	return extractColumnForUniqueViolation(pgErr.ConstraintName)
}

// uniqueKeyRegex matches the "<table>_<column>_key" / "_ukey" convention.
var uniqueKeyRegex = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyRegex.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HumanizeColumn converts a snake_case column identifier into Title Case,
// e.g. "birth_date" -> "Birth Date". Used when building user-facing
// messages out of constraint metadata.
func HumanizeColumn(column string) string {
	if column == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(column, "_", " "))
}
