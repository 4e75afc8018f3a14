package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the application-level category of a database error.
type Code int

const (
	// Other covers every error we do not classify further.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// SQLSTATE class 23 codes (integrity constraint violations).
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlstateNotNullViolation    = "23502"
	sqlstateForeignKeyViolation = "23503"
	sqlstateUniqueViolation     = "23505"
	sqlstateCheckViolation      = "23514"
)

// MapCode maps a raw SQLSTATE string onto a sqlerr.Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case sqlstateUniqueViolation:
		return UniqueViolation
	case sqlstateForeignKeyViolation:
		return ForeignKeyViolation
	case sqlstateNotNullViolation:
		return NotNullViolation
	case sqlstateCheckViolation:
		return CheckViolation
	default:
		return Other
	}
}

// Error is the normalized form of a Postgres server error.
//
// It keeps the metadata needed to build user-facing messages (table,
// column, constraint) alongside the original driver error for Unwrap.
type Error struct {
	Code           Code
	DatabaseCode   string // original SQLSTATE
	Message        string // database's main message
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlstate %s: %s", e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw pgconn.PgError into a sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
