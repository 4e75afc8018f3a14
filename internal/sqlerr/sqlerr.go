// Package sqlerr classifies database driver errors.
//
// It parses SQLSTATE codes surfaced by the Postgres driver and converts
// them into structured values the service layer can act on, e.g. treating
// a unique-constraint violation as the authoritative signal for a
// duplicate record.
package sqlerr
