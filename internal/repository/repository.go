// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch and persist data,
// abstracting SQL logic away from the service layer. Queries use bound
// parameters exclusively; user-supplied values are never interpolated
// into query text.
//
// Absence is a normal outcome here, not an error: lookups return
// (nil, nil) when no row matches. Driver failures are wrapped in an
// opaque TechnicalError and never interpreted in this layer.
package repository
