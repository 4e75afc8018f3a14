package repository

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
//
// On the wire it is a "YYYY-MM-DD" JSON string; in storage it maps to a
// Postgres date column. The zero value means "not provided".
type Date time.Time

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// After reports whether d falls strictly after t.
func (d Date) After(t time.Time) bool {
	return time.Time(d).After(t)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string. Anything else,
// including timestamps with a time component, is rejected so malformed
// dates fail at the binding layer.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected format %s", s, dateLayout)
	}

	*d = parsed
	return nil
}

// Scan implements sql.Scanner so pgx can read date columns into Date.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date(v.UTC())
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer so Date can be bound as a query
// parameter.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// User is a persisted user record. The id is assigned by storage on
// insert and immutable afterwards.
type User struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate Date   `json:"birthDate"`
}

// NewUser carries the fields needed to create a user. It exists only for
// the duration of a single creation call.
type NewUser struct {
	Name      string
	Email     string
	BirthDate Date
}

// TechnicalError wraps a storage driver failure.
//
// The repository never interprets driver errors; it attaches the
// operation name and propagates the cause through Unwrap so upper layers
// can log it or classify it (e.g. sqlerr constraint detection).
type TechnicalError struct {
	Op  string
	Err error
}

func (e *TechnicalError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}
