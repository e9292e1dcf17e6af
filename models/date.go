// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date layouts used on the wire and on screen.
const (
	// DateLayout is the ISO calendar date layout (YYYY-MM-DD) used in JSON,
	// HTML date inputs and database columns.
	DateLayout = "2006-01-02"

	// DisplayDateLayout is the DD-MM-YYYY layout shown in leave lists.
	DisplayDateLayout = "02-01-2006"
)

// ErrInvalidDate is returned when a value cannot be interpreted as a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date without time-of-day or time zone.
//
// The underlying value is always normalised to midnight UTC so that two dates
// parsed from the same YYYY-MM-DD string compare equal with ==.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses s in the YYYY-MM-DD layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns d as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// DaysUntil returns the inclusive number of days from d to end,
// or 0 when end precedes d.
func (d Date) DaysUntil(end Date) int {
	if end.Before(d) {
		return 0
	}
	return int(end.t.Sub(d.t).Hours()/24) + 1
}

// String returns d in the YYYY-MM-DD layout, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Format is an alias of String.
func (d Date) Format() string {
	return d.String()
}

// Display returns d in the DD-MM-YYYY layout used by leave lists.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DisplayDateLayout)
}

// MarshalJSON encodes d as a "YYYY-MM-DD" string; the zero Date encodes as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", a full RFC 3339 timestamp or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(b))
	}

	parsed, err := parseDateOrTimestamp(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. Dates are stored as YYYY-MM-DD text so the
// same value works for both the Postgres DATE and the SQLite TEXT column.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		parsed, err := parseDateOrTimestamp(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}

func parseDateOrTimestamp(s string) (Date, error) {
	if d, err := ParseDate(s); err == nil {
		return d, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	if len(s) >= len(DateLayout) {
		return ParseDate(s[:len(DateLayout)])
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
