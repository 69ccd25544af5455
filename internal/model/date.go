package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format the backend uses for date-only fields.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. The backend emits
// date-only fields as "YYYY-MM-DD" but some endpoints return full RFC 3339
// timestamps for the same columns, so unmarshaling accepts both.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON parses a date-only or RFC 3339 JSON string. A JSON null
// leaves the Date zero.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON emits the date-only wire format, or null for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// String renders the date in wire format, or an em dash when unset.
func (d Date) String() string {
	if d.IsZero() {
		return "—"
	}
	return d.Format(DateLayout)
}
