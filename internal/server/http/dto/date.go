package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar day format used by the API.
const DateLayout = "2006-01-02"

// Date is a calendar day encoded as "2006-01-02". Full RFC3339 timestamps
// are accepted on input and cut to their day.
type Date struct {
	time.Time
}

// NewDate wraps t, or returns nil for a nil t.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

// ParseDate parses a day, falling back to RFC3339.
func ParseDate(raw string) (Date, error) {
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Date{}, fmt.Errorf("date %q: want YYYY-MM-DD", raw)
	}
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

// Ptr returns the wrapped time, or nil for a nil d.
func (d *Date) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
