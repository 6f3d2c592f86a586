package model

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	ClockLayout    = "15:04:05"
)

// Date is a calendar day rendered as YYYY-MM-DD.
type Date struct{ time.Time }

// DateTime is a timestamp rendered as YYYY-MM-DD HH:MM:SS.
type DateTime struct{ time.Time }

// Clock is a timestamp rendered as its wall clock time HH:MM:SS.
type Clock struct{ time.Time }

func (d Date) MarshalJSON() ([]byte, error)     { return quote(d.Format(DateLayout)), nil }
func (d DateTime) MarshalJSON() ([]byte, error) { return quote(d.Format(DateTimeLayout)), nil }
func (c Clock) MarshalJSON() ([]byte, error)    { return quote(c.Format(ClockLayout)), nil }

func (d *Date) UnmarshalJSON(b []byte) error     { return parseInto(&d.Time, DateLayout, b) }
func (d *DateTime) UnmarshalJSON(b []byte) error { return parseInto(&d.Time, DateTimeLayout, b) }
func (c *Clock) UnmarshalJSON(b []byte) error    { return parseInto(&c.Time, ClockLayout, b) }

func quote(s string) []byte {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	return append(b, '"')
}

func parseInto(dst *time.Time, layout string, b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) < 2 {
		return &time.ParseError{Layout: layout, Value: string(b)}
	}
	t, err := time.Parse(layout, string(b[1:len(b)-1]))
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// NewDate returns nil for a zero time so nullable columns render as null.
func NewDate(t time.Time) *Date {
	if t.IsZero() {
		return nil
	}
	return &Date{t}
}

// NewDateTime returns nil for a zero time.
func NewDateTime(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	return &DateTime{t}
}

// NewClock returns nil for a zero time.
func NewClock(t time.Time) *Clock {
	if t.IsZero() {
		return nil
	}
	return &Clock{t}
}
