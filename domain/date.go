package domain

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "02/01/2006"
)

// Date is a calendar day stored in a Postgres `date` column and sent as YYYY-MM-DD.
type Date struct {
	datatypes.Date
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

func DateOf(year int, month time.Month, day int) Date {
	return NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate reads a YYYY-MM-DD string; blank input yields nil.
func ParseDate(s string) (*Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d := NewDate(t)
	return &d, nil
}

func (d Date) Time() time.Time { return time.Time(d.Date) }

func (d Date) String() string { return d.Time().Format(DateLayout) }

func (d Date) Display() string { return d.Time().Format(DisplayDateLayout) }

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

func (d Date) After(o Date) bool { return d.Time().After(o.Time()) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// FormatDate renders an optional date, blank when unset.
func FormatDate(d *Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
