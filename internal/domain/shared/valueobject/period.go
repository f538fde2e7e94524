package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Period is a billing year-month, rendered as YYYY-MM
type Period struct {
	year  int
	month time.Month
}

// NewPeriod creates a period, validating the month
func NewPeriod(year int, month time.Month) (Period, error) {
	if year < 1900 || year > 9999 {
		return Period{}, fmt.Errorf("invalid period year: %d", year)
	}
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("invalid period month: %d", month)
	}
	return Period{year: year, month: month}, nil
}

// ParsePeriod parses "YYYY-MM"
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q, expected YYYY-MM", s)
	}
	return NewPeriod(t.Year(), t.Month())
}

// MustParsePeriod parses a period and panics on error. Intended for tests and constants.
func MustParsePeriod(s string) Period {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PeriodOf returns the period containing t
func PeriodOf(t time.Time) Period {
	return Period{year: t.Year(), month: t.Month()}
}

func (p Period) Year() int           { return p.year }
func (p Period) Month() time.Month   { return p.month }
func (p Period) IsZero() bool        { return p.year == 0 }
func (p Period) Equal(o Period) bool { return p == o }

// String returns the YYYY-MM representation
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}

// AddMonths returns the period n months later (n may be negative)
func (p Period) AddMonths(n int) Period {
	idx := p.year*12 + int(p.month-1) + n
	return Period{year: idx / 12, month: time.Month(idx%12 + 1)}
}

// Next returns the following period
func (p Period) Next() Period {
	return p.AddMonths(1)
}

// Before reports whether p is earlier than o
func (p Period) Before(o Period) bool {
	if p.year != o.year {
		return p.year < o.year
	}
	return p.month < o.month
}

// FirstDay returns midnight UTC of the first day of the period
func (p Period) FirstDay() time.Time {
	return time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC of the last day of the period
func (p Period) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 1, -1)
}

// DayOf returns the given day of the period, clamped to the month length
func (p Period) DayOf(day int) time.Time {
	last := p.LastDay().Day()
	if day < 1 {
		day = 1
	}
	if day > last {
		day = last
	}
	return time.Date(p.year, p.month, day, 0, 0, 0, 0, time.UTC)
}

// MarshalJSON implements json.Marshaler
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner
func (p *Period) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Period", value)
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
