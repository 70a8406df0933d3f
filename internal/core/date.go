package core

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in canonical YYYY-MM-DD form. Because the format is
// fixed at construction, lexicographic comparison of Dates is chronological,
// which is exactly how the order-date filters work.
type Date string

// NewDate truncates t to day granularity.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate accepts only canonical YYYY-MM-DD; locale-formatted dates are
// rejected rather than silently reinterpreted.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD: %w", s, err)
	}
	return NewDate(t), nil
}

func (d Date) String() string { return string(d) }

// Time returns the date at midnight UTC. Zero time if d is malformed.
func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// AddDays returns the date n days later (negative n goes back).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

// AddMonths returns the date n calendar months later.
func (d Date) AddMonths(n int) Date {
	return NewDate(d.Time().AddDate(0, n, 0))
}

// StartOfYear returns January 1 of d's year.
func (d Date) StartOfYear() Date {
	if len(d) < 4 {
		return d
	}
	return Date(string(d)[:4] + "-01-01")
}
