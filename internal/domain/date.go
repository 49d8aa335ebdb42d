package domain

import (
	"fmt"
	"time"
)

// Date layouts.
const (
	DateInputLayout   = "2006-01-02" // ISO form accepted on input
	DateDisplayLayout = "Jan 2 2006" // Form used in rendered tasks
)

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateInputLayout, s)
	if err != nil {
		return Date{}, &DateError{Text: s}
	}
	return Date{t: t}, nil
}

// DateError reports text that is not a valid ISO date.
// It matches ErrInvalidDate with errors.Is.
type DateError struct {
	Text string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%v %q", ErrInvalidDate, e.Text)
}

// Is reports whether target is ErrInvalidDate.
func (e *DateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Display formats the date as "Mon D YYYY", e.g. "Dec 1 2024".
func (d Date) Display() string {
	return d.t.Format(DateDisplayLayout)
}

// String returns the ISO form.
func (d Date) String() string {
	return d.t.Format(DateInputLayout)
}
