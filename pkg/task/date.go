package task

import (
	"fmt"
	"time"
)

const (
	layoutISO   = "2006-01-02"
	layoutClock = "15:04"
)

// Date is a local wall-clock calendar date in strict zero-padded ISO form
// ("2006-01-02"). Keeping it zero padded means lexical comparison and
// chronological comparison agree, which the registry and calendar rely on.
type Date string

// ParseDate accepts only zero-padded ISO dates.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(layoutISO, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("task: invalid date %q: %w", s, err)
	}
	if t.Format(layoutISO) != s {
		return "", fmt.Errorf("task: date %q is not zero-padded ISO form", s)
	}
	return Date(s), nil
}

// DateOf formats a moment in time as its local calendar date.
func DateOf(t time.Time) Date {
	return Date(t.Format(layoutISO))
}

// Today is the current local date.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return string(d)
}

func (d Date) IsZero() bool {
	return d == ""
}

// Time returns midnight local time on the date.
func (d Date) Time() time.Time {
	t, _ := time.ParseInLocation(layoutISO, string(d), time.Local)
	return t
}

// Display renders the date for listings, e.g. "Jun 5, 2024".
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("Jan 2, 2006")
}

// Clock is a local wall-clock time of day in strict "15:04" form. The empty
// string means unset.
type Clock string

// ParseClock accepts only zero-padded 24 hour "HH:MM" values.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(layoutClock, s)
	if err != nil {
		return "", fmt.Errorf("task: invalid time %q: %w", s, err)
	}
	if t.Format(layoutClock) != s {
		return "", fmt.Errorf("task: time %q is not zero-padded HH:MM form", s)
	}
	return Clock(s), nil
}

func (c Clock) String() string {
	return string(c)
}

func (c Clock) IsZero() bool {
	return c == ""
}

// Display renders the time in 12 hour form, e.g. "3:04 PM".
func (c Clock) Display() string {
	if c.IsZero() {
		return ""
	}
	t, err := time.Parse(layoutClock, string(c))
	if err != nil {
		return string(c)
	}
	return t.Format("3:04 PM")
}

// On combines the time of day with a date into a local moment.
func (c Clock) On(d Date) time.Time {
	day := d.Time()
	t, err := time.Parse(layoutClock, string(c))
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
}
