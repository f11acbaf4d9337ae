package task

import (
	"errors"
	"fmt"
	"time"
)

// Task is one scheduled appointment tied to a client.
type Task struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Date        Date    `json:"date"`
	StartTime   Clock   `json:"startTime"`
	EndTime     Clock   `json:"endTime,omitempty"`
	Urgency     Urgency `json:"urgency"`
	Reminder    int     `json:"reminder"`
}

// Validate checks the fields a task must carry before it can be stored. The
// id is not checked; registries assign it.
func (t *Task) Validate() error {
	if t.ClientID == "" {
		return errors.New("task: client required")
	}
	if t.Title == "" {
		return errors.New("task: title required")
	}
	if _, err := ParseDate(string(t.Date)); err != nil {
		return err
	}
	if _, err := ParseClock(string(t.StartTime)); err != nil {
		return err
	}
	if !t.EndTime.IsZero() {
		if _, err := ParseClock(string(t.EndTime)); err != nil {
			return err
		}
	}
	if _, err := ParseUrgency(string(t.Urgency)); err != nil {
		return err
	}
	if t.Reminder < 0 {
		return fmt.Errorf("task: reminder offset must not be negative, got %d", t.Reminder)
	}
	return nil
}

// StartsAt is the local moment the task begins.
func (t *Task) StartsAt() time.Time {
	return t.StartTime.On(t.Date)
}

// EndsAt is the local moment the task ends. Tasks without an explicit end
// time run for one hour.
func (t *Task) EndsAt() time.Time {
	if t.EndTime.IsZero() {
		return t.StartsAt().Add(time.Hour)
	}
	return t.EndTime.On(t.Date)
}

// RemindAt computes when the reminder should fire. The second return is
// false when the task has no reminder configured.
func (t *Task) RemindAt() (time.Time, bool) {
	if t.Reminder <= 0 {
		return time.Time{}, false
	}
	return t.StartsAt().Add(-time.Duration(t.Reminder) * time.Minute), true
}

// StartsWithin reports whether the task begins inside the window measured
// from now. Used to warn about tasks scheduled too close to their start.
func (t *Task) StartsWithin(window time.Duration, now time.Time) bool {
	diff := t.StartsAt().Sub(now)
	return diff > 0 && diff < window
}

// Started reports whether the task's start moment has already passed.
func (t *Task) Started(now time.Time) bool {
	return !t.StartsAt().After(now)
}
