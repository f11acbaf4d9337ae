// Package ics renders the task set as an iCalendar stream, one VEVENT per
// task, so phone calendars can import the schedule.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/sked/pkg/task"
)

const (
	prodID    = "-//sked//EN"
	uidDomain = "sked"
	stampISO  = "20060102T150405Z"
)

// Export writes the calendar. names resolves client ids for event summaries
// and may be nil. now stamps DTSTAMP.
func Export(w io.Writer, tasks []*task.Task, names func(string) string, now time.Time) error {
	if names == nil {
		names = func(string) string { return "Unknown Client" }
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:" + prodID + "\nCALSCALE:GREGORIAN\n")

	stamp := icsTime(now)
	for _, t := range tasks {
		clientName := names(t.ClientID)

		fmt.Fprintf(&b, "BEGIN:VEVENT\nUID:%s@%s\nDTSTAMP:%s\nDTSTART:%s\nDTEND:%s\nSUMMARY:%s - %s\n",
			t.ID, uidDomain, stamp, icsTime(t.StartsAt()), icsTime(t.EndsAt()), t.Title, clientName)
		if t.Description != "" {
			fmt.Fprintf(&b, "DESCRIPTION:Client: %s\\n%s\n", clientName, escapeText(t.Description))
		}
		fmt.Fprintf(&b, "PRIORITY:%d\n", t.Urgency.ICSPriority())
		if t.Reminder > 0 {
			fmt.Fprintf(&b, "BEGIN:VALARM\nTRIGGER:-PT%dM\nACTION:DISPLAY\nDESCRIPTION:%s - %s\nEND:VALARM\n",
				t.Reminder, t.Title, clientName)
		}
		b.WriteString("END:VEVENT\n")
	}

	b.WriteString("END:VCALENDAR")
	_, err := io.WriteString(w, b.String())
	return err
}

// Filename names a calendar export with the current date.
func Filename(now time.Time) string {
	return fmt.Sprintf("sked-calendar-%s.ics", task.DateOf(now))
}

func icsTime(t time.Time) string {
	return t.UTC().Format(stampISO)
}

func escapeText(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}
