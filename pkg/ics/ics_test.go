package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tableflip.dev/sked/pkg/task"
)

func names(id string) string {
	if id == "c1" {
		return "Acme"
	}
	return "Unknown Client"
}

func export(t *testing.T, tasks []*task.Task) string {
	t.Helper()
	var buf bytes.Buffer
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	if err := Export(&buf, tasks, names, now); err != nil {
		t.Fatalf("export: %v", err)
	}
	return buf.String()
}

func TestExportEnvelope(t *testing.T) {
	out := export(t, nil)
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//sked//EN\nCALSCALE:GREGORIAN\n") {
		t.Fatalf("bad header:\n%s", out)
	}
	if !strings.HasSuffix(out, "END:VCALENDAR") {
		t.Fatalf("stream must end with END:VCALENDAR and no trailing newline:\n%q", out)
	}
}

func TestExportEvent(t *testing.T) {
	out := export(t, []*task.Task{{
		ID:        "t1",
		ClientID:  "c1",
		Title:     "Review",
		Date:      "2024-06-05",
		StartTime: "14:30",
		EndTime:   "15:30",
		Urgency:   task.High,
	}})

	for _, want := range []string{
		"BEGIN:VEVENT\n",
		"UID:t1@sked\n",
		"SUMMARY:Review - Acme\n",
		"PRIORITY:3\n",
		"END:VEVENT\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "VALARM") {
		t.Fatal("no alarm expected without a reminder")
	}

	// Start and end stamps are UTC renderings of the local moments.
	tk := &task.Task{Date: "2024-06-05", StartTime: "14:30", EndTime: "15:30"}
	wantStart := "DTSTART:" + tk.StartsAt().UTC().Format("20060102T150405Z") + "\n"
	wantEnd := "DTEND:" + tk.EndsAt().UTC().Format("20060102T150405Z") + "\n"
	if !strings.Contains(out, wantStart) || !strings.Contains(out, wantEnd) {
		t.Fatalf("missing %q / %q in:\n%s", wantStart, wantEnd, out)
	}
}

func TestExportDefaultsEndToOneHour(t *testing.T) {
	out := export(t, []*task.Task{{
		ID: "t1", ClientID: "c1", Title: "Open ended",
		Date: "2024-06-05", StartTime: "14:30", Urgency: task.Low,
	}})

	tk := &task.Task{Date: "2024-06-05", StartTime: "14:30"}
	want := "DTEND:" + tk.StartsAt().Add(time.Hour).UTC().Format("20060102T150405Z") + "\n"
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q in:\n%s", want, out)
	}
}

func TestExportAlarm(t *testing.T) {
	out := export(t, []*task.Task{{
		ID: "t1", ClientID: "c1", Title: "Review",
		Date: "2024-06-05", StartTime: "14:30", Urgency: task.Urgent, Reminder: 30,
	}})

	if !strings.Contains(out, "BEGIN:VALARM\nTRIGGER:-PT30M\nACTION:DISPLAY\nDESCRIPTION:Review - Acme\nEND:VALARM\n") {
		t.Fatalf("missing alarm block in:\n%s", out)
	}
	if !strings.Contains(out, "PRIORITY:1\n") {
		t.Fatalf("urgent must map to priority 1:\n%s", out)
	}
}

func TestExportDescriptionEscapesNewlines(t *testing.T) {
	out := export(t, []*task.Task{{
		ID: "t1", ClientID: "c1", Title: "Review",
		Description: "line one\nline two",
		Date:        "2024-06-05", StartTime: "14:30", Urgency: task.Medium,
	}})

	if !strings.Contains(out, "DESCRIPTION:Client: Acme\\nline one\\nline two\n") {
		t.Fatalf("description not escaped:\n%s", out)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.June, 5, 13, 0, 0, 0, time.Local)
	if got := Filename(now); got != "sked-calendar-2024-06-05.ics" {
		t.Fatalf("got %q", got)
	}
}
