package backup

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/task"
)

func TestExportDecodeRoundTrip(t *testing.T) {
	tasks := []*task.Task{
		{ID: "t1", ClientID: "c1", Title: "Review", Date: "2024-06-05", StartTime: "14:30", Urgency: task.High, Reminder: 30},
	}
	clients := []*client.Client{
		{ID: "c1", Name: "Acme", Email: "ops@acme.test"},
	}

	var buf bytes.Buffer
	if err := Export(&buf, tasks, clients); err != nil {
		t.Fatalf("export: %v", err)
	}

	a, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(a.Tasks) != 1 || len(a.Clients) != 1 {
		t.Fatalf("round trip lost records: %d tasks, %d clients", len(a.Tasks), len(a.Clients))
	}
	got := a.Tasks[0]
	if got.ID != "t1" || got.Date != "2024-06-05" || got.Urgency != task.High || got.Reminder != 30 {
		t.Fatalf("task mangled: %+v", got)
	}
	if a.Clients[0].Name != "Acme" {
		t.Fatalf("client mangled: %+v", a.Clients[0])
	}
}

func TestExportEmptyCollections(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, nil, nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"tasks": []`) {
		t.Fatalf("nil tasks must export as an empty array:\n%s", out)
	}
	if !strings.Contains(out, `"clients": []`) {
		t.Fatalf("nil clients must export as an empty array:\n%s", out)
	}
}

func TestDecodeRejectsMissingTasksField(t *testing.T) {
	for _, in := range []string{`{}`, `{"clients":[]}`, `{"tasks":null}`} {
		if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrNoTasks) {
			t.Fatalf("input %q: expected ErrNoTasks, got %v", in, err)
		}
	}
}

func TestDecodeRejectsMalformedFile(t *testing.T) {
	for _, in := range []string{``, `{`, `[]`, `"tasks"`, `{"tasks":"nope"}`} {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Fatalf("input %q: expected a decode error", in)
		}
	}
}

func TestDecodeToleratesMissingClients(t *testing.T) {
	a, err := Decode(strings.NewReader(`{"tasks":[]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Clients != nil {
		t.Fatalf("expected nil clients, got %v", a.Clients)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.June, 5, 13, 0, 0, 0, time.Local)
	if got := Filename(now); got != "sked-backup-2024-06-05.json" {
		t.Fatalf("got %q", got)
	}
}
