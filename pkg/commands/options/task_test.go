package options

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/task"
)

func taskCmd(o *TaskOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "x"}
	AddTaskArgs(cmd, o)
	return cmd
}

func TestTaskFieldsDefaults(t *testing.T) {
	o := &TaskOptions{ClientID: "c1", Title: "Review"}
	taskCmd(o)

	got, err := o.Fields()
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if got.Date != task.Today() {
		t.Fatalf("expected today's date, got %q", got.Date)
	}
	if got.Urgency != task.Medium {
		t.Fatalf("expected medium default, got %q", got.Urgency)
	}
}

func TestTaskFieldsRejectsLooseInput(t *testing.T) {
	for _, o := range []*TaskOptions{
		{Date: "2024-6-5"},
		{Start: "9:30"},
		{End: "25:00"},
		{Urgency: "severe"},
	} {
		if _, err := o.Fields(); err == nil {
			t.Fatalf("expected %+v to be rejected", o)
		}
	}
}

func TestTaskOverlayKeepsUnsetFields(t *testing.T) {
	o := &TaskOptions{}
	cmd := taskCmd(o)
	if err := cmd.Flags().Set("start", "15:00"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	existing := task.Task{
		ID: "t1", ClientID: "c1", Title: "Review",
		Date: "2024-06-05", StartTime: "14:30", EndTime: "16:00",
		Urgency: task.High, Reminder: 30,
	}
	got, err := o.Overlay(cmd, existing)
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if got.StartTime != "15:00" {
		t.Fatalf("start not applied: %q", got.StartTime)
	}
	if got.Date != "2024-06-05" || got.EndTime != "16:00" || got.Urgency != task.High || got.Reminder != 30 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestTaskOverlayCanClearEndAndReminder(t *testing.T) {
	o := &TaskOptions{}
	cmd := taskCmd(o)
	if err := cmd.Flags().Set("end", ""); err != nil {
		t.Fatalf("set end: %v", err)
	}
	if err := cmd.Flags().Set("reminder", "0"); err != nil {
		t.Fatalf("set reminder: %v", err)
	}

	existing := task.Task{
		ID: "t1", ClientID: "c1", Title: "Review",
		Date: "2024-06-05", StartTime: "14:30", EndTime: "16:00",
		Urgency: task.High, Reminder: 30,
	}
	got, err := o.Overlay(cmd, existing)
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if !got.EndTime.IsZero() {
		t.Fatalf("end not cleared: %q", got.EndTime)
	}
	if got.Reminder != 0 {
		t.Fatalf("reminder not cleared: %d", got.Reminder)
	}
}

func TestClientOverlayCanClearContactFields(t *testing.T) {
	o := &ClientOptions{}
	cmd := &cobra.Command{Use: "x"}
	AddClientArgs(cmd, o)
	if err := cmd.Flags().Set("email", ""); err != nil {
		t.Fatalf("set email: %v", err)
	}

	existing := client.Client{ID: "c1", Name: "Acme", Email: "ops@acme.test", Phone: "555-0100"}
	got := o.Overlay(cmd, existing)
	if got.Email != "" {
		t.Fatalf("email not cleared: %q", got.Email)
	}
	if got.Name != "Acme" || got.Phone != "555-0100" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}
