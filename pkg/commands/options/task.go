// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/task"
)

// TaskOptions captures the task field flags shared by add and edit.
type TaskOptions struct {
	ClientID    string
	Title       string
	Description string
	Date        string
	Start       string
	End         string
	Urgency     string
	Reminder    int
}

// AddTaskArgs wires the task field flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.ClientID, "client", "c", "",
		"Client id the task belongs to.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Task date, zero-padded ISO form: --date="2024-06-05".`)
	cmd.Flags().StringVarP(&o.Start, "start", "s", "",
		`Start time, 24h form: --start="14:30".`)
	cmd.Flags().StringVarP(&o.End, "end", "e", "",
		"Optional end time, 24h form.")
	cmd.Flags().StringVarP(&o.Urgency, "urgency", "u", "",
		"One of low, medium, high, urgent.")
	cmd.Flags().IntVarP(&o.Reminder, "reminder", "r", 0,
		"Minutes before start to fire a reminder; 0 disables it.")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Optional description.")
}

// Fields builds a new task from the flags, applying defaults for a fresh
// record: today's date, the current time, medium urgency.
func (o *TaskOptions) Fields() (task.Task, error) {
	t := task.Task{
		ClientID:    o.ClientID,
		Title:       o.Title,
		Description: o.Description,
		Urgency:     task.Medium,
		Reminder:    o.Reminder,
	}
	t.Date = task.Today()
	if o.Date != "" {
		d, err := task.ParseDate(o.Date)
		if err != nil {
			return task.Task{}, err
		}
		t.Date = d
	}
	if o.Start != "" {
		c, err := task.ParseClock(o.Start)
		if err != nil {
			return task.Task{}, err
		}
		t.StartTime = c
	}
	if o.End != "" {
		c, err := task.ParseClock(o.End)
		if err != nil {
			return task.Task{}, err
		}
		t.EndTime = c
	}
	if o.Urgency != "" {
		u, err := task.ParseUrgency(o.Urgency)
		if err != nil {
			return task.Task{}, err
		}
		t.Urgency = u
	}
	return t, nil
}

// Overlay applies only the flags the user set on top of an existing record,
// for edits.
func (o *TaskOptions) Overlay(cmd *cobra.Command, existing task.Task) (task.Task, error) {
	t := existing
	if o.ClientID != "" {
		t.ClientID = o.ClientID
	}
	if o.Title != "" {
		t.Title = o.Title
	}
	if cmd.Flags().Changed("description") {
		t.Description = o.Description
	}
	if o.Date != "" {
		d, err := task.ParseDate(o.Date)
		if err != nil {
			return task.Task{}, err
		}
		t.Date = d
	}
	if o.Start != "" {
		c, err := task.ParseClock(o.Start)
		if err != nil {
			return task.Task{}, err
		}
		t.StartTime = c
	}
	if cmd.Flags().Changed("end") {
		if o.End == "" {
			t.EndTime = ""
		} else {
			c, err := task.ParseClock(o.End)
			if err != nil {
				return task.Task{}, err
			}
			t.EndTime = c
		}
	}
	if o.Urgency != "" {
		u, err := task.ParseUrgency(o.Urgency)
		if err != nil {
			return task.Task{}, err
		}
		t.Urgency = u
	}
	if cmd.Flags().Changed("reminder") {
		t.Reminder = o.Reminder
	}
	return t, nil
}
