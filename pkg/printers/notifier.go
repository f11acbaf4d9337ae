package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/sked/pkg/task"
)

// Notifier prints reminder notifications to the terminal. It satisfies
// reminder.Notifier.
type Notifier struct{}

func (Notifier) Notify(t *task.Task, clientName string) {
	title := color.New(color.Bold, color.FgHiYellow)
	body := color.New()

	_, _ = title.Printf("\nReminder: %s\n", t.Title)
	_, _ = body.Printf("Client: %s\n", clientName)
	if t.Description != "" {
		_, _ = body.Println(t.Description)
	} else {
		_, _ = body.Printf("Task starts at %s\n", t.StartTime.Display())
	}
	fmt.Println("")
}
