package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

func urgencyColor(u task.Urgency) *color.Color {
	switch u {
	case task.Urgent:
		return color.New(color.FgHiRed, color.Bold)
	case task.High:
		return color.New(color.FgRed)
	case task.Medium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// Tasks prints a display-sorted task list. names resolves client ids to
// display names.
func (pp *PrettyPrint) Tasks(names func(string) string, tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	badge := color.New(color.FgCyan)
	meta := color.New(color.Faint)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, tk := range tasks {
		if pp.ShowID {
			_, _ = id.Println(tk.ID)
		}
		_, _ = urgencyColor(tk.Urgency).Printf("[%s] ", tk.Urgency)
		_, _ = badge.Printf("%s ", names(tk.ClientID))
		_, _ = t.Println(tk.Title)
		if tk.Description != "" {
			_, _ = meta.Printf("    %s\n", tk.Description)
		}
		when := fmt.Sprintf("    %s  %s", tk.Date.Display(), tk.StartTime.Display())
		if !tk.EndTime.IsZero() {
			when += " - " + tk.EndTime.Display()
		}
		if r := reminderText(tk.Reminder); r != "" {
			when += "  " + r
		}
		_, _ = meta.Println(when)
	}
	_, _ = t.Println("")
}

func reminderText(minutes int) string {
	switch {
	case minutes <= 0:
		return ""
	case minutes >= 1440:
		return fmt.Sprintf("reminder %d day before", minutes/1440)
	default:
		return fmt.Sprintf("reminder %d min before", minutes)
	}
}

// Clients prints the client table, name sorted upstream. taskCount reports
// how many tasks reference each client.
func (pp *PrettyPrint) Clients(clients []*client.Client, taskCount func(string) int) {
	if len(clients) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 50
	tbl.Wrap = true
	if pp.ShowID {
		tbl.AddRow("ID", "NAME", "EMAIL", "PHONE", "TASKS", "NOTES")
	} else {
		tbl.AddRow("NAME", "EMAIL", "PHONE", "TASKS", "NOTES")
	}
	for _, c := range clients {
		count := 0
		if taskCount != nil {
			count = taskCount(c.ID)
		}
		if pp.ShowID {
			tbl.AddRow(c.ID, c.Name, c.Email, c.Phone, count, c.Notes)
		} else {
			tbl.AddRow(c.Name, c.Email, c.Phone, count, c.Notes)
		}
	}
	fmt.Println(tbl)
	fmt.Println("")
}
