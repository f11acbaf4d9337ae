// Package calendar builds the month-view grid as plain data. Rendering to a
// terminal (or anything else) is a separate consumer; see pkg/printers.
package calendar

import (
	"fmt"
	"time"

	"tableflip.dev/sked/pkg/task"
)

// GridSize is the fixed cell count of a month view: 6 rows of 7 days,
// Sunday first.
const GridSize = 42

// Cell describes one day slot in the month grid.
type Cell struct {
	// Day is the day-of-month number shown in the slot. For OtherMonth
	// cells it belongs to the previous or next month.
	Day        int
	OtherMonth bool
	Today      bool
	// Tasks holds the tasks dated on this day after the client filter,
	// empty for OtherMonth cells.
	Tasks []*task.Task
	// Preview carries the summary lines for the day, already tiered.
	Preview []string
}

// HasTasks reports whether any tasks landed on the cell.
func (c Cell) HasTasks() bool {
	return len(c.Tasks) > 0
}

// Grid lays out the given month. The client filter narrows tasks to one
// client id; task.AllClients semantics are handled by passing "" or "all".
// names resolves client ids for the preview lines and may be nil.
func Grid(year int, month time.Month, tasks []*task.Task, clientID string, names func(string) string, today time.Time) []Cell {
	if names == nil {
		names = func(string) string { return "" }
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday()) // Sunday == 0
	prevMonthLastDay := first.AddDate(0, 0, -1).Day()

	byDate := make(map[task.Date][]*task.Task)
	for _, t := range tasks {
		if clientID != "" && clientID != "all" && t.ClientID != clientID {
			continue
		}
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	cells := make([]Cell, 0, GridSize)
	for i := leading - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: prevMonthLastDay - i, OtherMonth: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := task.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		dayTasks := byDate[date]
		cells = append(cells, Cell{
			Day:     day,
			Today:   sameDay(year, month, day, today),
			Tasks:   dayTasks,
			Preview: preview(dayTasks, names),
		})
	}
	for day := 1; len(cells) < GridSize; day++ {
		cells = append(cells, Cell{Day: day, OtherMonth: true})
	}
	return cells
}

// preview applies the display tiering: nothing for empty days, the client
// name for a single task, per-task lines up to three tasks, and a count line
// beyond that.
func preview(tasks []*task.Task, names func(string) string) []string {
	switch n := len(tasks); {
	case n == 0:
		return nil
	case n == 1:
		return []string{fmt.Sprintf("1 task - %s", names(tasks[0].ClientID))}
	case n <= 3:
		lines := make([]string, 0, n)
		for _, t := range tasks {
			line := fmt.Sprintf("%s - %s", t.StartTime.Display(), t.Title)
			if name := names(t.ClientID); name != "" {
				line = fmt.Sprintf("%s (%s)", line, name)
			}
			lines = append(lines, line)
		}
		return lines
	default:
		return []string{fmt.Sprintf("%d tasks scheduled", n)}
	}
}

func sameDay(year int, month time.Month, day int, ref time.Time) bool {
	return ref.Year() == year && ref.Month() == month && ref.Day() == day
}
