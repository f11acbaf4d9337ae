package calendar

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"tableflip.dev/sked/pkg/task"
)

func names(id string) string {
	return map[string]string{"c1": "Acme", "c2": "Beta"}[id]
}

func mkTask(id, clientID string, d task.Date, start task.Clock, title string) *task.Task {
	return &task.Task{ID: id, ClientID: clientID, Title: title, Date: d, StartTime: start, Urgency: task.Medium}
}

// June 2022 is a 30 day month starting on a Wednesday, which exercises both
// the leading and trailing fill.
func TestGridShape(t *testing.T) {
	cells := Grid(2022, time.June, nil, "", names, time.Time{})
	if len(cells) != GridSize {
		t.Fatalf("expected %d cells, got %d", GridSize, len(cells))
	}

	// Three leading cells carry the last days of May.
	for i, want := range []int{29, 30, 31} {
		if !cells[i].OtherMonth || cells[i].Day != want {
			t.Fatalf("leading cell %d: expected other-month day %d, got %+v", i, want, cells[i])
		}
	}
	// Thirty current-month cells follow, numbered 1..30.
	for day := 1; day <= 30; day++ {
		c := cells[2+day]
		if c.OtherMonth || c.Day != day {
			t.Fatalf("day %d: got %+v", day, c)
		}
	}
	// Nine trailing cells spill into July.
	for i := 33; i < GridSize; i++ {
		if !cells[i].OtherMonth || cells[i].Day != i-32 {
			t.Fatalf("trailing cell %d: got %+v", i, cells[i])
		}
	}
}

func TestGridMarksToday(t *testing.T) {
	today := time.Date(2022, time.June, 15, 10, 0, 0, 0, time.Local)
	cells := Grid(2022, time.June, nil, "", names, today)

	marked := 0
	for _, c := range cells {
		if c.Today {
			marked++
			if c.Day != 15 || c.OtherMonth {
				t.Fatalf("today landed on the wrong cell: %+v", c)
			}
		}
	}
	if marked != 1 {
		t.Fatalf("expected exactly one today cell, got %d", marked)
	}

	// A different month never marks today.
	for _, c := range Grid(2022, time.July, nil, "", names, today) {
		if c.Today {
			t.Fatal("today leaked into a different month")
		}
	}
}

func TestGridClientFilter(t *testing.T) {
	tasks := []*task.Task{
		mkTask("t1", "c1", "2022-06-10", "09:00", "a"),
		mkTask("t2", "c2", "2022-06-10", "10:00", "b"),
	}

	all := Grid(2022, time.June, tasks, "all", names, time.Time{})
	if got := len(all[2+10].Tasks); got != 2 {
		t.Fatalf("wildcard filter: expected 2 tasks, got %d", got)
	}

	only := Grid(2022, time.June, tasks, "c2", names, time.Time{})
	day := only[2+10]
	if len(day.Tasks) != 1 || day.Tasks[0].ID != "t2" {
		t.Fatalf("client filter: got %+v", day.Tasks)
	}
}

func TestPreviewTiers(t *testing.T) {
	single := []*task.Task{mkTask("t1", "c1", "2022-06-10", "09:00", "Standup")}
	if got := preview(single, names); len(got) != 1 || got[0] != "1 task - Acme" {
		t.Fatalf("single task preview: %v", got)
	}

	three := []*task.Task{
		mkTask("t1", "c1", "2022-06-10", "09:00", "Standup"),
		mkTask("t2", "c1", "2022-06-10", "13:30", "Review"),
		mkTask("t3", "c2", "2022-06-10", "16:00", "Sync"),
	}
	got := preview(three, names)
	want := []string{
		"9:00 AM - Standup (Acme)",
		"1:30 PM - Review (Acme)",
		"4:00 PM - Sync (Beta)",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	four := append(three, mkTask("t4", "c1", "2022-06-10", "17:00", "More"))
	if got := preview(four, names); len(got) != 1 || got[0] != "4 tasks scheduled" {
		t.Fatalf("overflow preview: %v", got)
	}

	if got := preview(nil, names); got != nil {
		t.Fatalf("empty day preview must be nil, got %v", got)
	}
}

func TestGridInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(1970, 2100).Draw(t, "year")
		month := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))

		cells := Grid(year, month, nil, "", nil, time.Time{})
		if len(cells) != GridSize {
			t.Fatalf("expected %d cells, got %d", GridSize, len(cells))
		}

		first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		leading := int(first.Weekday())
		daysInMonth := first.AddDate(0, 1, -1).Day()

		for i, c := range cells {
			inMonth := i >= leading && i < leading+daysInMonth
			if c.OtherMonth == inMonth {
				t.Fatalf("cell %d: month membership wrong: %+v", i, c)
			}
			if inMonth && c.Day != i-leading+1 {
				t.Fatalf("cell %d: expected day %d, got %d", i, i-leading+1, c.Day)
			}
		}
	})
}

func TestGridTasksLandOnTheirDate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		day := rapid.IntRange(1, 30).Draw(t, "day")
		d := task.Date(fmt.Sprintf("2022-06-%02d", day))
		tasks := []*task.Task{mkTask("t1", "c1", d, "09:00", "x")}

		cells := Grid(2022, time.June, tasks, "", nil, time.Time{})
		for i, c := range cells {
			if c.HasTasks() != (!c.OtherMonth && c.Day == day) {
				t.Fatalf("cell %d: task placement wrong for day %d", i, day)
			}
		}
	})
}
