package registry

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"tableflip.dev/sked/pkg/task"
)

func TestSortForDisplayProperties(t *testing.T) {
	urgencies := task.Urgencies()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		in := make([]*task.Task, 0, n)
		for i := 0; i < n; i++ {
			day := rapid.IntRange(1, 28).Draw(t, fmt.Sprintf("day%d", i))
			hour := rapid.IntRange(0, 23).Draw(t, fmt.Sprintf("hour%d", i))
			u := urgencies[rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("urgency%d", i))]
			in = append(in, &task.Task{
				ID:        fmt.Sprintf("t%d", i),
				ClientID:  "c1",
				Title:     "x",
				Date:      task.Date(fmt.Sprintf("2024-06-%02d", day)),
				StartTime: task.Clock(fmt.Sprintf("%02d:00", hour)),
				Urgency:   u,
			})
		}

		out := SortForDisplay(in)

		if len(out) != len(in) {
			t.Fatalf("length changed: %d -> %d", len(in), len(out))
		}
		seen := map[string]bool{}
		for _, tk := range out {
			if seen[tk.ID] {
				t.Fatalf("duplicate id %s in output", tk.ID)
			}
			seen[tk.ID] = true
		}

		for i := 1; i < len(out); i++ {
			a, b := out[i-1], out[i]
			if a.Date != b.Date {
				if a.Date > b.Date {
					t.Fatalf("dates out of order: %s after %s", a.Date, b.Date)
				}
				continue
			}
			if a.Urgency.Rank() != b.Urgency.Rank() {
				if a.Urgency.Rank() < b.Urgency.Rank() {
					t.Fatalf("urgency out of order on %s: %s after %s", a.Date, a.Urgency, b.Urgency)
				}
				continue
			}
			if a.StartTime > b.StartTime {
				t.Fatalf("start times out of order: %s after %s", a.StartTime, b.StartTime)
			}
		}
	})
}
