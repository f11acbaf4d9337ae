package cal

import (
	"context"
	"time"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/printers"
	"tableflip.dev/sked/pkg/task"
)

// Calendar renders the month grid for a client filter. MonthOffset walks
// whole months relative to now; zero is the current month.
type Calendar struct {
	MonthOffset int
	ClientID    string
	ShowDays    bool

	Service *app.Service
}

func (c *Calendar) Do(ctx context.Context) error {
	now := time.Now()
	target := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, c.MonthOffset, 0)

	cells := c.Service.Grid(target.Year(), target.Month(), c.ClientID, now)

	pp := printers.PrettyPrint{}
	pp.Month(target.Year(), target.Month(), cells)

	if c.ShowDays {
		for _, cell := range cells {
			if cell.OtherMonth || !cell.HasTasks() {
				continue
			}
			date := task.DateOf(time.Date(target.Year(), target.Month(), cell.Day, 0, 0, 0, 0, time.Local))
			pp.Title(date.Display())
			pp.Day(cell)
			pp.NewLine()
		}
	}
	return nil
}
