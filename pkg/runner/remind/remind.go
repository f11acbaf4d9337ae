package remind

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/sked/pkg/app"
)

// Remind rebuilds every pending reminder from the task registry and keeps
// the process alive so the timers can fire. Timers are in-memory best
// effort; leaving this process drops them.
type Remind struct {
	Service *app.Service
	Granted bool
}

func (r *Remind) Do(ctx context.Context) error {
	if !r.Granted {
		w := color.New(color.FgYellow)
		_, _ = w.Println("notifications are disabled; set notify: true in .sked or SKED_NOTIFY=true")
		return nil
	}

	r.Service.Reminders.RescheduleAll(r.Service.Tasks.All())

	pending := r.Service.Reminders.Active()
	if pending == 0 {
		fmt.Println("No upcoming reminders.")
		return nil
	}
	fmt.Printf("Watching %d reminder(s). Ctrl-C to stop.\n", pending)

	<-ctx.Done()
	r.Service.Reminders.Close()
	return nil
}
