package add

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/printers"
	"tableflip.dev/sked/pkg/registry"
	"tableflip.dev/sked/pkg/task"
)

// Task adds a new task to the schedule.
type Task struct {
	Fields task.Task

	Service *app.Service
}

func (n *Task) Do(ctx context.Context) error {
	t, err := n.Service.AddTask(n.Fields)
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return err
	}
	if errors.Is(err, registry.ErrNotPersisted) {
		warn("task saved for this session only; writing to disk failed")
	}

	now := time.Now()
	if t.Started(now) {
		warn("task time has already passed")
	} else if t.StartsWithin(10*time.Minute, now) {
		warn("task is scheduled within 10 minutes")
	}

	pp := printers.PrettyPrint{}
	pp.Title("Task added")
	pp.Tasks(n.Service.Clients.NameFor, t)
	return nil
}

// Client adds a new client.
type Client struct {
	Fields client.Client

	Service *app.Service
}

func (n *Client) Do(ctx context.Context) error {
	c, err := n.Service.AddClient(n.Fields)
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return err
	}
	if errors.Is(err, registry.ErrNotPersisted) {
		warn("client saved for this session only; writing to disk failed")
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("Client added")
	pp.Clients([]*client.Client{c}, func(id string) int { return len(n.Service.Tasks.IDsForClient(id)) })
	return nil
}

func warn(msg string) {
	w := color.New(color.FgYellow)
	_, _ = w.Printf("warning: %s\n", msg)
}
