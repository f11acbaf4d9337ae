package edit

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/printers"
	"tableflip.dev/sked/pkg/registry"
	"tableflip.dev/sked/pkg/task"
)

// Task replaces a task's fields. The pending reminder is invalidated and
// rescheduled by the service.
type Task struct {
	ID     string
	Fields task.Task

	Service *app.Service
}

func (e *Task) Do(ctx context.Context) error {
	t, err := e.Service.UpdateTask(e.ID, e.Fields)
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return err
	}
	if errors.Is(err, registry.ErrNotPersisted) {
		warn("task updated for this session only; writing to disk failed")
	}

	pp := printers.PrettyPrint{}
	pp.Title("Task updated")
	pp.Tasks(e.Service.Clients.NameFor, t)
	return nil
}

// Client replaces a client's fields in place; identity is preserved.
type Client struct {
	ID     string
	Fields client.Client

	Service *app.Service
}

func (e *Client) Do(ctx context.Context) error {
	c, err := e.Service.UpdateClient(e.ID, e.Fields)
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return err
	}
	if errors.Is(err, registry.ErrNotPersisted) {
		warn("client updated for this session only; writing to disk failed")
	}

	pp := printers.PrettyPrint{}
	pp.Title("Client updated")
	pp.Clients([]*client.Client{c}, func(id string) int { return len(e.Service.Tasks.IDsForClient(id)) })
	return nil
}

func warn(msg string) {
	w := color.New(color.FgYellow)
	_, _ = w.Printf("warning: %s\n", msg)
}
