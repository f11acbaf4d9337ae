package remove

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/registry"
)

// Task deletes a task by id. Its reminder is cancelled before the record is
// removed.
type Task struct {
	ID string

	Service *app.Service
}

func (r *Task) Do(ctx context.Context) error {
	t, err := r.Service.RemoveTask(r.ID)
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return err
	}
	if errors.Is(err, registry.ErrNotPersisted) {
		warn("task removed for this session only; writing to disk failed")
	}
	fmt.Printf("Removed task %q\n", t.Title)
	return nil
}

// Client deletes a client by id, cascading to its tasks after an explicit
// confirmation naming the affected count. A client with no tasks is removed
// without a prompt.
type Client struct {
	ID  string
	Yes bool
	// In defaults to stdin; tests swap it out.
	In io.Reader

	Service *app.Service
}

func (r *Client) Do(ctx context.Context) error {
	confirm := func(name string, taskCount int) bool {
		if r.Yes {
			return true
		}
		in := r.In
		if in == nil {
			in = os.Stdin
		}
		fmt.Printf("%s has %d task(s). Deleting the client also deletes all of them. Continue? [y/N] ", name, taskCount)
		line, _ := bufio.NewReader(in).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}

	c, cascaded, err := r.Service.RemoveClient(r.ID, confirm)
	if errors.Is(err, app.ErrAborted) {
		fmt.Println("Aborted; nothing deleted.")
		return nil
	}
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return err
	}
	if errors.Is(err, registry.ErrNotPersisted) {
		warn("removal applied for this session only; writing to disk failed")
	}
	if len(cascaded) > 0 {
		fmt.Printf("Removed client %q and %d task(s)\n", c.Name, len(cascaded))
	} else {
		fmt.Printf("Removed client %q\n", c.Name)
	}
	return nil
}

func warn(msg string) {
	w := color.New(color.FgYellow)
	_, _ = w.Printf("warning: %s\n", msg)
}
