// Package backup reads and writes the full JSON backup: one object holding
// both collections.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/task"
)

// Archive is the export file shape.
type Archive struct {
	Tasks   []*task.Task     `json:"tasks"`
	Clients []*client.Client `json:"clients"`
}

// ErrNoTasks rejects files missing the tasks field. A reject happens before
// any merging, so a bad file never leaves partial state behind.
var ErrNoTasks = errors.New("backup: file has no tasks field")

// Export writes the archive as indented JSON.
func Export(w io.Writer, tasks []*task.Task, clients []*client.Client) error {
	a := Archive{Tasks: tasks, Clients: clients}
	if a.Tasks == nil {
		a.Tasks = []*task.Task{}
	}
	if a.Clients == nil {
		a.Clients = []*client.Client{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&a)
}

// Filename names a backup file with the current date.
func Filename(now time.Time) string {
	return fmt.Sprintf("sked-backup-%s.json", task.DateOf(now))
}

// Decode parses and validates an import file. The tasks field must be
// present and must be an array; clients may be absent.
func Decode(r io.Reader) (*Archive, error) {
	var a Archive
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("backup: malformed file: %w", err)
	}
	if a.Tasks == nil {
		return nil, ErrNoTasks
	}
	return &a, nil
}
