package load

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/registry"
)

// Import merges a backup file into the current collections. Bad files are
// rejected whole; duplicate ids are skipped; reminders are rebuilt.
type Import struct {
	Path string

	Service *app.Service
}

func (l *Import) Do(ctx context.Context) error {
	f, err := os.Open(l.Path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer f.Close()

	tasksAdded, clientsAdded, err := l.Service.Import(f)
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return err
	}
	if errors.Is(err, registry.ErrNotPersisted) {
		w := color.New(color.FgYellow)
		_, _ = w.Println("warning: import applied for this session only; writing to disk failed")
	}

	fmt.Printf("Imported %d task(s) and %d client(s)\n", tasksAdded, clientsAdded)
	return nil
}
