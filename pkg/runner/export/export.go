package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/backup"
	"tableflip.dev/sked/pkg/ics"
)

// Export writes the full JSON backup, or the ICS calendar stream when ICS is
// set. An empty Output picks a dated filename in the working directory; "-"
// writes to stdout.
type Export struct {
	ICS    bool
	Output string

	Service *app.Service
}

func (e *Export) Do(ctx context.Context) error {
	name := e.Output
	if name == "" {
		if e.ICS {
			name = ics.Filename(time.Now())
		} else {
			name = backup.Filename(time.Now())
		}
	}

	if name == "-" {
		return e.write(os.Stdout)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	if err := e.write(f); err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", name)
	return nil
}

func (e *Export) write(f *os.File) error {
	if e.ICS {
		return e.Service.ExportICS(f)
	}
	return e.Service.ExportBackup(f)
}
