// Package app owns the session state: the loaded registries, the reminder
// scheduler, and the store they all write through. It exists so nothing else
// holds ambient globals; open a Service at startup, close it on the way out.
package app

import (
	"errors"
	"io"
	"time"

	"tableflip.dev/sked/pkg/backup"
	"tableflip.dev/sked/pkg/calendar"
	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/ics"
	"tableflip.dev/sked/pkg/registry"
	"tableflip.dev/sked/pkg/reminder"
	"tableflip.dev/sked/pkg/store"
	"tableflip.dev/sked/pkg/task"
)

var (
	// ErrNoClients blocks task creation while the client registry is empty;
	// every task must reference a client that exists.
	ErrNoClients = errors.New("app: add a client before creating tasks")
	// ErrUnknownClient blocks tasks referencing ids the registry has never
	// seen.
	ErrUnknownClient = errors.New("app: no such client")
	// ErrAborted reports a declined cascade-delete confirmation. Nothing
	// was mutated.
	ErrAborted = errors.New("app: aborted")
)

// Service provides the high-level scheduling operations the CLI consumes.
type Service struct {
	Store     store.Persistence
	Clients   *registry.Clients
	Tasks     *registry.Tasks
	Reminders *reminder.Scheduler
}

// Open loads persistence from config and builds a running session. All
// pending reminders are rebuilt from the task registry: timers do not
// survive a restart.
func Open(cfg store.Config, n reminder.Notifier) (*Service, error) {
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	granted := func() bool { return true }
	if cfg != nil {
		granted = cfg.Notify
	} else if loaded, err := store.LoadConfig(); err == nil {
		granted = loaded.Notify
	}
	return NewService(p, n, granted), nil
}

// NewService builds a session over an already-open store.
func NewService(p store.Persistence, n reminder.Notifier, granted func() bool) *Service {
	s := &Service{
		Store:   p,
		Clients: registry.LoadClients(p),
		Tasks:   registry.LoadTasks(p),
	}
	s.Reminders = reminder.New(n, granted, s.Clients.NameFor)
	s.Reminders.RescheduleAll(s.Tasks.All())
	return s
}

// Close cancels every pending reminder. The store needs no teardown.
func (s *Service) Close() {
	if s.Reminders != nil {
		s.Reminders.Close()
	}
}

// AddClient stores a new client.
func (s *Service) AddClient(fields client.Client) (*client.Client, error) {
	return s.Clients.Add(fields)
}

// UpdateClient edits a client in place.
func (s *Service) UpdateClient(id string, fields client.Client) (*client.Client, error) {
	return s.Clients.Update(id, fields)
}

// RemoveClient deletes a client. When dependent tasks exist the confirm
// callback is consulted with the client name and task count first; declining
// aborts with no mutation at all. A client with no tasks is removed without
// ceremony. Reminders for cascaded tasks are cancelled before their records
// go away.
func (s *Service) RemoveClient(id string, confirm func(name string, taskCount int) bool) (*client.Client, []string, error) {
	c := s.Clients.Get(id)
	if c == nil {
		return nil, nil, registry.ErrNotFound
	}
	cascade := s.Tasks.IDsForClient(id)
	if len(cascade) > 0 {
		if confirm == nil || !confirm(c.Name, len(cascade)) {
			return nil, nil, ErrAborted
		}
	}

	var warn error
	for _, taskID := range cascade {
		s.Reminders.CancelOne(taskID)
	}
	if _, err := s.Tasks.RemoveForClient(id); err != nil {
		warn = err
	}
	removed, err := s.Clients.Remove(id)
	if err != nil && !errors.Is(err, registry.ErrNotPersisted) {
		return nil, nil, err
	}
	if err != nil {
		warn = err
	}
	return removed, cascade, warn
}

// AddTask stores a new task and arms its reminder. Creation is forbidden
// until at least one client exists, and the referenced client must be real.
func (s *Service) AddTask(fields task.Task) (*task.Task, error) {
	if s.Clients.Len() == 0 {
		return nil, ErrNoClients
	}
	if fields.ClientID != "" && s.Clients.Get(fields.ClientID) == nil {
		return nil, ErrUnknownClient
	}
	t, err := s.Tasks.Add(fields)
	if t != nil {
		s.Reminders.ScheduleOne(t)
	}
	return t, err
}

// UpdateTask edits a task, invalidating and rescheduling its reminder.
func (s *Service) UpdateTask(id string, fields task.Task) (*task.Task, error) {
	if fields.ClientID != "" && s.Clients.Get(fields.ClientID) == nil {
		return nil, ErrUnknownClient
	}
	t, err := s.Tasks.Update(id, fields)
	if t != nil {
		s.Reminders.CancelOne(id)
		s.Reminders.ScheduleOne(t)
	}
	return t, err
}

// RemoveTask deletes a task. The reminder is cancelled before the record is
// removed so a timer can never fire on a record mid-deletion.
func (s *Service) RemoveTask(id string) (*task.Task, error) {
	if s.Tasks.Get(id) == nil {
		return nil, registry.ErrNotFound
	}
	s.Reminders.CancelOne(id)
	return s.Tasks.Remove(id)
}

// ListTasks filters and display-sorts the task collection.
func (s *Service) ListTasks(view registry.View, clientID string) []*task.Task {
	return registry.SortForDisplay(s.Tasks.Filtered(view, clientID))
}

// Grid builds the month view for a client filter.
func (s *Service) Grid(year int, month time.Month, clientID string, today time.Time) []calendar.Cell {
	return calendar.Grid(year, month, s.Tasks.All(), clientID, s.Clients.NameFor, today)
}

// ExportBackup writes the full JSON backup.
func (s *Service) ExportBackup(w io.Writer) error {
	return backup.Export(w, s.Tasks.All(), s.Clients.List())
}

// ExportICS writes the calendar stream.
func (s *Service) ExportICS(w io.Writer) error {
	return ics.Export(w, registry.SortForDisplay(s.Tasks.All()), s.Clients.NameFor, time.Now())
}

// Import merges a backup file. The file is validated before anything is
// touched; duplicate ids are skipped; every reminder is rebuilt afterwards
// because a bulk merge invalidates the timer set wholesale.
func (s *Service) Import(r io.Reader) (tasksAdded, clientsAdded int, err error) {
	a, err := backup.Decode(r)
	if err != nil {
		return 0, 0, err
	}
	var warn error
	if clientsAdded, err = s.Clients.Merge(a.Clients); err != nil {
		warn = err
	}
	if tasksAdded, err = s.Tasks.Merge(a.Tasks); err != nil {
		warn = err
	}
	s.Reminders.RescheduleAll(s.Tasks.All())
	return tasksAdded, clientsAdded, warn
}
