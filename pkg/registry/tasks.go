package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"tableflip.dev/sked/pkg/store"
	"tableflip.dev/sked/pkg/task"
)

// View selects which slice of the task collection a listing shows.
type View string

const (
	// ViewAll shows every task.
	ViewAll View = "all"
	// ViewUpcoming shows tasks dated today or later. Safe as a lexical
	// comparison because task.Date is strict zero-padded ISO.
	ViewUpcoming View = "upcoming"
)

// ParseView accepts "all", "upcoming", or a single urgency level.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewAll, ViewUpcoming:
		return View(s), nil
	}
	if _, err := task.ParseUrgency(s); err == nil {
		return View(s), nil
	}
	return "", fmt.Errorf("registry: unknown view %q", s)
}

// AllClients is the client filter wildcard.
const AllClients = "all"

// Tasks is the task registry.
type Tasks struct {
	p     store.Persistence
	items []*task.Task
}

// LoadTasks reads the persisted task collection. Missing or corrupt data
// yields an empty registry, never an error.
func LoadTasks(p store.Persistence) *Tasks {
	r := &Tasks{p: p}
	raw := p.Load(tasksKey, []byte("[]"))
	if err := json.Unmarshal(raw, &r.items); err != nil {
		fmt.Fprintf(os.Stderr, "registry: corrupt %s collection: %s\n", tasksKey, err)
		r.items = nil
	}
	return r
}

// Add stores a new task, assigning its id. Reminder scheduling is the
// caller's concern; the registry knows nothing about timers.
func (r *Tasks) Add(fields task.Task) (*task.Task, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	t := fields
	t.ID = uuid.NewString()
	r.items = append(r.items, &t)
	return &t, r.persist()
}

// Update replaces a task's fields in place, preserving its id.
func (r *Tasks) Update(id string, fields task.Task) (*task.Task, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	for i, t := range r.items {
		if t.ID == id {
			next := fields
			next.ID = t.ID
			r.items[i] = &next
			return &next, r.persist()
		}
	}
	return nil, ErrNotFound
}

// Remove deletes a task by id.
func (r *Tasks) Remove(id string) (*task.Task, error) {
	for i, t := range r.items {
		if t.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return t, r.persist()
		}
	}
	return nil, ErrNotFound
}

// Get looks a task up by id.
func (r *Tasks) Get(id string) *task.Task {
	for _, t := range r.items {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// All returns the tasks in storage order.
func (r *Tasks) All() []*task.Task {
	out := make([]*task.Task, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Tasks) Len() int {
	return len(r.items)
}

// ByDate returns the tasks whose date matches exactly. The result is
// unordered; filter by client downstream.
func (r *Tasks) ByDate(d task.Date) []*task.Task {
	var out []*task.Task
	for _, t := range r.items {
		if t.Date == d {
			out = append(out, t)
		}
	}
	return out
}

// IDsForClient collects the ids of every task referencing the client. The
// cascade-delete confirmation step reports this count before anything is
// removed.
func (r *Tasks) IDsForClient(clientID string) []string {
	var ids []string
	for _, t := range r.items {
		if t.ClientID == clientID {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// RemoveForClient drops every task referencing the client in one persisted
// step, so a cascade never leaves partial state behind.
func (r *Tasks) RemoveForClient(clientID string) ([]*task.Task, error) {
	var removed, kept []*task.Task
	for _, t := range r.items {
		if t.ClientID == clientID {
			removed = append(removed, t)
		} else {
			kept = append(kept, t)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}
	r.items = kept
	return removed, r.persist()
}

// Filtered narrows the collection to a view, then to one client (or
// AllClients).
func (r *Tasks) Filtered(view View, clientID string) []*task.Task {
	var out []*task.Task
	today := task.Today()
	for _, t := range r.items {
		if clientID != AllClients && clientID != "" && t.ClientID != clientID {
			continue
		}
		switch view {
		case ViewAll, "":
			// keep
		case ViewUpcoming:
			if t.Date < today {
				continue
			}
		default:
			if t.Urgency != task.Urgency(view) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SortForDisplay orders tasks by date ascending, then urgency descending
// (urgent first), then start time ascending. Ties beyond that keep their
// incoming order.
func SortForDisplay(tasks []*task.Task) []*task.Task {
	out := make([]*task.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if ri, rj := out[i].Urgency.Rank(), out[j].Urgency.Rank(); ri != rj {
			return ri > rj
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// Merge appends incoming tasks whose ids are not already present, persisting
// once. Duplicate ids are the only skip rule.
func (r *Tasks) Merge(incoming []*task.Task) (int, error) {
	seen := make(map[string]bool, len(r.items))
	for _, t := range r.items {
		seen[t.ID] = true
	}
	added := 0
	for _, t := range incoming {
		if t == nil || t.ID == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		cp := *t
		r.items = append(r.items, &cp)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, r.persist()
}

func (r *Tasks) persist() error {
	data, err := json.Marshal(r.items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "registry: marshal %s: %s\n", tasksKey, err)
		return ErrNotPersisted
	}
	if !r.p.Save(tasksKey, data) {
		return ErrNotPersisted
	}
	return nil
}
