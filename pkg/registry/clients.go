package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/sked/pkg/client"
	"tableflip.dev/sked/pkg/store"
)

// Clients is the client registry.
type Clients struct {
	p     store.Persistence
	items []*client.Client
}

// LoadClients reads the persisted client collection. Missing or corrupt data
// yields an empty registry, never an error.
func LoadClients(p store.Persistence) *Clients {
	r := &Clients{p: p}
	raw := p.Load(clientsKey, []byte("[]"))
	if err := json.Unmarshal(raw, &r.items); err != nil {
		fmt.Fprintf(os.Stderr, "registry: corrupt %s collection: %s\n", clientsKey, err)
		r.items = nil
	}
	return r
}

// Add stores a new client, assigning its id and creation timestamp.
func (r *Clients) Add(fields client.Client) (*client.Client, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	c := fields
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	r.items = append(r.items, &c)
	return &c, r.persist()
}

// Update replaces a client's fields in place. Identity and creation time are
// preserved.
func (r *Clients) Update(id string, fields client.Client) (*client.Client, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	for i, c := range r.items {
		if c.ID == id {
			next := fields
			next.ID = c.ID
			next.CreatedAt = c.CreatedAt
			r.items[i] = &next
			return &next, r.persist()
		}
	}
	return nil, ErrNotFound
}

// Remove deletes a client by id. Cascading task removal is coordinated by the
// caller; the registry only knows about clients.
func (r *Clients) Remove(id string) (*client.Client, error) {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return c, r.persist()
		}
	}
	return nil, ErrNotFound
}

// Get looks a client up by id.
func (r *Clients) Get(id string) *client.Client {
	for _, c := range r.items {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// List returns the clients sorted by name, ascending, case-folded.
func (r *Clients) List() []*client.Client {
	out := make([]*client.Client, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool {
		li := strings.ToLower(out[i].Name)
		lj := strings.ToLower(out[j].Name)
		if li == lj {
			return out[i].Name < out[j].Name
		}
		return li < lj
	})
	return out
}

func (r *Clients) Len() int {
	return len(r.items)
}

// NameFor resolves a client id to a display name. Unknown ids come back as
// "Unknown Client" so stale task references still render.
func (r *Clients) NameFor(id string) string {
	if c := r.Get(id); c != nil {
		return c.Name
	}
	return "Unknown Client"
}

// Merge appends incoming clients whose ids are not already present,
// persisting once. Duplicate ids are the only skip rule.
func (r *Clients) Merge(incoming []*client.Client) (int, error) {
	seen := make(map[string]bool, len(r.items))
	for _, c := range r.items {
		seen[c.ID] = true
	}
	added := 0
	for _, c := range incoming {
		if c == nil || c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		cp := *c
		r.items = append(r.items, &cp)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, r.persist()
}

func (r *Clients) persist() error {
	data, err := json.Marshal(r.items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "registry: marshal %s: %s\n", clientsKey, err)
		return ErrNotPersisted
	}
	if !r.p.Save(clientsKey, data) {
		return ErrNotPersisted
	}
	return nil
}
