// Package registry holds the in-memory client and task collections and keeps
// them in sync with the persistent store: every mutating operation writes the
// full collection back before returning.
package registry

import "errors"

const (
	clientsKey = "clients"
	tasksKey   = "tasks"
)

// ErrNotPersisted reports that a mutation took effect in memory but could not
// be confirmed on disk. Callers should warn the user and carry on; the
// in-memory state stays authoritative for the session.
var ErrNotPersisted = errors.New("registry: collection not persisted")

// ErrNotFound reports an unknown record id.
var ErrNotFound = errors.New("registry: not found")
