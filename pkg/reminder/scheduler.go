// Package reminder maps task reminder offsets onto one-shot timers. Timers
// are best-effort in-memory state: they do not survive a restart, which is
// why RescheduleAll runs at startup and after bulk imports.
package reminder

import (
	"sync"
	"time"

	"tableflip.dev/sked/pkg/task"
)

// Notifier receives the reminder when a timer fires.
type Notifier interface {
	Notify(t *task.Task, clientName string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(t *task.Task, clientName string)

func (f NotifierFunc) Notify(t *task.Task, clientName string) {
	f(t, clientName)
}

// Scheduler owns the task-id to timer mapping. At most one timer exists per
// task id. The mutex matters: timer callbacks fire on their own goroutines.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer

	notifier Notifier
	granted  func() bool
	names    func(string) string
	now      func() time.Time
}

// New builds a scheduler. granted gates scheduling the way the notification
// permission does: when it reports false, ScheduleOne silently does nothing.
// names resolves client ids for the notification body.
func New(n Notifier, granted func() bool, names func(string) string) *Scheduler {
	if granted == nil {
		granted = func() bool { return true }
	}
	if names == nil {
		names = func(string) string { return "" }
	}
	return &Scheduler{
		timers:   make(map[string]*time.Timer),
		notifier: n,
		granted:  granted,
		names:    names,
		now:      time.Now,
	}
}

// ScheduleOne arms the reminder timer for a task, replacing any previous
// timer for the same id. Tasks with no reminder, or whose fire time has
// already passed, are skipped: there is no catch-up firing.
func (s *Scheduler) ScheduleOne(t *task.Task) {
	if t == nil || s.notifier == nil || !s.granted() {
		return
	}
	at, ok := t.RemindAt()
	if !ok {
		return
	}
	now := s.now()
	if !at.After(now) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.timers[t.ID]; ok {
		prev.Stop()
		delete(s.timers, t.ID)
	}

	tt := *t
	var timer *time.Timer
	timer = time.AfterFunc(at.Sub(now), func() {
		s.mu.Lock()
		// A reschedule may have replaced this timer after it was queued
		// to fire; only the current handle is allowed to notify.
		current := s.timers[tt.ID] == timer
		if current {
			delete(s.timers, tt.ID)
		}
		s.mu.Unlock()
		if current {
			s.notifier.Notify(&tt, s.names(tt.ClientID))
		}
	})
	s.timers[t.ID] = timer
}

// CancelOne stops and forgets the timer for a task id. Unknown ids are a
// no-op.
func (s *Scheduler) CancelOne(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[taskID]; ok {
		timer.Stop()
		delete(s.timers, taskID)
	}
}

// RescheduleAll drops every active timer and rebuilds the set from the given
// tasks. Run at startup and after imports.
func (s *Scheduler) RescheduleAll(tasks []*task.Task) {
	s.mu.Lock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	for _, t := range tasks {
		s.ScheduleOne(t)
	}
}

// Pending reports whether a timer is armed for the task id.
func (s *Scheduler) Pending(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[taskID]
	return ok
}

// Active counts the armed timers.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels everything. The scheduler stays usable afterwards, matching
// an app reset.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// SetClock overrides the time source. Tests only.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}
