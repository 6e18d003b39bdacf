package registry

import (
	"fmt"
	"sync"
	"time"

	"esafd/pkg/types"
)

// Application identity returned by AppInfo. Fixed at build time.
const (
	AppName        = "ESAF Framework"
	AppVersion     = "0.1.0"
	AppDescription = "Evolved Synergistic Agentic Framework"
)

// now is swappable in tests.
var now = time.Now

// Registry is the process-wide shared state: two independent string
// mappings behind one coarse lock. A task write blocks an agent read.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]string
	tasks  map[string]string
	pub    EventPublisher

	// Set when a lock holder panicked mid-critical-section. Once true,
	// every operation fails with a lock-unavailable error.
	poisoned bool
	lastErr  string

	startTime time.Time
}

// AppInfo returns the fixed application identity. Pure; no lock taken.
func (r *Registry) AppInfo() types.AppInfo {
	return types.AppInfo{
		Name:        AppName,
		Version:     AppVersion,
		Description: AppDescription,
	}
}

// AgentStatuses returns a snapshot copy of the agents mapping.
// The copy is taken under the lock, so it is never torn, but it may be
// stale by the time the caller acts on it.
func (r *Registry) AgentStatuses() (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(); err != nil {
		return nil, err
	}
	return copyMap(r.agents), nil
}

// SetAgentStatus inserts or overwrites the status for agentID.
// Last write wins; no validation is applied to either string.
func (r *Registry) SetAgentStatus(agentID, status string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err = r.check(); err != nil {
		return err
	}
	defer r.recoverPoison(&err)
	r.agents[agentID] = status
	r.pub.Publish(Event{Name: EventAgentStatusSet, Key: agentID})
	return nil
}

// Tasks returns a snapshot copy of the tasks mapping.
func (r *Registry) Tasks() (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(); err != nil {
		return nil, err
	}
	return copyMap(r.tasks), nil
}

// AddTask inserts or overwrites the payload for taskID.
func (r *Registry) AddTask(taskID, taskData string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err = r.check(); err != nil {
		return err
	}
	defer r.recoverPoison(&err)
	r.tasks[taskID] = taskData
	r.pub.Publish(Event{Name: EventTaskAdded, Key: taskID})
	return nil
}

// RemoveTask deletes the entry for taskID. Removing an absent id is not
// an error; the operation is idempotent.
func (r *Registry) RemoveTask(taskID string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err = r.check(); err != nil {
		return err
	}
	defer r.recoverPoison(&err)
	delete(r.tasks, taskID)
	r.pub.Publish(Event{Name: EventTaskRemoved, Key: taskID})
	return nil
}

// check must be called with the lock held (read or write).
func (r *Registry) check() error {
	if r.poisoned {
		return ErrLockUnavailable(r.lastErr)
	}
	return nil
}

// recoverPoison converts a panic raised inside a critical section into a
// poisoned registry and a lock-unavailable error for the current caller.
// Must be deferred before the mutation, after the lock is held.
func (r *Registry) recoverPoison(err *error) {
	if p := recover(); p != nil {
		r.poisoned = true
		r.lastErr = fmt.Sprintf("lock holder panicked: %v", p)
		*err = ErrLockUnavailable(r.lastErr)
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
