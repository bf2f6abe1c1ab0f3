// Package hold manages keys held down by voice command. Each held key gets
// its own background task that presses the key at the configured repeat
// interval until the key is released.
//
// Cancellation is cooperative: a task checks its context before every
// press, so at most one extra press can land after a release is requested.
// Release-all removes every key and cancels every task while holding the
// manager lock, so no new hold can slip in while the set is draining.
package hold

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sqrew/ss9k/internal/action"
)

// Presser receives the repeated key presses. The output adapter implements
// this; a nil Presser is replaced by a no-op so the state machine can be
// exercised without an injection backend.
type Presser interface {
	Press(key action.Key)
}

// nopPresser drops all presses.
type nopPresser struct{}

func (nopPresser) Press(action.Key) {}

// task is one held key's background repeat loop handle.
type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager owns the held-key set. All methods are safe for concurrent use.
type Manager struct {
	presser Presser

	mu       sync.Mutex
	interval time.Duration
	held     map[action.Key]*task
}

// DefaultInterval is the repeat rate used when the configuration does not
// set one.
const DefaultInterval = 50 * time.Millisecond

// NewManager creates a Manager pressing keys on presser every interval.
func NewManager(interval time.Duration, presser Presser) *Manager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if presser == nil {
		presser = nopPresser{}
	}
	return &Manager{
		presser:  presser,
		interval: interval,
		held:     make(map[action.Key]*task),
	}
}

// SetInterval updates the repeat rate for tasks started from now on.
// Running tasks keep their current rate; holds are short-lived enough that
// re-arming them on reload is not worth the churn.
func (m *Manager) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.interval = d
	m.mu.Unlock()
}

// Hold adds key to the held set and starts its repeat task. Holding an
// already-held key is a no-op and returns false.
func (m *Manager) Hold(key action.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.held[key]; ok {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &task{cancel: cancel, done: make(chan struct{})}
	m.held[key] = t

	go m.repeat(ctx, key, m.interval, t.done)
	slog.Debug("hold: key held", "key", key)
	return true
}

// Release removes key from the held set and cancels its task. Releasing an
// unheld key is a no-op and returns false.
func (m *Manager) Release(key action.Key) bool {
	m.mu.Lock()
	t, ok := m.held[key]
	if ok {
		delete(m.held, key)
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	t.cancel()
	<-t.done
	slog.Debug("hold: key released", "key", key)
	return true
}

// ReleaseAll cancels every held key's task, clears the set, and returns the
// number of keys released. The set is emptied atomically with respect to
// Hold; task termination is awaited outside the lock.
func (m *Manager) ReleaseAll() int {
	m.mu.Lock()
	tasks := make([]*task, 0, len(m.held))
	for key, t := range m.held {
		t.cancel()
		tasks = append(tasks, t)
		delete(m.held, key)
	}
	m.mu.Unlock()

	for _, t := range tasks {
		<-t.done
	}
	return len(tasks)
}

// HeldCount reports the number of currently held keys.
func (m *Manager) HeldCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.held)
}

// Held returns the currently held keys in unspecified order.
func (m *Manager) Held() []action.Key {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]action.Key, 0, len(m.held))
	for k := range m.held {
		keys = append(keys, k)
	}
	return keys
}

// repeat is the per-key background loop. The context is checked before
// every press.
func (m *Manager) repeat(ctx context.Context, key action.Key, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Re-check cancellation: a tick may already be pending when
			// release is requested.
			select {
			case <-ctx.Done():
				return
			default:
			}
			m.presser.Press(key)
		}
	}
}
