// Package session tracks what the bot is waiting for from each user: nothing,
// savings amounts, a reminder time, or a delete confirmation. The state is
// presentation-layer only and lives in memory; it is never persisted.
package session

import (
	"sync"
	"time"
)

type State int

const (
	Idle State = iota
	AwaitingNumbers
	AwaitingTime
	AwaitingDeleteConfirmation
)

// PromptTimeout bounds how long a prompt captures the next free-text message.
// A reply to a days-old prompt should be treated as ordinary text.
const PromptTimeout = 10 * time.Minute

type entry struct {
	state State
	setAt time.Time
}

type Manager struct {
	mu    sync.Mutex
	users map[int64]entry
	now   func() time.Time
}

func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		users: make(map[int64]entry),
		now:   now,
	}
}

var DefaultManager = NewManager(nil)

func ResetDefaultManager(now func() time.Time) {
	DefaultManager = NewManager(now)
}

func (m *Manager) Set(userID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state == Idle {
		delete(m.users, userID)
		return
	}
	m.users[userID] = entry{state: state, setAt: m.now()}
}

// Get returns the user's current state. Expired prompts collapse to Idle.
func (m *Manager) Get(userID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.users[userID]
	if !ok {
		return Idle
	}
	if m.now().Sub(e.setAt) > PromptTimeout {
		delete(m.users, userID)
		return Idle
	}
	return e.state
}

func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
}
