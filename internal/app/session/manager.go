/*
Package session holds the shared client-side state of the WeatherWorks front-end.

This file defines the Manager struct, which tracks all active browser sessions,
keyed by the opaque session identifier carried in the session cookie.
*/
package session

import (
	"sync"

	"github.com/rs/zerolog"

	"weatherworks/internal/pkg/logx"
	"weatherworks/internal/pkg/randx"
)

// Manager coordinates all active browser sessions.
type Manager struct {
	// sessions stores a map of all State instances, keyed by session ID.
	sessions map[string]*State

	// mu protects concurrent access to the sessions map.
	mu sync.RWMutex

	// structured logger with Manager context.
	logger zerolog.Logger
}

// NewManager constructs and returns a new Manager instance.
func NewManager() *Manager {
	managerLogger := logx.Logger().With().Str("component", "SessionManager").Logger()

	return &Manager{
		sessions: make(map[string]*State),
		logger:   managerLogger,
	}
}

// Create allocates a fresh session with an empty State and returns its ID.
func (m *Manager) Create() (string, *State) {
	id := randx.SessionID()
	state := &State{}

	m.mu.Lock()
	m.sessions[id] = state
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", id).Msg("New session created.")
	return id, state
}

// Get retrieves the State for the given session ID, or nil when the ID is
// unknown or malformed.
func (m *Manager) Get(id string) *State {
	if !randx.IsValidSessionID(id) {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil
	}
	return state
}

// Delete removes the session with the given ID, if present.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.logger.Debug().Str("session_id", id).Msg("Session removed.")
	}
}
