/*
Package session holds the shared client-side state of the WeatherWorks front-end.

Each browser session owns one State instance. The logged-in user name is written
through a single action (LoginUser) and read by other views; an explicit
in-flight flag guards against overlapping login submissions.
*/
package session

import "sync"

// State is the per-session shared state.
type State struct {
	mu sync.Mutex

	// userName is the logged-in user's name. Empty until a login succeeds.
	userName string

	// loginPending is true while a login submission is in flight for this session.
	loginPending bool
}

// LoginUser records the logged-in user's name. This is the only write path to
// the user-name slot; every other accessor is read-only.
func (s *State) LoginUser(userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userName = userName
}

// UserName returns the logged-in user's name, or an empty string when no login
// has succeeded yet.
func (s *State) UserName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userName
}

// LoggedIn reports whether a login has succeeded for this session.
func (s *State) LoggedIn() bool {
	return s.UserName() != ""
}

// TryBeginLogin attempts to mark a login submission as in flight.
// It returns false when another submission is already pending, in which case
// the caller must skip the attempt.
func (s *State) TryBeginLogin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loginPending {
		return false
	}
	s.loginPending = true
	return true
}

// EndLogin clears the in-flight flag. It must be called exactly once after a
// successful TryBeginLogin, regardless of the submission's outcome.
func (s *State) EndLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginPending = false
}
