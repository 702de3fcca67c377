package session_test

import (
	"testing"

	"weatherworks/internal/app/session"
)

func TestLoginUserUpdatesState(t *testing.T) {
	state := &session.State{}

	if state.LoggedIn() {
		t.Fatal("fresh state reports logged in")
	}
	if state.UserName() != "" {
		t.Fatalf("fresh state user name = %q, want empty", state.UserName())
	}

	state.LoginUser("Jane Doe")

	if !state.LoggedIn() {
		t.Fatal("state does not report logged in after LoginUser")
	}
	if state.UserName() != "Jane Doe" {
		t.Fatalf("user name = %q, want Jane Doe", state.UserName())
	}
}

func TestInFlightGuard(t *testing.T) {
	state := &session.State{}

	if !state.TryBeginLogin() {
		t.Fatal("first TryBeginLogin returned false")
	}
	if state.TryBeginLogin() {
		t.Fatal("second TryBeginLogin returned true while one is pending")
	}

	state.EndLogin()

	if !state.TryBeginLogin() {
		t.Fatal("TryBeginLogin returned false after EndLogin")
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := session.NewManager()

	id, state := m.Create()
	if state == nil {
		t.Fatal("Create returned nil state")
	}

	if got := m.Get(id); got != state {
		t.Fatal("Get did not return the created state")
	}

	if got := m.Get("not-a-session-id"); got != nil {
		t.Fatal("Get returned a state for a malformed ID")
	}

	m.Delete(id)
	if got := m.Get(id); got != nil {
		t.Fatal("Get returned a state after Delete")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	m := session.NewManager()

	idA, a := m.Create()
	idB, b := m.Create()
	if idA == idB {
		t.Fatal("two sessions share an ID")
	}

	a.LoginUser("Jane Doe")

	if b.LoggedIn() {
		t.Fatal("login in one session leaked into another")
	}
	if got := m.Get(idA).UserName(); got != "Jane Doe" {
		t.Fatalf("session A user name = %q, want Jane Doe", got)
	}
}
