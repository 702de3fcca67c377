/*
Package login contains the orchestration logic for the WeatherWorks start screen.

The orchestrator sequences a single login attempt: validate the entered name,
call the remote authentication backend, record the logged-in user in the shared
session state, and navigate to the weather view. All failures are absorbed here
and reported through diagnostics only; the caller never observes an error.
*/
package login

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"weatherworks/internal/pkg/errs"
	"weatherworks/internal/pkg/logx"
)

// WeatherPath is the fixed destination view after a successful login.
const WeatherPath = "/weather"

// Authenticator is the contract of the remote authentication backend.
// created is true only when the backend reports a freshly created session (HTTP 201).
type Authenticator interface {
	Login(ctx context.Context, userName string) (created bool, err error)
}

// UserStore is the shared client-side state collaborator. LoginUser is its
// single state-update action; TryBeginLogin/EndLogin form the in-flight guard
// that rejects overlapping submissions.
type UserStore interface {
	LoginUser(userName string)
	TryBeginLogin() bool
	EndLogin()
}

// Navigator transitions the client to a named view.
type Navigator interface {
	Navigate(path string)
}

// Orchestrator runs one login attempt per Submit call.
type Orchestrator struct {
	auth   Authenticator
	store  UserStore
	nav    Navigator
	logger zerolog.Logger
}

// NewOrchestrator wires the three collaborators together.
func NewOrchestrator(auth Authenticator, store UserStore, nav Navigator) *Orchestrator {
	return &Orchestrator{
		auth:   auth,
		store:  store,
		nav:    nav,
		logger: logx.Logger().With().Str("component", "LoginOrchestrator").Logger(),
	}
}

// Submit runs a single login attempt for the given candidate name.
//
// A blank or whitespace-only name is silently ignored: no backend call, no
// state update, no navigation. An attempt that overlaps a pending one for the
// same session is likewise skipped. Otherwise the backend is called with the
// trimmed name; only when it confirms session creation is the shared state
// updated and navigation to the weather view triggered. Failures of any kind
// are logged and swallowed, so the calling event handler never sees one.
// The backend call's lifetime is bound to ctx.
func (o *Orchestrator) Submit(ctx context.Context, candidate string) {
	userName := strings.TrimSpace(candidate)
	if userName == "" {
		o.logger.Debug().Msg("Blank user name submitted, ignoring.")
		return
	}

	if !o.store.TryBeginLogin() {
		o.logger.Warn().Str("user_name", userName).Msg("Login already in flight for this session, skipping.")
		return
	}
	defer o.store.EndLogin()

	o.logger.Info().Str("user_name", userName).Msg("Submitting login to backend.")

	created, err := o.auth.Login(ctx, userName)
	if err != nil {
		if errs.Code(err) == errs.ErrBackendUnauthorized {
			o.logger.Warn().Str("user_name", userName).Msg("Backend denied authorization for login.")
			return
		}

		o.logger.Error().Err(err).Str("user_name", userName).Msg("Login request failed.")
		return
	}

	if !created {
		o.logger.Warn().Str("user_name", userName).Msg("Backend did not report a created session, staying on start screen.")
		return
	}

	o.store.LoginUser(userName)
	o.logger.Info().Str("user_name", userName).Str("destination", WeatherPath).Msg("Login succeeded, navigating to weather view.")
	o.nav.Navigate(WeatherPath)
}
