/*
Package handler provides the HTTP handlers and routing setup for the WeatherWorks front-end.

This file contains the handlers for the start screen: rendering the login page,
running the login submission through the orchestrator, and signing out.
*/
package handler

import (
	"net/http"

	"weatherworks/internal/app/login"
	"weatherworks/internal/app/session"
	"weatherworks/internal/pkg/logx"
	"weatherworks/internal/pkg/req"
	"weatherworks/internal/pkg/resp"
)

// SessionCookieName is the cookie carrying the opaque browser session ID.
const SessionCookieName = "ww_sid"

// redirectNavigator implements login.Navigator by issuing an HTTP redirect.
// Done reports whether navigation happened, so the handler can fall back to
// re-rendering the start screen when it did not.
type redirectNavigator struct {
	w    http.ResponseWriter
	r    *http.Request
	Done bool
}

func (n *redirectNavigator) Navigate(path string) {
	n.Done = true
	http.Redirect(n.w, n.r, path, http.StatusSeeOther)
}

// recordingNavigator implements login.Navigator for the JSON submission path,
// capturing the destination so it can be returned in the response body.
type recordingNavigator struct {
	Path string
}

func (n *recordingNavigator) Navigate(path string) {
	n.Path = path
}

// setSessionCookie writes the session cookie. HttpOnly and SameSite=Lax keep
// the opaque ID away from scripts and cross-site posts.
func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentSession returns the State for the request's session cookie, or nil
// when the request carries no valid session.
func currentSession(r *http.Request, deps *AppDeps) *session.State {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	return deps.Sessions.Get(c.Value)
}

// ensureSession returns the request's session State, creating a fresh session
// (and setting its cookie) when none exists yet.
func ensureSession(w http.ResponseWriter, r *http.Request, deps *AppDeps) *session.State {
	if state := currentSession(r, deps); state != nil {
		return state
	}

	id, state := deps.Sessions.Create()
	setSessionCookie(w, id)
	return state
}

// HandleLoginPage renders the start screen. The name field is always empty:
// re-displaying the view resets the entered name regardless of prior input.
func HandleLoginPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderLoginPage(w)
	}
}

// renderLoginPage writes the start screen. The template carries no data: the
// name field is always rendered empty, so re-displaying the view resets it.
func renderLoginPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tplLogin.Execute(w, nil); err != nil {
		logx.Error(err, "Failed to render login page.")
	}
}

// LoginInput is the JSON body accepted by the script-driven submission path.
type LoginInput struct {
	UserName string `json:"userName"`
}

// HandleLoginSubmit is the login trigger. It accepts either a JSON body
// (script-driven submission, answered with JSON) or a URL-encoded form
// (plain HTML submission, answered with a redirect or a re-rendered page).
// Either way the submission runs through the orchestrator; failures are
// never surfaced beyond staying on the start screen.
func HandleLoginSubmit(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := ensureSession(w, r, deps)

		if req.IsJSON(r) {
			var input LoginInput
			if customErr := req.BindJSON(r, &input); customErr != nil {
				resp.RespondError(w, r, customErr)
				return
			}

			nav := &recordingNavigator{}
			login.NewOrchestrator(deps.Backend, state, nav).Submit(r.Context(), input.UserName)

			if nav.Path != "" {
				resp.RespondSuccess(w, r, map[string]any{
					"loggedIn": true,
					"redirect": nav.Path,
				})
				return
			}

			resp.RespondSuccess(w, r, map[string]any{
				"loggedIn": false,
			})
			return
		}

		if customErr := req.BindForm(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		nav := &redirectNavigator{w: w, r: r}
		login.NewOrchestrator(deps.Backend, state, nav).Submit(r.Context(), r.PostFormValue("userName"))

		if !nav.Done {
			renderLoginPage(w)
		}
	}
}

// HandleLogout drops the browser session and returns to the start screen.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
			deps.Sessions.Delete(c.Value)
		}

		clearSessionCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
