/*
Package handler provides the HTTP handlers and routing setup for the WeatherWorks front-end.

This file contains the handler for the weather view, the fixed navigation
destination after a successful login.
*/
package handler

import (
	"net/http"

	"weatherworks/internal/pkg/logx"
)

// HandleWeatherPage renders the weather view for a logged-in session.
// Requests without a logged-in session are sent back to the start screen.
func HandleWeatherPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := currentSession(r, deps)
		if state == nil || !state.LoggedIn() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tplWeather.Execute(w, weatherPageData{UserName: state.UserName()}); err != nil {
			logx.Error(err, "Failed to render weather page.")
		}
	}
}
