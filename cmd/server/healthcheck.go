// Package main is the entry point of the application
package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tecu23/backend-status/pkg/messages"
	"github.com/tecu23/backend-status/pkg/uptime"
)

// handleRoot handles the GET / endpoint
func (app *application) handleRoot(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, messages.NewRootPayload())
}

// handleHealth handles the GET /health endpoint
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := app.Clock.Now()

	payload := messages.NewHealthPayload(app.Uptime.Seconds(now), uptime.Timestamp(now))
	app.writeJSON(w, r, http.StatusOK, payload)
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.Logger.Error("encode response failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}
