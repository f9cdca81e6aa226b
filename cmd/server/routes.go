// Package main is the entry point of the application
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(app.requestID)
	r.Use(app.logRequest)
	r.Use(app.recoverPanic)
	r.Use(middleware.GetHead)

	r.Get("/", app.handleRoot)
	r.Get("/health", app.handleHealth)

	return r
}
