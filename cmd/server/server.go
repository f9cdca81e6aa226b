package main

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// serve binds the configured port and handles requests until the listener fails
func (app *application) serve() error {
	app.Server = &http.Server{
		Addr:         app.Config.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", app.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", app.Server.Addr, err)
	}

	app.Logger.Info(fmt.Sprintf("Backend listening at http://localhost:%s", app.Config.Port),
		zap.String("address", app.Server.Addr))

	if err := app.Server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}
