package main

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/nugetsync/internal"
)

// buildAppContext wires the application graph and resolves the controllers.
func buildAppContext() (*internal.AppInternal, error) {
	container := dig.New()
	if err := internal.RegisterProviders(container); err != nil {
		return nil, err
	}

	var app *internal.AppInternal
	if err := container.Invoke(func(resolved *internal.AppInternal) { app = resolved }); err != nil {
		return nil, fmt.Errorf("failed to resolve application: %w", err)
	}
	return app, nil
}
