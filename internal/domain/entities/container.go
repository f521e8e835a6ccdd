package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings are loaded per command invocation by the controllers layer
	if err := container.Provide(NewSystemClock); err != nil {
		return err
	}

	return nil
}
