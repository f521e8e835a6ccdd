package internal

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/infrastructure/controllers"
	"github.com/rios0rios0/nugetsync/internal/infrastructure/repositories"
)

type layerRegistrar struct {
	name     string
	register func(*dig.Container) error
}

// RegisterProviders registers every layer with the DIG container, adapters
// first so commands and controllers can resolve them, then the AppInternal.
func RegisterProviders(container *dig.Container) error {
	layers := []layerRegistrar{
		{name: "repositories", register: repositories.RegisterProviders},
		{name: "entities", register: entities.RegisterProviders},
		{name: "commands", register: commands.RegisterProviders},
		{name: "controllers", register: controllers.RegisterProviders},
	}
	for _, layer := range layers {
		if err := layer.register(container); err != nil {
			return fmt.Errorf("failed to register %s: %w", layer.name, err)
		}
	}

	return container.Provide(NewAppInternal)
}
