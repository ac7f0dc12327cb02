package commands

import (
	"errors"

	"github.com/wael7705/movo-project/internal/pkg/guard"
)

var ErrCreateDemoOrderCommandIsNotConstructed = errors.New(
	"CreateDemoOrderCommand must be created via NewCreateDemoOrderCommand constructor",
)

// CreateDemoOrderCommand represents a request to seed a demonstration order
// against the oldest registered customer and restaurant.
type CreateDemoOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewCreateDemoOrderCommand creates a demo-order command.
func NewCreateDemoOrderCommand() CreateDemoOrderCommand {
	return CreateDemoOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateDemoOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDemoOrderCommandIsNotConstructed)
}
