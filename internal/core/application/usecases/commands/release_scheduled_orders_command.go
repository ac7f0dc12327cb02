package commands

import (
	"errors"

	"github.com/wael7705/movo-project/internal/pkg/guard"
)

var ErrReleaseScheduledOrdersCommandIsNotConstructed = errors.New(
	"ReleaseScheduledOrdersCommand must be created via NewReleaseScheduledOrdersCommand constructor",
)

// ReleaseScheduledOrdersCommand represents a request to move all scheduled
// orders whose time has come back into the active dispatch flow.
type ReleaseScheduledOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseScheduledOrdersCommand creates a release command.
func NewReleaseScheduledOrdersCommand() ReleaseScheduledOrdersCommand {
	return ReleaseScheduledOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReleaseScheduledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseScheduledOrdersCommandIsNotConstructed)
}
