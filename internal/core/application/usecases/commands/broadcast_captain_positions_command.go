package commands

import (
	"errors"

	"github.com/wael7705/movo-project/internal/pkg/guard"
)

var ErrBroadcastCaptainPositionsCommandIsNotConstructed = errors.New(
	"BroadcastCaptainPositionsCommand must be created via NewBroadcastCaptainPositionsCommand constructor",
)

// BroadcastCaptainPositionsCommand represents a request to publish the
// positions of all available captains to the realtime tracking channel.
type BroadcastCaptainPositionsCommand struct {
	guard guard.ConstructorGuard
}

// NewBroadcastCaptainPositionsCommand creates a broadcast command.
func NewBroadcastCaptainPositionsCommand() BroadcastCaptainPositionsCommand {
	return BroadcastCaptainPositionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c BroadcastCaptainPositionsCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastCaptainPositionsCommandIsNotConstructed)
}
