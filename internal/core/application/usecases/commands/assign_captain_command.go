package commands

import (
	"errors"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/guard"
)

var ErrAssignCaptainCommandIsNotConstructed = errors.New(
	"AssignCaptainCommand must be created via NewAssignCaptainCommand constructor",
)

// AssignCaptainCommand represents a request to assign a specific captain to
// an order. The optional idempotency key makes retried requests harmless:
// the first request with a given key wins and later ones are ignored.
type AssignCaptainCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	captainID      kernel.UUID
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewAssignCaptainCommand creates a command to assign captainID to orderID.
// idempotencyKey may be empty, in which case no duplicate detection applies.
func NewAssignCaptainCommand(orderID kernel.UUID, captainID kernel.UUID, idempotencyKey string) (AssignCaptainCommand, error) {
	command := AssignCaptainCommand{
		idempotencyKey: idempotencyKey,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCaptainID(captainID),
	); err != nil {
		return AssignCaptainCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCaptainCommand) Validate() error {
	return c.guard.Validate(ErrAssignCaptainCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignCaptainCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CaptainID returns the identifier of the captain to assign.
func (c AssignCaptainCommand) CaptainID() kernel.UUID {
	return c.captainID
}

// IdempotencyKey returns the caller-supplied duplicate-detection key,
// or an empty string when none was supplied.
func (c AssignCaptainCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *AssignCaptainCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCaptainCommand) setCaptainID(captainID kernel.UUID) error {
	if err := captainID.Validate(); err != nil {
		return err
	}

	c.captainID = captainID
	return nil
}
