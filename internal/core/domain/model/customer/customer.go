// Package customer implements the Customer aggregate. Besides identity it
// tracks the cancelled-orders counter that grows each time one of the
// customer's orders is cancelled.
package customer

import (
	"errors"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"
	"github.com/wael7705/movo-project/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
)

// Customer represents a customer placing orders in the system.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the human-readable name of the customer
	name string
	// cancelledCount counts the customer's cancelled orders over their lifetime
	cancelledCount int
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with a zero cancelled-orders counter.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage.
func RestoreCustomer(id kernel.UUID, name string, cancelledCount int) (*Customer, error) {
	customer, err := NewCustomer(id, name)
	if err != nil {
		return nil, err
	}

	if cancelledCount < 0 {
		return nil, errs.NewValueIsInvalidError("cancelledCount")
	}
	customer.cancelledCount = cancelledCount

	return customer, nil
}

// Validate checks if the Customer was properly constructed using a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the customer.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the customer.
func (c *Customer) Name() string {
	return c.name
}

// CancelledCount returns the number of the customer's cancelled orders.
func (c *Customer) CancelledCount() int {
	return c.cancelledCount
}

// RecordCancellation increments the cancelled-orders counter.
// Called alongside every order cancellation within the same transaction.
func (c *Customer) RecordCancellation() {
	c.cancelledCount++
}

// setID sets the customer's unique identifier with validation.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the customer's name with validation.
func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
