// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CaptainRepoFactory provides access to the captain repository within a transaction.
	CaptainRepoFactory interface {
		CaptainRepository() ports.CaptainRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// EventLogFactory provides access to the event log within a transaction.
	EventLogFactory interface {
		EventLog() ports.EventLog
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that modify a single order and record its events.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventLogFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CancelOrderUoW manages transactions spanning an order and its customer,
	// so the cancellation status and the customer's cancelled counter commit
	// together.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		EventLogFactory
	}

	// CancelOrderUoWFactory creates new cancellation unit of work instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// AssignUoW manages transactions spanning an order and a captain during
	// assignment, including the idempotency key claim.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		CaptainRepoFactory
		EventLogFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// DemoOrderUoW manages transactions for seeding a demonstration order
	// against the oldest registered customer and restaurant.
	DemoOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		RestaurantRepoFactory
		EventLogFactory
	}

	// DemoOrderUoWFactory creates new demo-order unit of work instances.
	DemoOrderUoWFactory interface {
		Create() DemoOrderUoW
	}

	// CaptainUoW manages transactions for captain-only operations.
	CaptainUoW interface {
		TxManager
		CaptainRepoFactory
	}

	// CaptainUoWFactory creates new captain unit of work instances.
	CaptainUoWFactory interface {
		Create() CaptainUoW
	}
)
