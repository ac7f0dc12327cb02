// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the order-management system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DispatchScorer: A domain service ranking captains for order assignment
//     by distance, rating and delivery history
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
