// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - ReassignmentPicker: A domain service selecting a courier for deadline assignment
//   - PromoCodeGenerator: A domain service producing loyalty promo codes
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
