// Package worker implements the Worker aggregate for the dispatch domain.
//
// A Worker is a courier reachable through a chat identifier. The aggregate
// tracks the courier's availability, contact handle and current assignment,
// and enforces that a courier carries at most one job at a time. Eligibility
// for job offers is derived state: a courier is offered jobs only while Free
// with a contact handle on file.
//
// The package follows Domain-Driven Design principles with the Worker
// aggregate root and the Status value object encapsulating all availability rules.
package worker
