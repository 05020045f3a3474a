// Package job implements the Job aggregate for the dispatch domain.
//
// A Job is a delivery task submitted by the intake system. It is broadcast
// to every eligible courier, claimed by exactly one of them, and then walked
// through a strictly linear lifecycle until completion. The aggregate
// enforces single assignment: the first successful claim wins and the
// assignee never changes afterwards.
//
// The package follows Domain-Driven Design principles with the Job aggregate
// root and the Stage value object encapsulating all lifecycle rules.
package job
