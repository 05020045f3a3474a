// Package loyalty implements the Account aggregate for the dispatch domain.
//
// An Account tracks the cashback a customer earns on completed deliveries.
// Accounts are keyed by the customer's normalized phone number, accumulate
// a fixed percentage of each dish subtotal, and carry a single promo code
// issued on first accrual and never changed afterwards.
package loyalty
