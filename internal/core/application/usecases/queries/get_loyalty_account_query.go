// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetLoyaltyAccountQueryIsNotConstructed = errors.New(
	"GetLoyaltyAccountQuery must be created via NewGetLoyaltyAccountQuery constructor",
)

// GetLoyaltyAccountQuery retrieves a customer's cashback balance and promo
// code by phone number.
//
// Example:
//
//	phone, _ := kernel.NewPhone("+998901112233")
//	query, _ := queries.NewGetLoyaltyAccountQuery(phone)
//	handler := queries.NewGetLoyaltyAccountQueryHandler(db)
//
//	account, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve loyalty account: %w", err)
//	}
//
//	fmt.Printf("Balance %d, promo code %s\n", account.Balance, account.PromoCode)
type GetLoyaltyAccountQuery struct {
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewGetLoyaltyAccountQuery creates a query for one customer's account.
func NewGetLoyaltyAccountQuery(phone kernel.Phone) (GetLoyaltyAccountQuery, error) {
	if err := phone.Validate(); err != nil {
		return GetLoyaltyAccountQuery{}, err
	}

	return GetLoyaltyAccountQuery{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoyaltyAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltyAccountQueryIsNotConstructed)
}

// Phone returns the customer's phone number.
func (q GetLoyaltyAccountQuery) Phone() kernel.Phone {
	return q.phone
}

// GetLoyaltyAccountQueryResponse represents a loyalty account in the read model.
type GetLoyaltyAccountQueryResponse struct {
	Phone     string
	Balance   int64
	PromoCode string
}
