package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"dispatch/internal/pkg/errs"
)

// GetLoyaltyAccountQueryHandler reads loyalty accounts straight from the
// database, bypassing the domain layer for read performance.
type GetLoyaltyAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetLoyaltyAccountQueryHandler creates a handler for loyalty lookups.
func NewGetLoyaltyAccountQueryHandler(db *gorm.DB) GetLoyaltyAccountQueryHandler {
	return GetLoyaltyAccountQueryHandler{db: db}
}

// Handle executes the lookup. An unknown phone yields ObjectNotFoundError.
func (h GetLoyaltyAccountQueryHandler) Handle(
	ctx context.Context,
	query GetLoyaltyAccountQuery,
) (GetLoyaltyAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoyaltyAccountQueryResponse{}, err
	}

	var response GetLoyaltyAccountQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			phone,
			balance,
			promo_code
		FROM loyalty_accounts
		WHERE phone = ?
	`, query.Phone().Digits()).Row().Scan(
		&response.Phone,
		&response.Balance,
		&response.PromoCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetLoyaltyAccountQueryResponse{},
				errs.NewObjectNotFoundError("loyalty account", query.Phone().Digits())
		}
		return GetLoyaltyAccountQueryResponse{}, err
	}

	return response, nil
}
