// Package loyaltyrepo provides data transfer objects and mapping functions
// for loyalty account persistence. This package implements the repository
// pattern for the loyalty domain aggregate, handling the conversion between
// domain entities and database representations.
package loyaltyrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/loyalty"
)

// AccountDTO represents the database structure for persisting loyalty
// accounts. The normalized nine-digit phone is the natural key; the promo
// code carries a unique index so code collisions surface at write time.
type AccountDTO struct {
	Phone     string `gorm:"type:char(9);primaryKey"`
	Balance   int64
	PromoCode string `gorm:"type:char(6);uniqueIndex"`
}

// TableName specifies the database table name for loyalty accounts.
func (AccountDTO) TableName() string {
	return "loyalty_accounts"
}

// fromDomain converts a loyalty account aggregate to its database representation.
func fromDomain(account *loyalty.Account) AccountDTO {
	return AccountDTO{
		Phone:     account.Phone().Digits(),
		Balance:   account.Balance(),
		PromoCode: account.PromoCode(),
	}
}

// toDomain converts a database DTO to a loyalty account aggregate.
func toDomain(dto AccountDTO) (*loyalty.Account, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return loyalty.RestoreAccount(phone, dto.Balance, dto.PromoCode)
}
