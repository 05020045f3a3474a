package loyaltyrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/loyalty"
	"dispatch/internal/pkg/errs"
)

// GormLoyaltyRepository implements ports.LoyaltyStore using GORM.
type GormLoyaltyRepository struct {
	db *gorm.DB
}

// NewGormLoyaltyRepository creates a new GORM loyalty repository.
func NewGormLoyaltyRepository(db *gorm.DB) *GormLoyaltyRepository {
	return &GormLoyaltyRepository{db: db}
}

// Add saves a new loyalty account to the database.
func (r *GormLoyaltyRepository) Add(ctx context.Context, aggregate *loyalty.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing loyalty account to the database.
func (r *GormLoyaltyRepository) Update(ctx context.Context, aggregate *loyalty.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).Where("phone = ?", dto.Phone).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loyalty account", dto.Phone)
	}

	return nil
}

// Get retrieves a loyalty account by phone.
func (r *GormLoyaltyRepository) Get(ctx context.Context, phone kernel.Phone) (*loyalty.Account, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.Digits()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loyalty account", phone.Digits())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CodeInUse reports whether a promo code is already held by some account.
func (r *GormLoyaltyRepository) CodeInUse(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("promo_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
