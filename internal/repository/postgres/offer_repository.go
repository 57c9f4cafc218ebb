package postgres

import (
	"context"
	"creditAdvisor/business/credit"
	"creditAdvisor/domain"
	"fmt"

	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

var _ credit.OfferRepository = (*OfferRepository)(nil)

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{
		DB: db,
	}
}

func (r *OfferRepository) FindAll(ctx context.Context) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var offers []domain.Offer
	err := r.DB.WithContext(ctx).Order("position ASC, id ASC").Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}

	return offers, nil
}
