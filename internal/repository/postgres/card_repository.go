package postgres

import (
	"context"
	"creditAdvisor/business/credit"
	"creditAdvisor/domain"
	"fmt"

	"gorm.io/gorm"
)

type CardRepository struct {
	DB *gorm.DB
}

var _ credit.CardRepository = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{
		DB: db,
	}
}

// FindAll returns the catalog in its stored order.
func (r *CardRepository) FindAll(ctx context.Context) ([]domain.CreditCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cards []domain.CreditCard
	err := r.DB.WithContext(ctx).Order("position ASC, id ASC").Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find credit cards: %w", err)
	}

	return cards, nil
}
