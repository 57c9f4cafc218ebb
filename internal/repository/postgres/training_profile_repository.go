package postgres

import (
	"context"
	"creditAdvisor/business/credit"
	"creditAdvisor/domain"
	"fmt"

	"gorm.io/gorm"
)

const trainingInsertBatch = 500

type TrainingProfileRepository struct {
	DB *gorm.DB
}

var (
	_ credit.TrainingDataRepository    = (*TrainingProfileRepository)(nil)
	_ credit.TrainingProfileRepository = (*TrainingProfileRepository)(nil)
)

func NewTrainingProfileRepository(db *gorm.DB) *TrainingProfileRepository {
	return &TrainingProfileRepository{
		DB: db,
	}
}

func (r *TrainingProfileRepository) FindAll(ctx context.Context) ([]domain.TrainingExample, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.TrainingProfile
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find training profiles: %w", err)
	}

	examples := make([]domain.TrainingExample, len(rows))
	for i, row := range rows {
		examples[i] = row.Example()
	}
	return examples, nil
}

// ReplaceAll swaps the stored training set in one transaction.
func (r *TrainingProfileRepository) ReplaceAll(ctx context.Context, examples []domain.TrainingExample) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows := make([]domain.TrainingProfile, len(examples))
	for i, ex := range examples {
		rows[i] = domain.NewTrainingProfile(ex)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.TrainingProfile{}).Error; err != nil {
			return fmt.Errorf("failed to clear training profiles: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, trainingInsertBatch).Error; err != nil {
			return fmt.Errorf("failed to insert training profiles: %w", err)
		}
		return nil
	})
}
