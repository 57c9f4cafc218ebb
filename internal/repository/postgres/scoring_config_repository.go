package postgres

import (
	"context"
	"creditAdvisor/business/prediction"
	"creditAdvisor/domain"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoringConfigRepository struct {
	DB *gorm.DB
}

var _ prediction.ConfigRepository = (*ScoringConfigRepository)(nil)

func NewScoringConfigRepository(db *gorm.DB) *ScoringConfigRepository {
	return &ScoringConfigRepository{DB: db}
}

func (r *ScoringConfigRepository) GetScoringConfig(ctx context.Context, featureSet string) (domain.ScoringConfig, bool, error) {
	var cfg domain.ScoringConfig

	err := r.DB.WithContext(ctx).
		Where("feature_set = ?", featureSet).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ScoringConfig{}, false, nil
	}
	if err != nil {
		return domain.ScoringConfig{}, false, err
	}

	if len(cfg.FeaturesRaw) > 0 {
		if err := json.Unmarshal(cfg.FeaturesRaw, &cfg.Features); err != nil {
			return domain.ScoringConfig{}, false, fmt.Errorf("decode features of %q: %w", featureSet, err)
		}
	}
	if len(cfg.CutoffsRaw) > 0 {
		if err := json.Unmarshal(cfg.CutoffsRaw, &cfg.Cutoffs); err != nil {
			return domain.ScoringConfig{}, false, fmt.Errorf("decode cutoffs of %q: %w", featureSet, err)
		}
	}
	return cfg, true, nil
}

func (r *ScoringConfigRepository) UpsertScoringConfig(ctx context.Context, cfg domain.ScoringConfig) error {
	if len(cfg.Features) > 0 {
		raw, err := json.Marshal(cfg.Features)
		if err != nil {
			return fmt.Errorf("encode features: %w", err)
		}
		cfg.FeaturesRaw = raw
	}
	if cfg.Cutoffs != (domain.RuleCutoffs{}) {
		raw, err := json.Marshal(cfg.Cutoffs)
		if err != nil {
			return fmt.Errorf("encode cutoffs: %w", err)
		}
		cfg.CutoffsRaw = raw
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "feature_set"}},
			DoUpdates: clause.AssignmentColumns([]string{"features", "cutoffs"}),
		}).
		Create(&cfg).Error
}
