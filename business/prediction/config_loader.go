package prediction

import (
	"context"
	"creditAdvisor/domain"
	"creditAdvisor/pkg/logger"
)

// LoadConfig returns the built-in scheme for featureSet with any stored
// override applied. Lookup failures and invalid overrides fall back to the
// built-in scheme. An unknown feature set is an error.
func LoadConfig(ctx context.Context, repo ConfigRepository, featureSet string) (Config, error) {
	base, err := ConfigFor(featureSet)
	if err != nil {
		return Config{}, err
	}
	if repo == nil {
		return base, nil
	}

	stored, ok, err := repo.GetScoringConfig(ctx, base.FeatureSet)
	if err != nil {
		logger.Warn("scoring config lookup failed, using defaults", "feature_set", base.FeatureSet, "error", err)
		return base, nil
	}
	if !ok {
		return base, nil
	}

	cfg := applyOverride(base, stored)
	if err := cfg.Validate(); err != nil {
		logger.Warn("stored scoring config is invalid, using defaults", "feature_set", base.FeatureSet, "error", err)
		return base, nil
	}

	logger.Info("scoring config override applied", "feature_set", cfg.FeatureSet, "features", len(cfg.Features))
	return cfg, nil
}

// applyOverride starts from base and copies every populated part of stored.
func applyOverride(base Config, stored domain.ScoringConfig) Config {
	cfg := base
	if len(stored.Features) > 0 {
		cfg.Features = append([]domain.FeatureSpec(nil), stored.Features...)
	}
	if stored.Cutoffs != (domain.RuleCutoffs{}) {
		cfg.Cutoffs = stored.Cutoffs
	}
	return cfg
}

// ValidateOverride reports whether stored would produce a usable scheme.
func ValidateOverride(stored domain.ScoringConfig) error {
	base, err := ConfigFor(stored.FeatureSet)
	if err != nil {
		return err
	}
	return applyOverride(base, stored).Validate()
}
