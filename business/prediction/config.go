package prediction

import (
	"context"
	"creditAdvisor/domain"
	"fmt"
)

const (
	FeatureSetIncome = "income"
	FeatureSetFICO   = "fico"
)

// PaymentSignal selects the profile field that drives the payment-quality rules.
type PaymentSignal string

const (
	SignalOnTimeRate     PaymentSignal = "on_time_rate"
	SignalMissedPayments PaymentSignal = "missed_payments"
)

// feature names understood by the extractor
const (
	FeatureAnnualIncome   = "annual_income"
	FeatureDebtToIncome   = "debt_to_income"
	FeatureHistoryYears   = "history_years"
	FeatureActiveCards    = "active_cards"
	FeatureTotalLoans     = "total_loans"
	FeatureUtilization    = "utilization"
	FeatureOnTimeRate     = "on_time_rate"
	FeatureCreditScore    = "credit_score"
	FeatureMissedPayments = "missed_payments"
)

// Config is the scoring scheme of one deployment: the normalization table,
// the combining weights and the rule cutoffs.
type Config struct {
	FeatureSet    string
	PaymentSignal PaymentSignal
	Features      []domain.FeatureSpec
	Cutoffs       domain.RuleCutoffs
}

func incomeConfig() Config {
	return Config{
		FeatureSet:    FeatureSetIncome,
		PaymentSignal: SignalOnTimeRate,
		Features: []domain.FeatureSpec{
			{Name: FeatureAnnualIncome, Min: 20000, Max: 200000, Weight: 0.20},
			{Name: FeatureDebtToIncome, Min: 0.1, Max: 0.8, Weight: 0.20},
			{Name: FeatureHistoryYears, Min: 1, Max: 20, Weight: 0.15},
			{Name: FeatureActiveCards, Min: 1, Max: 10, Weight: 0.15},
			{Name: FeatureTotalLoans, Min: 0, Max: 5, Weight: 0.10},
			{Name: FeatureUtilization, Min: 0.1, Max: 0.9, Weight: 0.10},
			{Name: FeatureOnTimeRate, Min: 0.6, Max: 1.0, Weight: 0.10},
		},
		Cutoffs: domain.RuleCutoffs{
			Bad:       0.70,
			Excellent: 0.90,
			Good:      0.80,
			Fair:      0.70,

			DebtLow:      0.30,
			DebtModerate: 0.40,
			DebtHigher:   0.60,

			UtilizationLow:      0.30,
			UtilizationModerate: 0.40,
			UtilizationHigher:   0.60,
		},
	}
}

func ficoConfig() Config {
	return Config{
		FeatureSet:    FeatureSetFICO,
		PaymentSignal: SignalMissedPayments,
		Features: []domain.FeatureSpec{
			{Name: FeatureCreditScore, Min: 300, Max: 850, Weight: 0.40},
			{Name: FeatureMissedPayments, Min: 0, Max: 12, Weight: -0.25},
			{Name: FeatureUtilization, Min: 0.1, Max: 0.9, Weight: -0.15},
			{Name: FeatureHistoryYears, Min: 1, Max: 20, Weight: 0.10},
			{Name: FeatureDebtToIncome, Min: 0.1, Max: 0.8, Weight: -0.10},
		},
		Cutoffs: domain.RuleCutoffs{
			Bad:       0.75,
			Excellent: 1.00,
			Good:      0.90,
			Fair:      0.75,

			DebtLow:      0.35,
			DebtModerate: 0.43,
			DebtHigher:   0.50,

			UtilizationLow:      0.10,
			UtilizationModerate: 0.30,
			UtilizationHigher:   0.50,

			ScoreExcellent: 740,
			ScoreGood:      670,
			ScoreFair:      580,
		},
	}
}

// DefaultConfig returns the income-based scheme.
func DefaultConfig() Config {
	return incomeConfig()
}

// ConfigFor returns the built-in scheme registered under name.
func ConfigFor(name string) (Config, error) {
	switch name {
	case "", FeatureSetIncome:
		return incomeConfig(), nil
	case FeatureSetFICO:
		return ficoConfig(), nil
	default:
		return Config{}, fmt.Errorf("unknown feature set %q", name)
	}
}

// Weights returns the combining weight of every feature, in vector order.
func (c Config) Weights() []float64 {
	w := make([]float64, len(c.Features))
	for i, f := range c.Features {
		w[i] = f.Weight
	}
	return w
}

func (c Config) Validate() error {
	if len(c.Features) == 0 {
		return fmt.Errorf("feature set %q has no features", c.FeatureSet)
	}
	for _, f := range c.Features {
		if _, ok := rawFeatures[f.Name]; !ok {
			return fmt.Errorf("feature set %q: unknown feature %q", c.FeatureSet, f.Name)
		}
		if f.Max <= f.Min {
			return fmt.Errorf("feature set %q: feature %q has max %v not above min %v", c.FeatureSet, f.Name, f.Max, f.Min)
		}
	}
	switch c.PaymentSignal {
	case SignalOnTimeRate, SignalMissedPayments:
	default:
		return fmt.Errorf("feature set %q: unknown payment signal %q", c.FeatureSet, c.PaymentSignal)
	}
	return nil
}

// ConfigRepository reads and stores scoring overrides.
type ConfigRepository interface {
	GetScoringConfig(ctx context.Context, featureSet string) (domain.ScoringConfig, bool, error)
	UpsertScoringConfig(ctx context.Context, cfg domain.ScoringConfig) error
}
