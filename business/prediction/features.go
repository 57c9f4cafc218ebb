package prediction

import (
	"creditAdvisor/domain"
	"fmt"
)

// FeatureVector holds normalized features, each in [0, 1].
type FeatureVector []float64

type rawFeature func(p domain.CreditProfile) (float64, error)

var rawFeatures = map[string]rawFeature{
	FeatureAnnualIncome: func(p domain.CreditProfile) (float64, error) {
		return p.AnnualIncome, nil
	},
	FeatureDebtToIncome: func(p domain.CreditProfile) (float64, error) {
		return p.DebtToIncome()
	},
	FeatureHistoryYears: func(p domain.CreditProfile) (float64, error) {
		return float64(p.OldestAccountAge), nil
	},
	FeatureActiveCards: func(p domain.CreditProfile) (float64, error) {
		return float64(p.ActiveCreditCards), nil
	},
	FeatureTotalLoans: func(p domain.CreditProfile) (float64, error) {
		return float64(p.TotalLoans), nil
	},
	FeatureUtilization: func(p domain.CreditProfile) (float64, error) {
		return p.CreditUtilization, nil
	},
	FeatureOnTimeRate: func(p domain.CreditProfile) (float64, error) {
		return p.OnTimeRate(), nil
	},
	FeatureCreditScore: func(p domain.CreditProfile) (float64, error) {
		return float64(p.CreditScore), nil
	},
	FeatureMissedPayments: func(p domain.CreditProfile) (float64, error) {
		return float64(p.MissedPayments), nil
	},
}

// FeatureExtractor turns a profile into a FeatureVector using a fixed
// (min, max) table.
type FeatureExtractor struct {
	specs  []domain.FeatureSpec
	values []rawFeature
}

func NewFeatureExtractor(specs []domain.FeatureSpec) (*FeatureExtractor, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("feature extractor needs at least one feature")
	}

	values := make([]rawFeature, len(specs))
	for i, s := range specs {
		fn, ok := rawFeatures[s.Name]
		if !ok {
			return nil, fmt.Errorf("unknown feature %q", s.Name)
		}
		if s.Max <= s.Min {
			return nil, fmt.Errorf("feature %q: max %v must be above min %v", s.Name, s.Max, s.Min)
		}
		values[i] = fn
	}

	return &FeatureExtractor{
		specs:  append([]domain.FeatureSpec(nil), specs...),
		values: values,
	}, nil
}

// Len is the length of every vector this extractor produces.
func (e *FeatureExtractor) Len() int {
	return len(e.specs)
}

func (e *FeatureExtractor) Extract(p domain.CreditProfile) (FeatureVector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	v := make(FeatureVector, len(e.specs))
	for i, s := range e.specs {
		raw, err := e.values[i](p)
		if err != nil {
			return nil, err
		}
		v[i] = normalize(raw, s.Min, s.Max)
	}
	return v, nil
}

// normalize maps raw into [0, 1] relative to [min, max].
func normalize(raw, min, max float64) float64 {
	return clip((raw-min)/(max-min), 0, 1)
}

func clip(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
