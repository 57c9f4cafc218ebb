package prediction

import (
	"creditAdvisor/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profile builds an income-set profile from the values the rules look at.
func profile(income, monthlyDebt, utilization, onTime float64) domain.CreditProfile {
	return domain.CreditProfile{
		AnnualIncome:        income,
		MonthlyDebtPayments: monthlyDebt,
		OldestAccountAge:    8,
		ActiveCreditCards:   3,
		TotalLoans:          1,
		CreditUtilization:   utilization,
		OnTimePayments:      onTime,
		CreditScore:         700,
	}
}

func TestThresholdClassifier_IncomeSet(t *testing.T) {
	cfg := DefaultConfig()
	c := NewThresholdClassifier(cfg.Cutoffs, cfg.PaymentSignal)

	tests := []struct {
		name     string
		profile  domain.CreditProfile
		expected domain.Category
		ok       bool
	}{
		{
			name: "poor payments dominate everything else",
			profile: domain.CreditProfile{
				AnnualIncome:      300000,
				OldestAccountAge:  25,
				CreditUtilization: 0.05,
				OnTimePayments:    6, // rate 0.5
			},
			expected: domain.CategoryPoor,
			ok:       true,
		},
		{
			name:     "excellent",
			profile:  profile(120000, 1000, 0.2, 12),
			expected: domain.CategoryExcellent,
			ok:       true,
		},
		{
			name:     "excellent at the inclusive debt and utilization cutoffs",
			profile:  profile(120000, 3000, 0.3, 12), // dti exactly 0.3
			expected: domain.CategoryExcellent,
			ok:       true,
		},
		{
			name:     "excellent payments with moderate debt fall through to good",
			profile:  profile(120000, 3500, 0.2, 12), // dti 0.35
			expected: domain.CategoryGood,
			ok:       true,
		},
		{
			name:     "good",
			profile:  profile(120000, 3500, 0.35, 10), // rate 0.833
			expected: domain.CategoryGood,
			ok:       true,
		},
		{
			name:     "fair",
			profile:  profile(120000, 5000, 0.5, 9), // dti 0.5, rate 0.75
			expected: domain.CategoryFair,
			ok:       true,
		},
		{
			name:    "no rule fires above the highest debt cutoff",
			profile: profile(120000, 7000, 0.2, 12), // dti 0.7
			ok:      false,
		},
		{
			name:    "no rule fires above the highest utilization cutoff",
			profile: profile(120000, 1000, 0.75, 12),
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := c.Classify(tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestThresholdClassifier_FICOSet(t *testing.T) {
	cfg, err := ConfigFor(FeatureSetFICO)
	require.NoError(t, err)
	c := NewThresholdClassifier(cfg.Cutoffs, cfg.PaymentSignal)

	base := domain.CreditProfile{
		AnnualIncome:        100000,
		MonthlyDebtPayments: 1500, // dti 0.18
		CreditUtilization:   0.05,
		OldestAccountAge:    10,
	}

	tests := []struct {
		name     string
		score    int
		missed   int
		expected domain.Category
		ok       bool
	}{
		{name: "clean history and high score", score: 760, missed: 0, expected: domain.CategoryExcellent, ok: true},
		{name: "clean history below the excellent score gate", score: 700, missed: 0, expected: domain.CategoryGood, ok: true},
		{name: "one missed payment", score: 760, missed: 1, expected: domain.CategoryGood, ok: true},
		{name: "score below every gate defers", score: 500, missed: 0, ok: false},
		{name: "four missed payments", score: 800, missed: 4, expected: domain.CategoryPoor, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.CreditScore = tt.score
			p.MissedPayments = tt.missed

			got, ok, err := c.Classify(p)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestThresholdClassifier_ZeroIncome(t *testing.T) {
	cfg := DefaultConfig()
	c := NewThresholdClassifier(cfg.Cutoffs, cfg.PaymentSignal)

	_, _, err := c.Classify(domain.CreditProfile{OnTimePayments: 12})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}
