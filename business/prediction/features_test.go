package prediction

import (
	"creditAdvisor/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureExtractor_Extract(t *testing.T) {
	ex, err := NewFeatureExtractor(DefaultConfig().Features)
	require.NoError(t, err)
	require.Equal(t, 7, ex.Len())

	tests := []struct {
		name     string
		profile  domain.CreditProfile
		expected FeatureVector
	}{
		{
			name: "normalizes inside the table ranges",
			profile: domain.CreditProfile{
				AnnualIncome:        110000,
				MonthlyDebtPayments: 3500, // dti 0.3818...
				OldestAccountAge:    10,
				ActiveCreditCards:   4,
				TotalLoans:          1,
				CreditUtilization:   0.3,
				OnTimePayments:      9, // rate 0.75
			},
			expected: FeatureVector{
				0.5,
				(42000.0/110000.0 - 0.1) / 0.7,
				9.0 / 19.0,
				3.0 / 9.0,
				0.2,
				0.25,
				0.375,
			},
		},
		{
			name: "clips values outside the ranges",
			profile: domain.CreditProfile{
				AnnualIncome:        300000,
				MonthlyDebtPayments: 0,
				OldestAccountAge:    25,
				ActiveCreditCards:   0,
				TotalLoans:          9,
				CreditUtilization:   0.05,
				OnTimePayments:      6,
			},
			expected: FeatureVector{1, 0, 1, 0, 1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ex.Extract(tt.profile)
			require.NoError(t, err)
			require.Len(t, v, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], v[i], 1e-9, "feature %d", i)
			}
		})
	}
}

func TestFeatureExtractor_FICOSetHasFiveFeatures(t *testing.T) {
	cfg, err := ConfigFor(FeatureSetFICO)
	require.NoError(t, err)

	ex, err := NewFeatureExtractor(cfg.Features)
	require.NoError(t, err)

	v, err := ex.Extract(domain.CreditProfile{
		AnnualIncome:   50000,
		CreditScore:    850,
		MissedPayments: 3,
	})
	require.NoError(t, err)
	require.Len(t, v, 5)
	assert.InDelta(t, 1.0, v[0], 1e-9)
	assert.InDelta(t, 0.25, v[1], 1e-9)
}

func TestFeatureExtractor_InvalidProfile(t *testing.T) {
	ex, err := NewFeatureExtractor(DefaultConfig().Features)
	require.NoError(t, err)

	tests := []struct {
		name    string
		profile domain.CreditProfile
	}{
		{name: "zero income", profile: domain.CreditProfile{AnnualIncome: 0, OnTimePayments: 12}},
		{name: "negative income", profile: domain.CreditProfile{AnnualIncome: -1}},
		{name: "negative debt", profile: domain.CreditProfile{AnnualIncome: 1000, MonthlyDebtPayments: -5}},
		{name: "negative loans", profile: domain.CreditProfile{AnnualIncome: 1000, TotalLoans: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ex.Extract(tt.profile)
			assert.ErrorIs(t, err, domain.ErrInvalidProfile)
		})
	}
}

func TestNewFeatureExtractor_RejectsBadTable(t *testing.T) {
	_, err := NewFeatureExtractor(nil)
	assert.Error(t, err)

	_, err = NewFeatureExtractor([]domain.FeatureSpec{{Name: "shoe_size", Min: 0, Max: 1}})
	assert.Error(t, err)

	_, err = NewFeatureExtractor([]domain.FeatureSpec{{Name: FeatureAnnualIncome, Min: 10, Max: 10}})
	assert.Error(t, err)
}
