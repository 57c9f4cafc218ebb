package domain

import (
	"fmt"
	"math"
)

const paymentsPerYear = 12

// CreditProfile is the per-request input of the prediction engine.
//
// OnTimePayments counts on-time payments over the last 12 months (0-12);
// MissedPayments counts missed payments over the same window. Which one drives
// the payment-quality rules depends on the active feature set.
type CreditProfile struct {
	AnnualIncome        float64 `json:"annualIncome"`
	MonthlyDebtPayments float64 `json:"monthlyDebtPayments"`
	OldestAccountAge    int     `json:"oldestAccountAge"`
	ActiveCreditCards   int     `json:"activeCreditCards"`
	TotalLoans          int     `json:"totalLoans"`
	CreditUtilization   float64 `json:"creditUtilization"`
	OnTimePayments      float64 `json:"onTimePayments"`
	CreditScore         int     `json:"ficoScore"`
	MissedPayments      int     `json:"missedPayments"`

	// request-only fields used by the offer flow
	PurchaseCategories []string `json:"purchaseCategory,omitempty"`
	OffersList         []string `json:"offersList,omitempty"`
}

// Validate rejects degenerate numeric input. It does not enforce soft ranges
// such as utilization in [0,1].
func (p CreditProfile) Validate() error {
	floats := []struct {
		name  string
		value float64
	}{
		{"annual income", p.AnnualIncome},
		{"monthly debt payments", p.MonthlyDebtPayments},
		{"credit utilization", p.CreditUtilization},
		{"on-time payments", p.OnTimePayments},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidProfile, f.name)
		}
	}

	if p.AnnualIncome <= 0 {
		return fmt.Errorf("%w: annual income must be greater than zero", ErrInvalidProfile)
	}
	if p.MonthlyDebtPayments < 0 {
		return fmt.Errorf("%w: monthly debt payments cannot be negative", ErrInvalidProfile)
	}
	if p.OldestAccountAge < 0 || p.ActiveCreditCards < 0 || p.TotalLoans < 0 {
		return fmt.Errorf("%w: account age, card and loan counts cannot be negative", ErrInvalidProfile)
	}
	if p.OnTimePayments < 0 || p.MissedPayments < 0 {
		return fmt.Errorf("%w: payment counts cannot be negative", ErrInvalidProfile)
	}

	return nil
}

// DebtToIncome returns MonthlyDebtPayments*12/AnnualIncome.
func (p CreditProfile) DebtToIncome() (float64, error) {
	if p.AnnualIncome <= 0 || math.IsNaN(p.AnnualIncome) || math.IsInf(p.AnnualIncome, 0) {
		return 0, fmt.Errorf("%w: debt-to-income undefined for annual income %v", ErrInvalidProfile, p.AnnualIncome)
	}
	return p.MonthlyDebtPayments * paymentsPerYear / p.AnnualIncome, nil
}

// OnTimeRate converts the on-time payment count into a 0-1 rate.
func (p CreditProfile) OnTimeRate() float64 {
	return p.OnTimePayments / paymentsPerYear
}

// MissedPaymentQuality is the share of the last 12 months without a missed payment.
func (p CreditProfile) MissedPaymentQuality() float64 {
	missed := p.MissedPayments
	if missed > paymentsPerYear {
		missed = paymentsPerYear
	}
	return float64(paymentsPerYear-missed) / paymentsPerYear
}

// WithCreditScore returns a copy of p carrying the given score.
func (p CreditProfile) WithCreditScore(score int) CreditProfile {
	cp := p
	cp.PurchaseCategories = append([]string(nil), p.PurchaseCategories...)
	cp.OffersList = append([]string(nil), p.OffersList...)
	cp.CreditScore = score
	return cp
}
