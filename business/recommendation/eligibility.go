package recommendation

import (
	"creditAdvisor/domain"
)

// Applicant is what card minimums are checked against. PaymentRate is the
// payment quality of the active feature set, in [0, 1].
type Applicant struct {
	AnnualIncome float64
	HistoryYears int
	PaymentRate  float64
}

func NewApplicant(p domain.CreditProfile, paymentRate float64) Applicant {
	return Applicant{
		AnnualIncome: p.AnnualIncome,
		HistoryYears: p.OldestAccountAge,
		PaymentRate:  paymentRate,
	}
}

// Filter returns the cards of the given category the applicant qualifies for,
// in catalog order. A nil applicant skips the income, history and payment
// minimums.
func Filter(catalog []domain.CreditCard, applicant *Applicant, category domain.Category) []domain.CreditCard {
	out := make([]domain.CreditCard, 0)
	for _, card := range catalog {
		if card.Category != category {
			continue
		}
		if applicant != nil && !qualifies(card, *applicant) {
			continue
		}
		out = append(out, card)
	}
	return out
}

func qualifies(card domain.CreditCard, a Applicant) bool {
	if a.AnnualIncome < card.MinIncome {
		return false
	}
	if a.HistoryYears < card.MinHistoryYears {
		return false
	}
	return a.PaymentRate >= card.MinPaymentRate
}
