package prediction

import (
	"creditAdvisor/domain"
)

const (
	RulePoorPayments = "poor_payment_history"
	RuleExcellent    = "excellent_thresholds"
	RuleGood         = "good_thresholds"
	RuleFair         = "fair_thresholds"
)

// ThresholdClassifier applies the business rules that may decide a category
// without consulting the scorer. Rules run in a fixed order and the first
// match wins.
type ThresholdClassifier struct {
	cutoffs domain.RuleCutoffs
	signal  PaymentSignal
}

func NewThresholdClassifier(cutoffs domain.RuleCutoffs, signal PaymentSignal) *ThresholdClassifier {
	return &ThresholdClassifier{cutoffs: cutoffs, signal: signal}
}

// Classify returns ok=false when no rule fires and the scorer must decide.
func (c *ThresholdClassifier) Classify(p domain.CreditProfile) (domain.Category, bool, error) {
	cat, _, ok, err := c.evaluate(p)
	return cat, ok, err
}

func (c *ThresholdClassifier) paymentQuality(p domain.CreditProfile) float64 {
	if c.signal == SignalMissedPayments {
		return p.MissedPaymentQuality()
	}
	return p.OnTimeRate()
}

// scoreGate passes when the gate is disabled or the score reaches it.
func scoreGate(score, gate int) bool {
	return gate <= 0 || score >= gate
}

func (c *ThresholdClassifier) evaluate(p domain.CreditProfile) (domain.Category, string, bool, error) {
	dti, err := p.DebtToIncome()
	if err != nil {
		return "", "", false, err
	}

	pq := c.paymentQuality(p)
	util := p.CreditUtilization
	co := c.cutoffs

	switch {
	case pq < co.Bad:
		return domain.CategoryPoor, RulePoorPayments, true, nil
	case pq >= co.Excellent && dti <= co.DebtLow && util <= co.UtilizationLow &&
		scoreGate(p.CreditScore, co.ScoreExcellent):
		return domain.CategoryExcellent, RuleExcellent, true, nil
	case pq >= co.Good && dti <= co.DebtModerate && util <= co.UtilizationModerate &&
		scoreGate(p.CreditScore, co.ScoreGood):
		return domain.CategoryGood, RuleGood, true, nil
	case pq >= co.Fair && dti <= co.DebtHigher && util <= co.UtilizationHigher &&
		scoreGate(p.CreditScore, co.ScoreFair):
		return domain.CategoryFair, RuleFair, true, nil
	}

	return "", "", false, nil
}
