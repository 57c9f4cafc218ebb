package credit

import (
	"context"
	"creditAdvisor/domain"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// PredictionCache stores predictions by key. Keys embed the model generation,
// so a retrain makes every older entry unreachable.
type PredictionCache interface {
	Get(ctx context.Context, key string) (domain.Category, bool, error)
	Set(ctx context.Context, key string, category domain.Category) error
}

// cachedFields is the part of a profile that can influence a prediction.
type cachedFields struct {
	AnnualIncome        float64 `json:"i"`
	MonthlyDebtPayments float64 `json:"d"`
	OldestAccountAge    int     `json:"h"`
	ActiveCreditCards   int     `json:"c"`
	TotalLoans          int     `json:"l"`
	CreditUtilization   float64 `json:"u"`
	OnTimePayments      float64 `json:"o"`
	CreditScore         int     `json:"s"`
	MissedPayments      int     `json:"m"`
}

func predictionKey(featureSet string, generation uint64, p domain.CreditProfile) (string, error) {
	b, err := json.Marshal(cachedFields{
		AnnualIncome:        p.AnnualIncome,
		MonthlyDebtPayments: p.MonthlyDebtPayments,
		OldestAccountAge:    p.OldestAccountAge,
		ActiveCreditCards:   p.ActiveCreditCards,
		TotalLoans:          p.TotalLoans,
		CreditUtilization:   p.CreditUtilization,
		OnTimePayments:      p.OnTimePayments,
		CreditScore:         p.CreditScore,
		MissedPayments:      p.MissedPayments,
	})
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:%d:%s", featureSet, generation, hex.EncodeToString(sum[:])), nil
}
