package domain

import "time"

// CREATE TABLE public.training_profiles (
//     id                    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     annual_income         NUMERIC NOT NULL,
//     monthly_debt_payments NUMERIC NOT NULL,
//     oldest_account_age    INT,
//     active_credit_cards   INT,
//     total_loans           INT,
//     credit_utilization    NUMERIC,
//     on_time_payments      NUMERIC,
//     credit_score          INT,
//     missed_payments       INT,
//     category              TEXT NOT NULL,
//     created_at            TIMESTAMPTZ DEFAULT NOW()
// );

// TrainingExample is a labelled profile. In JSON the label sits next to the
// profile fields under "category".
type TrainingExample struct {
	CreditProfile
	Category Category `json:"category"`
}

// TrainingProfile is the row form of a TrainingExample.
type TrainingProfile struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"`
	AnnualIncome        float64   `gorm:"column:annual_income;type:numeric;not null"`
	MonthlyDebtPayments float64   `gorm:"column:monthly_debt_payments;type:numeric;not null"`
	OldestAccountAge    int       `gorm:"column:oldest_account_age"`
	ActiveCreditCards   int       `gorm:"column:active_credit_cards"`
	TotalLoans          int       `gorm:"column:total_loans"`
	CreditUtilization   float64   `gorm:"column:credit_utilization;type:numeric"`
	OnTimePayments      float64   `gorm:"column:on_time_payments;type:numeric"`
	CreditScore         int       `gorm:"column:credit_score"`
	MissedPayments      int       `gorm:"column:missed_payments"`
	Category            Category  `gorm:"column:category;type:text;not null"`
	CreatedAt           time.Time `gorm:"column:created_at"`
}

func (TrainingProfile) TableName() string {
	return "training_profiles"
}

func (t TrainingProfile) Example() TrainingExample {
	return TrainingExample{
		CreditProfile: CreditProfile{
			AnnualIncome:        t.AnnualIncome,
			MonthlyDebtPayments: t.MonthlyDebtPayments,
			OldestAccountAge:    t.OldestAccountAge,
			ActiveCreditCards:   t.ActiveCreditCards,
			TotalLoans:          t.TotalLoans,
			CreditUtilization:   t.CreditUtilization,
			OnTimePayments:      t.OnTimePayments,
			CreditScore:         t.CreditScore,
			MissedPayments:      t.MissedPayments,
		},
		Category: t.Category,
	}
}

func NewTrainingProfile(ex TrainingExample) TrainingProfile {
	p := ex.CreditProfile
	return TrainingProfile{
		AnnualIncome:        p.AnnualIncome,
		MonthlyDebtPayments: p.MonthlyDebtPayments,
		OldestAccountAge:    p.OldestAccountAge,
		ActiveCreditCards:   p.ActiveCreditCards,
		TotalLoans:          p.TotalLoans,
		CreditUtilization:   p.CreditUtilization,
		OnTimePayments:      p.OnTimePayments,
		CreditScore:         p.CreditScore,
		MissedPayments:      p.MissedPayments,
		Category:            ex.Category,
	}
}

// TrainingStats describes the model currently serving predictions.
type TrainingStats struct {
	Count       int              `json:"trainingDataSize"`
	PerCategory map[Category]int `json:"categories"`
	FeatureSet  string           `json:"featureSet"`
	Generation  uint64           `json:"generation"`
	TrainedAt   time.Time        `json:"trainedAt"`
}
