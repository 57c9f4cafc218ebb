package domain

import "gorm.io/datatypes"

// CREATE TABLE public.credit_cards (
//     id                   TEXT PRIMARY KEY,
//     position             INT NOT NULL DEFAULT 0,
//     name                 TEXT NOT NULL,
//     brand                TEXT,
//     category             TEXT NOT NULL,
//     annual_fee           NUMERIC,
//     interest_rate        NUMERIC,
//     rewards_rate         NUMERIC,
//     credit_limit         NUMERIC,
//     min_income           NUMERIC DEFAULT 0,
//     min_history_years    INT DEFAULT 0,
//     min_payment_rate     NUMERIC DEFAULT 0,
//     features             JSONB,
//     eligibility_criteria JSONB
// );

// CreditCard is a catalog product. Position keeps catalog order when the
// catalog comes from a database.
type CreditCard struct {
	ID                  string                      `gorm:"primaryKey;column:id;type:text" json:"id"`
	Position            int                         `gorm:"column:position;not null;default:0" json:"-"`
	Name                string                      `gorm:"column:name;type:text;not null" json:"name"`
	Brand               string                      `gorm:"column:brand;type:text" json:"brand"`
	Category            Category                    `gorm:"column:category;type:text;not null" json:"category"`
	AnnualFee           float64                     `gorm:"column:annual_fee;type:numeric" json:"annualFee"`
	InterestRate        float64                     `gorm:"column:interest_rate;type:numeric" json:"interestRate"`
	RewardsRate         float64                     `gorm:"column:rewards_rate;type:numeric" json:"rewardsRate"`
	CreditLimit         float64                     `gorm:"column:credit_limit;type:numeric" json:"creditLimit"`
	MinIncome           float64                     `gorm:"column:min_income;type:numeric;default:0" json:"minIncome"`
	MinHistoryYears     int                         `gorm:"column:min_history_years;default:0" json:"minHistoryYears"`
	MinPaymentRate      float64                     `gorm:"column:min_payment_rate;type:numeric;default:0" json:"minPaymentRate"`
	Features            datatypes.JSONSlice[string] `gorm:"column:features;type:jsonb" json:"features"`
	EligibilityCriteria datatypes.JSONSlice[string] `gorm:"column:eligibility_criteria;type:jsonb" json:"eligibilityCriteria"`
}

func (CreditCard) TableName() string {
	return "credit_cards"
}
