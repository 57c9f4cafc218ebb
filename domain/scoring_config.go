package domain

import "gorm.io/datatypes"

// FeatureSpec is one normalized feature of a feature set.
type FeatureSpec struct {
	Name   string  `json:"name"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Weight float64 `json:"weight"`
}

type RuleCutoffs struct {
	Bad       float64 `json:"bad"`
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Fair      float64 `json:"fair"`

	DebtLow      float64 `json:"debt_low"`
	DebtModerate float64 `json:"debt_moderate"`
	DebtHigher   float64 `json:"debt_higher"`

	UtilizationLow      float64 `json:"utilization_low"`
	UtilizationModerate float64 `json:"utilization_moderate"`
	UtilizationHigher   float64 `json:"utilization_higher"`

	// zero disables the score gate of a rule
	ScoreExcellent int `json:"score_excellent"`
	ScoreGood      int `json:"score_good"`
	ScoreFair      int `json:"score_fair"`
}

// ScoringConfig is a stored override of a feature set's weights and cutoffs.
type ScoringConfig struct {
	FeatureSet string `json:"feature_set" gorm:"column:feature_set;primaryKey"`

	FeaturesRaw datatypes.JSON `json:"-" gorm:"column:features;type:jsonb"`
	CutoffsRaw  datatypes.JSON `json:"-" gorm:"column:cutoffs;type:jsonb"`

	Features []FeatureSpec `json:"features" gorm:"-"`
	Cutoffs  RuleCutoffs   `json:"cutoffs" gorm:"-"`
}

func (ScoringConfig) TableName() string {
	return "scoring_configs"
}

// PredictionExplanation breaks a prediction down into its parts.
type PredictionExplanation struct {
	FeatureSet string               `json:"feature_set"`
	Features   []float64            `json:"features"`
	Combined   float64              `json:"combined"`
	Scores     map[Category]float64 `json:"scores,omitempty"`
	Rule       string               `json:"rule,omitempty"`
	Category   Category             `json:"category"`
	Generation uint64               `json:"generation"`
}
