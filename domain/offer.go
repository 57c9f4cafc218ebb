package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// CREATE TABLE public.offers (
//     id         TEXT PRIMARY KEY,
//     position   INT NOT NULL DEFAULT 0,
//     name       TEXT,
//     score_lo   INT NOT NULL,
//     score_hi   INT NOT NULL,
//     tags       JSONB
// );

// ScoreRange is an inclusive credit score band.
type ScoreRange struct {
	Lo int `gorm:"column:score_lo;not null" json:"lo"`
	Hi int `gorm:"column:score_hi;not null" json:"hi"`
}

func (r ScoreRange) Contains(score int) bool {
	return score >= r.Lo && score <= r.Hi
}

// ParseScoreRange parses the "lo-hi" notation used by offer feeds, e.g. "720-850".
func ParseScoreRange(s string) (ScoreRange, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return ScoreRange{}, fmt.Errorf("invalid score range %q", s)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ScoreRange{}, fmt.Errorf("invalid score range %q: %w", s, err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ScoreRange{}, fmt.Errorf("invalid score range %q: %w", s, err)
	}
	if lo > hi {
		return ScoreRange{}, fmt.Errorf("invalid score range %q: lower bound above upper bound", s)
	}
	return ScoreRange{Lo: lo, Hi: hi}, nil
}

// UnmarshalJSON accepts {"lo": 720, "hi": 850} as well as "720-850".
func (r *ScoreRange) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := ParseScoreRange(s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	type plain ScoreRange
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = ScoreRange(p)
	return nil
}

type Offer struct {
	ID         string                      `gorm:"primaryKey;column:id;type:text" json:"id"`
	Position   int                         `gorm:"column:position;not null;default:0" json:"-"`
	Name       string                      `gorm:"column:name;type:text" json:"name"`
	ScoreRange ScoreRange                  `gorm:"embedded" json:"scoreRange"`
	Tags       datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
}

func (Offer) TableName() string {
	return "offers"
}

// Tier is the coarse outlook reported per offer.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

type OfferPrediction struct {
	OfferID       string   `json:"offerId"`
	Tier          Tier     `json:"prediction"`
	Category      Category `json:"category"`
	AdjustedScore int      `json:"adjustedScore"`
}
