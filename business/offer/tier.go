package offer

import (
	"creditAdvisor/domain"
	"fmt"
	"strings"
)

// TierPolicy collapses a predicted category into an offer tier.
type TierPolicy string

const (
	// TierPolicyLegacy reports EXCELLENT and GOOD as High and everything else
	// as Low. Medium is never produced.
	TierPolicyLegacy TierPolicy = "legacy"
	// TierPolicyGraded maps FAIR to Medium.
	TierPolicyGraded TierPolicy = "graded"
)

func ParseTierPolicy(s string) (TierPolicy, error) {
	switch TierPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", TierPolicyLegacy:
		return TierPolicyLegacy, nil
	case TierPolicyGraded:
		return TierPolicyGraded, nil
	default:
		return "", fmt.Errorf("unknown offer tier policy %q", s)
	}
}

func (p TierPolicy) Tier(c domain.Category) domain.Tier {
	switch c {
	case domain.CategoryExcellent, domain.CategoryGood:
		return domain.TierHigh
	case domain.CategoryFair:
		if p == TierPolicyGraded {
			return domain.TierMedium
		}
	}
	return domain.TierLow
}
