package recommendation

import (
	"creditAdvisor/domain"
	"sort"
)

const DefaultLimit = 5

// Rank orders cards by rewards rate, highest first, and keeps at most limit of
// them. Cards with equal rates keep their input order. The input slice is not
// modified.
func Rank(cards []domain.CreditCard, limit int) []domain.CreditCard {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]domain.CreditCard, len(cards))
	copy(ranked, cards)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RewardsRate > ranked[j].RewardsRate
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
