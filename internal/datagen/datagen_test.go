package datagen

import (
	"creditAdvisor/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingSet(t *testing.T) {
	set := New(42).TrainingSet(50)
	require.Len(t, set, 200)

	counts := map[domain.Category]int{}
	for i, ex := range set {
		counts[ex.Category]++
		assert.NoError(t, ex.Validate(), "example %d", i)

		r := profileRanges[ex.Category]
		assert.GreaterOrEqual(t, ex.AnnualIncome, r.incomeLo)
		assert.LessOrEqual(t, ex.AnnualIncome, r.incomeHi)
		assert.GreaterOrEqual(t, ex.OnTimePayments, float64(r.onTimeLo))
		assert.Less(t, ex.OnTimePayments, float64(r.onTimeHi))
		assert.LessOrEqual(t, ex.OnTimePayments, 12.0)
		assert.GreaterOrEqual(t, ex.CreditScore, 300)
		assert.LessOrEqual(t, ex.CreditScore, 850)
	}
	for _, c := range domain.Categories {
		assert.Equal(t, 50, counts[c])
	}
}

func TestTrainingSet_Deterministic(t *testing.T) {
	assert.Equal(t, New(7).TrainingSet(10), New(7).TrainingSet(10))
	assert.NotEqual(t, New(7).TrainingSet(10), New(8).TrainingSet(10))
}

func TestCards(t *testing.T) {
	cards := New(1).Cards(5)
	require.Len(t, cards, len(brands)*len(domain.Categories)*5)

	assert.Equal(t, "chase-excellent-1", cards[0].ID)
	assert.Equal(t, "Chase Travel Rewards Card", cards[0].Name)

	ids := map[string]struct{}{}
	for _, c := range cards {
		_, dup := ids[c.ID]
		assert.False(t, dup, c.ID)
		ids[c.ID] = struct{}{}

		r := cardRanges[c.Category]
		assert.GreaterOrEqual(t, c.RewardsRate, r.rewardsLo)
		assert.LessOrEqual(t, c.RewardsRate, r.rewardsHi)
		assert.Equal(t, r.minIncome, c.MinIncome)
		assert.Equal(t, "Online Account Management", c.Features[0])
	}
	assert.Contains(t, ids, "us-bank-poor-5")
}
