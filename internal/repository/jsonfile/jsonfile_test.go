package jsonfile

import (
	"context"
	"creditAdvisor/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCardRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("loads in file order", func(t *testing.T) {
		path := writeFile(t, "cards.json", `[
			{"id": "b", "name": "B", "category": "good", "rewardsRate": 1.2, "features": ["Mobile App Access"]},
			{"id": "a", "name": "A", "category": "EXCELLENT", "rewardsRate": 3.1, "minIncome": 100000}
		]`)

		repo, err := NewCardRepository(path)
		require.NoError(t, err)

		cards, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "b", cards[0].ID)
		assert.Equal(t, domain.CategoryGood, cards[0].Category)
		assert.Equal(t, []string{"Mobile App Access"}, []string(cards[0].Features))
		assert.Equal(t, 1, cards[1].Position)
		assert.Equal(t, 100000.0, cards[1].MinIncome)
	})

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: `[{"id": "a",`},
		{name: "unknown category", content: `[{"id": "a", "category": "GREAT"}]`},
		{name: "missing category", content: `[{"id": "a"}]`},
		{name: "missing id", content: `[{"category": "GOOD"}]`},
		{name: "duplicate id", content: `[{"id": "a", "category": "GOOD"}, {"id": "a", "category": "FAIR"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCardRepository(writeFile(t, "cards.json", tt.content))
			assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCardRepository(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}

func TestOfferRepository(t *testing.T) {
	path := writeFile(t, "offers.json", `[
		{"id": "OFF-PLT-2025-07", "name": "PLATINUM CARD", "scoreRange": {"lo": 720, "hi": 850}, "tags": ["travel", "points"]},
		{"id": "OFF-SCB-2025-08", "name": "SECURED BUILDER", "scoreRange": {"lo": 580, "hi": 670}, "tags": ["buildCredit"]}
	]`)

	repo, err := NewOfferRepository(path)
	require.NoError(t, err)

	offers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, domain.ScoreRange{Lo: 720, Hi: 850}, offers[0].ScoreRange)
	assert.Equal(t, []string{"buildCredit"}, []string(offers[1].Tags))

	_, err = NewOfferRepository(writeFile(t, "bad.json", `[{"id": "x", "scoreRange": {"lo": 800, "hi": 700}}]`))
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestOfferRepository_DashedScoreRange(t *testing.T) {
	path := writeFile(t, "offers.json", `[
		{"id": "OFF-USRV-2025-15", "scoreRange": "740-850", "tags": ["travel"]},
		{"id": "OFF-SCB-2025-08", "scoreRange": " 580 - 670 ", "tags": ["buildCredit"]}
	]`)

	repo, err := NewOfferRepository(path)
	require.NoError(t, err)

	offers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, domain.ScoreRange{Lo: 740, Hi: 850}, offers[0].ScoreRange)
	assert.Equal(t, domain.ScoreRange{Lo: 580, Hi: 670}, offers[1].ScoreRange)

	for _, bad := range []string{`"850-740"`, `"740"`, `"lo-hi"`} {
		_, err = NewOfferRepository(writeFile(t, "bad.json", `[{"id": "x", "scoreRange": `+bad+`}]`))
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable, bad)
	}
}

func TestTrainingDataRepository(t *testing.T) {
	path := writeFile(t, "training.json", `[
		{"annualIncome": 180000, "monthlyDebtPayments": 2000, "oldestAccountAge": 20, "activeCreditCards": 4,
		 "totalLoans": 1, "creditUtilization": 0.2, "onTimePayments": 12, "ficoScore": 790, "category": "EXCELLENT"},
		{"annualIncome": 30000, "monthlyDebtPayments": 4500, "oldestAccountAge": 2, "activeCreditCards": 1,
		 "totalLoans": 3, "creditUtilization": 0.8, "onTimePayments": 6, "missedPayments": 6, "category": "poor"}
	]`)

	examples, err := NewTrainingDataRepository(path).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Equal(t, domain.CategoryExcellent, examples[0].Category)
	assert.Equal(t, 790, examples[0].CreditScore)
	assert.Equal(t, domain.CategoryPoor, examples[1].Category)
	assert.Equal(t, 6, examples[1].MissedPayments)

	_, err = NewTrainingDataRepository(filepath.Join(t.TempDir(), "nope.json")).FindAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}
