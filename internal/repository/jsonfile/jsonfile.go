// Package jsonfile serves the catalogs and the training set from JSON files
// read once at construction time.
package jsonfile

import (
	"context"
	"creditAdvisor/business/credit"
	"creditAdvisor/domain"
	"encoding/json"
	"fmt"
	"os"
)

var (
	_ credit.CardRepository         = (*CardRepository)(nil)
	_ credit.OfferRepository        = (*OfferRepository)(nil)
	_ credit.TrainingDataRepository = (*TrainingDataRepository)(nil)
)

func readJSON[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer f.Close()

	var out []T
	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrCatalogUnavailable, path, err)
	}
	return out, nil
}

type CardRepository struct {
	cards []domain.CreditCard
}

func NewCardRepository(path string) (*CardRepository, error) {
	cards, err := readJSON[domain.CreditCard](path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(cards))
	for i := range cards {
		c := &cards[i]
		if c.ID == "" {
			return nil, fmt.Errorf("%w: card %d in %s has no id", domain.ErrCatalogUnavailable, i, path)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate card id %q in %s", domain.ErrCatalogUnavailable, c.ID, path)
		}
		if !c.Category.IsValid() {
			return nil, fmt.Errorf("%w: card %q has no category", domain.ErrCatalogUnavailable, c.ID)
		}
		seen[c.ID] = struct{}{}
		c.Position = i
	}

	return &CardRepository{cards: cards}, nil
}

func (r *CardRepository) FindAll(ctx context.Context) ([]domain.CreditCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	out := make([]domain.CreditCard, len(r.cards))
	copy(out, r.cards)
	return out, nil
}

type OfferRepository struct {
	offers []domain.Offer
}

func NewOfferRepository(path string) (*OfferRepository, error) {
	offers, err := readJSON[domain.Offer](path)
	if err != nil {
		return nil, err
	}

	for i := range offers {
		o := &offers[i]
		if o.ID == "" {
			return nil, fmt.Errorf("%w: offer %d in %s has no id", domain.ErrCatalogUnavailable, i, path)
		}
		if o.ScoreRange.Lo > o.ScoreRange.Hi {
			return nil, fmt.Errorf("%w: offer %q has score range %d-%d", domain.ErrCatalogUnavailable, o.ID, o.ScoreRange.Lo, o.ScoreRange.Hi)
		}
		o.Position = i
	}

	return &OfferRepository{offers: offers}, nil
}

func (r *OfferRepository) FindAll(ctx context.Context) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	out := make([]domain.Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

type TrainingDataRepository struct {
	path string
}

// NewTrainingDataRepository reads the file on every FindAll so a retrain can
// pick up a regenerated training set.
func NewTrainingDataRepository(path string) *TrainingDataRepository {
	return &TrainingDataRepository{path: path}
}

func (r *TrainingDataRepository) FindAll(ctx context.Context) ([]domain.TrainingExample, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return readJSON[domain.TrainingExample](r.path)
}
