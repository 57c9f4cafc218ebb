package credit

import (
	"context"
	"creditAdvisor/domain"
	"fmt"
)

type CardRepository interface {
	FindAll(ctx context.Context) ([]domain.CreditCard, error)
}

type OfferRepository interface {
	FindAll(ctx context.Context) ([]domain.Offer, error)
}

type TrainingDataRepository interface {
	FindAll(ctx context.Context) ([]domain.TrainingExample, error)
}

// Catalog is loaded once at startup and only read afterwards.
type Catalog struct {
	Cards  []domain.CreditCard
	Offers []domain.Offer
}

// LoadCatalog reads both catalogs. Any failure is reported as
// ErrCatalogUnavailable; a partial catalog is never returned.
func LoadCatalog(ctx context.Context, cards CardRepository, offers OfferRepository) (Catalog, error) {
	c, err := cards.FindAll(ctx)
	if err != nil {
		return Catalog{}, catalogErr("cards", err)
	}
	o, err := offers.FindAll(ctx)
	if err != nil {
		return Catalog{}, catalogErr("offers", err)
	}
	return Catalog{Cards: c, Offers: o}, nil
}

func (c Catalog) OfferIDs() []string {
	ids := make([]string, len(c.Offers))
	for i, o := range c.Offers {
		ids[i] = o.ID
	}
	return ids
}

func catalogErr(name string, err error) error {
	return fmt.Errorf("load %s: %w: %v", name, domain.ErrCatalogUnavailable, err)
}
