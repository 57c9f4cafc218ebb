package offer

import (
	"creditAdvisor/domain"
	"fmt"
)

// Predictor is the part of the prediction engine the adjuster needs.
type Predictor interface {
	Predict(p domain.CreditProfile) (domain.Category, error)
}

// AdjustedScore rounds a score inside the offer's band up to the top of the
// band. Scores outside the band are returned unchanged.
func AdjustedScore(o domain.Offer, p domain.CreditProfile) int {
	if o.ScoreRange.Contains(p.CreditScore) {
		return o.ScoreRange.Hi
	}
	return p.CreditScore
}

// SelectOffers keeps the offers that share at least one tag with
// requestedTags and whose id is in allowedIDs, in catalog order.
func SelectOffers(catalog []domain.Offer, requestedTags, allowedIDs []string) []domain.Offer {
	tags := toSet(requestedTags)
	allowed := toSet(allowedIDs)

	out := make([]domain.Offer, 0)
	for _, o := range catalog {
		if _, ok := allowed[o.ID]; !ok {
			continue
		}
		if !anyTag(o.Tags, tags) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func anyTag(tags []string, wanted map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := wanted[t]; ok {
			return true
		}
	}
	return false
}

type Adjuster struct {
	predictor Predictor
	policy    TierPolicy
}

func NewAdjuster(predictor Predictor, policy TierPolicy) *Adjuster {
	if policy == "" {
		policy = TierPolicyLegacy
	}
	return &Adjuster{predictor: predictor, policy: policy}
}

func (a *Adjuster) Policy() TierPolicy {
	return a.policy
}

// PerOfferPredictions predicts once per offer on a copy of the profile that
// carries the offer-adjusted score. The caller's profile is left untouched.
func (a *Adjuster) PerOfferPredictions(p domain.CreditProfile, offers []domain.Offer) ([]domain.OfferPrediction, error) {
	out := make([]domain.OfferPrediction, 0, len(offers))
	for _, o := range offers {
		score := AdjustedScore(o, p)

		category, err := a.predictor.Predict(p.WithCreditScore(score))
		if err != nil {
			return nil, fmt.Errorf("predict for offer %s: %w", o.ID, err)
		}

		out = append(out, domain.OfferPrediction{
			OfferID:       o.ID,
			Tier:          a.policy.Tier(category),
			Category:      category,
			AdjustedScore: score,
		})
	}
	return out, nil
}
