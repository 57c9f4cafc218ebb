package credit

import (
	"context"
	"creditAdvisor/business/offer"
	"creditAdvisor/business/prediction"
	"creditAdvisor/business/recommendation"
	"creditAdvisor/domain"
	"creditAdvisor/pkg/logger"
	"creditAdvisor/pkg/metrics"
	"fmt"
)

// DefaultPurchaseCategory matches every offer tagged for general spend.
const DefaultPurchaseCategory = "allCards"

// TrainingProfileRepository persists the training set behind the live model.
type TrainingProfileRepository interface {
	ReplaceAll(ctx context.Context, examples []domain.TrainingExample) error
}

type Options struct {
	Cache          PredictionCache
	TrainingRepo   TrainingProfileRepository
	TierPolicy     offer.TierPolicy
	RecommendLimit int
}

type CreditService struct {
	engine         *prediction.Engine
	catalog        Catalog
	cache          PredictionCache
	trainingRepo   TrainingProfileRepository
	tierPolicy     offer.TierPolicy
	recommendLimit int
}

func NewCreditService(engine *prediction.Engine, catalog Catalog, opts Options) *CreditService {
	if opts.TierPolicy == "" {
		opts.TierPolicy = offer.TierPolicyLegacy
	}
	if opts.RecommendLimit <= 0 {
		opts.RecommendLimit = recommendation.DefaultLimit
	}
	return &CreditService{
		engine:         engine,
		catalog:        catalog,
		cache:          opts.Cache,
		trainingRepo:   opts.TrainingRepo,
		tierPolicy:     opts.TierPolicy,
		recommendLimit: opts.RecommendLimit,
	}
}

// predictorFunc lets a context-bound Predict satisfy offer.Predictor.
type predictorFunc func(domain.CreditProfile) (domain.Category, error)

func (f predictorFunc) Predict(p domain.CreditProfile) (domain.Category, error) {
	return f(p)
}

func (s *CreditService) Predict(ctx context.Context, profile domain.CreditProfile) (domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return "", err
	}

	tid := prediction.TraceIDFromContext(ctx)

	key := ""
	if s.cache != nil {
		k, err := predictionKey(s.engine.FeatureSet(), s.engine.Generation(), profile)
		if err != nil {
			logger.Warn("prediction cache key failed", "trace_id", tid, "error", err)
		} else {
			key = k
			cat, ok, err := s.cache.Get(ctx, key)
			switch {
			case err != nil:
				metrics.PredictionCacheLookups.WithLabelValues("error").Inc()
				logger.Warn("prediction cache read failed", "trace_id", tid, "error", err)
			case ok:
				metrics.PredictionCacheLookups.WithLabelValues("hit").Inc()
				logger.Debug("credit_predict", "trace_id", tid, "category", cat, "cached", true)
				return cat, nil
			default:
				metrics.PredictionCacheLookups.WithLabelValues("miss").Inc()
			}
		}
	}

	cat, err := s.engine.Predict(profile)
	if err != nil {
		return "", err
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, cat); err != nil {
			logger.Warn("prediction cache write failed", "trace_id", tid, "error", err)
		}
	}

	logger.Debug("credit_predict", "trace_id", tid, "category", cat, "cached", false)
	return cat, nil
}

func (s *CreditService) Explain(ctx context.Context, profile domain.CreditProfile) (domain.PredictionExplanation, error) {
	if err := ctx.Err(); err != nil {
		return domain.PredictionExplanation{}, fmt.Errorf("context error: %w", err)
	}
	return s.engine.Explain(profile)
}

// Retrain replaces the live model. When a training repository is configured
// the accepted set is stored afterwards; a storage failure is logged and does
// not undo the new model.
func (s *CreditService) Retrain(ctx context.Context, examples []domain.TrainingExample) (domain.TrainingStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.TrainingStats{}, fmt.Errorf("context error: %w", err)
	}

	tid := prediction.TraceIDFromContext(ctx)

	stats, err := s.engine.Retrain(examples)
	if err != nil {
		logger.Error("retrain failed", "trace_id", tid, "examples", len(examples), "error", err)
		return domain.TrainingStats{}, err
	}

	logger.Info("model retrained",
		"trace_id", tid,
		"examples", stats.Count,
		"generation", stats.Generation,
		"feature_set", stats.FeatureSet,
	)

	if s.trainingRepo != nil {
		if err := s.trainingRepo.ReplaceAll(ctx, examples); err != nil {
			logger.Error("failed to store training set", "trace_id", tid, "error", err)
		}
	}

	return stats, nil
}

func (s *CreditService) Stats(ctx context.Context) (domain.TrainingStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.TrainingStats{}, fmt.Errorf("context error: %w", err)
	}
	stats, ok := s.engine.Stats()
	if !ok {
		return domain.TrainingStats{}, domain.ErrModelNotTrained
	}
	return stats, nil
}

// Recommend predicts the profile's category and returns the best eligible
// cards of that category. No eligible card is an empty result, not an error.
func (s *CreditService) Recommend(ctx context.Context, profile domain.CreditProfile, limit int) ([]domain.CreditCard, error) {
	cat, err := s.Predict(ctx, profile)
	if err != nil {
		return nil, err
	}

	applicant := recommendation.NewApplicant(profile, s.engine.PaymentQuality(profile))
	eligible := recommendation.Filter(s.catalog.Cards, &applicant, cat)
	ranked := recommendation.Rank(eligible, s.limit(limit))

	logger.Debug("credit_recommend",
		"trace_id", prediction.TraceIDFromContext(ctx),
		"category", cat,
		"eligible", len(eligible),
		"returned", len(ranked),
	)
	return ranked, nil
}

func (s *CreditService) RecommendByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.CreditCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	cards := recommendation.Filter(s.catalog.Cards, nil, category)
	return recommendation.Rank(cards, s.limit(limit)), nil
}

func (s *CreditService) AllCards(ctx context.Context) ([]domain.CreditCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	out := make([]domain.CreditCard, len(s.catalog.Cards))
	copy(out, s.catalog.Cards)
	return out, nil
}

// PerOfferPredictions reports a tier per selected offer. Nil purchase
// categories mean "allCards"; nil allowedOfferIDs means every catalog offer.
func (s *CreditService) PerOfferPredictions(
	ctx context.Context,
	profile domain.CreditProfile,
	purchaseCategories []string,
	allowedOfferIDs []string,
) ([]domain.OfferPrediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if purchaseCategories == nil {
		purchaseCategories = []string{DefaultPurchaseCategory}
	}
	if allowedOfferIDs == nil {
		allowedOfferIDs = s.catalog.OfferIDs()
	}

	offers := offer.SelectOffers(s.catalog.Offers, purchaseCategories, allowedOfferIDs)

	adjuster := offer.NewAdjuster(predictorFunc(func(p domain.CreditProfile) (domain.Category, error) {
		return s.Predict(ctx, p)
	}), s.tierPolicy)

	preds, err := adjuster.PerOfferPredictions(profile, offers)
	if err != nil {
		return nil, err
	}

	logger.Debug("credit_offer_predictions",
		"trace_id", prediction.TraceIDFromContext(ctx),
		"offers", len(offers),
		"policy", adjuster.Policy(),
	)
	return preds, nil
}

// OfferTierPolicy is the category-to-tier mapping used by PerOfferPredictions.
func (s *CreditService) OfferTierPolicy() offer.TierPolicy {
	return s.tierPolicy
}

func (s *CreditService) limit(n int) int {
	if n <= 0 {
		return s.recommendLimit
	}
	return n
}
