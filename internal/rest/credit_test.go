package rest

import (
	"context"
	"creditAdvisor/business/offer"
	"creditAdvisor/business/prediction"
	"creditAdvisor/domain"
	"creditAdvisor/internal/middleware"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreditService struct {
	category  domain.Category
	err       error
	profile   domain.CreditProfile
	limit     int
	purchase  []string
	offerIDs  []string
	examples  []domain.TrainingExample
	stats     domain.TrainingStats
	cards     []domain.CreditCard
	byCatCall domain.Category
	policy    offer.TierPolicy
}

func (f *fakeCreditService) Predict(ctx context.Context, p domain.CreditProfile) (domain.Category, error) {
	f.profile = p
	return f.category, f.err
}

func (f *fakeCreditService) Explain(ctx context.Context, p domain.CreditProfile) (domain.PredictionExplanation, error) {
	f.profile = p
	if f.err != nil {
		return domain.PredictionExplanation{}, f.err
	}
	return domain.PredictionExplanation{Category: f.category, Rule: prediction.RuleExcellent}, nil
}

func (f *fakeCreditService) Retrain(ctx context.Context, examples []domain.TrainingExample) (domain.TrainingStats, error) {
	f.examples = examples
	if f.err != nil {
		return domain.TrainingStats{}, f.err
	}
	return domain.TrainingStats{Count: len(examples), Generation: 1}, nil
}

func (f *fakeCreditService) Stats(ctx context.Context) (domain.TrainingStats, error) {
	return f.stats, f.err
}

func (f *fakeCreditService) Recommend(ctx context.Context, p domain.CreditProfile, limit int) ([]domain.CreditCard, error) {
	f.profile = p
	f.limit = limit
	return f.cards, f.err
}

func (f *fakeCreditService) PerOfferPredictions(ctx context.Context, p domain.CreditProfile, purchase, offerIDs []string) ([]domain.OfferPrediction, error) {
	f.profile = p
	f.purchase = purchase
	f.offerIDs = offerIDs
	if f.err != nil {
		return nil, f.err
	}
	return []domain.OfferPrediction{{OfferID: "OFF-PLT-2025-07", Tier: domain.TierHigh, Category: domain.CategoryGood, AdjustedScore: 850}}, nil
}

func (f *fakeCreditService) OfferTierPolicy() offer.TierPolicy {
	if f.policy == "" {
		return offer.TierPolicyLegacy
	}
	return f.policy
}

func (f *fakeCreditService) AllCards(ctx context.Context) ([]domain.CreditCard, error) {
	return f.cards, f.err
}

func (f *fakeCreditService) RecommendByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.CreditCard, error) {
	f.byCatCall = category
	f.limit = limit
	return f.cards, f.err
}

func newTestServer(svc *fakeCreditService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler

	h := NewCreditHandler(svc, 0)
	credit := e.Group("/api/v1/credit")
	credit.POST("/train", h.Train)
	credit.POST("/predict", h.Predict)
	credit.POST("/predict/explain", h.Explain)
	credit.POST("/recommend", h.Recommend)
	credit.POST("/getRecommendations", h.GetRecommendations)
	credit.GET("/model/stats", h.ModelStats)

	ch := NewCardHandler(svc, 0)
	credit.GET("/cards", ch.GetAllCards)
	credit.GET("/cards/:category", ch.GetCardsByCategory)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validProfile = `{
	"annualIncome": 120000,
	"monthlyDebtPayments": 1000,
	"oldestAccountAge": 10,
	"activeCreditCards": 3,
	"totalLoans": 1,
	"creditUtilization": 0.2,
	"onTimePayments": 12,
	"ficoScore": 760
}`

func TestCreditHandler_Predict(t *testing.T) {
	svc := &fakeCreditService{category: domain.CategoryExcellent}
	e := newTestServer(svc)

	rec := do(e, http.MethodPost, "/api/v1/credit/predict", validProfile)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"EXCELLENT"`)
	assert.Equal(t, 120000.0, svc.profile.AnnualIncome)
	assert.Equal(t, 760, svc.profile.CreditScore)
}

func TestCreditHandler_PredictErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "malformed json", body: `{"annualIncome": `, status: http.StatusBadRequest},
		{name: "zero income", body: `{"annualIncome": 0, "onTimePayments": 12}`, status: http.StatusBadRequest},
		{name: "too many on-time payments", body: `{"annualIncome": 1000, "onTimePayments": 13}`, status: http.StatusBadRequest},
		{name: "score out of range", body: `{"annualIncome": 1000, "ficoScore": 900}`, status: http.StatusBadRequest},
		{name: "model not trained", body: validProfile, err: domain.ErrModelNotTrained, status: http.StatusServiceUnavailable},
		{name: "invalid profile from service", body: validProfile, err: domain.ErrInvalidProfile, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&fakeCreditService{err: tt.err})
			rec := do(e, http.MethodPost, "/api/v1/credit/predict", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}

func TestCreditHandler_Explain(t *testing.T) {
	e := newTestServer(&fakeCreditService{category: domain.CategoryExcellent})

	rec := do(e, http.MethodPost, "/api/v1/credit/predict/explain", validProfile)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), prediction.RuleExcellent)
}

func TestCreditHandler_Train(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeCreditService{}
		e := newTestServer(svc)

		body := `[
			{"annualIncome": 180000, "onTimePayments": 12, "category": "EXCELLENT"},
			{"annualIncome": 30000, "onTimePayments": 6, "category": "poor"}
		]`
		rec := do(e, http.MethodPost, "/api/v1/credit/train", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, svc.examples, 2)
		assert.Equal(t, domain.CategoryPoor, svc.examples[1].Category)
		assert.Contains(t, rec.Body.String(), `"trainingDataSize":2`)
	})

	t.Run("unknown label", func(t *testing.T) {
		e := newTestServer(&fakeCreditService{})
		rec := do(e, http.MethodPost, "/api/v1/credit/train", `[{"annualIncome": 1, "category": "SUPERB"}]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty set", func(t *testing.T) {
		e := newTestServer(&fakeCreditService{err: domain.ErrEmptyTrainingSet})
		rec := do(e, http.MethodPost, "/api/v1/credit/train", `[]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreditHandler_Recommend(t *testing.T) {
	svc := &fakeCreditService{cards: []domain.CreditCard{{ID: "chase-excellent-1", Category: domain.CategoryExcellent}}}
	e := newTestServer(svc)

	rec := do(e, http.MethodPost, "/api/v1/credit/recommend?n=3", validProfile)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.limit)
	assert.Contains(t, rec.Body.String(), "chase-excellent-1")

	rec = do(e, http.MethodPost, "/api/v1/credit/recommend?n=abc", validProfile)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreditHandler_GetRecommendations(t *testing.T) {
	t.Run("defaults are left to the service", func(t *testing.T) {
		svc := &fakeCreditService{}
		e := newTestServer(svc)

		rec := do(e, http.MethodPost, "/api/v1/credit/getRecommendations", validProfile)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, svc.purchase)
		assert.Nil(t, svc.offerIDs)
		assert.Contains(t, rec.Body.String(), `"cards"`)
		assert.Contains(t, rec.Body.String(), `"prediction":"High"`)
		assert.Contains(t, rec.Body.String(), `"tierPolicy":"legacy"`)
	})

	t.Run("graded policy is reported", func(t *testing.T) {
		e := newTestServer(&fakeCreditService{policy: offer.TierPolicyGraded})

		rec := do(e, http.MethodPost, "/api/v1/credit/getRecommendations", validProfile)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"tierPolicy":"graded"`)
	})

	t.Run("explicit lists", func(t *testing.T) {
		svc := &fakeCreditService{}
		e := newTestServer(svc)

		body := `{"annualIncome": 90000, "ficoScore": 700, "purchaseCategory": ["travel"], "offersList": []}`
		rec := do(e, http.MethodPost, "/api/v1/credit/getRecommendations", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"travel"}, svc.purchase)
		assert.NotNil(t, svc.offerIDs)
		assert.Empty(t, svc.offerIDs)
	})
}

func TestCreditHandler_ModelStats(t *testing.T) {
	e := newTestServer(&fakeCreditService{err: domain.ErrModelNotTrained})
	rec := do(e, http.MethodGet, "/api/v1/credit/model/stats", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	e = newTestServer(&fakeCreditService{stats: domain.TrainingStats{Count: 4000, Generation: 3}})
	rec = do(e, http.MethodGet, "/api/v1/credit/model/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trainingDataSize":4000`)
}

func TestCardHandler(t *testing.T) {
	svc := &fakeCreditService{cards: []domain.CreditCard{{ID: "citi-good-2", Category: domain.CategoryGood}}}
	e := newTestServer(svc)

	rec := do(e, http.MethodGet, "/api/v1/credit/cards", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "citi-good-2")

	rec = do(e, http.MethodGet, "/api/v1/credit/cards/good?n=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CategoryGood, svc.byCatCall)
	assert.Equal(t, 2, svc.limit)

	rec = do(e, http.MethodGet, "/api/v1/credit/cards/superb", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
