package rest

import (
	"context"
	"creditAdvisor/business/offer"
	"creditAdvisor/domain"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CreditService interface {
	Predict(ctx context.Context, profile domain.CreditProfile) (domain.Category, error)
	Explain(ctx context.Context, profile domain.CreditProfile) (domain.PredictionExplanation, error)
	Retrain(ctx context.Context, examples []domain.TrainingExample) (domain.TrainingStats, error)
	Stats(ctx context.Context) (domain.TrainingStats, error)
	Recommend(ctx context.Context, profile domain.CreditProfile, limit int) ([]domain.CreditCard, error)
	PerOfferPredictions(ctx context.Context, profile domain.CreditProfile, purchaseCategories, allowedOfferIDs []string) ([]domain.OfferPrediction, error)
	OfferTierPolicy() offer.TierPolicy
}

type CreditHandler struct {
	creditService CreditService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewCreditHandler(creditService CreditService, timeout time.Duration) *CreditHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CreditHandler{
		creditService: creditService,
		validator:     validator.New(),
		timeout:       timeout,
	}
}

type CreditProfileRequest struct {
	AnnualIncome        float64  `json:"annualIncome" validate:"gt=0"`
	MonthlyDebtPayments float64  `json:"monthlyDebtPayments" validate:"gte=0"`
	OldestAccountAge    int      `json:"oldestAccountAge" validate:"gte=0"`
	ActiveCreditCards   int      `json:"activeCreditCards" validate:"gte=0"`
	TotalLoans          int      `json:"totalLoans" validate:"gte=0"`
	CreditUtilization   float64  `json:"creditUtilization" validate:"gte=0"`
	OnTimePayments      float64  `json:"onTimePayments" validate:"gte=0,lte=12"`
	CreditScore         int      `json:"ficoScore" validate:"omitempty,gte=300,lte=850"`
	MissedPayments      int      `json:"missedPayments" validate:"gte=0,lte=12"`
	PurchaseCategories  []string `json:"purchaseCategory" validate:"omitempty,dive,required"`
	OffersList          []string `json:"offersList" validate:"omitempty,dive,required"`
}

func (r CreditProfileRequest) toDomain() domain.CreditProfile {
	return domain.CreditProfile{
		AnnualIncome:        r.AnnualIncome,
		MonthlyDebtPayments: r.MonthlyDebtPayments,
		OldestAccountAge:    r.OldestAccountAge,
		ActiveCreditCards:   r.ActiveCreditCards,
		TotalLoans:          r.TotalLoans,
		CreditUtilization:   r.CreditUtilization,
		OnTimePayments:      r.OnTimePayments,
		CreditScore:         r.CreditScore,
		MissedPayments:      r.MissedPayments,
		PurchaseCategories:  r.PurchaseCategories,
		OffersList:          r.OffersList,
	}
}

// bindProfile returns a 400 HTTPError for malformed or out-of-range input.
func (h *CreditHandler) bindProfile(c echo.Context) (domain.CreditProfile, error) {
	var req CreditProfileRequest
	if err := c.Bind(&req); err != nil {
		return domain.CreditProfile{}, err
	}
	if err := h.validator.Struct(&req); err != nil {
		return domain.CreditProfile{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req.toDomain(), nil
}

// POST /api/v1/credit/train
// body: [TrainingExample]
func (h *CreditHandler) Train(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	var examples []domain.TrainingExample
	if err := c.Bind(&examples); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	stats, err := h.creditService.Retrain(ctx, examples)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

// POST /api/v1/credit/predict
func (h *CreditHandler) Predict(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.bindProfile(c)
	if err != nil {
		return err
	}

	category, err := h.creditService.Predict(ctx, profile)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"category": category,
	}))
}

// POST /api/v1/credit/predict/explain
func (h *CreditHandler) Explain(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.bindProfile(c)
	if err != nil {
		return err
	}

	exp, err := h.creditService.Explain(ctx, profile)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(exp))
}

// POST /api/v1/credit/recommend?n=5
func (h *CreditHandler) Recommend(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	limit, err := limitParam(c)
	if err != nil {
		return err
	}

	profile, err := h.bindProfile(c)
	if err != nil {
		return err
	}

	cards, err := h.creditService.Recommend(ctx, profile, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cards))
}

// POST /api/v1/credit/getRecommendations
// body: profile plus optional purchaseCategory and offersList
// tierPolicy in the response names the category-to-tier mapping in effect
func (h *CreditHandler) GetRecommendations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.bindProfile(c)
	if err != nil {
		return err
	}

	preds, err := h.creditService.PerOfferPredictions(ctx, profile, profile.PurchaseCategories, profile.OffersList)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"cards":      preds,
		"tierPolicy": h.creditService.OfferTierPolicy(),
	}))
}

// GET /api/v1/credit/model/stats
func (h *CreditHandler) ModelStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.creditService.Stats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}
