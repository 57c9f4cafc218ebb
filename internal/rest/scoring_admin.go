package rest

import (
	"creditAdvisor/business/prediction"
	"creditAdvisor/domain"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ScoringAdminHandler edits stored scoring overrides. Overrides are read at
// startup, so a change applies on the next restart.
type ScoringAdminHandler struct {
	cfgRepo prediction.ConfigRepository
}

func NewScoringAdminHandler(cfgRepo prediction.ConfigRepository) *ScoringAdminHandler {
	return &ScoringAdminHandler{
		cfgRepo: cfgRepo,
	}
}

// GET /api/v1/credit/admin/scoring-config?feature_set=income
func (h *ScoringAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()
	featureSet := c.QueryParam("feature_set")
	if featureSet == "" {
		featureSet = prediction.FeatureSetIncome
	}

	cfg, ok, err := h.cfgRepo.GetScoringConfig(ctx, featureSet)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "scoring config not found"})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/credit/admin/scoring-config
// body: ScoringConfig JSON
func (h *ScoringAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.ScoringConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid body: " + err.Error()})
	}
	if body.FeatureSet == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "feature_set is required"})
	}
	if err := prediction.ValidateOverride(body); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.cfgRepo.UpsertScoringConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"message": "override stored, restart to apply",
	})
}
