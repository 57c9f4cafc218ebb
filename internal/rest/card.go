package rest

import (
	"context"
	"creditAdvisor/domain"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CardService interface {
	AllCards(ctx context.Context) ([]domain.CreditCard, error)
	RecommendByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.CreditCard, error)
}

type CardHandler struct {
	cardService CardService
	timeout     time.Duration
}

func NewCardHandler(cardService CardService, timeout time.Duration) *CardHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CardHandler{
		cardService: cardService,
		timeout:     timeout,
	}
}

// GET /api/v1/credit/cards
func (h *CardHandler) GetAllCards(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cards, err := h.cardService.AllCards(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cards))
}

// GET /api/v1/credit/cards/:category?n=5
func (h *CardHandler) GetCardsByCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	limit, err := limitParam(c)
	if err != nil {
		return err
	}

	cards, err := h.cardService.RecommendByCategory(ctx, category, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cards))
}
