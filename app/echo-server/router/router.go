package router

import (
	"creditAdvisor/internal/rest"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupCreditRoutes(api *echo.Group, handler *rest.CreditHandler) {
	credit := api.Group("/credit")

	credit.POST("/train", handler.Train)
	credit.POST("/predict", handler.Predict)
	credit.POST("/predict/explain", handler.Explain)
	credit.POST("/recommend", handler.Recommend)
	credit.POST("/getRecommendations", handler.GetRecommendations)
	credit.GET("/model/stats", handler.ModelStats)
}

func SetupCardRoutes(api *echo.Group, handler *rest.CardHandler) {
	cards := api.Group("/credit/cards")

	cards.GET("", handler.GetAllCards)
	cards.GET("/:category", handler.GetCardsByCategory)
}

func SetupScoringAdminRoutes(api *echo.Group, handler *rest.ScoringAdminHandler) {
	admin := api.Group("/credit/admin")

	admin.GET("/scoring-config", handler.GetConfig)
	admin.PUT("/scoring-config", handler.UpsertConfig)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
}
