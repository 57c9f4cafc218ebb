package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

// limitParam reads the optional ?n= query parameter; 0 means "use the default".
func limitParam(c echo.Context) (int, error) {
	raw := c.QueryParam("n")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "n must be a non-negative integer")
	}
	return n, nil
}
