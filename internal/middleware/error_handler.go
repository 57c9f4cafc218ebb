package middleware

import (
	"context"
	"creditAdvisor/business/prediction"
	"creditAdvisor/domain"
	"creditAdvisor/pkg/logger"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// StatusFor maps an error returned by a handler to an HTTP status.
func StatusFor(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, domain.ErrInvalidProfile),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrEmptyTrainingSet):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrModelNotTrained),
		errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is the echo HTTPErrorHandler for the API.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusFor(err)
	msg := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(he.Code)
		}
	}

	tid := prediction.TraceIDFromContext(c.Request().Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"trace_id", tid,
			"method", c.Request().Method,
			"path", c.Path(),
			"status", status,
			"error", err,
		)
		if status == http.StatusInternalServerError {
			msg = "internal server error"
		}
	}

	body := errorBody{Message: msg, TraceID: tid}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		logger.Error("failed to write error response", "trace_id", tid, "error", writeErr)
	}
}
