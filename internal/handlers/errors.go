package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UnbalancedErrorResponse reports both totals of a rejected entry.
type UnbalancedErrorResponse struct {
	Error  string          `json:"error"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// respondError maps a service error to its HTTP status. Server errors hide the cause behind fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var unbalanced *apperrors.UnbalancedError
	switch {
	case errors.As(err, &unbalanced):
		logger.Warn("Unbalanced journal entry rejected",
			slog.String("debit", unbalanced.Debit.String()),
			slog.String("credit", unbalanced.Credit.String()))
		c.JSON(http.StatusBadRequest, UnbalancedErrorResponse{
			Error:  unbalanced.Error(),
			Debit:  unbalanced.Debit,
			Credit: unbalanced.Credit,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// badRequest reports a binding failure.
func badRequest(c *gin.Context, prefix string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(prefix, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: prefix + ": " + err.Error()})
}
