package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goldhub/pricing_admin_app/internal/apperrors"
)

func errMissingPriceField(field string) error {
	return fmt.Errorf("%w: %s is required for this mode", apperrors.ErrValidation, field)
}

// respondError maps the core error taxonomy onto HTTP statuses. Validation
// problems return the full violation list so the dashboard can highlight
// every offending field at once; configuration defects (gaps, ambiguity,
// invalid prices) come back as 422 rather than being papered over.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var violations apperrors.ValidationErrors
	if errors.As(err, &violations) {
		logger.Warn("Validation failed", slog.Int("violations", len(violations)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": violations})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoMatchingRule), errors.Is(err, apperrors.ErrInvalidPrice):
		logger.Warn("Unprocessable request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAmbiguousRule), errors.Is(err, apperrors.ErrCurrencyMismatch):
		// Both mean an invariant was bypassed somewhere; surface loudly.
		logger.Error("Invariant violation", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
