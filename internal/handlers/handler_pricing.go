package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	portssvc "github.com/goldhub/pricing_admin_app/internal/core/ports/services"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/goldhub/pricing_admin_app/internal/middleware"
	"github.com/goldhub/pricing_admin_app/internal/utils/pricing"
)

// pricingHandler handles HTTP requests for the gold reference price triple.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{pricingService: ps}
}

// RegisterPricingRoutes registers routes related to reference prices.
func RegisterPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPricingHandler(pricingService)

	prices := rg.Group("/prices/gold")
	{
		prices.GET("", h.getReferencePrice)
		prices.PUT("/platform", h.updatePlatformPrice)
		prices.PUT("/sell", h.updateSellPrice)
		prices.PUT("/live", h.recordLivePrice)
		prices.POST("/preview", h.previewPriceUpdate)
	}
}

// getReferencePrice godoc
// @Summary Get the gold price triple
// @Tags prices
// @Produce  json
// @Success 200 {object} dto.ReferencePriceResponse
// @Security BearerAuth
// @Router /prices/gold [get]
func (h *pricingHandler) getReferencePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	price, err := h.pricingService.GetReferencePrice(c.Request.Context(), domain.GoldGramInstrumentID)
	if err != nil {
		respondError(c, logger, err, "Failed to get reference price")
		return
	}
	c.JSON(http.StatusOK, dto.ToReferencePriceResponse(*price, nil))
}

// updatePlatformPrice godoc
// @Summary Update the platform price
// @Description Applies an absolute or percent-relative change and returns the delta
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   update body dto.UpdatePriceRequest true "Price update"
// @Success 200 {object} dto.PriceUpdateResponse
// @Failure 422 {object} map[string]string "Update would produce a negative price"
// @Security BearerAuth
// @Router /prices/gold/platform [put]
func (h *pricingHandler) updatePlatformPrice(c *gin.Context) {
	h.updatePrice(c, h.pricingService.UpdatePlatformPrice)
}

// updateSellPrice godoc
// @Summary Update the sell price
// @Description Independent of the platform price; applies the same update modes
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   update body dto.UpdatePriceRequest true "Price update"
// @Success 200 {object} dto.PriceUpdateResponse
// @Failure 422 {object} map[string]string "Update would produce a negative price"
// @Security BearerAuth
// @Router /prices/gold/sell [put]
func (h *pricingHandler) updateSellPrice(c *gin.Context) {
	h.updatePrice(c, h.pricingService.UpdateSellPrice)
}

func (h *pricingHandler) updatePrice(c *gin.Context, apply func(ctx context.Context, instrumentID string, req dto.UpdatePriceRequest, updaterUserID string) (*domain.ReferencePrice, *domain.PriceDelta, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for price update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	price, delta, err := apply(c.Request.Context(), domain.GoldGramInstrumentID, req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update price")
		return
	}

	logger.Info("Price updated",
		slog.String("instrument_id", price.InstrumentID),
		slog.String("change", string(delta.Classification)),
	)
	c.JSON(http.StatusOK, dto.PriceUpdateResponse{
		Price: dto.ToReferencePriceResponse(*price, delta),
		Delta: dto.ToPriceDeltaResponse(*delta),
	})
}

// recordLivePrice godoc
// @Summary Record a live price tick
// @Description Ingests the externally sourced market price; no audit entry, the feed is ground truth
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   tick body dto.UpdateLivePriceRequest true "Live price"
// @Success 200 {object} dto.ReferencePriceResponse
// @Security BearerAuth
// @Router /prices/gold/live [put]
func (h *pricingHandler) recordLivePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLivePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for live price", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	current, err := h.pricingService.GetReferencePrice(c.Request.Context(), domain.GoldGramInstrumentID)
	if err != nil {
		respondError(c, logger, err, "Failed to load reference price")
		return
	}

	live := domain.NewMoney(req.LivePrice, current.LivePrice.CurrencyCode)
	price, err := h.pricingService.RecordLivePrice(c.Request.Context(), domain.GoldGramInstrumentID, live)
	if err != nil {
		respondError(c, logger, err, "Failed to record live price")
		return
	}
	c.JSON(http.StatusOK, dto.ToReferencePriceResponse(*price, nil))
}

// previewPriceUpdate godoc
// @Summary Preview a price update
// @Description Computes the new price and delta without persisting anything
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   preview body dto.PreviewPriceRequest true "Field and update"
// @Success 200 {object} dto.PriceUpdateResponse
// @Security BearerAuth
// @Router /prices/gold/preview [post]
func (h *pricingHandler) previewPriceUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PreviewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for price preview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	current, err := h.pricingService.GetReferencePrice(c.Request.Context(), domain.GoldGramInstrumentID)
	if err != nil {
		respondError(c, logger, err, "Failed to load reference price")
		return
	}

	field := dto.PriceFieldFromName(req.Field)
	engineReq, err := toPreviewEngineRequest(req.UpdatePriceRequest, current.FieldValue(field).CurrencyCode)
	if err != nil {
		respondError(c, logger, err, "Invalid preview request")
		return
	}

	result, err := h.pricingService.PreviewPriceUpdate(c.Request.Context(), domain.GoldGramInstrumentID, field, engineReq)
	if err != nil {
		respondError(c, logger, err, "Failed to preview price update")
		return
	}

	preview := current.WithFieldValue(field, result.NewPrice)
	c.JSON(http.StatusOK, dto.PriceUpdateResponse{
		Price: dto.ToReferencePriceResponse(preview, &result.Delta),
		Delta: dto.ToPriceDeltaResponse(result.Delta),
	})
}

func toPreviewEngineRequest(req dto.UpdatePriceRequest, currencyCode string) (pricing.UpdateRequest, error) {
	switch req.Mode {
	case "absolute":
		if req.NewPrice == nil {
			return pricing.UpdateRequest{}, errMissingPriceField("newPrice")
		}
		return pricing.UpdateRequest{Mode: pricing.AbsoluteMode, NewValue: domain.NewMoney(*req.NewPrice, currencyCode)}, nil
	default:
		if req.Percent == nil {
			return pricing.UpdateRequest{}, errMissingPriceField("percent")
		}
		return pricing.UpdateRequest{Mode: pricing.RelativePercentMode, Percent: domain.NewPercentage(*req.Percent)}, nil
	}
}
