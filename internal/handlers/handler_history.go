package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	portssvc "github.com/goldhub/pricing_admin_app/internal/core/ports/services"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/goldhub/pricing_admin_app/internal/middleware"
)

// historyHandler serves the read-only audit trail.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// RegisterHistoryRoutes registers routes for audit history.
func RegisterHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	history := rg.Group("/history")
	{
		history.GET("/charge-rules", h.listChargeRuleHistory)
		history.GET("/prices", h.listPriceHistory)
	}
}

// listChargeRuleHistory godoc
// @Summary List charge rule audit records
// @Description Newest first; optionally narrowed to one rule via ruleID
// @Tags history
// @Produce  json
// @Param   ruleID query string false "Rule ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.ChargeRuleChangeResponse
// @Security BearerAuth
// @Router /history/charge-rules [get]
func (h *historyHandler) listChargeRuleHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var ruleID *string
	if id := c.Query("ruleID"); id != "" {
		ruleID = &id
	}
	limit, offset := pageParams(c)

	changes, err := h.historyService.ListChargeRuleHistory(c.Request.Context(), ruleID, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list charge rule history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChargeRuleChangeResponse(changes))
}

// listPriceHistory godoc
// @Summary List price audit records
// @Description Newest first
// @Tags history
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.PriceChangeResponse
// @Security BearerAuth
// @Router /history/prices [get]
func (h *historyHandler) listPriceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := pageParams(c)

	changes, err := h.historyService.ListPriceHistory(c.Request.Context(), domain.GoldGramInstrumentID, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list price history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceChangeResponse(changes))
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	return limit, offset
}
