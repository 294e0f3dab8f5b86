package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	portssvc "github.com/goldhub/pricing_admin_app/internal/core/ports/services"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/goldhub/pricing_admin_app/internal/middleware"
)

// chargeRuleHandler handles HTTP requests related to charge rules.
type chargeRuleHandler struct {
	chargeRuleService portssvc.ChargeRuleSvcFacade
}

func newChargeRuleHandler(crs portssvc.ChargeRuleSvcFacade) *chargeRuleHandler {
	return &chargeRuleHandler{chargeRuleService: crs}
}

// RegisterChargeRuleRoutes registers routes related to charge rules.
func RegisterChargeRuleRoutes(rg *gin.RouterGroup, chargeRuleService portssvc.ChargeRuleSvcFacade) {
	h := newChargeRuleHandler(chargeRuleService)

	rules := rg.Group("/charge-rules")
	{
		rules.GET("", h.listChargeRules)
		rules.POST("", h.createChargeRule)
		rules.GET("/:id", h.getChargeRule)
		rules.PATCH("/:id", h.updateChargeRule)
		rules.DELETE("/:id", h.disableChargeRule)
		rules.POST("/resolve", h.resolveCharge)
	}
}

// createChargeRule godoc
// @Summary Create a charge rule
// @Description Validates and persists a new fee bracket for a transaction kind
// @Tags charge rules
// @Accept  json
// @Produce  json
// @Param   rule body dto.CreateChargeRuleRequest true "Charge rule details"
// @Success 201 {object} dto.ChargeRuleResponse
// @Failure 400 {object} map[string]string "Invalid input or validation violations"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /charge-rules [post]
func (h *chargeRuleHandler) createChargeRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChargeRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChargeRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rule, err := h.chargeRuleService.CreateChargeRule(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create charge rule")
		return
	}

	logger.Info("Charge rule created", slog.String("rule_id", rule.RuleID), slog.String("kind", string(rule.Kind)))
	c.JSON(http.StatusCreated, dto.ToChargeRuleResponse(*rule))
}

// updateChargeRule godoc
// @Summary Update a charge rule
// @Description Applies a partial patch; the merged rule is validated before anything is written
// @Tags charge rules
// @Accept  json
// @Produce  json
// @Param   id path string true "Rule ID"
// @Param   patch body dto.UpdateChargeRuleRequest true "Fields to change"
// @Success 200 {object} dto.ChargeRuleResponse
// @Failure 400 {object} map[string]string "Invalid input or validation violations"
// @Failure 404 {object} map[string]string "Rule not found"
// @Security BearerAuth
// @Router /charge-rules/{id} [patch]
func (h *chargeRuleHandler) updateChargeRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateChargeRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateChargeRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rule, err := h.chargeRuleService.UpdateChargeRule(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update charge rule")
		return
	}

	logger.Info("Charge rule updated", slog.String("rule_id", rule.RuleID))
	c.JSON(http.StatusOK, dto.ToChargeRuleResponse(*rule))
}

// disableChargeRule godoc
// @Summary Disable a charge rule
// @Description Rules are never deleted; disabling removes them from resolution while keeping history
// @Tags charge rules
// @Produce  json
// @Param   id path string true "Rule ID"
// @Success 200 {object} dto.ChargeRuleResponse
// @Failure 404 {object} map[string]string "Rule not found"
// @Security BearerAuth
// @Router /charge-rules/{id} [delete]
func (h *chargeRuleHandler) disableChargeRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rule, err := h.chargeRuleService.DisableChargeRule(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to disable charge rule")
		return
	}

	logger.Info("Charge rule disabled", slog.String("rule_id", rule.RuleID))
	c.JSON(http.StatusOK, dto.ToChargeRuleResponse(*rule))
}

// getChargeRule godoc
// @Summary Get a charge rule
// @Tags charge rules
// @Produce  json
// @Param   id path string true "Rule ID"
// @Success 200 {object} dto.ChargeRuleResponse
// @Failure 404 {object} map[string]string "Rule not found"
// @Security BearerAuth
// @Router /charge-rules/{id} [get]
func (h *chargeRuleHandler) getChargeRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rule, err := h.chargeRuleService.GetChargeRuleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get charge rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeRuleResponse(*rule))
}

// listChargeRules godoc
// @Summary List charge rules
// @Description Optionally filtered by kind and status query parameters
// @Tags charge rules
// @Produce  json
// @Param   kind query string false "Transaction kind (BUY, SELL, GIFT, REDEEM)"
// @Param   status query string false "Rule status (ACTIVE, INACTIVE)"
// @Success 200 {array} dto.ChargeRuleResponse
// @Security BearerAuth
// @Router /charge-rules [get]
func (h *chargeRuleHandler) listChargeRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var kind *domain.TransactionKind
	if k := c.Query("kind"); k != "" {
		tk := domain.TransactionKind(k)
		kind = &tk
	}
	var status *domain.RuleStatus
	if s := c.Query("status"); s != "" {
		rs := domain.RuleStatus(s)
		status = &rs
	}

	rules, err := h.chargeRuleService.ListChargeRules(c.Request.Context(), kind, status)
	if err != nil {
		respondError(c, logger, err, "Failed to list charge rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChargeRuleResponse(rules))
}

// resolveCharge godoc
// @Summary Resolve the charge for a transaction amount
// @Description Finds the active bracket containing the amount and returns the full fee breakdown
// @Tags charge rules
// @Accept  json
// @Produce  json
// @Param   request body dto.ResolveChargeRequest true "Kind and amount"
// @Success 200 {object} dto.ChargeBreakdownResponse
// @Failure 422 {object} map[string]string "No bracket covers the amount"
// @Security BearerAuth
// @Router /charge-rules/resolve [post]
func (h *chargeRuleHandler) resolveCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolveChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	breakdown, err := h.chargeRuleService.ResolveCharge(c.Request.Context(), domain.TransactionKind(req.Kind), req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve charge")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeBreakdownResponse(*breakdown))
}
