package services

import (
	"context"
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	portsrepo "github.com/goldhub/pricing_admin_app/internal/core/ports/repositories"
	"github.com/goldhub/pricing_admin_app/internal/utils/pagination"
)

// HistoryService provides read access to the audit trail. Ordering is
// CreatedAt descending, done by the repository.
type HistoryService struct {
	historyRepo portsrepo.ChangeHistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo portsrepo.ChangeHistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// ListChargeRuleHistory returns rule audit records newest first.
func (s *HistoryService) ListChargeRuleHistory(ctx context.Context, ruleID *string, limit, offset int) ([]domain.ChargeRuleChange, error) {
	limit, offset = pagination.Clamp(limit, offset)
	changes, err := s.historyRepo.ListChargeRuleChanges(ctx, ruleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list charge rule history: %w", err)
	}
	return changes, nil
}

// ListPriceHistory returns price audit records newest first.
func (s *HistoryService) ListPriceHistory(ctx context.Context, instrumentID string, limit, offset int) ([]domain.PriceChange, error) {
	limit, offset = pagination.Clamp(limit, offset)
	changes, err := s.historyRepo.ListPriceChanges(ctx, instrumentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list price history: %w", err)
	}
	return changes, nil
}
