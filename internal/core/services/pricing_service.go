package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	portsrepo "github.com/goldhub/pricing_admin_app/internal/core/ports/repositories"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/goldhub/pricing_admin_app/internal/utils/audit"
	"github.com/goldhub/pricing_admin_app/internal/utils/pricing"
)

// PricingService provides business logic for the reference price triple:
// operator updates to the platform and sell prices, live feed ingestion, and
// pure previews. Platform and sell updates each record one audit entry; live
// ticks are ground truth and record none.
type PricingService struct {
	priceRepo   portsrepo.ReferencePriceRepository
	historyRepo portsrepo.ChangeHistoryRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(priceRepo portsrepo.ReferencePriceRepository, historyRepo portsrepo.ChangeHistoryRepository) *PricingService {
	return &PricingService{
		priceRepo:   priceRepo,
		historyRepo: historyRepo,
	}
}

// GetReferencePrice retrieves the live/platform/sell triple.
func (s *PricingService) GetReferencePrice(ctx context.Context, instrumentID string) (*domain.ReferencePrice, error) {
	price, err := s.priceRepo.FindReferencePrice(ctx, instrumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reference price for %s: %w", instrumentID, err)
	}
	return price, nil
}

// UpdatePlatformPrice applies an operator change to the platform price.
func (s *PricingService) UpdatePlatformPrice(ctx context.Context, instrumentID string, req dto.UpdatePriceRequest, updaterUserID string) (*domain.ReferencePrice, *domain.PriceDelta, error) {
	return s.updateField(ctx, instrumentID, domain.PlatformPriceField, req, updaterUserID)
}

// UpdateSellPrice applies an operator change to the sell price. The platform
// price is never touched; the two fields move independently.
func (s *PricingService) UpdateSellPrice(ctx context.Context, instrumentID string, req dto.UpdatePriceRequest, updaterUserID string) (*domain.ReferencePrice, *domain.PriceDelta, error) {
	return s.updateField(ctx, instrumentID, domain.SellPriceField, req, updaterUserID)
}

func (s *PricingService) updateField(ctx context.Context, instrumentID string, field domain.PriceField, req dto.UpdatePriceRequest, updaterUserID string) (*domain.ReferencePrice, *domain.PriceDelta, error) {
	current, err := s.priceRepo.FindReferencePrice(ctx, instrumentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load reference price for %s: %w", instrumentID, err)
	}

	engineReq, err := toEngineRequest(req, current.FieldValue(field).CurrencyCode)
	if err != nil {
		return nil, nil, err
	}

	result, err := pricing.Apply(current.FieldValue(field), engineReq)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	updated := current.WithFieldValue(field, result.NewPrice)
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = updaterUserID

	if err := s.priceRepo.SaveReferencePrice(ctx, updated); err != nil {
		return nil, nil, fmt.Errorf("failed to save reference price for %s: %w", instrumentID, err)
	}

	change := audit.NewPriceChange(field, *current, updated, result.Delta, updaterUserID, now)
	if err := s.historyRepo.SavePriceChange(ctx, change); err != nil {
		return nil, nil, fmt.Errorf("price for %s saved but history write failed: %w", instrumentID, err)
	}

	return &updated, &result.Delta, nil
}

// PreviewPriceUpdate computes what an update would do without persisting
// anything.
func (s *PricingService) PreviewPriceUpdate(ctx context.Context, instrumentID string, field domain.PriceField, req pricing.UpdateRequest) (*pricing.Result, error) {
	current, err := s.priceRepo.FindReferencePrice(ctx, instrumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference price for %s: %w", instrumentID, err)
	}
	return pricing.Apply(current.FieldValue(field), req)
}

// RecordLivePrice stores a market-feed tick for the instrument's live price.
func (s *PricingService) RecordLivePrice(ctx context.Context, instrumentID string, livePrice domain.Money) (*domain.ReferencePrice, error) {
	if livePrice.IsNegative() {
		return nil, fmt.Errorf("%w: live price %s is negative", apperrors.ErrInvalidPrice, livePrice)
	}

	current, err := s.priceRepo.FindReferencePrice(ctx, instrumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference price for %s: %w", instrumentID, err)
	}
	if livePrice.CurrencyCode != current.LivePrice.CurrencyCode {
		return nil, fmt.Errorf("%w: feed currency %s, instrument currency %s",
			apperrors.ErrCurrencyMismatch, livePrice.CurrencyCode, current.LivePrice.CurrencyCode)
	}

	updated := *current
	updated.LivePrice = livePrice.Round()
	updated.LastUpdatedAt = time.Now()

	if err := s.priceRepo.SaveReferencePrice(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save live price for %s: %w", instrumentID, err)
	}
	return &updated, nil
}

func toEngineRequest(req dto.UpdatePriceRequest, currencyCode string) (pricing.UpdateRequest, error) {
	switch req.Mode {
	case "absolute":
		if req.NewPrice == nil {
			return pricing.UpdateRequest{}, fmt.Errorf("%w: newPrice is required in absolute mode", apperrors.ErrValidation)
		}
		return pricing.UpdateRequest{
			Mode:     pricing.AbsoluteMode,
			NewValue: domain.NewMoney(*req.NewPrice, currencyCode),
		}, nil
	case "percent":
		if req.Percent == nil {
			return pricing.UpdateRequest{}, fmt.Errorf("%w: percent is required in percent mode", apperrors.ErrValidation)
		}
		return pricing.UpdateRequest{
			Mode:    pricing.RelativePercentMode,
			Percent: domain.NewPercentage(*req.Percent),
		}, nil
	default:
		return pricing.UpdateRequest{}, fmt.Errorf("%w: unknown update mode %q", apperrors.ErrValidation, req.Mode)
	}
}
