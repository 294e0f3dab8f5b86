package services

import (
	"context"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/goldhub/pricing_admin_app/internal/utils/pricing"
)

// PricingReaderSvc defines read-only pricing operations.
type PricingReaderSvc interface {
	// GetReferencePrice retrieves the live/platform/sell triple.
	GetReferencePrice(ctx context.Context, instrumentID string) (*domain.ReferencePrice, error)

	// PreviewPriceUpdate computes what an update would do without
	// persisting anything, for the dashboard's optimistic preview.
	PreviewPriceUpdate(ctx context.Context, instrumentID string, field domain.PriceField, req pricing.UpdateRequest) (*pricing.Result, error)
}

// PricingWriterSvc defines the mutations of operator-controlled prices and
// the live-feed ingestion point. Platform and sell updates each record one
// history entry; live ticks do not, the feed is ground truth.
type PricingWriterSvc interface {
	UpdatePlatformPrice(ctx context.Context, instrumentID string, req dto.UpdatePriceRequest, updaterUserID string) (*domain.ReferencePrice, *domain.PriceDelta, error)
	UpdateSellPrice(ctx context.Context, instrumentID string, req dto.UpdatePriceRequest, updaterUserID string) (*domain.ReferencePrice, *domain.PriceDelta, error)
	RecordLivePrice(ctx context.Context, instrumentID string, livePrice domain.Money) (*domain.ReferencePrice, error)
}

// PricingSvcFacade combines all pricing service interfaces.
type PricingSvcFacade interface {
	PricingReaderSvc
	PricingWriterSvc
}
