package repositories

import (
	"context"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// ReferencePriceRepository defines the persistence operations for the
// live/platform/sell price triple of an instrument.
type ReferencePriceRepository interface {
	FindReferencePrice(ctx context.Context, instrumentID string) (*domain.ReferencePrice, error)
	SaveReferencePrice(ctx context.Context, price domain.ReferencePrice) error
}
