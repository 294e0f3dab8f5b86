package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/models"
	"github.com/goldhub/pricing_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferencePriceRepository implements ports ReferencePriceRepository
// using pgxpool.
type PgxReferencePriceRepository struct {
	BaseRepository
}

func newPgxReferencePriceRepository(db *pgxpool.Pool) *PgxReferencePriceRepository {
	return &PgxReferencePriceRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindReferencePrice retrieves the price triple for one instrument.
func (r *PgxReferencePriceRepository) FindReferencePrice(ctx context.Context, instrumentID string) (*domain.ReferencePrice, error) {
	var m models.ReferencePrice
	err := r.Pool.QueryRow(ctx, `
		SELECT instrument_id, live_price, platform_price, sell_price, currency_code,
			created_at, created_by, last_updated_at, last_updated_by
		FROM reference_prices
		WHERE instrument_id = $1`, instrumentID,
	).Scan(
		&m.InstrumentID, &m.LivePrice, &m.PlatformPrice, &m.SellPrice, &m.CurrencyCode,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: reference price for %s", apperrors.ErrNotFound, instrumentID)
		}
		return nil, apperrors.NewAppError(500, "failed to query reference price", err)
	}

	price := mapping.ToDomainReferencePrice(m)
	return &price, nil
}

// SaveReferencePrice upserts the price triple for an instrument.
func (r *PgxReferencePriceRepository) SaveReferencePrice(ctx context.Context, price domain.ReferencePrice) error {
	m := mapping.ToModelReferencePrice(price)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO reference_prices (
			instrument_id, live_price, platform_price, sell_price, currency_code,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (instrument_id) DO UPDATE SET
			live_price = EXCLUDED.live_price,
			platform_price = EXCLUDED.platform_price,
			sell_price = EXCLUDED.sell_price,
			currency_code = EXCLUDED.currency_code,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`,
		m.InstrumentID, m.LivePrice, m.PlatformPrice, m.SellPrice, m.CurrencyCode,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save reference price", err)
	}
	return nil
}
