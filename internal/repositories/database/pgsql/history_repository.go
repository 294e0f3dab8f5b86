package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/models"
	"github.com/goldhub/pricing_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxChangeHistoryRepository implements ports ChangeHistoryRepository using
// pgxpool. History tables are insert-only; there are no update or delete
// statements here on purpose.
type PgxChangeHistoryRepository struct {
	BaseRepository
}

func newPgxChangeHistoryRepository(db *pgxpool.Pool) *PgxChangeHistoryRepository {
	return &PgxChangeHistoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

// SaveChargeRuleChange appends one rule audit row.
func (r *PgxChangeHistoryRepository) SaveChargeRuleChange(ctx context.Context, change domain.ChargeRuleChange) error {
	m := mapping.ToModelChargeRuleChange(change)

	var previous []byte
	if m.Previous != nil {
		var err error
		previous, err = json.Marshal(m.Previous)
		if err != nil {
			return apperrors.NewAppError(500, "failed to encode previous rule snapshot", err)
		}
	}
	updated, err := json.Marshal(m.Updated)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode updated rule snapshot", err)
	}

	_, err = r.Pool.Exec(ctx, `
		INSERT INTO charge_rule_changes (change_id, rule_id, previous_values, updated_values, updated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ChangeID, m.RuleID, previous, updated, m.UpdatedBy, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert charge rule change", err)
	}
	return nil
}

// ListChargeRuleChanges returns rule audit rows newest first, optionally for
// one rule.
func (r *PgxChangeHistoryRepository) ListChargeRuleChanges(ctx context.Context, ruleID *string, limit, offset int) ([]domain.ChargeRuleChange, error) {
	query := `
		SELECT change_id, rule_id, previous_values, updated_values, updated_by, created_at
		FROM charge_rule_changes`
	args := []any{}
	if ruleID != nil {
		args = append(args, *ruleID)
		query += fmt.Sprintf(" WHERE rule_id = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list charge rule changes", err)
	}
	defer rows.Close()

	var changes []domain.ChargeRuleChange
	for rows.Next() {
		var m models.ChargeRuleChange
		var previous, updated []byte
		if err := rows.Scan(&m.ChangeID, &m.RuleID, &previous, &updated, &m.UpdatedBy, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan charge rule change", err)
		}
		if len(previous) > 0 {
			m.Previous = &models.ChargeRule{}
			if err := json.Unmarshal(previous, m.Previous); err != nil {
				return nil, apperrors.NewAppError(500, "failed to decode previous rule snapshot", err)
			}
		}
		if err := json.Unmarshal(updated, &m.Updated); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode updated rule snapshot", err)
		}
		changes = append(changes, mapping.ToDomainChargeRuleChange(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read charge rule changes", err)
	}
	return changes, nil
}

// SavePriceChange appends one price audit row.
func (r *PgxChangeHistoryRepository) SavePriceChange(ctx context.Context, change domain.PriceChange) error {
	m := mapping.ToModelPriceChange(change)

	previous, err := json.Marshal(m.Previous)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode previous price snapshot", err)
	}
	updated, err := json.Marshal(m.Updated)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode updated price snapshot", err)
	}
	delta, err := json.Marshal(m.Delta)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode price delta", err)
	}

	_, err = r.Pool.Exec(ctx, `
		INSERT INTO price_changes (change_id, instrument_id, field, previous_values, updated_values, delta, updated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ChangeID, m.InstrumentID, m.Field, previous, updated, delta, m.UpdatedBy, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert price change", err)
	}
	return nil
}

// ListPriceChanges returns price audit rows newest first.
func (r *PgxChangeHistoryRepository) ListPriceChanges(ctx context.Context, instrumentID string, limit, offset int) ([]domain.PriceChange, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT change_id, instrument_id, field, previous_values, updated_values, delta, updated_by, created_at
		FROM price_changes
		WHERE instrument_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, instrumentID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list price changes", err)
	}
	defer rows.Close()

	var changes []domain.PriceChange
	for rows.Next() {
		var m models.PriceChange
		var previous, updated, delta []byte
		if err := rows.Scan(&m.ChangeID, &m.InstrumentID, &m.Field, &previous, &updated, &delta, &m.UpdatedBy, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan price change", err)
		}
		if err := json.Unmarshal(previous, &m.Previous); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode previous price snapshot", err)
		}
		if err := json.Unmarshal(updated, &m.Updated); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode updated price snapshot", err)
		}
		if err := json.Unmarshal(delta, &m.Delta); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode price delta", err)
		}
		changes = append(changes, mapping.ToDomainPriceChange(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read price changes", err)
	}
	return changes, nil
}
