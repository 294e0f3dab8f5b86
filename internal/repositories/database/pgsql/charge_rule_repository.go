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

const chargeRuleColumns = `rule_id, kind, min_amount, max_amount, fixed_charge, percent_charge, vat_percent,
	currency_code, status, created_at, created_by, last_updated_at, last_updated_by`

// PgxChargeRuleRepository implements ports ChargeRuleRepository using
// pgxpool.
type PgxChargeRuleRepository struct {
	BaseRepository
}

func newPgxChargeRuleRepository(db *pgxpool.Pool) *PgxChargeRuleRepository {
	return &PgxChargeRuleRepository{BaseRepository: BaseRepository{Pool: db}}
}

// SaveChargeRule inserts a new charge rule.
func (r *PgxChargeRuleRepository) SaveChargeRule(ctx context.Context, rule domain.ChargeRule) error {
	m := mapping.ToModelChargeRule(rule)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO charge_rules (`+chargeRuleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.RuleID, m.Kind, m.MinAmount, m.MaxAmount, m.FixedCharge, m.PercentCharge, m.VATPercent,
		m.CurrencyCode, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert charge rule", err)
	}
	return nil
}

// UpdateChargeRule overwrites a rule's mutable columns. The rule id and
// creation audit fields never change.
func (r *PgxChargeRuleRepository) UpdateChargeRule(ctx context.Context, rule domain.ChargeRule) error {
	m := mapping.ToModelChargeRule(rule)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE charge_rules
		SET kind = $2, min_amount = $3, max_amount = $4, fixed_charge = $5, percent_charge = $6,
			vat_percent = $7, currency_code = $8, status = $9, last_updated_at = $10, last_updated_by = $11
		WHERE rule_id = $1`,
		m.RuleID, m.Kind, m.MinAmount, m.MaxAmount, m.FixedCharge, m.PercentCharge,
		m.VATPercent, m.CurrencyCode, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update charge rule", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: charge rule %s", apperrors.ErrNotFound, rule.RuleID)
	}
	return nil
}

// FindChargeRuleByID retrieves one rule by its id.
func (r *PgxChargeRuleRepository) FindChargeRuleByID(ctx context.Context, ruleID string) (*domain.ChargeRule, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+chargeRuleColumns+`
		FROM charge_rules
		WHERE rule_id = $1`, ruleID)

	m, err := scanChargeRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: charge rule %s", apperrors.ErrNotFound, ruleID)
		}
		return nil, apperrors.NewAppError(500, "failed to query charge rule", err)
	}
	rule := mapping.ToDomainChargeRule(m)
	return &rule, nil
}

// ListChargeRules retrieves rules filtered by kind and/or status, ordered by
// kind then bracket lower bound for stable dashboard tables.
func (r *PgxChargeRuleRepository) ListChargeRules(ctx context.Context, kind *domain.TransactionKind, status *domain.RuleStatus) ([]domain.ChargeRule, error) {
	query := `SELECT ` + chargeRuleColumns + ` FROM charge_rules WHERE 1=1`
	args := []any{}
	if kind != nil {
		args = append(args, string(*kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if status != nil {
		args = append(args, string(*status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY kind, min_amount"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list charge rules", err)
	}
	defer rows.Close()

	return collectChargeRules(rows)
}

// ListActiveChargeRulesByKind retrieves the active brackets for one kind,
// ordered by lower bound.
func (r *PgxChargeRuleRepository) ListActiveChargeRulesByKind(ctx context.Context, kind domain.TransactionKind) ([]domain.ChargeRule, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+chargeRuleColumns+`
		FROM charge_rules
		WHERE kind = $1 AND status = $2
		ORDER BY min_amount`, string(kind), string(domain.RuleActive))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list active charge rules", err)
	}
	defer rows.Close()

	return collectChargeRules(rows)
}

func scanChargeRule(row pgx.Row) (models.ChargeRule, error) {
	var m models.ChargeRule
	err := row.Scan(
		&m.RuleID, &m.Kind, &m.MinAmount, &m.MaxAmount, &m.FixedCharge, &m.PercentCharge, &m.VATPercent,
		&m.CurrencyCode, &m.Status, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectChargeRules(rows pgx.Rows) ([]domain.ChargeRule, error) {
	var rules []domain.ChargeRule
	for rows.Next() {
		m, err := scanChargeRule(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan charge rule", err)
		}
		rules = append(rules, mapping.ToDomainChargeRule(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read charge rules", err)
	}
	return rules, nil
}
