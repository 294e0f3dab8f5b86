package pgsql

import (
	portsrepo "github.com/goldhub/pricing_admin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories into the ports
// container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChargeRuleRepo:     newPgxChargeRuleRepository(dbPool),
		ReferencePriceRepo: newPgxReferencePriceRepository(dbPool),
		HistoryRepo:        newPgxChangeHistoryRepository(dbPool),
	}
}

// Compile-time interface checks.
var (
	_ portsrepo.ChargeRuleRepository     = (*PgxChargeRuleRepository)(nil)
	_ portsrepo.ReferencePriceRepository = (*PgxReferencePriceRepository)(nil)
	_ portsrepo.ChangeHistoryRepository  = (*PgxChangeHistoryRepository)(nil)
)
