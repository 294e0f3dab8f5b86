package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// Every write here is a single statement, so repositories run directly
// against the pool rather than opening explicit transactions.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
