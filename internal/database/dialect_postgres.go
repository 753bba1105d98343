package database

import (
	"database/sql"
	"strings"

	_ "github.com/lib/pq"
)

const applicationName = "familydirectory"

// PostgresDialect targets the hosted backend's database
type PostgresDialect struct{}

func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// DSN tags URL-form connections with an application_name so directory
// queries can be told apart in pg_stat_activity. Key/value DSNs pass through.
func (d *PostgresDialect) DSN(config DialectConfig) string {
	if !strings.Contains(config.URL, "://") {
		return config.URL
	}
	return withQueryParam(config.URL, "application_name", applicationName)
}

func (d *PostgresDialect) RewriteQuery(query string) string {
	return rewritePlaceholdersToNumbered(query)
}

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	return nil
}

func (d *PostgresDialect) MigrationsSubdir() string {
	return "postgres"
}

func (d *PostgresDialect) CreateMigrationsTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS migrations (
		id BIGSERIAL PRIMARY KEY,
		filename TEXT UNIQUE NOT NULL,
		executed_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`
}

func (d *PostgresDialect) UpsertClause(keyColumn string, updateCols []string) string {
	return onConflictClause(keyColumn, updateCols)
}
