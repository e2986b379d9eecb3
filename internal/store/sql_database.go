package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/migrations"
)

// DB wraps the shared database handle together with the dialect it was
// opened with. The dialect drives both migration selection and the
// placeholder format used by the squirrel query builders.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder configured with the
// placeholder format of the connection's dialect: $1-style for PostgreSQL,
// ?-style for SQLite.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// IsPostgresDSN reports whether dsn targets a PostgreSQL server. Anything
// else is treated as a SQLite file path for local development.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
