package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/validity-dashboard/internal/logging"
)

// Migration represents a schema change
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrations creates the snapshot schema. The downloadable pivot table has
// free-form columns and is created by the repository when it is written.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_raw_hits",
		SQL: `CREATE TABLE IF NOT EXISTS raw_hits (
			city     TEXT NOT NULL,
			region   TEXT NOT NULL,
			lat      REAL NOT NULL,
			long     REAL NOT NULL,
			validity TEXT NOT NULL,
			hits     INTEGER NOT NULL DEFAULT 0
		)`,
	},
	{
		Version: 2,
		Name:    "index_raw_hits_location",
		SQL: `CREATE UNIQUE INDEX IF NOT EXISTS idx_raw_hits_location
			ON raw_hits (city, region, lat, long, validity)`,
	},
}

// Migrate applies pending migrations in version order
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range Migrations {
		if applied[m.Version] {
			continue
		}
		err := Transaction(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		logging.Info().Int("version", m.Version).Str("name", m.Name).Msg("applied migration")
	}
	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
