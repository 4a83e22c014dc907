package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/validity-dashboard/internal/database"
	"github.com/jengzang/validity-dashboard/internal/models"
)

// ExportTableName holds the downloadable pivot in a snapshot database
const ExportTableName = "downloadable_pivot"

// HitRepository reads and writes the dashboard datasets in a SQLite snapshot
type HitRepository struct {
	db *sql.DB
}

// NewHitRepository creates a new hit repository
func NewHitRepository(db *sql.DB) *HitRepository {
	return &HitRepository{db: db}
}

// ListHits returns every raw hit record in insertion order
func (r *HitRepository) ListHits(ctx context.Context) ([]models.HitRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT city, region, lat, long, validity, hits FROM raw_hits ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw hits: %w", err)
	}
	defer rows.Close()

	var hits []models.HitRecord
	for rows.Next() {
		var h models.HitRecord
		var validity string
		var count sql.NullInt64
		if err := rows.Scan(&h.City, &h.Region, &h.Lat, &h.Long, &validity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan raw hit: %w", err)
		}
		h.Validity = models.Validity(validity)
		h.Hits = count.Int64
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read raw hits: %w", err)
	}
	return hits, nil
}

// InsertHits appends raw hit records in one transaction
func (r *HitRepository) InsertHits(ctx context.Context, hits []models.HitRecord) error {
	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		return insertHits(ctx, tx, hits)
	})
}

// ReplaceHits swaps the stored raw hits for hits; on failure the old rows stay
func (r *HitRepository) ReplaceHits(ctx context.Context, hits []models.HitRecord) error {
	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM raw_hits`); err != nil {
			return fmt.Errorf("failed to clear raw hits: %w", err)
		}
		return insertHits(ctx, tx, hits)
	})
}

func insertHits(ctx context.Context, tx *sql.Tx, hits []models.HitRecord) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO raw_hits (city, region, lat, long, validity, hits) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, h := range hits {
		if _, err := stmt.ExecContext(ctx, h.City, h.Region, h.Lat, h.Long, string(h.Validity), h.Hits); err != nil {
			return fmt.Errorf("failed to insert hit %d: %w", i, err)
		}
	}
	return nil
}

// ExportTable returns the downloadable pivot with every cell as text
func (r *HitRepository) ExportTable(ctx context.Context) (models.ExportTable, error) {
	var table models.ExportTable

	rows, err := r.db.QueryContext(ctx, `SELECT * FROM `+quoteIdent(ExportTableName)+` ORDER BY rowid`)
	if err != nil {
		return table, fmt.Errorf("failed to query %s: %w", ExportTableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return table, fmt.Errorf("failed to read %s columns: %w", ExportTableName, err)
	}
	table.Header = columns

	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return table, fmt.Errorf("failed to scan %s row: %w", ExportTableName, err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = cellText(v)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return table, fmt.Errorf("failed to read %s: %w", ExportTableName, err)
	}
	return table, nil
}

// ReplaceExportTable recreates the downloadable pivot table from a table of text cells
func (r *HitRepository) ReplaceExportTable(ctx context.Context, table models.ExportTable) error {
	columns := make([]string, len(table.Header))
	placeholders := make([]string, len(table.Header))
	for i, name := range table.Header {
		columns[i] = quoteIdent(name) + " TEXT"
		placeholders[i] = "?"
	}

	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+quoteIdent(ExportTableName)); err != nil {
			return fmt.Errorf("failed to drop %s: %w", ExportTableName, err)
		}
		create := `CREATE TABLE ` + quoteIdent(ExportTableName) + ` (` + strings.Join(columns, ", ") + `)`
		if _, err := tx.ExecContext(ctx, create); err != nil {
			return fmt.Errorf("failed to create %s: %w", ExportTableName, err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO `+quoteIdent(ExportTableName)+` VALUES (`+strings.Join(placeholders, ", ")+`)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		args := make([]any, len(table.Header))
		for i, row := range table.Rows {
			for j := range args {
				args[j] = row[j]
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert %s row %d: %w", ExportTableName, i, err)
			}
		}
		return nil
	})
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// cellText renders a scanned SQLite value as CSV text
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
