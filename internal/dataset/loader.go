package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/jengzang/validity-dashboard/internal/database"
	"github.com/jengzang/validity-dashboard/internal/logging"
	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/jengzang/validity-dashboard/internal/repository"
)

// Source kinds
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config selects where the datasets are read from
type Config struct {
	Source     string
	RawPath    string
	PivotPath  string
	SQLitePath string
}

// Load reads both datasets once. Any failure is meant to stop the process.
func Load(ctx context.Context, cfg Config) (*Dataset, error) {
	start := time.Now()

	var (
		hits   []models.HitRecord
		export models.ExportTable
		err    error
	)

	switch cfg.Source {
	case SourceCSV, "":
		hits, export, err = loadCSV(cfg)
	case SourceSQLite:
		hits, export, err = loadSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Source)
	}
	if err != nil {
		return nil, err
	}

	ds, err := New(hits, export)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("source", cfg.Source).
		Int("hits", len(hits)).
		Int("export_rows", len(export.Rows)).
		Dur("elapsed", time.Since(start)).
		Msg("datasets loaded")
	return ds, nil
}

func loadCSV(cfg Config) ([]models.HitRecord, models.ExportTable, error) {
	hits, err := ReadHitsFile(cfg.RawPath)
	if err != nil {
		return nil, models.ExportTable{}, err
	}
	export, err := ReadExportFile(cfg.PivotPath)
	if err != nil {
		return nil, models.ExportTable{}, err
	}
	return hits, export, nil
}

func loadSQLite(ctx context.Context, cfg Config) ([]models.HitRecord, models.ExportTable, error) {
	db, err := database.Open(ctx, database.Config{Path: cfg.SQLitePath, ReadOnly: true})
	if err != nil {
		return nil, models.ExportTable{}, &LoadError{Path: cfg.SQLitePath, Err: err}
	}
	defer db.Close()

	repo := repository.NewHitRepository(db)
	hits, err := repo.ListHits(ctx)
	if err != nil {
		return nil, models.ExportTable{}, &LoadError{Path: cfg.SQLitePath, Err: err}
	}
	export, err := repo.ExportTable(ctx)
	if err != nil {
		return nil, models.ExportTable{}, &LoadError{Path: cfg.SQLitePath, Err: err}
	}
	return hits, export, nil
}

// Snapshot copies CSV inputs into a SQLite file usable as the sqlite source
func Snapshot(ctx context.Context, rawPath, pivotPath, sqlitePath string) error {
	hits, export, err := loadCSV(Config{RawPath: rawPath, PivotPath: pivotPath})
	if err != nil {
		return err
	}
	if _, err := New(hits, export); err != nil {
		return err
	}

	db, err := database.Open(ctx, database.Config{Path: sqlitePath})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	repo := repository.NewHitRepository(db)
	if err := repo.ReplaceHits(ctx, hits); err != nil {
		return err
	}
	if err := repo.ReplaceExportTable(ctx, export); err != nil {
		return err
	}
	// Leave a single self-contained file that opens read-only without -wal/-shm
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=DELETE"); err != nil {
		return fmt.Errorf("failed to checkpoint snapshot: %w", err)
	}

	logging.Info().Str("path", sqlitePath).Int("hits", len(hits)).Int("export_rows", len(export.Rows)).Msg("snapshot written")
	return nil
}
