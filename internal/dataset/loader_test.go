package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pivotCSV = "server.city,server.region,total,percent_invalid\nAustin,TX,100,90.0\nBoston,MA,100,5.0\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Source:    SourceCSV,
		RawPath:   writeFile(t, dir, "raw_data.csv", rawCSV),
		PivotPath: writeFile(t, dir, "pivot_data.csv", pivotCSV),
	}

	ds, err := Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, ds.Hits(), 4)
	assert.Len(t, ds.Export().Rows, 2)
}

func TestLoadMissingPivotFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(context.Background(), Config{
		RawPath:   writeFile(t, dir, "raw_data.csv", rawCSV),
		PivotPath: filepath.Join(dir, "missing.csv"),
	})
	require.Error(t, err)
}

func TestLoadRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	raw := "server.city,server.region,lat,long,validity,hits\nA,B,1,2,valid,1\nA,B,1,2,valid,3\n"
	_, err := Load(context.Background(), Config{
		RawPath:   writeFile(t, dir, "raw_data.csv", raw),
		PivotPath: writeFile(t, dir, "pivot_data.csv", pivotCSV),
	})
	assert.ErrorIs(t, err, ErrDuplicateHit)
}

func TestLoadUnknownSource(t *testing.T) {
	_, err := Load(context.Background(), Config{Source: "parquet"})
	assert.Error(t, err)
}

func TestSnapshotThenLoadSQLite(t *testing.T) {
	tests := []struct {
		name  string
		pivot string
	}{
		{"named columns", pivotCSV},
		{"pandas index column", ",server.city,total\n0,Austin,100\n1,Boston,100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			dir := t.TempDir()
			rawPath := writeFile(t, dir, "raw_data.csv", rawCSV)
			pivotPath := writeFile(t, dir, "pivot_data.csv", tt.pivot)
			dbPath := filepath.Join(dir, "snapshot.db")

			require.NoError(t, Snapshot(ctx, rawPath, pivotPath, dbPath))
			// a second snapshot replaces the first
			require.NoError(t, Snapshot(ctx, rawPath, pivotPath, dbPath))

			fromCSV, err := Load(ctx, Config{RawPath: rawPath, PivotPath: pivotPath})
			require.NoError(t, err)
			fromDB, err := Load(ctx, Config{Source: SourceSQLite, SQLitePath: dbPath})
			require.NoError(t, err)

			assert.Equal(t, fromCSV.Hits(), fromDB.Hits())
			assert.Equal(t, fromCSV.Export(), fromDB.Export())

			var csvOut, dbOut bytes.Buffer
			require.NoError(t, WriteExport(&csvOut, fromCSV.Export()))
			require.NoError(t, WriteExport(&dbOut, fromDB.Export()))
			assert.Equal(t, csvOut.String(), dbOut.String())
		})
	}
}

func TestSnapshotKeepsDirectoryWithSpecialCharacters(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "odd?name#dir")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	rawPath := writeFile(t, dir, "raw_data.csv", rawCSV)
	pivotPath := writeFile(t, dir, "pivot_data.csv", pivotCSV)
	dbPath := filepath.Join(dir, "snapshot.db")

	require.NoError(t, Snapshot(ctx, rawPath, pivotPath, dbPath))

	ds, err := Load(ctx, Config{Source: SourceSQLite, SQLitePath: dbPath})
	require.NoError(t, err)
	assert.Len(t, ds.Hits(), 4)
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	_, err := Load(context.Background(), Config{Source: SourceSQLite, SQLitePath: filepath.Join(t.TempDir(), "none.db")})
	var lerr *LoadError
	assert.ErrorAs(t, err, &lerr)
}

func TestNewKeepsInputs(t *testing.T) {
	hits := []models.HitRecord{{City: "A", Validity: models.ValidityValid, Hits: 1}}
	export := models.ExportTable{Header: []string{"x"}}
	ds, err := New(hits, export)
	require.NoError(t, err)
	assert.Equal(t, hits, ds.Hits())
	assert.Equal(t, export, ds.Export())
}
