package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jengzang/validity-dashboard/internal/models"
)

// Raw hit columns, looked up by header name
const (
	ColumnCity     = "server.city"
	ColumnRegion   = "server.region"
	ColumnLat      = "lat"
	ColumnLong     = "long"
	ColumnValidity = "validity"
	ColumnHits     = "hits"
)

var rawColumns = []string{ColumnCity, ColumnRegion, ColumnLat, ColumnLong, ColumnValidity, ColumnHits}

// ReadHitsFile reads the raw long-format hit dataset from a CSV file
func ReadHitsFile(path string) ([]models.HitRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return ReadHits(f, path)
}

// ReadHits parses raw hit records; name is used in errors
func ReadHits(r io.Reader, name string) ([]models.HitRecord, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty file")
		}
		return nil, &LoadError{Path: name, Line: 1, Err: err}
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		index[col] = i
	}
	for _, col := range rawColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Path: name, Line: 1, Err: fmt.Errorf("%w %q", ErrMissingColumn, col)}
		}
	}

	var hits []models.HitRecord
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &LoadError{Path: name, Line: perr.Line, Err: perr.Err}
			}
			return nil, &LoadError{Path: name, Err: err}
		}
		line, _ := cr.FieldPos(0)

		h, err := parseHit(record, index)
		if err != nil {
			return nil, &LoadError{Path: name, Line: line, Err: err}
		}
		hits = append(hits, h)
	}
	return hits, nil
}

func parseHit(record []string, index map[string]int) (models.HitRecord, error) {
	h := models.HitRecord{
		City:     record[index[ColumnCity]],
		Region:   record[index[ColumnRegion]],
		Validity: models.Validity(record[index[ColumnValidity]]),
	}

	var err error
	if h.Lat, err = strconv.ParseFloat(record[index[ColumnLat]], 64); err != nil {
		return h, fmt.Errorf("invalid %s: %w", ColumnLat, err)
	}
	if h.Long, err = strconv.ParseFloat(record[index[ColumnLong]], 64); err != nil {
		return h, fmt.Errorf("invalid %s: %w", ColumnLong, err)
	}
	if h.Hits, err = parseCount(record[index[ColumnHits]]); err != nil {
		return h, fmt.Errorf("invalid %s: %w", ColumnHits, err)
	}
	return h, nil
}

// parseCount reads a hit count. Blank cells are zero and decimal counts
// such as "12.0" are truncated toward zero.
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// ReadExportFile reads the precomputed pivot offered for download
func ReadExportFile(path string) (models.ExportTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ExportTable{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return ReadExport(f, path)
}

// ReadExport parses a CSV table, keeping every cell as text
func ReadExport(r io.Reader, name string) (models.ExportTable, error) {
	var table models.ExportTable

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return table, &LoadError{Path: name, Line: perr.Line, Err: perr.Err}
		}
		return table, &LoadError{Path: name, Err: err}
	}
	if len(records) == 0 {
		return table, &LoadError{Path: name, Line: 1, Err: errors.New("empty file")}
	}

	table.Header = records[0]
	table.Header[0] = strings.TrimPrefix(table.Header[0], "\ufeff")
	for i, col := range table.Header {
		// blank header cells are named the way pandas names them on read
		if col == "" {
			table.Header[i] = "Unnamed: " + strconv.Itoa(i)
		}
	}
	table.Rows = records[1:]
	return table, nil
}

// WriteExport writes the table as CSV with a leading unnamed index column
// numbering the rows from 0, the layout the download has always had.
func WriteExport(w io.Writer, table models.ExportTable) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(table.Header)+1)
	header = append(header, "")
	header = append(header, table.Header...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, 0, len(table.Header)+1)
	for i, cells := range table.Rows {
		row = append(row[:0], strconv.Itoa(i))
		row = append(row, cells...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
