package service

import (
	"context"
	"io"
	"time"

	"github.com/jengzang/validity-dashboard/internal/analysis"
	"github.com/jengzang/validity-dashboard/internal/analysis/viz"
	"github.com/jengzang/validity-dashboard/internal/dataset"
	"github.com/jengzang/validity-dashboard/internal/logging"
	"github.com/jengzang/validity-dashboard/internal/metrics"
	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/jengzang/validity-dashboard/internal/spatial"
	"github.com/jengzang/validity-dashboard/internal/stats"
)

// DashboardService handles business logic for the validity dashboard
type DashboardService struct {
	data       *dataset.Dataset
	bands      []models.Band
	exportName string
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(data *dataset.Dataset, bands []models.Band, exportName string) *DashboardService {
	return &DashboardService{
		data:       data,
		bands:      bands,
		exportName: exportName,
	}
}

// View computes the full dashboard for two slider positions
func (s *DashboardService) View(ctx context.Context, low, high float64) models.DashboardView {
	start := time.Now()

	d := analysis.Derive(s.data.Hits(), low, high)
	slices, unbanded := analysis.Classify(d.Rows, s.bands)

	view := models.DashboardView{
		Bounds:  d.Bounds,
		Label:   analysis.DescribeRange(d.Bounds),
		Figure:  viz.BuildFigure(slices, s.bands),
		Extent:  spatial.Extent(d.Rows),
		Columns: models.TableColumns,
		Table:   analysis.ProjectTable(d.Rows),
		Summary: summarize(d.Rows, s.bands, slices, unbanded),
	}

	elapsed := time.Since(start)
	metrics.RecordView(elapsed, len(d.Rows), unbanded)
	logging.Ctx(ctx).Debug().
		Float64("min", d.Bounds.Min).
		Float64("max", d.Bounds.Max).
		Int("locations", len(d.Rows)).
		Int("unbanded", unbanded).
		Dur("elapsed", elapsed).
		Msg("dashboard view computed")
	return view
}

// Range returns the bounds and label for two slider positions
func (s *DashboardService) Range(low, high float64) models.RangeView {
	bounds := analysis.MapRange(low, high)
	return models.RangeView{
		Bounds: bounds,
		Label:  analysis.DescribeRange(bounds),
	}
}

// Export writes the downloadable pivot as CSV
func (s *DashboardService) Export(ctx context.Context, w io.Writer) error {
	table := s.data.Export()
	if err := dataset.WriteExport(w, table); err != nil {
		return err
	}
	metrics.ExportsTotal.Inc()
	logging.Ctx(ctx).Debug().Int("rows", len(table.Rows)).Msg("export written")
	return nil
}

// ExportFilename returns the attachment name used for downloads
func (s *DashboardService) ExportFilename() string {
	return s.exportName
}

func summarize(rows []models.LocationRecord, bands []models.Band, slices [][]models.LocationRecord, unbanded int) models.DashboardSummary {
	totals := make([]int64, 0, len(rows))
	invalid := make([]int64, 0, len(rows))
	percents := make([]float64, 0, len(rows))
	for _, rec := range rows {
		totals = append(totals, rec.Total)
		invalid = append(invalid, rec.SuspiciousOrInvalid)
		percents = append(percents, rec.PercentInvalid)
	}

	summary := models.DashboardSummary{
		Locations:           len(rows),
		TotalHits:           stats.SumInt64(totals),
		SuspiciousOrInvalid: stats.SumInt64(invalid),
		BandCounts:          make(map[string]int, len(bands)),
		Unbanded:            unbanded,
	}
	summary.PercentInvalid = stats.Round(stats.Ratio(summary.SuspiciousOrInvalid, summary.TotalHits), analysis.PercentDecimals)
	summary.MedianPercentInvalid = stats.Round(stats.Median(percents), analysis.PercentDecimals)

	for i, b := range bands {
		summary.BandCounts[analysis.BandLabel(b)] = len(slices[i])
	}
	return summary
}
