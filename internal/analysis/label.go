package analysis

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/jengzang/validity-dashboard/internal/stats"
)

// DescribeRange renders the text shown under the slider
func DescribeRange(bounds models.Bounds) string {
	return "Value Slider: Sort Geo Plots and Data Table by number of hits." +
		fmt.Sprintf("Min hits per area: %s, Max hits per area: %s. ",
			humanize.Comma(stats.RoundInt(bounds.Min)),
			humanize.Comma(stats.RoundInt(bounds.Max)))
}
