// Command snapshot converts the two CSV inputs into a SQLite file that the
// server can load with DATA_SOURCE=sqlite.
package main

import (
	"context"
	"os"

	"github.com/jengzang/validity-dashboard/internal/dataset"
	"github.com/jengzang/validity-dashboard/internal/logging"
	flag "github.com/spf13/pflag"
)

func main() {
	rawPath := flag.String("raw", "raw_data.csv", "raw hit CSV")
	pivotPath := flag.String("pivot", "pivot_data.csv", "downloadable pivot CSV")
	out := flag.StringP("out", "o", "./data/dashboard.db", "SQLite file to write")
	logFormat := flag.String("log-format", "console", "log format: json or console")
	flag.Parse()

	logging.Init(logging.Config{Level: "info", Format: *logFormat})

	if err := dataset.Snapshot(context.Background(), *rawPath, *pivotPath, *out); err != nil {
		logging.Error().Err(err).Msg("Snapshot failed")
		os.Exit(1)
	}
}
