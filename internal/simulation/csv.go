package simulation

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// WriteStatsCSV writes one row per system count.
func WriteStatsCSV(path string, rows []CountStats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{
		"systems",
		"tier",
		"mean_coverage",
		"std_coverage",
		"mean_roi",
		"std_roi",
		"optimal_share",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Systems),
			string(r.Tier),
			fmtFloat(r.MeanCoverage),
			fmtFloat(r.StdCoverage),
			fmtFloat(r.MeanROI),
			fmtFloat(r.StdROI),
			fmtFloat(r.OptimalShare),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
