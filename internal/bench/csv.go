package bench

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/zerr"
)

var csvHeader = []string{
	"batch", "algo", "jobs", "machines", "runs", "lower_bound",
	"time_best_ms", "time_mean_ms", "time_std_ms",
	"makespan_best", "makespan_mean", "makespan_std",
	"gap_mean_pct", "checks_mean",
}

// WriteCSV записывает результаты в файл, создавая каталог при необходимости.
func WriteCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerr.With(zerr.Wrap(err, "create output directory"), "dir", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "create csv"), "path", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return zerr.Wrap(err, "write csv header")
	}
	for _, r := range records {
		if err := w.Write(r.row()); err != nil {
			return zerr.Wrap(err, "write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return zerr.Wrap(err, "flush csv")
	}
	return f.Close()
}

func (r Record) row() []string {
	return []string{
		r.Batch,
		r.Algo,
		itoa(r.Jobs),
		itoa(r.Machines),
		itoa(r.Runs),
		itoa(r.LowerBound),

		ftoa(r.TimeBestMs),
		ftoa(r.TimeMeanMs),
		ftoa(r.TimeStdMs),

		itoa(r.MakespanBest),
		ftoa(r.MakespanMean),
		ftoa(r.MakespanStd),

		ftoa(r.GapMeanPct),
		ftoa(r.ChecksMean),
	}
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
