package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Report file names, prefixed per case family.
const (
	TimesFile = "impl_time_on_dist.csv"
	FreqFile  = "dist_freq.csv"
	WrongFile = "wrong_results.csv"
)

// Reporter appends results to three CSV files under dir:
//
//	<prefix>impl_time_on_dist.csv  run_id, labels..., start, one column of seconds per engine
//	<prefix>dist_freq.csv          run_id, labels..., reference level sizes
//	<prefix>wrong_results.csv      run_id, labels..., impl_name, level sizes of a mismatching engine
//
// Headers are written only when a file is created, so repeated suites
// append to the same files.
type Reporter struct {
	dir     string
	prefix  string
	labels  []string
	engines []string
}

// NewReporter creates dir if needed and writes any missing headers.
func NewReporter(dir, prefix string, labels, engines []string) (*Reporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("bench: output dir: %w", err)
	}
	r := &Reporter{dir: dir, prefix: prefix, labels: labels, engines: engines}

	head := append([]string{"run_id"}, labels...)
	headers := map[string][]string{
		TimesFile: append(append(append([]string{}, head...), "start"), engines...),
		FreqFile:  append(append([]string{}, head...), "levels..."),
		WrongFile: append(append([]string{}, head...), "impl_name", "levels..."),
	}
	for name, header := range headers {
		if err := r.ensureHeader(name, header); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Path returns the full path of one report file.
func (r *Reporter) Path(name string) string {
	return filepath.Join(r.dir, r.prefix+name)
}

// Write appends one result to the three files.
func (r *Reporter) Write(res Result) error {
	if len(res.Timings) != len(r.engines) {
		return fmt.Errorf("bench: result has %d timings, reporter expects %d engines",
			len(res.Timings), len(r.engines))
	}
	head := append([]string{res.RunID.String()}, res.Case.Labels...)

	times := append(append([]string{}, head...), strconv.Itoa(res.Case.Start))
	for _, t := range res.Timings {
		times = append(times, strconv.FormatFloat(t.Duration.Seconds(), 'f', 9, 64))
	}
	if err := r.append(TimesFile, times); err != nil {
		return err
	}

	freq := append(append([]string{}, head...), itoas(res.Timings[0].Levels)...)
	if err := r.append(FreqFile, freq); err != nil {
		return err
	}

	var wrong [][]string
	for _, t := range res.Mismatches() {
		row := append(append([]string{}, head...), t.Engine)
		wrong = append(wrong, append(row, itoas(t.Levels)...))
	}
	return r.append(WrongFile, wrong...)
}

func (r *Reporter) ensureHeader(name string, header []string) error {
	info, err := os.Stat(r.Path(name))
	if err == nil && info.Size() > 0 {
		return nil
	}
	return r.append(name, header)
}

func (r *Reporter) append(name string, rows ...[]string) error {
	if len(rows) == 0 {
		return nil
	}
	f, err := os.OpenFile(r.Path(name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("bench: open %s: %w", name, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("bench: write %s: %w", name, err)
	}
	return f.Close()
}

func itoas(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}
	return out
}
