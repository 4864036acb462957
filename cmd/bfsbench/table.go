package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/parbfs/bench"
)

// renderTimings prints one row per engine of res.
func renderTimings(w io.Writer, res bench.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("run %s, start %d", res.RunID, res.Case.Start)
	t.AppendHeader(table.Row{"Engine", "Seconds", "Speedup", "Match", "Levels"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 5, WidthMax: 60},
	})

	ref := res.Timings[0].Duration.Seconds()
	for _, tm := range res.Timings {
		match := "yes"
		switch {
		case tm.Err != nil:
			match = "error: " + tm.Err.Error()
		case !tm.Match:
			match = "NO"
		}
		speedup := "-"
		if s := tm.Duration.Seconds(); s > 0 {
			speedup = fmt.Sprintf("%.2fx", ref/s)
		}
		t.AppendRow(table.Row{
			tm.Engine,
			fmt.Sprintf("%.6f", tm.Duration.Seconds()),
			speedup,
			match,
			joinInts(tm.Levels),
		})
	}
	t.Render()
}

// suiteSummary accumulates per-engine totals across a suite.
type suiteSummary struct {
	engines    []string
	cases      int
	seconds    []float64
	mismatches []int
	failures   []int
}

func newSuiteSummary(engines []string) *suiteSummary {
	return &suiteSummary{
		engines:    engines,
		seconds:    make([]float64, len(engines)),
		mismatches: make([]int, len(engines)),
		failures:   make([]int, len(engines)),
	}
}

func (s *suiteSummary) add(res bench.Result) {
	s.cases++
	for i, tm := range res.Timings {
		s.seconds[i] += tm.Duration.Seconds()
		switch {
		case tm.Err != nil:
			s.failures[i]++
		case !tm.Match:
			s.mismatches[i]++
		}
	}
}

func (s *suiteSummary) render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%d cases", s.cases)
	t.AppendHeader(table.Row{"Engine", "Total seconds", "Wrong results", "Failures"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for i, name := range s.engines {
		t.AppendRow(table.Row{name, fmt.Sprintf("%.6f", s.seconds[i]), s.mismatches[i], s.failures[i]})
	}
	t.Render()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
