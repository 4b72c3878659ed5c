package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/cyber-g/tswhist/algorithms/stats"
	"github.com/cyber-g/tswhist/config"
)

// report is the rendered form of one run
type report struct {
	Source       string                `json:"source"`
	Bins         int                   `json:"bins"`
	WindowLength int                   `json:"window_length"`
	Stride       int                   `json:"stride"`
	Windows      int                   `json:"windows"`
	OneBased     bool                  `json:"one_based"`
	Loci         []int                 `json:"loci"`
	Edges        []float64             `json:"edges"`
	Counts       [][]int               `json:"counts"`
	Operations   int                   `json:"operations"`
	Dropped      int                   `json:"dropped,omitempty"`
	Summary      []stats.WindowSummary `json:"summary,omitempty"`
}

func newReport(source string, res *histogram.Result, cfg *config.HistogramConfig) *report {
	r := &report{
		Source:       source,
		Bins:         res.Bins,
		WindowLength: res.WindowLength,
		Stride:       res.Stride,
		Windows:      res.NumWindows(),
		OneBased:     cfg.OneBasedLoci,
		Loci:         res.Loci,
		Edges:        res.Edges,
		Counts:       res.Counts,
		Operations:   res.Operations,
		Dropped:      res.Dropped,
	}
	if cfg.OneBasedLoci {
		r.Loci = res.OneBasedLoci()
	}
	if cfg.Summary {
		r.Summary = stats.Summarize(res)
	}
	return r
}

func writeResult(w io.Writer, cfg *config.HistogramConfig, r *report) error {
	return writeResults(w, cfg, []*report{r})
}

// writeResults renders one JSON document (an object for a single report,
// an array otherwise) or one CSV table with a source column
func writeResults(w io.Writer, cfg *config.HistogramConfig, reports []*report) error {
	if cfg.Format == "csv" {
		return writeCSV(w, reports)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

// writeCSV writes one row per window: source, start, one column per bin and,
// with a summary, entropy, mode bin and mean
func writeCSV(w io.Writer, reports []*report) error {
	if len(reports) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	first := reports[0]

	header := []string{"source", "start"}
	for b := 0; b < first.Bins; b++ {
		header = append(header, fmt.Sprintf("bin_%d", b))
	}
	if first.Summary != nil {
		header = append(header, "entropy", "mode_bin", "mean")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		for win, col := range r.Counts {
			row := []string{r.Source, strconv.Itoa(r.Loci[win])}
			for _, c := range col {
				row = append(row, strconv.Itoa(c))
			}
			if r.Summary != nil {
				s := r.Summary[win]
				row = append(row,
					strconv.FormatFloat(s.Entropy, 'g', 6, 64),
					strconv.Itoa(s.ModeBin),
					strconv.FormatFloat(s.Mean, 'g', 6, 64),
				)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
