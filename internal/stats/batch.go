// Package stats aggregates the outcome of rendering a batch of lines.
package stats

import (
	"time"

	"github.com/symtalha14/notify"
)

// LineResult represents the outcome of rendering a single batch line.
type LineResult struct {
	Index    int         // Position in the batch file
	Role     notify.Role // Role the line was rendered with
	Message  string      // Raw message text
	Rendered string      // Formatted line, empty on failure
	Err      error       // Formatting error, nil on success
}

// Success reports whether the line rendered.
func (r LineResult) Success() bool {
	return r.Err == nil
}

// BatchSummary aggregates results from a batch run.
type BatchSummary struct {
	Total     int                 // Lines processed
	Rendered  int                 // Lines formatted successfully
	Failed    int                 // Lines rejected by the formatter
	ByRole    map[notify.Role]int // Successful lines per role
	TotalTime time.Duration       // Wall time for the whole batch
	Results   []LineResult        // Individual results in input order
}

// NewBatchSummary creates a new batch summary.
func NewBatchSummary() *BatchSummary {
	return &BatchSummary{
		ByRole:  make(map[notify.Role]int),
		Results: make([]LineResult, 0),
	}
}

// AddResult adds a result to the summary and updates counters.
func (bs *BatchSummary) AddResult(result LineResult) {
	bs.Results = append(bs.Results, result)
	bs.Total++

	if result.Success() {
		bs.Rendered++
		bs.ByRole[result.Role]++
	} else {
		bs.Failed++
	}
}

// SuccessRate returns the share of rendered lines as a percentage.
func (bs *BatchSummary) SuccessRate() float64 {
	if bs.Total == 0 {
		return 0
	}
	return float64(bs.Rendered) / float64(bs.Total) * 100
}

// Failures returns only the failed results, in input order.
func (bs *BatchSummary) Failures() []LineResult {
	var failed []LineResult
	for _, r := range bs.Results {
		if !r.Success() {
			failed = append(failed, r)
		}
	}
	return failed
}
