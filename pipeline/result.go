// Package pipeline contains the results a sweep pipeline sends over its channel.
package pipeline

import (
	"github.com/hscells/sweep/learning"
	"github.com/hscells/sweep/output"
	"gonum.org/v1/plot"
)

// ResultType is the type of result being returned through a pipeline channel.
type ResultType uint8

const (
	// Trained indicates the estimators of the sweep have been trained.
	Trained ResultType = iota
	// Scored carries the scores of the estimators and any formatted score tables.
	Scored
	// Plotted carries the chart of the scores.
	Plotted
	// Reported carries the report written to the store.
	Reported
	// Error indicates an error was raised.
	Error
	// Done indicates the pipeline has completed.
	Done
)

func (t ResultType) String() string {
	switch t {
	case Trained:
		return "trained"
	case Scored:
		return "scored"
	case Plotted:
		return "plotted"
	case Reported:
		return "reported"
	case Error:
		return "error"
	case Done:
		return "done"
	}
	return "unknown"
}

// Result is the output of a sweep pipeline. Only the fields relevant to Type are set.
type Result struct {
	Estimators []learning.Estimator
	Scores     output.EstimatorScores
	Formatted  []string
	Chart      *plot.Plot
	Report     output.Report
	Type       ResultType
	Error      error
}
