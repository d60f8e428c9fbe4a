package framework

import (
	"errors"
	"time"
)

// Outcome classifies an executed or deliberately skipped test case.
type Outcome string

const (
	Pass Outcome = "PASS"
	Fail Outcome = "FAIL"
	Skip Outcome = "SKIP"
)

// Result is the recorded outcome of one test case. It is created exactly
// once per execution and not modified afterwards.
type Result struct {
	Category       string
	Name           string
	Method         string
	Path           string
	ActualStatus   int // 0 means no response was received
	ExpectedStatus int
	Outcome        Outcome
	Duration       time.Duration
	ErrorDetail    string // empty unless the outcome is Fail or Skip
	RequestBody    string
}

func (r Result) Passed() bool {
	return r.Outcome == Pass
}

// Results is the ordered log of outcomes for one suite run. Tests holds
// every recorded result in execution order; Failures mirrors the failing
// ones for quick access. The log is never reordered or deduplicated.
type Results struct {
	Tests    []Result
	Failures []Result
}

// OK reports whether every recorded result passed. A skip counts as not
// passing: the run only gets a clean exit when everything actually ran and
// matched.
func (r Results) OK() bool {
	for _, result := range r.Tests {
		if !result.Passed() {
			return false
		}
	}
	return true
}

// Stats aggregates a result log for the summary block of the report.
type Stats struct {
	Total         int
	Passed        int
	Failed        int
	Skipped       int
	SuccessRate   float64 // percentage of passed over total
	TotalDuration time.Duration
	AvgDuration   time.Duration
}

// ErrNoResults is returned by Summarize when the log is empty; the success
// rate is undefined with a total of zero.
var ErrNoResults = errors.New("no test results were recorded")

// Summarize computes the summary statistics for a result log. The log must
// be non-empty.
func Summarize(results Results) (Stats, error) {
	if len(results.Tests) == 0 {
		return Stats{}, ErrNoResults
	}
	stats := Stats{Total: len(results.Tests)}
	for _, result := range results.Tests {
		switch result.Outcome {
		case Pass:
			stats.Passed++
		case Fail:
			stats.Failed++
		case Skip:
			stats.Skipped++
		}
		stats.TotalDuration += result.Duration
	}
	stats.SuccessRate = float64(stats.Passed) / float64(stats.Total) * 100
	stats.AvgDuration = stats.TotalDuration / time.Duration(stats.Total)
	return stats, nil
}
