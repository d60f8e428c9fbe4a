package framework

import (
	"fmt"
	"time"
)

// Runner executes test cases one at a time and accumulates their results.
// It owns the result log for the duration of a suite run. A failing case
// never stops the run; it is recorded and execution moves on.
type Runner struct {
	results    Results
	testLogger TestLogger
}

// NewRunner creates a Runner. The testLogger receives each result as soon
// as it is recorded (the live trace in verbose mode); pass nil to disable
// tracing.
func NewRunner(testLogger TestLogger) *Runner {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	return &Runner{testLogger: testLogger}
}

// Run executes a single case: it times the action, classifies the outcome,
// and appends exactly one Result to the log. The elapsed time is recorded
// even when the action fails partway through.
func (r *Runner) Run(tc TestCase) Result {
	start := time.Now()
	resp, err := tc.Action()
	elapsed := time.Since(start)

	result := Result{
		Category:       tc.Category,
		Name:           tc.Name,
		Method:         tc.Method,
		Path:           tc.Path,
		ExpectedStatus: tc.ExpectedStatus,
		Duration:       elapsed,
		RequestBody:    tc.RequestBody,
	}
	switch {
	case err != nil:
		result.Outcome = Fail
		result.ErrorDetail = err.Error()
	case resp.StatusCode == tc.ExpectedStatus:
		result.ActualStatus = resp.StatusCode
		result.Outcome = Pass
	default:
		result.ActualStatus = resp.StatusCode
		result.Outcome = Fail
		result.ErrorDetail = fmt.Sprintf("Expected %d, got %d", tc.ExpectedStatus, resp.StatusCode)
	}

	r.record(result)
	return result
}

// RecordSkip logs a case that was deliberately not executed, for scenarios
// that want skipped dependents to show up in the report rather than being
// omitted.
func (r *Runner) RecordSkip(tc TestCase, reason string) Result {
	result := Result{
		Category:       tc.Category,
		Name:           tc.Name,
		Method:         tc.Method,
		Path:           tc.Path,
		ExpectedStatus: tc.ExpectedStatus,
		Outcome:        Skip,
		ErrorDetail:    reason,
		RequestBody:    tc.RequestBody,
	}
	r.record(result)
	return result
}

func (r *Runner) record(result Result) {
	r.results.Tests = append(r.results.Tests, result)
	if result.Outcome == Fail {
		r.results.Failures = append(r.results.Failures, result)
	}
	index := len(r.results.Tests)
	if result.Outcome == Skip {
		r.testLogger.CaseSkipped(index, result)
	} else {
		r.testLogger.CaseFinished(index, result)
	}
}

// Results returns the accumulated log. It is handed out by value; callers
// must not assume changes to it are seen by the Runner.
func (r *Runner) Results() Results {
	return r.results
}
