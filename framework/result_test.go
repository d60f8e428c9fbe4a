package framework

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWith(outcome Outcome, d time.Duration) Result {
	return Result{
		Category:       "GET",
		Name:           "case",
		Method:         "GET",
		Path:           "/tasks",
		ExpectedStatus: 200,
		Outcome:        outcome,
		Duration:       d,
	}
}

func TestSummarizeComputesCountsAndRate(t *testing.T) {
	results := Results{Tests: []Result{
		resultWith(Pass, 10*time.Millisecond),
		resultWith(Pass, 20*time.Millisecond),
		resultWith(Pass, 30*time.Millisecond),
		resultWith(Fail, 40*time.Millisecond),
	}}

	stats, err := Summarize(results)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Passed)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 75.0, stats.SuccessRate)
	assert.Equal(t, 100*time.Millisecond, stats.TotalDuration)
	assert.Equal(t, 25*time.Millisecond, stats.AvgDuration)
}

func TestSummarizeCountsSkips(t *testing.T) {
	results := Results{Tests: []Result{
		resultWith(Pass, time.Millisecond),
		resultWith(Skip, 0),
	}}

	stats, err := Summarize(results)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 50.0, stats.SuccessRate)
}

func TestSummarizeEmptyLogIsError(t *testing.T) {
	_, err := Summarize(Results{})
	require.Error(t, err)
	assert.Equal(t, ErrNoResults, err)
}

func TestResultsOK(t *testing.T) {
	assert.True(t, Results{}.OK())
	assert.True(t, Results{Tests: []Result{resultWith(Pass, 0)}}.OK())
	assert.False(t, Results{Tests: []Result{resultWith(Pass, 0), resultWith(Fail, 0)}}.OK())
	assert.False(t, Results{Tests: []Result{resultWith(Skip, 0)}}.OK())
}
