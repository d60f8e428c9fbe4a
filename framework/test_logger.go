package framework

// TestLogger receives case outcomes as they are recorded, so a console
// implementation can show a live trace while the suite is still running.
// The index is the 1-based position of the result in the log.
type TestLogger interface {
	CaseFinished(index int, result Result)
	CaseSkipped(index int, result Result)
}

type nullTestLogger struct{}

func (n nullTestLogger) CaseFinished(int, Result) {}
func (n nullTestLogger) CaseSkipped(int, Result)  {}
