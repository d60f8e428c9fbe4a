package tasktests

import (
	"errors"

	"github.com/light-bringer/tasks-contract-tests/client"
	"github.com/light-bringer/tasks-contract-tests/framework"
)

// ErrDependencyFailure is returned when the create cases did not yield the
// task identifiers the rest of the scenario depends on. The dependent
// cases are not run and do not appear in the result log; the create
// failures themselves are already recorded.
var ErrDependencyFailure = errors.New("task creation did not produce usable identifiers; dependent tests were not run")

// RunTestSuite executes the fixed scenario against the service behind the
// given client: the create cases first, then, only when both created tasks
// are known, the list/get/update/delete cases that address them.
// The returned Results are the runner's log at the end of the run.
func RunTestSuite(c *client.TaskServiceClient, runner *framework.Runner) (framework.Results, error) {
	s := &scenarioContext{client: c, runner: runner}

	s.doCreateTests()

	if !s.taskA.IsDefined() || !s.taskB.IsDefined() {
		return runner.Results(), ErrDependencyFailure
	}

	s.doListTests()
	s.doGetTests()
	s.doUpdateTests()
	s.doDeleteTests()

	return runner.Results(), nil
}
