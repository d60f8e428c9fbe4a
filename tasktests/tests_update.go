package tasktests

import (
	"strconv"

	"github.com/light-bringer/tasks-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func (s *scenarioContext) doUpdateTests() {
	existing := strconv.Itoa(s.taskA.IntValue())

	toDone := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("Updated task")).
		Set("description", ldvalue.String("Updated desc")).
		Set("status", ldvalue.String("done")).
		Build()
	s.run(framework.TestCase{
		Category:       "UPDATE",
		Name:           "Update task to done",
		Method:         "PUT",
		Path:           taskPath(s.taskA),
		ExpectedStatus: 200,
		RequestBody:    toDone.JSONString(),
		Action: func() (framework.Response, error) {
			return s.client.UpdateTask(existing, toDone)
		},
	})

	backToTodo := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("Updated task")).
		Set("description", ldvalue.String("Back to todo")).
		Set("status", ldvalue.String("todo")).
		Build()
	s.run(framework.TestCase{
		Category:       "UPDATE",
		Name:           "Update task to todo",
		Method:         "PUT",
		Path:           taskPath(s.taskA),
		ExpectedStatus: 200,
		RequestBody:    backToTodo.JSONString(),
		Action: func() (framework.Response, error) {
			return s.client.UpdateTask(existing, backToTodo)
		},
	})

	// "in-progress" is not in the service's status enum; only "todo" and
	// "done" are valid.
	invalidStatus := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("Test")).
		Set("status", ldvalue.String("in-progress")).
		Build()
	s.run(framework.TestCase{
		Category:       "UPDATE",
		Name:           "Invalid status (validation)",
		Method:         "PUT",
		Path:           taskPath(s.taskA),
		ExpectedStatus: 400,
		RequestBody:    invalidStatus.JSONString(),
		Action: func() (framework.Response, error) {
			return s.client.UpdateTask(existing, invalidStatus)
		},
	})

	noTitle := ldvalue.ObjectBuild().
		Set("description", ldvalue.String("No title")).
		Set("status", ldvalue.String("done")).
		Build()
	s.run(framework.TestCase{
		Category:       "UPDATE",
		Name:           "Missing title (validation)",
		Method:         "PUT",
		Path:           taskPath(s.taskA),
		ExpectedStatus: 400,
		RequestBody:    noTitle.JSONString(),
		Action: func() (framework.Response, error) {
			return s.client.UpdateTask(existing, noTitle)
		},
	})

	absentUpdate := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("Test")).
		Set("status", ldvalue.String("done")).
		Build()
	s.run(framework.TestCase{
		Category:       "UPDATE",
		Name:           "Update non-existent task",
		Method:         "PUT",
		Path:           "/tasks/" + absentTaskID,
		ExpectedStatus: 404,
		RequestBody:    absentUpdate.JSONString(),
		Action: func() (framework.Response, error) {
			return s.client.UpdateTask(absentTaskID, absentUpdate)
		},
	})
}
