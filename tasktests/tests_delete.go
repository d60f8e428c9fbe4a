package tasktests

import (
	"strconv"

	"github.com/light-bringer/tasks-contract-tests/framework"
)

func (s *scenarioContext) doDeleteTests() {
	doomed := strconv.Itoa(s.taskB.IntValue())

	s.run(framework.TestCase{
		Category:       "DELETE",
		Name:           "Delete existing task",
		Method:         "DELETE",
		Path:           taskPath(s.taskB),
		ExpectedStatus: 204,
		Action: func() (framework.Response, error) {
			return s.client.DeleteTask(doomed)
		},
	})

	// Fetching the task again proves the delete actually removed it.
	s.run(framework.TestCase{
		Category:       "DELETE",
		Name:           "Verify task deleted",
		Method:         "GET",
		Path:           taskPath(s.taskB),
		ExpectedStatus: 404,
		Action: func() (framework.Response, error) {
			return s.client.GetTask(doomed)
		},
	})

	s.run(framework.TestCase{
		Category:       "DELETE",
		Name:           "Delete non-existent task",
		Method:         "DELETE",
		Path:           "/tasks/" + absentTaskID,
		ExpectedStatus: 404,
		Action: func() (framework.Response, error) {
			return s.client.DeleteTask(absentTaskID)
		},
	})

	s.run(framework.TestCase{
		Category:       "DELETE",
		Name:           "Invalid task ID",
		Method:         "DELETE",
		Path:           "/tasks/" + invalidTaskID,
		ExpectedStatus: 400,
		Action: func() (framework.Response, error) {
			return s.client.DeleteTask(invalidTaskID)
		},
	})
}
