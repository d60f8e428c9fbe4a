package tasktests

import (
	"strconv"

	"github.com/light-bringer/tasks-contract-tests/framework"
)

func (s *scenarioContext) doListTests() {
	s.run(framework.TestCase{
		Category:       "LIST",
		Name:           "Get all tasks",
		Method:         "GET",
		Path:           "/tasks",
		ExpectedStatus: 200,
		Action: func() (framework.Response, error) {
			return s.client.ListTasks()
		},
	})
}

func (s *scenarioContext) doGetTests() {
	existing := strconv.Itoa(s.taskA.IntValue())
	s.run(framework.TestCase{
		Category:       "GET",
		Name:           "Get existing task",
		Method:         "GET",
		Path:           taskPath(s.taskA),
		ExpectedStatus: 200,
		Action: func() (framework.Response, error) {
			return s.client.GetTask(existing)
		},
	})

	s.run(framework.TestCase{
		Category:       "GET",
		Name:           "Get non-existent task",
		Method:         "GET",
		Path:           "/tasks/" + absentTaskID,
		ExpectedStatus: 404,
		Action: func() (framework.Response, error) {
			return s.client.GetTask(absentTaskID)
		},
	})

	s.run(framework.TestCase{
		Category:       "GET",
		Name:           "Invalid task ID",
		Method:         "GET",
		Path:           "/tasks/" + invalidTaskID,
		ExpectedStatus: 400,
		Action: func() (framework.Response, error) {
			return s.client.GetTask(invalidTaskID)
		},
	})
}
