package tasktests

import (
	"github.com/light-bringer/tasks-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const malformedPayload = "invalid json"

func (s *scenarioContext) doCreateTests() {
	withDescription := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("Complete project documentation")).
		Set("description", ldvalue.String("Write comprehensive API documentation")).
		Build()
	s.run(framework.TestCase{
		Category:       "CREATE",
		Name:           "Valid task with description",
		Method:         "POST",
		Path:           "/tasks",
		ExpectedStatus: 201,
		RequestBody:    withDescription.JSONString(),
		Action: func() (framework.Response, error) {
			resp, err := s.client.CreateTask(withDescription)
			if err == nil && resp.StatusCode == 201 {
				s.taskA = resp.TaskID
			}
			return resp, err
		},
	})

	titleOnly := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("Review pull requests")).
		Build()
	s.run(framework.TestCase{
		Category:       "CREATE",
		Name:           "Valid task without description",
		Method:         "POST",
		Path:           "/tasks",
		ExpectedStatus: 201,
		RequestBody:    titleOnly.JSONString(),
		Action: func() (framework.Response, error) {
			resp, err := s.client.CreateTask(titleOnly)
			if err == nil && resp.StatusCode == 201 {
				s.taskB = resp.TaskID
			}
			return resp, err
		},
	})

	noTitle := ldvalue.ObjectBuild().
		Set("description", ldvalue.String("No title")).
		Build()
	s.run(framework.TestCase{
		Category:       "CREATE",
		Name:           "Missing title (validation)",
		Method:         "POST",
		Path:           "/tasks",
		ExpectedStatus: 400,
		RequestBody:    noTitle.JSONString(),
		Action: func() (framework.Response, error) {
			return s.client.CreateTask(noTitle)
		},
	})

	blankTitle := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("   ")).
		Set("description", ldvalue.String("Empty")).
		Build()
	s.run(framework.TestCase{
		Category:       "CREATE",
		Name:           "Empty title (validation)",
		Method:         "POST",
		Path:           "/tasks",
		ExpectedStatus: 400,
		RequestBody:    blankTitle.JSONString(),
		Action: func() (framework.Response, error) {
			return s.client.CreateTask(blankTitle)
		},
	})

	s.run(framework.TestCase{
		Category:       "CREATE",
		Name:           "Malformed JSON",
		Method:         "POST",
		Path:           "/tasks",
		ExpectedStatus: 400,
		RequestBody:    malformedPayload,
		Action: func() (framework.Response, error) {
			return s.client.CreateTaskRaw(malformedPayload)
		},
	})
}
