package tasktests

import (
	"strconv"

	"github.com/light-bringer/tasks-contract-tests/client"
	"github.com/light-bringer/tasks-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// absentTaskID is an id the scenario assumes no task will ever have within
// one run. The two tasks it creates get the service's first free ids.
const absentTaskID = "9999"

// invalidTaskID is deliberately non-numeric; the service must reject it
// with a 400, not treat it as an unknown task.
const invalidTaskID = "abc"

// scenarioContext carries the state that flows between dependent cases:
// the client, the runner, and the identifier slots populated by the two
// valid create cases. Only those two cases write the slots; every case
// after them just reads.
type scenarioContext struct {
	client *client.TaskServiceClient
	runner *framework.Runner

	taskA ldvalue.OptionalInt // created with a description; read, updated
	taskB ldvalue.OptionalInt // created without one; deleted at the end
}

func (s *scenarioContext) run(tc framework.TestCase) {
	s.runner.Run(tc)
}

func taskPath(id ldvalue.OptionalInt) string {
	return "/tasks/" + strconv.Itoa(id.IntValue())
}
