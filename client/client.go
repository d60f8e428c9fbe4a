// Package client is the HTTP invoker for the task-management service under
// test. It only knows how to issue the CRUD requests and report status
// codes back; which codes should have come back is the test suite's
// business.
package client

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/light-bringer/tasks-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const probeTimeout = time.Second * 2

// TaskServiceClient drives one task-management service instance at a fixed
// base URL. All calls are bounded by the configured per-request timeout; a
// timeout is reported like any other transport failure.
type TaskServiceClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// NewTaskServiceClient creates a client for the service at baseURL. The
// logger receives a debug line per request; pass nil to discard them.
func NewTaskServiceClient(baseURL string, requestTimeout time.Duration, logger framework.Logger) *TaskServiceClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &TaskServiceClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// Probe makes a single request to verify that the service is reachable at
// all. It does not care about the status code; any well-formed HTTP
// response means something is listening.
func (c *TaskServiceClient) Probe() error {
	probeClient := &http.Client{Timeout: probeTimeout}
	resp, err := probeClient.Get(c.baseURL + "/tasks")
	if err != nil {
		return fmt.Errorf("cannot connect to %s: %w", c.baseURL, err)
	}
	if resp.Body != nil {
		_, _ = ioutil.ReadAll(resp.Body)
		resp.Body.Close()
	}
	return nil
}

// CreateTask posts a new task. On a 201 response the body must contain a
// positive integer id, which is returned in Response.TaskID; a 201 without
// one is reported as a decode failure.
func (c *TaskServiceClient) CreateTask(body ldvalue.Value) (framework.Response, error) {
	return c.do("POST", "/tasks", strings.NewReader(body.JSONString()), true)
}

// CreateTaskRaw posts an arbitrary payload, for cases that deliberately
// send something that is not valid JSON.
func (c *TaskServiceClient) CreateTaskRaw(payload string) (framework.Response, error) {
	return c.do("POST", "/tasks", strings.NewReader(payload), true)
}

// ListTasks fetches the task collection.
func (c *TaskServiceClient) ListTasks() (framework.Response, error) {
	return c.do("GET", "/tasks", nil, false)
}

// GetTask fetches one task. The id is passed through verbatim so that
// deliberately invalid ids can be sent.
func (c *TaskServiceClient) GetTask(id string) (framework.Response, error) {
	return c.do("GET", "/tasks/"+id, nil, false)
}

// UpdateTask replaces the task with the given id.
func (c *TaskServiceClient) UpdateTask(id string, body ldvalue.Value) (framework.Response, error) {
	return c.do("PUT", "/tasks/"+id, strings.NewReader(body.JSONString()), false)
}

// DeleteTask removes the task with the given id.
func (c *TaskServiceClient) DeleteTask(id string) (framework.Response, error) {
	return c.do("DELETE", "/tasks/"+id, nil, false)
}

func (c *TaskServiceClient) do(method, path string, body io.Reader, wantID bool) (framework.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return framework.Response{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return framework.Response{}, err
	}
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return framework.Response{}, fmt.Errorf("reading response body: %w", err)
	}
	c.logger.Printf("%s %s -> %d", method, path, resp.StatusCode)

	out := framework.Response{StatusCode: resp.StatusCode}
	if wantID && resp.StatusCode == http.StatusCreated {
		id := ldvalue.Parse(data).GetByKey("id")
		if !id.IsInt() || id.IntValue() <= 0 {
			return framework.Response{}, fmt.Errorf("create response did not contain a positive integer id: %s", string(data))
		}
		out.TaskID = ldvalue.NewOptionalInt(id.IntValue())
	}
	return out, nil
}
