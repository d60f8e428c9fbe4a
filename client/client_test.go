package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const testTimeout = time.Second

func titlePayload(title string) ldvalue.Value {
	return ldvalue.ObjectBuild().Set("title", ldvalue.String(title)).Build()
}

func TestCreateTaskDecodesIDFrom201(t *testing.T) {
	body := []byte(`{"id": 42, "title": "t", "description": "", "status": "todo"}`)
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithResponse(201, nil, body))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewTaskServiceClient(server.URL, testTimeout, nil)

		resp, err := c.CreateTask(titlePayload("t"))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, ldvalue.NewOptionalInt(42), resp.TaskID)

		info := <-requestsCh
		assert.Equal(t, "POST", info.Request.Method)
		assert.Equal(t, "/tasks", info.Request.URL.Path)
		assert.Equal(t, "application/json", info.Request.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"title": "t"}`, string(info.Body))
	})
}

func TestCreateTaskWithout201DoesNotDecodeID(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(400), func(server *httptest.Server) {
		c := NewTaskServiceClient(server.URL, testTimeout, nil)

		resp, err := c.CreateTask(titlePayload("   "))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.False(t, resp.TaskID.IsDefined())
	})
}

func TestCreateTaskMalformed201BodyIsTransportFailure(t *testing.T) {
	for _, body := range []string{"", "not json", `{"title": "no id"}`, `{"id": -3}`, `{"id": "7"}`} {
		handler := httphelpers.HandlerWithResponse(201, nil, []byte(body))
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			c := NewTaskServiceClient(server.URL, testTimeout, nil)

			_, err := c.CreateTask(titlePayload("t"))
			require.Error(t, err, "body: %q", body)
			assert.Contains(t, err.Error(), "positive integer id")
		})
	}
}

func TestCreateTaskRawSendsPayloadVerbatim(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(400))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewTaskServiceClient(server.URL, testTimeout, nil)

		resp, err := c.CreateTaskRaw("invalid json")
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		info := <-requestsCh
		assert.Equal(t, "invalid json", string(info.Body))
	})
}

func TestRequestsCarryMethodAndPath(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(204))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewTaskServiceClient(server.URL, testTimeout, nil)

		_, err := c.ListTasks()
		require.NoError(t, err)
		_, err = c.GetTask("7")
		require.NoError(t, err)
		_, err = c.UpdateTask("7", titlePayload("t"))
		require.NoError(t, err)
		_, err = c.DeleteTask("abc")
		require.NoError(t, err)

		expected := [][2]string{
			{"GET", "/tasks"},
			{"GET", "/tasks/7"},
			{"PUT", "/tasks/7"},
			{"DELETE", "/tasks/abc"},
		}
		for _, e := range expected {
			info := <-requestsCh
			assert.Equal(t, e[0], info.Request.Method)
			assert.Equal(t, e[1], info.Request.URL.Path)
		}
	})
}

func TestConnectionRefusedIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	c := NewTaskServiceClient(url, testTimeout, nil)
	_, err := c.ListTasks()
	require.Error(t, err)
}

func TestTimeoutIsTransportFailure(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	})
	httphelpers.WithServer(slow, func(server *httptest.Server) {
		c := NewTaskServiceClient(server.URL, 20*time.Millisecond, nil)

		_, err := c.ListTasks()
		require.Error(t, err)
	})
}

func TestProbeSucceedsOnAnyResponse(t *testing.T) {
	for _, status := range []int{200, 500} {
		httphelpers.WithServer(httphelpers.HandlerWithStatus(status), func(server *httptest.Server) {
			c := NewTaskServiceClient(server.URL, testTimeout, nil)
			assert.NoError(t, c.Probe())
		})
	}
}

func TestProbeFailsWhenNothingIsListening(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	c := NewTaskServiceClient(url, testTimeout, nil)
	err := c.Probe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot connect")
}
