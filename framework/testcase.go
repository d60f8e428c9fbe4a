package framework

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is what an Action yields when an HTTP exchange completes: the
// status code the service returned, plus the decoded task ID if the
// response carried one.
type Response struct {
	StatusCode int
	TaskID     ldvalue.OptionalInt
}

// Action performs one HTTP interaction against the service under test. A
// non-nil error means a transport failure (connection, timeout, or a
// malformed response body), as opposed to an unexpected status code, which
// is a normal Response.
type Action func() (Response, error)

// TestCase describes one check: a single HTTP interaction and the status
// code it must produce. ExpectedStatus must be a valid HTTP status in the
// range 100-599.
type TestCase struct {
	Category       string
	Name           string
	Method         string
	Path           string
	ExpectedStatus int

	// RequestBody is the JSON payload the action sends, if any. It is kept
	// only so loggers can print a reproducible command; the Action itself
	// owns the real request.
	RequestBody string

	Action Action
}
