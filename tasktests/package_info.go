// Package tasktests contains the contract tests for the task-management
// API and the wiring that runs them as one fixed scenario.
//
// Engine infrastructure that is not specific to the task domain, such as
// running a case and recording its result, is in the lower-level framework
// package; the HTTP requests themselves are issued by the client package.
package tasktests
