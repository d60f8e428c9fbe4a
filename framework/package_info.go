// Package framework contains the test execution engine: the model for
// declaring test cases, the runner that executes them against a live
// service, and the result log that the final report is built from.
//
// The general model is:
//
// 1. A TestCase describes one HTTP interaction to perform and the status
// code it must produce. The interaction itself is an injected Action, so
// the engine never touches a socket directly and can be exercised with
// fake invokers.
//
// 2. The Runner executes cases strictly in sequence, timing each one and
// classifying the outcome. Every executed case appends exactly one Result
// to the log; a failing case never stops the run.
//
// 3. The accumulated Results are handed to a renderer at the end of the
// run. Summarize computes the statistics for the report.
//
// The domain-specific code that knows what is being tested (which requests
// to send, in what order, with which dependencies between them) lives in
// the higher-level tasktests package.
package framework
