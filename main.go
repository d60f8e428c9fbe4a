package main

import (
	"fmt"
	"os"
	"time"

	"github.com/light-bringer/tasks-contract-tests/client"
	"github.com/light-bringer/tasks-contract-tests/framework"
	"github.com/light-bringer/tasks-contract-tests/report"
	"github.com/light-bringer/tasks-contract-tests/tasktests"
)

// The harness tests one locally running service instance; there is no
// other configuration.
const baseURL = "http://localhost:8080"

const requestTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	fmt.Println("Task management API test suite")
	fmt.Printf("  Base URL: %s\n", baseURL)
	if params.verbose {
		fmt.Println("  Mode:     verbose")
	} else {
		fmt.Println("  Mode:     summary")
	}
	fmt.Println()

	c := client.NewTaskServiceClient(baseURL, requestTimeout, framework.NullLogger())

	if err := c.Probe(); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot reach the task service: %s\n", err)
		fmt.Fprintf(os.Stderr, "Start it first, e.g.: go run ./cmd/api\n")
		os.Exit(1)
	}
	fmt.Println("Service is reachable")

	var testLogger framework.TestLogger
	if params.verbose {
		testLogger = &ConsoleTestLogger{BaseURL: baseURL}
	} else {
		fmt.Println("Running tests...")
	}
	runner := framework.NewRunner(testLogger)

	results, depErr := tasktests.RunTestSuite(c, runner)

	renderer := report.NewRenderer(report.RichTableAvailable())
	text, err := renderer.Render(results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No test results were recorded: %s\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Print(text)

	if depErr != nil {
		fmt.Println()
		fmt.Printf("Dependency failure: %s\n", depErr)
	}

	if depErr != nil || !results.OK() {
		os.Exit(1)
	}
}
