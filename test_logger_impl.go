package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/light-bringer/tasks-contract-tests/framework"
)

const traceRuleWidth = 70

// ConsoleTestLogger prints a detailed block for each case as soon as it is
// recorded, including a copy-pasteable curl command to reproduce the
// request by hand.
type ConsoleTestLogger struct {
	BaseURL string
}

func (c *ConsoleTestLogger) CaseFinished(index int, result framework.Result) {
	rule := strings.Repeat("=", traceRuleWidth)
	fmt.Println()
	fmt.Println(rule)
	fmt.Printf("%s %s - %s\n", result.Outcome, result.Category, result.Name)
	fmt.Printf("  Method:   %s %s\n", result.Method, result.Path)
	fmt.Printf("  Expected: %d, Got: %d\n", result.ExpectedStatus, result.ActualStatus)
	if result.ErrorDetail != "" {
		fmt.Printf("  Error:    %s\n", result.ErrorDetail)
	}
	fmt.Printf("  Duration: %.2fms\n", float64(result.Duration)/float64(time.Millisecond))
	fmt.Printf("  Repro:    %s\n", c.reproCommand(result))
	fmt.Println(rule)
}

func (c *ConsoleTestLogger) CaseSkipped(index int, result framework.Result) {
	fmt.Printf("SKIP %s - %s (%s)\n", result.Category, result.Name, result.ErrorDetail)
}

func (c *ConsoleTestLogger) reproCommand(result framework.Result) string {
	var b commandBuilder
	b.add("curl", "-s", "-X", result.Method, c.BaseURL+result.Path)
	if result.RequestBody != "" {
		b.add("-H", "Content-Type: application/json", "-d", result.RequestBody)
	}
	return b.String()
}
