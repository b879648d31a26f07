package domain

import (
	"errors"
	"strings"
	"time"
)

// Status classifies the outcome of running one test case
type Status string

const (
	StatusPass              Status = "pass"
	StatusWrongOutput       Status = "wrong_output"
	StatusRuntimeError      Status = "runtime_error"
	StatusNoOutput          Status = "no_output"
	StatusTimeout           Status = "timeout"
	StatusError             Status = "error"
	StatusSkip              Status = "skip"
	StatusBenchmarkComplete Status = "benchmark_complete"
)

// Failed reports whether the status counts toward the failure tally.
// Skips and successful outcomes do not.
func (s Status) Failed() bool {
	switch s {
	case StatusPass, StatusSkip, StatusBenchmarkComplete:
		return false
	}
	return true
}

// Label returns the status in banner form, e.g. "WRONG OUTPUT"
func (s Status) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// ErrRunFailed signals that the run finished but did not meet the success
// criteria. main maps it to exit code 1 without printing it; the reporter
// has already shown the closing banner.
var ErrRunFailed = errors.New("run failed")

// Result is the outcome of executing a single test case
type Result struct {
	Case     TestCase      `json:"-"`
	Name     string        `json:"name"`
	Status   Status        `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	Message  string        `json:"message,omitempty"` // Error detail (exit code, stderr, exception text)
	Diff     string        `json:"diff,omitempty"`    // Bounded unified diff, verbose runs only
}

// RunMeta contains metadata about a persisted test run
type RunMeta struct {
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Completed       int     `json:"completed"`
	Benchmark       bool    `json:"benchmark"`
	TypeFilter      string  `json:"type_filter,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a test run
type RunOutput struct {
	Meta    RunMeta  `json:"meta"`
	Results []Result `json:"results"`
}
