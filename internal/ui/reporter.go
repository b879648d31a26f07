package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"gtr/internal/build"
	"gtr/internal/domain"
)

const (
	compactSeparator = "----------------------------------------"
	verboseSeparator = "========================================"
)

// Reporter prints per-test status lines, the run summary and the closing
// banner. Compact and verbose presentations convey the same status
// information; only the layout differs. Color enablement is fixed at
// construction instead of living in process-wide state.
type Reporter struct {
	w         io.Writer
	verbose   bool
	benchmark bool

	blue   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer, verbose, benchmark, colorEnabled bool) *Reporter {
	r := &Reporter{
		w:         w,
		verbose:   verbose,
		benchmark: benchmark,
		blue:      color.New(color.FgBlue),
		green:     color.New(color.FgGreen),
		yellow:    color.New(color.FgYellow),
		red:       color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.blue, r.green, r.yellow, r.red} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Header prints the tool banner
func (r *Reporter) Header() {
	r.blue.Fprintln(r.w, "Golden Test Runner")
	fmt.Fprintln(r.w, strings.Repeat("=", 40))
}

// BuildStart announces compilation
func (r *Reporter) BuildStart() {
	r.blue.Fprintln(r.w, "Compiling sources...")
}

// BuildSuccess announces a successful compilation
func (r *Reporter) BuildSuccess() {
	r.green.Fprintln(r.w, "✓ Compilation successful")
}

// BuildFailure surfaces the compiler's captured output
func (r *Reporter) BuildFailure(err *build.BuildError) {
	r.red.Fprintf(r.w, "✗ %s\n", err.Reason)
	if err.Stderr != "" {
		fmt.Fprintln(r.w, "Compilation errors:")
		fmt.Fprint(r.w, err.Stderr)
	}
	if err.Stdout != "" {
		fmt.Fprint(r.w, err.Stdout)
	}
}

// Intro announces the run and prints the opening separator
func (r *Reporter) Intro(typeFilter string, count int) {
	if r.benchmark {
		r.blue.Fprintln(r.w, "Starting benchmark execution...")
		r.yellow.Fprintln(r.w, "Benchmark mode: measuring execution times only, no output comparison")
	} else {
		r.blue.Fprintln(r.w, "Starting test execution...")
	}
	if typeFilter != "" {
		r.yellow.Fprintf(r.w, "Filtering tests for type: %s\n", typeFilter)
	}

	if count == 0 {
		return
	}
	if r.benchmark {
		r.blue.Fprintf(r.w, "Benchmarking %d test cases\n", count)
	} else {
		r.blue.Fprintf(r.w, "Testing %d test cases\n", count)
	}
	fmt.Fprintln(r.w, r.separator())
}

// Result prints one test outcome as it is produced
func (r *Reporter) Result(index int, res domain.Result) {
	if r.verbose {
		r.verboseResult(index, res)
		return
	}
	r.compactResult(res)
}

func (r *Reporter) compactResult(res domain.Result) {
	action := "Testing"
	if r.benchmark {
		action = "Benchmarking"
	}
	fmt.Fprintf(r.w, "%s %s ... ", action, res.Name)

	switch res.Status {
	case domain.StatusSkip:
		r.yellow.Fprintf(r.w, "⚠ SKIP (%s)\n", res.Message)
	case domain.StatusBenchmarkComplete:
		r.green.Fprintf(r.w, "✓ %s\n", formatSeconds(res.Duration, 3))
	case domain.StatusPass:
		r.green.Fprintf(r.w, "✓ PASS (%s)\n", formatSeconds(res.Duration, 1))
	default:
		r.red.Fprintf(r.w, "✗ %s (%s)\n", res.Status.Label(), formatSeconds(res.Duration, 1))
	}
}

func (r *Reporter) verboseResult(index int, res domain.Result) {
	action := "Testing"
	if r.benchmark {
		action = "Benchmarking"
	}
	r.blue.Fprintf(r.w, "[%d] %s: %s\n", index, action, res.Name)

	switch res.Status {
	case domain.StatusSkip:
		r.yellow.Fprintf(r.w, "⚠ SKIP: %s\n", res.Message)
	case domain.StatusBenchmarkComplete:
		r.green.Fprintf(r.w, "✓ COMPLETED (Time: %s)\n", formatSeconds(res.Duration, 3))
	case domain.StatusPass:
		r.green.Fprintf(r.w, "✓ RESULT: PASS (Time: %s)\n", formatSeconds(res.Duration, 1))
	default:
		r.red.Fprintf(r.w, "✗ RESULT: %s (Time: %s)\n", res.Status.Label(), formatSeconds(res.Duration, 1))
		if res.Message != "" {
			fmt.Fprintf(r.w, "   %s\n", res.Message)
		}
		if res.Diff != "" {
			r.yellow.Fprintln(r.w, "Expected vs Actual diff:")
			fmt.Fprint(r.w, res.Diff)
			if !strings.HasSuffix(res.Diff, "\n") {
				fmt.Fprintln(r.w)
			}
		}
	}
	fmt.Fprintln(r.w)
}

// Summary prints the final counters, benchmark statistics when applicable,
// and the closing banner.
func (r *Reporter) Summary(s *domain.Summary) {
	fmt.Fprintln(r.w, r.separator())
	if r.benchmark {
		r.blue.Fprintln(r.w, "Benchmark Summary:")
	} else {
		r.blue.Fprintln(r.w, "Test Summary:")
	}

	fmt.Fprintf(r.w, "  Total:  %d\n", s.Total)
	if r.benchmark {
		r.green.Fprintf(r.w, "  Completed: %d\n", s.Completed)
	} else {
		r.green.Fprintf(r.w, "  Passed: %d\n", s.Passed)
	}
	r.red.Fprintf(r.w, "  Failed: %d\n", s.Failed)
	if s.Skipped > 0 {
		r.yellow.Fprintf(r.w, "  Skipped: %d\n", s.Skipped)
	}

	if r.benchmark {
		if avg, min, max, ok := s.BenchmarkStats(); ok {
			fmt.Fprintf(r.w, "  Average time: %s\n", formatSeconds(avg, 3))
			fmt.Fprintf(r.w, "  Min time:     %s\n", formatSeconds(min, 3))
			fmt.Fprintf(r.w, "  Max time:     %s\n", formatSeconds(max, 3))
		}
	}

	switch s.Verdict(r.benchmark) {
	case domain.VerdictAllPassed:
		r.green.Fprintln(r.w, "🎉 All tests passed!")
	case domain.VerdictBenchmarksDone:
		r.green.Fprintln(r.w, "🎉 All benchmarks completed!")
	case domain.VerdictNoTests:
		r.yellow.Fprintln(r.w, "⚠ No test cases found")
	case domain.VerdictFailures:
		if r.benchmark {
			r.red.Fprintln(r.w, "❌ Some benchmarks failed")
		} else {
			r.red.Fprintln(r.w, "❌ Some tests failed")
		}
	}
}

// NoTests prints the zero-fixture warning shown instead of the test listing
func (r *Reporter) NoTests() {
	r.yellow.Fprintln(r.w, "⚠ No test cases found")
}

func (r *Reporter) separator() string {
	if r.verbose {
		return verboseSeparator
	}
	return compactSeparator
}

// formatSeconds renders a duration as seconds with the given precision,
// matching the per-test and benchmark-stat line formats.
func formatSeconds(d time.Duration, precision int) string {
	return fmt.Sprintf("%.*fs", precision, d.Seconds())
}
