package execution

import (
	"os"
	"time"

	"gtr/internal/compare"
	"gtr/internal/config"
	"gtr/internal/domain"
	"gtr/internal/ui"
)

// Executor runs test cases strictly sequentially, in enumeration order,
// classifying each into exactly one status. A failing case never stops the
// run; every enumerated case is attempted.
type Executor struct {
	config   *config.Config
	runner   *Runner
	reporter *ui.Reporter
	progress *ui.ProgressBar
}

// NewExecutor creates a new Executor
func NewExecutor(cfg *config.Config, runner *Runner, reporter *ui.Reporter) *Executor {
	return &Executor{
		config:   cfg,
		runner:   runner,
		reporter: reporter,
	}
}

// SetProgress sets the progress bar updated as cases complete
func (e *Executor) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// Execute runs all cases and returns the aggregated summary along with the
// wall-clock duration of the whole pass.
func (e *Executor) Execute(cases []domain.TestCase) (*domain.Summary, time.Duration) {
	summary := &domain.Summary{}
	start := time.Now()

	for i, tc := range cases {
		result := e.runOne(tc)
		summary.Add(result)
		if e.reporter != nil {
			e.reporter.Result(i+1, result)
		}
		if e.progress != nil {
			e.progress.Update(summary.Completed, summary.Failed)
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return summary, time.Since(start)
}

// runOne produces the single terminal result for one test case
func (e *Executor) runOne(tc domain.TestCase) domain.Result {
	benchmark := e.config.Flags.Benchmark

	// Benchmark runs skip the golden-file check entirely
	if !benchmark {
		if _, err := os.Stat(tc.ExpectedFile); err != nil {
			return domain.Result{
				Case:    tc,
				Name:    tc.Name,
				Status:  domain.StatusSkip,
				Message: "No expected output file",
			}
		}
	}

	result, ok := e.runner.Run(tc)
	if !ok {
		return result
	}

	if benchmark {
		result.Status = domain.StatusBenchmarkComplete
		return result
	}

	equal, err := compare.Equal(tc.ExpectedFile, tc.ActualFile)
	if err != nil {
		result.Status = domain.StatusError
		result.Message = err.Error()
		return result
	}

	if equal {
		result.Status = domain.StatusPass
		return result
	}

	result.Status = domain.StatusWrongOutput
	if e.config.Flags.Verbose {
		result.Diff = compare.UnifiedDiff(tc.ExpectedFile, tc.ActualFile)
	}
	return result
}
