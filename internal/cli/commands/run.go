package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gtr/internal/build"
	"gtr/internal/config"
	"gtr/internal/discovery"
	"gtr/internal/domain"
	"gtr/internal/execution"
	"gtr/internal/storage"
	"gtr/internal/ui"
)

// RunCommand handles the run command: the whole clean/build/execute/report
// pipeline.
type RunCommand struct {
	config     *config.Config
	cleaner    *build.Cleaner
	compiler   *build.Compiler
	enumerator *discovery.Enumerator
	runner     *execution.Runner
	storage    storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	cleaner *build.Cleaner,
	compiler *build.Compiler,
	enumerator *discovery.Enumerator,
	runner *execution.Runner,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		cleaner:    cleaner,
		compiler:   compiler,
		enumerator: enumerator,
		runner:     runner,
		storage:    st,
	}
}

// Execute runs the command. It returns domain.ErrRunFailed when the run
// finishes without meeting the success criteria; main maps that to exit 1.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags
	reporter := ui.NewReporter(os.Stdout, flags.Verbose, flags.Benchmark, rc.config.ColorEnabled)

	reporter.Header()

	// Always clean before testing so stale outputs can never pass a test
	rc.cleaner.Clean()

	reporter.BuildStart()
	if err := rc.compiler.Compile(); err != nil {
		var buildErr *build.BuildError
		if errors.As(err, &buildErr) {
			reporter.BuildFailure(buildErr)
			return domain.ErrRunFailed
		}
		return err
	}
	reporter.BuildSuccess()

	cases, err := rc.enumerator.Enumerate(flags.TypeFilter)
	if err != nil {
		return err
	}

	reporter.Intro(flags.TypeFilter, len(cases))
	if len(cases) == 0 {
		reporter.NoTests()
		// Zero benchmark fixtures is a success per the exit-code contract
		if flags.Benchmark {
			return nil
		}
		return domain.ErrRunFailed
	}

	executor := execution.NewExecutor(rc.config, rc.runner, reporter)
	if flags.Benchmark {
		executor.SetProgress(ui.NewProgressBar(len(cases), rc.config.ColorEnabled))
	}

	summary, duration := executor.Execute(cases)

	reporter.Summary(summary)

	if err := rc.storage.Save(summary, duration, flags.Benchmark, flags.TypeFilter); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save results: %v\n", err)
	}

	if !summary.Success(flags.Benchmark) {
		return domain.ErrRunFailed
	}
	return nil
}
