package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gtr/internal/config"
	"gtr/internal/domain"
)

// Runner executes the compiled program for a single test case
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run launches one subprocess for the test case, bounded by the configured
// timeout. The program is invoked inside the source directory and receives
// the input and output paths as arguments. ok is true only when the program
// exited zero and produced its output file; otherwise the returned result
// carries the terminal status for this case. The timed-out process is killed
// so it cannot outlive its test case.
func (r *Runner) Run(tc domain.TestCase) (res domain.Result, ok bool) {
	res = domain.Result{Case: tc, Name: tc.Name}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.config.Runtime, r.config.MainClass,
		r.relToSrc(tc.InputFile), r.relToSrc(tc.ActualFile))
	cmd.Dir = r.config.SrcDir

	// The program runs in its own process group so the deadline kills its
	// descendants too; otherwise an orphaned grandchild keeps the output
	// pipes open and Wait blocks long past the timeout. WaitDelay is the
	// backstop that abandons the pipes if anything survives the kill.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		return cmd.Process.Kill()
	}
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		res.Status = domain.StatusTimeout
		res.Message = fmt.Sprintf("Test timed out (%s limit)", r.config.Timeout)
		return res, false
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Status = domain.StatusRuntimeError
			res.Message = fmt.Sprintf("Exit code: %d", exitErr.ExitCode())
			if s := strings.TrimSpace(stderr.String()); s != "" {
				res.Message += "\nStderr: " + s
			}
			return res, false
		}
		// Launch failure (missing runtime binary, permission problem, ...)
		res.Status = domain.StatusError
		res.Message = err.Error()
		return res, false
	}

	if _, err := os.Stat(tc.ActualFile); err != nil {
		res.Status = domain.StatusNoOutput
		res.Message = "No output file generated"
		return res, false
	}

	return res, true
}

// relToSrc rewrites a harness-relative path so it resolves from inside the
// source directory, where the program runs.
func (r *Runner) relToSrc(path string) string {
	if rel, err := filepath.Rel(r.config.SrcDir, path); err == nil {
		return rel
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
