package build

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"gtr/internal/config"
)

// Compiler invokes the external compiler over the whole source directory
type Compiler struct {
	config *config.Config
}

// NewCompiler creates a new Compiler
func NewCompiler(cfg *config.Config) *Compiler {
	return &Compiler{config: cfg}
}

// BuildError carries the compiler's captured output for display
type BuildError struct {
	Reason string
	Stdout string
	Stderr string
}

func (e *BuildError) Error() string {
	return e.Reason
}

// Compile batch-compiles all matching sources in a single subprocess call
// with the working directory set to the source directory. A missing source
// directory or an empty source set is a build failure, not a zero-test
// success. Compilation failure is fatal to the run; no tests execute on top
// of a stale or absent build.
func (c *Compiler) Compile() error {
	if info, err := os.Stat(c.config.SrcDir); err != nil || !info.IsDir() {
		return &BuildError{Reason: fmt.Sprintf("source directory %q not found", c.config.SrcDir)}
	}

	sources, err := filepath.Glob(c.config.SourcePattern())
	if err != nil {
		return &BuildError{Reason: fmt.Sprintf("listing sources: %v", err)}
	}
	if len(sources) == 0 {
		return &BuildError{Reason: fmt.Sprintf("no %s files found in %q", c.config.SourceExt, c.config.SrcDir)}
	}

	// The compiler runs inside the source directory, so pass bare filenames
	args := make([]string, 0, len(sources))
	for _, s := range sources {
		args = append(args, filepath.Base(s))
	}

	cmd := exec.Command(c.config.Compiler, args...)
	cmd.Dir = c.config.SrcDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return &BuildError{
				Reason: fmt.Sprintf("%s not found, ensure it is installed and in PATH", c.config.Compiler),
			}
		}
		return &BuildError{
			Reason: "compilation failed",
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
	}

	return nil
}
