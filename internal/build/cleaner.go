package build

import (
	"os"
	"path/filepath"

	"gtr/internal/config"
)

// Cleaner removes stale build artifacts and previous output files
type Cleaner struct {
	config *config.Config
}

// NewCleaner creates a new Cleaner
func NewCleaner(cfg *config.Config) *Cleaner {
	return &Cleaner{config: cfg}
}

// Clean removes compiled artifacts from the source directory and prior
// output files from the output directory, creating the output directory if
// it is missing. Deletion errors are swallowed; cleaning never fails a run.
func (c *Cleaner) Clean() {
	artifacts, _ := filepath.Glob(filepath.Join(c.config.SrcDir, "*"+c.config.ArtifactExt))
	for _, f := range artifacts {
		_ = os.Remove(f)
	}

	_ = os.MkdirAll(c.config.OutputDir, 0755)
	outputs, _ := filepath.Glob(filepath.Join(c.config.OutputDir, "*.txt"))
	for _, f := range outputs {
		_ = os.Remove(f)
	}
}
