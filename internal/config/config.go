package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness
type Config struct {
	// Directory conventions (fixed, not flag-configurable)
	SrcDir      string
	OutputDir   string
	InputDir    string
	ExpectedDir string

	// Toolchain settings
	Compiler    string
	Runtime     string
	MainClass   string
	SourceExt   string
	ArtifactExt string

	// Execution settings
	Timeout time.Duration

	// Results persistence
	ResultsFile string
	ResultsDir  string

	// ColorEnabled is resolved once at load time and handed to the
	// reporter; nothing mutates process-wide color state afterwards.
	ColorEnabled bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TypeFilter string
	Verbose    bool
	Benchmark  bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		SrcDir:       DefaultSrcDir,
		OutputDir:    DefaultOutputDir,
		InputDir:     DefaultInputDir,
		ExpectedDir:  DefaultExpectedDir,
		Compiler:     DefaultCompiler,
		Runtime:      DefaultRuntime,
		MainClass:    DefaultMainClass,
		SourceExt:    DefaultSourceExt,
		ArtifactExt:  DefaultArtifactExt,
		Timeout:      DefaultTimeout,
		ResultsFile:  DefaultResultsFile,
		ResultsDir:   DefaultResultsDir,
		ColorEnabled: true,
	}
}

// Load creates a config, applies .env overrides and environment settings.
// Only toolchain settings are overridable; the directory layout is a fixed
// convention shared with the fixtures repository.
func Load() *Config {
	cfg := New()

	// .env file is optional; plain environment variables still apply
	_ = godotenv.Load()

	if v := os.Getenv("GTR_COMPILER"); v != "" {
		cfg.Compiler = v
	}
	if v := os.Getenv("GTR_RUNTIME"); v != "" {
		cfg.Runtime = v
	}
	if v := os.Getenv("GTR_MAIN_CLASS"); v != "" {
		cfg.MainClass = v
	}
	if v := os.Getenv("GTR_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if os.Getenv("GTR_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		cfg.ColorEnabled = false
	}

	return cfg
}

// ValidateTypeFilter checks the --type flag against the closed set
func (c *Config) ValidateTypeFilter(filter string) error {
	if filter == "" {
		return nil
	}
	for _, t := range TestTypes {
		if filter == t {
			return nil
		}
	}
	return fmt.Errorf("invalid test type %q (valid: %v)", filter, TestTypes)
}

// InputPattern returns the fixture glob, narrowed when a type filter is given
func (c *Config) InputPattern(typeFilter string) string {
	pattern := "*.txt"
	if typeFilter != "" {
		pattern = typeFilter + "_*.txt"
	}
	return filepath.Join(c.InputDir, pattern)
}

// ExpectedFor returns the golden file path for a fixture base name
func (c *Config) ExpectedFor(base string) string {
	return filepath.Join(c.ExpectedDir, base+"_out.txt")
}

// ActualFor returns the program output path for a fixture base name
func (c *Config) ActualFor(base string) string {
	return filepath.Join(c.OutputDir, base+".txt")
}

// SourcePattern returns the glob matching compilable sources
func (c *Config) SourcePattern() string {
	return filepath.Join(c.SrcDir, "*"+c.SourceExt)
}

// GetResultsPath returns the absolute path to the results JSON file so run
// and failures always read/write the same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
