package config

import "time"

const (
	// DefaultSrcDir is where solution sources live
	DefaultSrcDir = "src"
	// DefaultOutputDir is where the program writes its output files
	DefaultOutputDir = "output"
	// DefaultInputDir holds the test input fixtures
	DefaultInputDir = "testcase_inputs"
	// DefaultExpectedDir holds the golden output fixtures
	DefaultExpectedDir = "testcase_outputs"

	// DefaultCompiler is the batch compiler invoked over the source directory
	DefaultCompiler = "javac"
	// DefaultRuntime is the binary used to run the compiled program
	DefaultRuntime = "java"
	// DefaultMainClass is the entry class passed to the runtime
	DefaultMainClass = "Main"
	// DefaultSourceExt is the extension of compilable source files
	DefaultSourceExt = ".java"
	// DefaultArtifactExt is the extension of compiled artifacts the cleaner removes
	DefaultArtifactExt = ".class"

	// DefaultTimeout bounds each test subprocess
	DefaultTimeout = 30 * time.Second

	// DefaultResultsFile is the JSON file holding the last run's results
	DefaultResultsFile = "test-results.json"
	// DefaultResultsDir is the directory the results file is stored in
	DefaultResultsDir = "storage"
)

// TestTypes is the closed set of accepted --type filter values
var TestTypes = []string{"type1", "type2"}
