package domain

// TestCase represents a single fixture to run the program against
type TestCase struct {
	Name         string // Base name of the fixture (input filename without extension)
	InputFile    string // Path to the input fixture file
	ExpectedFile string // Path to the golden output file (may not exist)
	ActualFile   string // Path the program is expected to write its output to
}
