package domain

import "time"

// Verdict is the closing outcome of a whole run
type Verdict int

const (
	VerdictAllPassed Verdict = iota
	VerdictBenchmarksDone
	VerdictNoTests
	VerdictFailures
)

// Summary accumulates per-result counters over one run.
// It is the only state shared across test cases.
type Summary struct {
	Total     int
	Passed    int
	Failed    int
	Skipped   int
	Completed int // benchmark mode only
	Results   []Result
}

// Add records a result and updates the counters
func (s *Summary) Add(r Result) {
	s.Total++
	s.Results = append(s.Results, r)

	switch r.Status {
	case StatusPass:
		s.Passed++
	case StatusSkip:
		s.Skipped++
	case StatusBenchmarkComplete:
		s.Completed++
	default:
		s.Failed++
	}
}

// Verdict selects the closing banner based solely on the final counters
func (s *Summary) Verdict(benchmark bool) Verdict {
	if s.Total == 0 {
		return VerdictNoTests
	}
	if s.Failed > 0 {
		return VerdictFailures
	}
	if benchmark {
		return VerdictBenchmarksDone
	}
	return VerdictAllPassed
}

// Success reports whether the run meets the exit-code contract:
// benchmark runs succeed when anything completed (or nothing existed),
// normal runs succeed when at least one test ran and none failed.
func (s *Summary) Success(benchmark bool) bool {
	if benchmark {
		return s.Completed > 0 || s.Total == 0
	}
	return s.Failed == 0 && s.Total > 0
}

// BenchmarkStats returns average, min and max duration over all completed
// benchmark results. ok is false when nothing completed.
func (s *Summary) BenchmarkStats() (avg, min, max time.Duration, ok bool) {
	var sum time.Duration
	n := 0
	for _, r := range s.Results {
		if r.Status != StatusBenchmarkComplete {
			continue
		}
		if n == 0 || r.Duration < min {
			min = r.Duration
		}
		if n == 0 || r.Duration > max {
			max = r.Duration
		}
		sum += r.Duration
		n++
	}
	if n == 0 {
		return 0, 0, 0, false
	}
	return sum / time.Duration(n), min, max, true
}
