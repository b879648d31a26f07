package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gtr/internal/domain"
)

// Save writes the run summary and its results to the configured JSON file so
// a later `failures` invocation can replay them.
func (s *JSONStorage) Save(summary *domain.Summary, duration time.Duration, benchmark bool, typeFilter string) error {
	output := domain.RunOutput{
		Meta: domain.RunMeta{
			Total:           summary.Total,
			Passed:          summary.Passed,
			Failed:          summary.Failed,
			Skipped:         summary.Skipped,
			Completed:       summary.Completed,
			Benchmark:       benchmark,
			TypeFilter:      typeFilter,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Results: summary.Results,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run's results from the configured JSON file
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
