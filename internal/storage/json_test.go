package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gtr/internal/config"
	"gtr/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ResultsDir = t.TempDir()

	var summary domain.Summary
	summary.Add(domain.Result{Name: "type1_001", Status: domain.StatusPass, Duration: time.Second})
	summary.Add(domain.Result{
		Name:     "type1_002",
		Status:   domain.StatusWrongOutput,
		Duration: 2 * time.Second,
		Diff:     "--- expected\n+++ actual\n",
	})
	summary.Add(domain.Result{Name: "type2_001", Status: domain.StatusSkip, Message: "No expected output file"})

	st := NewJSONStorage(cfg)
	if err := st.Save(&summary, 3*time.Second, false, "type1"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	meta := loaded.Meta
	if meta.Total != 3 || meta.Passed != 1 || meta.Failed != 1 || meta.Skipped != 1 {
		t.Errorf("unexpected meta counters: %+v", meta)
	}
	if meta.TypeFilter != "type1" || meta.Benchmark {
		t.Errorf("unexpected meta flags: %+v", meta)
	}
	if meta.DurationSeconds != 3 {
		t.Errorf("expected duration 3s, got %f", meta.DurationSeconds)
	}

	if len(loaded.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(loaded.Results))
	}
	if loaded.Results[1].Status != domain.StatusWrongOutput {
		t.Errorf("unexpected status: %s", loaded.Results[1].Status)
	}
	if loaded.Results[1].Diff == "" {
		t.Error("expected diff to round-trip")
	}
}

func TestJSONStorage_SaveCreatesDir(t *testing.T) {
	cfg := config.New()
	cfg.ResultsDir = filepath.Join(t.TempDir(), "nested", "storage")

	st := NewJSONStorage(cfg)
	if err := st.Save(&domain.Summary{}, 0, true, ""); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(cfg.GetResultsPath()); err != nil {
		t.Errorf("expected results file to exist: %v", err)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	cfg := config.New()
	cfg.ResultsDir = t.TempDir()

	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
