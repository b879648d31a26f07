package build

import (
	"os"
	"path/filepath"
	"testing"

	"gtr/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tmp := t.TempDir()
	cfg := config.New()
	cfg.SrcDir = filepath.Join(tmp, "src")
	cfg.OutputDir = filepath.Join(tmp, "output")
	cfg.InputDir = filepath.Join(tmp, "testcase_inputs")
	cfg.ExpectedDir = filepath.Join(tmp, "testcase_outputs")
	return cfg
}

func TestCleaner_Clean(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.SrcDir, 0755); err != nil {
		t.Fatalf("failed to create src dir: %v", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		t.Fatalf("failed to create output dir: %v", err)
	}

	stale := []string{
		filepath.Join(cfg.SrcDir, "Main.class"),
		filepath.Join(cfg.SrcDir, "Helper.class"),
		filepath.Join(cfg.OutputDir, "type1_001.txt"),
	}
	kept := []string{
		filepath.Join(cfg.SrcDir, "Main.java"),
	}
	for _, f := range append(append([]string{}, stale...), kept...) {
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}

	NewCleaner(cfg).Clean()

	for _, f := range stale {
		if _, err := os.Stat(f); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed", f)
		}
	}
	for _, f := range kept {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("expected %s to survive cleaning: %v", f, err)
		}
	}
}

func TestCleaner_CreatesOutputDir(t *testing.T) {
	cfg := testConfig(t)

	NewCleaner(cfg).Clean()

	info, err := os.Stat(cfg.OutputDir)
	if err != nil || !info.IsDir() {
		t.Errorf("expected output dir to be created: %v", err)
	}
}

func TestCleaner_Idempotent(t *testing.T) {
	cfg := testConfig(t)

	// Nothing exists; must not panic or fail
	cleaner := NewCleaner(cfg)
	cleaner.Clean()
	cleaner.Clean()
}
