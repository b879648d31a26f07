package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.SrcDir != DefaultSrcDir {
		t.Errorf("expected SrcDir %s, got %s", DefaultSrcDir, cfg.SrcDir)
	}
	if cfg.Compiler != DefaultCompiler {
		t.Errorf("expected Compiler %s, got %s", DefaultCompiler, cfg.Compiler)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout %s, got %s", DefaultTimeout, cfg.Timeout)
	}
	if !cfg.ColorEnabled {
		t.Error("expected color enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GTR_COMPILER", "gcc")
	t.Setenv("GTR_RUNTIME", "wine")
	t.Setenv("GTR_TIMEOUT", "5")
	t.Setenv("GTR_NO_COLOR", "1")

	cfg := Load()

	if cfg.Compiler != "gcc" {
		t.Errorf("expected compiler gcc, got %s", cfg.Compiler)
	}
	if cfg.Runtime != "wine" {
		t.Errorf("expected runtime wine, got %s", cfg.Runtime)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.Timeout)
	}
	if cfg.ColorEnabled {
		t.Error("expected color disabled")
	}
}

func TestLoad_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("GTR_TIMEOUT", "not-a-number")
	cfg := Load()
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %s", cfg.Timeout)
	}

	t.Setenv("GTR_TIMEOUT", "-3")
	cfg = Load()
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout for negative value, got %s", cfg.Timeout)
	}
}

func TestConfig_ValidateTypeFilter(t *testing.T) {
	cfg := New()

	tests := []struct {
		filter  string
		wantErr bool
	}{
		{"", false},
		{"type1", false},
		{"type2", false},
		{"type3", true},
		{"TYPE1", true},
	}

	for _, tt := range tests {
		err := cfg.ValidateTypeFilter(tt.filter)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTypeFilter(%q) error = %v, wantErr %v", tt.filter, err, tt.wantErr)
		}
	}
}

func TestConfig_Paths(t *testing.T) {
	cfg := New()

	if got := cfg.InputPattern(""); got != filepath.Join("testcase_inputs", "*.txt") {
		t.Errorf("unexpected input pattern: %s", got)
	}
	if got := cfg.InputPattern("type1"); got != filepath.Join("testcase_inputs", "type1_*.txt") {
		t.Errorf("unexpected filtered pattern: %s", got)
	}
	if got := cfg.ExpectedFor("type1_001"); got != filepath.Join("testcase_outputs", "type1_001_out.txt") {
		t.Errorf("unexpected expected path: %s", got)
	}
	if got := cfg.ActualFor("type1_001"); got != filepath.Join("output", "type1_001.txt") {
		t.Errorf("unexpected actual path: %s", got)
	}
	if got := cfg.SourcePattern(); got != filepath.Join("src", "*.java") {
		t.Errorf("unexpected source pattern: %s", got)
	}
}
