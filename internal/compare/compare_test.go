package compare

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestEqual(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name     string
		contentA string
		contentB string
		equal    bool
	}{
		{"identical", "42\n", "42\n", true},
		{"empty files", "", "", true},
		{"single differing byte", "42\n", "43\n", false},
		{"trailing newline matters", "42\n", "42", false},
		{"prefix relationship", "abc", "abcdef", false},
		{"large identical", strings.Repeat("line\n", 100000), strings.Repeat("line\n", 100000), true},
		{"large with one byte flipped", strings.Repeat("line\n", 100000), strings.Repeat("line\n", 99999) + "lime\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := writeFile(t, tmp, "a.txt", tt.contentA)
			b := writeFile(t, tmp, "b.txt", tt.contentB)

			got, err := Equal(a, b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.equal {
				t.Errorf("expected equal=%v, got %v", tt.equal, got)
			}
		})
	}

	t.Run("missing file is an error", func(t *testing.T) {
		a := writeFile(t, tmp, "exists.txt", "x")
		if _, err := Equal(a, filepath.Join(tmp, "missing.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestUnifiedDiff(t *testing.T) {
	tmp := t.TempDir()

	t.Run("marks changed lines", func(t *testing.T) {
		expected := writeFile(t, tmp, "expected.txt", "42\n")
		actual := writeFile(t, tmp, "actual.txt", "43\n")

		diff := UnifiedDiff(expected, actual)
		if diff == "" || diff == diffPlaceholder {
			t.Fatalf("expected a diff, got %q", diff)
		}
		if !strings.Contains(diff, "-42") || !strings.Contains(diff, "+43") {
			t.Errorf("diff missing markers:\n%s", diff)
		}
		if !strings.Contains(diff, "expected") || !strings.Contains(diff, "actual") {
			t.Errorf("diff missing file labels:\n%s", diff)
		}
	})

	t.Run("truncated to twenty lines", func(t *testing.T) {
		var a, b strings.Builder
		for i := 0; i < 100; i++ {
			a.WriteString("same line\n")
			b.WriteString("different line\n")
		}
		expected := writeFile(t, tmp, "long_expected.txt", a.String())
		actual := writeFile(t, tmp, "long_actual.txt", b.String())

		diff := UnifiedDiff(expected, actual)
		lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
		if len(lines) > maxDiffLines {
			t.Errorf("expected at most %d lines, got %d", maxDiffLines, len(lines))
		}
	})

	t.Run("degrades to placeholder on unreadable input", func(t *testing.T) {
		expected := writeFile(t, tmp, "only.txt", "42\n")
		diff := UnifiedDiff(expected, filepath.Join(tmp, "nope.txt"))
		if diff != diffPlaceholder {
			t.Errorf("expected placeholder, got %q", diff)
		}
	})
}
