package compare

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffPlaceholder is shown when diff generation itself fails; a broken diff
// must never abort the run or change the test's status.
const diffPlaceholder = "Could not generate diff"

// maxDiffLines bounds the diff attached to a result
const maxDiffLines = 20

// Equal reports whether two files have byte-identical contents. The files
// are streamed in chunks rather than slurped, so large outputs compare
// without holding both in memory.
func Equal(pathA, pathB string) (bool, error) {
	fa, err := os.Open(pathA)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", pathA, err)
	}
	defer fa.Close()

	fb, err := os.Open(pathB)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", pathB, err)
	}
	defer fb.Close()

	bufA := make([]byte, 64*1024)
	bufB := make([]byte, 64*1024)
	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			if errB == io.EOF || errB == io.ErrUnexpectedEOF {
				return na == nb, nil
			}
			return false, nil
		}
		if errA != nil {
			return false, fmt.Errorf("read %s: %w", pathA, errA)
		}
		if errB != nil {
			if errB == io.EOF || errB == io.ErrUnexpectedEOF {
				return false, nil
			}
			return false, fmt.Errorf("read %s: %w", pathB, errB)
		}
	}
}

// UnifiedDiff returns a line-oriented unified diff between the expected and
// actual files with 3 lines of context, truncated to the first 20 lines.
// Any failure degrades to a placeholder message.
func UnifiedDiff(expectedPath, actualPath string) string {
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return diffPlaceholder
	}
	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return diffPlaceholder
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(expected)),
		B:        difflib.SplitLines(string(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return diffPlaceholder
	}

	lines := strings.SplitAfter(text, "\n")
	if len(lines) > maxDiffLines {
		lines = lines[:maxDiffLines]
	}
	return strings.Join(lines, "")
}
