package discovery

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gtr/internal/config"
	"gtr/internal/domain"
)

// Enumerator lists test fixtures from the input directory
type Enumerator struct {
	config *config.Config
}

// NewEnumerator creates a new Enumerator
func NewEnumerator(cfg *config.Config) *Enumerator {
	return &Enumerator{config: cfg}
}

// Enumerate returns the test cases matching the optional type filter, sorted
// lexicographically by filename so repeated runs report in a stable order.
// Zero matches is a valid outcome, not an error.
func (e *Enumerator) Enumerate(typeFilter string) ([]domain.TestCase, error) {
	inputs, err := filepath.Glob(e.config.InputPattern(typeFilter))
	if err != nil {
		return nil, fmt.Errorf("listing fixtures: %w", err)
	}
	sort.Strings(inputs)

	cases := make([]domain.TestCase, 0, len(inputs))
	for _, input := range inputs {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		cases = append(cases, domain.TestCase{
			Name:         base,
			InputFile:    input,
			ExpectedFile: e.config.ExpectedFor(base),
			ActualFile:   e.config.ActualFor(base),
		})
	}

	return cases, nil
}
