package cli

import "gtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	TypeFilter string
	Verbose    bool
	Benchmark  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TypeFilter: f.TypeFilter,
		Verbose:    f.Verbose,
		Benchmark:  f.Benchmark,
	}
}
