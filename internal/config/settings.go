package config

import "strings"

// ResolveX selects how X/Z/U/W bits are resolved when converted to integer
type ResolveX string

// Valid ResolveX values
const (
	ResolveXValueError ResolveX = "VALUE_ERROR"
	ResolveXZeros      ResolveX = "ZEROS"
	ResolveXOnes       ResolveX = "ONES"
	ResolveXRandom     ResolveX = "RANDOM"
)

// Valid reports whether r is one of the accepted resolution modes
func (r ResolveX) Valid() bool {
	switch r {
	case ResolveXValueError, ResolveXZeros, ResolveXOnes, ResolveXRandom:
		return true
	}
	return false
}

// CocotbSettings holds the harness-facing settings of a flow run.
// List-typed fields are always stored normalized (see NormalizeList);
// no downstream code has to branch on comma-string vs list input.
type CocotbSettings struct {
	// Coverage collects coverage data if supported by the simulation tool
	Coverage bool
	// ReducedLogFmt displays shorter log lines in the terminal
	ReducedLogFmt bool
	// ResultsFile is the xUnit-compatible result file the harness writes
	ResultsFile string
	// ResolveX selects how X/Z/U/W bits are resolved
	ResolveX ResolveX
	// Testcase lists the test cases to run (empty means all)
	Testcase []string
	// RandomSeed seeds the harness RNG to recreate a previous stimulus
	RandomSeed *int64
	// GpiExtra lists extra libraries loaded dynamically at runtime
	GpiExtra []string
}

// NewCocotbSettings returns settings with harness defaults applied
func NewCocotbSettings() CocotbSettings {
	return CocotbSettings{
		ReducedLogFmt: true,
		ResultsFile:   DefaultResultsFile,
		ResolveX:      ResolveXValueError,
	}
}

// NormalizeList canonicalizes a list-typed setting: entries containing commas
// are split, all entries are trimmed, empties dropped. Idempotent.
func NormalizeList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// SplitList normalizes a single comma-separated string into a list
func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	return NormalizeList([]string{value})
}
