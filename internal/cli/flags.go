package cli

import "cotb/internal/config"

// Flags holds command-line flags
type Flags struct {
	DesignFile    string
	SimCommand    string
	ResultsFile   string
	ResolveX      string
	Testcase      string
	GpiExtra      string
	RandomSeed    int64
	RandomSeedSet bool
	Coverage      bool
	NoShortLog    bool
	Prefix        string
	Verbose       bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	cf := config.Flags{
		DesignFile:  f.DesignFile,
		SimCommand:  f.SimCommand,
		ResultsFile: f.ResultsFile,
		ResolveX:    f.ResolveX,
		Testcase:    f.Testcase,
		GpiExtra:    f.GpiExtra,
		Coverage:    f.Coverage,
		NoShortLog:  f.NoShortLog,
		Prefix:      f.Prefix,
		Verbose:     f.Verbose,
	}
	if f.RandomSeedSet {
		seed := f.RandomSeed
		cf.RandomSeed = &seed
	}
	return cf
}
