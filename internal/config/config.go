package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Flow settings
	DesignFile string
	SimCommand string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	ResultPrefix   string

	// Harness settings
	Cocotb CocotbSettings

	// Command flags
	Flags Flags
}

// Flags holds command-line flags after parsing
type Flags struct {
	DesignFile  string
	SimCommand  string
	ResultsFile string
	ResolveX    string
	Testcase    string
	GpiExtra    string
	RandomSeed  *int64
	Coverage    bool
	NoShortLog  bool
	Prefix      string
	Verbose     bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		DesignFile:     DefaultDesignFile,
		SimCommand:     DefaultSimCommand,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		ResultPrefix:   DefaultResultPrefix,
		Cocotb:         NewCocotbSettings(),
	}
}

// LoadEnv applies overrides from the process environment, after loading a
// .env file from the working directory when one exists.
func (c *Config) LoadEnv() {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	if v := os.Getenv(EnvSimCommand); v != "" {
		c.SimCommand = v
	}
	if v := os.Getenv(EnvResultsFile); v != "" {
		c.Cocotb.ResultsFile = v
	}
	if v := os.Getenv(EnvResolveX); v != "" && ResolveX(v).Valid() {
		c.Cocotb.ResolveX = ResolveX(v)
	}
}

// Apply applies parsed command flags on top of env/default values
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags

	if flags.DesignFile != "" {
		c.DesignFile = flags.DesignFile
	}
	if flags.SimCommand != "" {
		c.SimCommand = flags.SimCommand
	}
	if flags.Prefix != "" {
		c.ResultPrefix = flags.Prefix
	}
	if flags.ResultsFile != "" {
		c.Cocotb.ResultsFile = flags.ResultsFile
	}
	if flags.ResolveX != "" {
		rx := ResolveX(flags.ResolveX)
		if !rx.Valid() {
			return fmt.Errorf("invalid resolve-x value: %s", flags.ResolveX)
		}
		c.Cocotb.ResolveX = rx
	}
	c.Cocotb.Coverage = flags.Coverage
	c.Cocotb.ReducedLogFmt = !flags.NoShortLog
	if flags.Testcase != "" {
		c.Cocotb.Testcase = SplitList(flags.Testcase)
	}
	if flags.GpiExtra != "" {
		c.Cocotb.GpiExtra = SplitList(flags.GpiExtra)
	}
	if flags.RandomSeed != nil {
		c.Cocotb.RandomSeed = flags.RandomSeed
	}
	return nil
}

// GetOutputPath returns the full path to the flow-result JSON file.
// Resolves to an absolute path so run and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetResultsPath returns the path of the results file the harness wrote,
// resolved against the given run directory when not absolute.
func (c *Config) GetResultsPath(runDir string) string {
	if filepath.IsAbs(c.Cocotb.ResultsFile) {
		return c.Cocotb.ResultsFile
	}
	return filepath.Join(runDir, c.Cocotb.ResultsFile)
}
