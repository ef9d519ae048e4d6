package cocotb

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cotb/internal/config"
	"cotb/internal/design"
)

// Resolver derives the environment-variable table a cocotb harness needs
// from design metadata and flow settings
type Resolver struct {
	config *config.Config
	log    *zap.Logger
}

// NewResolver creates a new Resolver
func NewResolver(cfg *config.Config, log *zap.Logger) *Resolver {
	return &Resolver{config: cfg, log: log}
}

// Resolve computes the harness environment for the given design. Returns an
// empty table when the design does not request cocotb. Fails with a
// ConfigurationError when cocotb is requested but the testbench has no
// sources, or when no toplevel can be resolved.
func (r *Resolver) Resolve(d *design.Design) (map[string]string, error) {
	env := map[string]string{}
	if d.TB.Cocotb == nil {
		return env, nil
	}
	if len(d.TB.Sources) == 0 {
		return nil, newConfigurationError(d.Name, "'tb.cocotb' is set, but 'tb.sources' is empty")
	}

	toplevel, err := r.resolveToplevel(d)
	if err != nil {
		return nil, err
	}

	// The harness imports the last cocotb source as the test module when no
	// module is given explicitly
	var topSource string
	if cocotbSources := d.TB.SourcesOfType(design.SourceCocotb); len(cocotbSources) > 0 {
		topSource = cocotbSources[len(cocotbSources)-1].File
	}

	var pyPath []string
	if current := os.Getenv("PYTHONPATH"); current != "" {
		pyPath = strings.Split(current, string(os.PathListSeparator))
	}

	var module string
	if d.TB.Cocotb.Module != "" {
		parts := strings.Split(d.TB.Cocotb.Module, "/")
		module = parts[len(parts)-1]
		moduleDir := d.RootPath
		if len(parts) > 1 {
			moduleDir = strings.Join(parts[:len(parts)-1], string(os.PathSeparator))
			if !filepath.IsAbs(moduleDir) {
				moduleDir = filepath.Join(d.RootPath, moduleDir)
			}
		}
		pyPath = append(pyPath, moduleDir)
	} else if topSource != "" {
		base := filepath.Base(topSource)
		module = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if topSource != "" {
		pyPath = append(pyPath, filepath.Dir(topSource))
	}

	settings := r.config.Cocotb
	env["MODULE"] = module
	env["TOPLEVEL"] = toplevel
	env["COCOTB_REDUCED_LOG_FMT"] = boolToEnv(settings.ReducedLogFmt)
	env["PYTHONPATH"] = strings.Join(pyPath, string(os.PathListSeparator))
	env["COCOTB_RESULTS_FILE"] = settings.ResultsFile
	env["COCOTB_RESOLVE_X"] = string(settings.ResolveX)

	if settings.Coverage {
		env["COVERAGE"] = "1"
	}
	testcases := settings.Testcase
	if len(testcases) == 0 {
		testcases = d.TB.Cocotb.Testcase
	}
	if len(testcases) > 0 {
		env["TESTCASE"] = strings.Join(testcases, ",")
	}
	if settings.RandomSeed != nil {
		env["RANDOM_SEED"] = strconv.FormatInt(*settings.RandomSeed, 10)
	}
	if len(settings.GpiExtra) > 0 {
		env["GPI_EXTRA"] = strings.Join(settings.GpiExtra, ",")
	}

	r.log.Debug("cocotb environment derived",
		zap.String("design", d.Name),
		zap.Any("env", env),
	)
	return env, nil
}

// resolveToplevel prefers the explicit cocotb toplevel, then the first
// testbench top, then falls back to the RTL top (recording it in tb.top)
func (r *Resolver) resolveToplevel(d *design.Design) (string, error) {
	if d.TB.Cocotb.Toplevel != "" {
		return d.TB.Cocotb.Toplevel, nil
	}
	if len(d.TB.Top) > 0 {
		return d.TB.Top[0], nil
	}
	if d.RTL.Top != "" {
		d.TB.Top = design.StringList{d.RTL.Top}
		return d.RTL.Top, nil
	}
	return "", newConfigurationError(d.Name, "either 'tb.top' or 'rtl.top' must be specified")
}

func boolToEnv(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
