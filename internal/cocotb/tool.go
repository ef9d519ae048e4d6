package cocotb

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// CommandRunner executes the tool binary and returns its trimmed stdout
type CommandRunner interface {
	Output(name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("run %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Tool wraps the cocotb-config executable. Query results are computed on
// first access and memoized; a Tool is not safe for concurrent use.
type Tool struct {
	Executable string
	SimName    string

	runner CommandRunner

	prefix   *string
	shareDir *string
	libDir   *string
	version  *[2]int
}

// NewTool creates a Tool for the given simulator name
func NewTool(simName string) *Tool {
	return &Tool{Executable: "cocotb-config", SimName: simName, runner: execRunner{}}
}

// NewToolWithRunner creates a Tool with a custom command runner
func NewToolWithRunner(simName string, runner CommandRunner) *Tool {
	return &Tool{Executable: "cocotb-config", SimName: simName, runner: runner}
}

// RunGetStdout runs the tool with the given arguments and returns stdout
func (t *Tool) RunGetStdout(args ...string) (string, error) {
	return t.runner.Output(t.Executable, args...)
}

// Version returns the installed cocotb major and minor version
func (t *Tool) Version() (major, minor int, err error) {
	if t.version == nil {
		out, err := t.RunGetStdout("--version")
		if err != nil {
			return 0, 0, err
		}
		parts := strings.SplitN(out, ".", 3)
		if len(parts) < 2 {
			return 0, 0, fmt.Errorf("unexpected version output: %q", out)
		}
		maj, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("parse version %q: %w", out, err)
		}
		min, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("parse version %q: %w", out, err)
		}
		t.version = &[2]int{maj, min}
	}
	return t.version[0], t.version[1], nil
}

// VersionGTE reports whether the installed version is at least major.minor
func (t *Tool) VersionGTE(major, minor int) (bool, error) {
	maj, min, err := t.Version()
	if err != nil {
		return false, err
	}
	if maj != major {
		return maj > major, nil
	}
	return min >= minor, nil
}

// Prefix returns the cocotb installation prefix
func (t *Tool) Prefix() (string, error) {
	return t.cached(&t.prefix, "--prefix")
}

// ShareDir returns the cocotb share directory
func (t *Tool) ShareDir() (string, error) {
	return t.cached(&t.shareDir, "--share")
}

// LibDir returns the directory holding the simulator interface libraries
func (t *Tool) LibDir() (string, error) {
	if t.libDir != nil {
		return *t.libDir, nil
	}
	gte, err := t.VersionGTE(1, 6)
	if err != nil {
		return "", err
	}
	var dir string
	if gte {
		dir, err = t.RunGetStdout("--lib-dir")
		if err != nil {
			return "", err
		}
	} else {
		prefix, err := t.Prefix()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(prefix, "cocotb", "libs")
	}
	t.libDir = &dir
	return dir, nil
}

// LibName returns the library name for a foreign interface and simulator
func (t *Tool) LibName(iface, simulator string) (string, error) {
	return t.RunGetStdout("--lib_name", iface, simulator)
}

// VPILibName returns the VPI library name for the configured simulator
func (t *Tool) VPILibName() (string, error) {
	return t.LibName("vpi", t.SimName)
}

// VPIPath returns the path of the VPI shared library for the configured
// simulator
func (t *Tool) VPIPath() (string, error) {
	gte, err := t.VersionGTE(1, 6)
	if err != nil {
		return "", err
	}
	if gte {
		return t.RunGetStdout("--lib-name-path", "vpi", t.SimName)
	}
	prefix, err := t.Prefix()
	if err != nil {
		return "", err
	}
	return filepath.Join(prefix, "cocotb", "libs", fmt.Sprintf("libcocotbvpi_%s.so", t.SimName)), nil
}

func (t *Tool) cached(cell **string, arg string) (string, error) {
	if *cell != nil {
		return **cell, nil
	}
	out, err := t.RunGetStdout(arg)
	if err != nil {
		return "", err
	}
	*cell = &out
	return out, nil
}
