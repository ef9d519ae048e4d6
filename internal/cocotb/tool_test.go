package cocotb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	outputs map[string]string
	calls   map[string]int
}

func newFakeRunner(outputs map[string]string) *fakeRunner {
	return &fakeRunner{outputs: outputs, calls: map[string]int{}}
}

func (f *fakeRunner) Output(name string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls[key]++
	out, ok := f.outputs[key]
	if !ok {
		return "", fmt.Errorf("unexpected invocation: %s %s", name, key)
	}
	return out, nil
}

func TestTool_VersionGTE(t *testing.T) {
	runner := newFakeRunner(map[string]string{"--version": "1.6.2"})
	tool := NewToolWithRunner("icarus", runner)

	tests := []struct {
		major, minor int
		expected     bool
	}{
		{1, 6, true},
		{1, 7, false},
		{1, 5, true},
		{0, 9, true},
		{2, 0, false},
	}
	for _, tt := range tests {
		got, err := tool.VersionGTE(tt.major, tt.minor)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "version_gte(%d, %d)", tt.major, tt.minor)
	}

	// version is queried once and memoized
	assert.Equal(t, 1, runner.calls["--version"])
}

func TestTool_Version_Malformed(t *testing.T) {
	tool := NewToolWithRunner("icarus", newFakeRunner(map[string]string{"--version": "garbage"}))
	_, _, err := tool.Version()
	assert.Error(t, err)
}

func TestTool_CachedQueries(t *testing.T) {
	runner := newFakeRunner(map[string]string{
		"--prefix": "/opt/cocotb",
		"--share":  "/opt/cocotb/share",
	})
	tool := NewToolWithRunner("icarus", runner)

	for i := 0; i < 3; i++ {
		prefix, err := tool.Prefix()
		require.NoError(t, err)
		assert.Equal(t, "/opt/cocotb", prefix)
	}
	share, err := tool.ShareDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/cocotb/share", share)

	assert.Equal(t, 1, runner.calls["--prefix"])
	assert.Equal(t, 1, runner.calls["--share"])
}

func TestTool_LibDir(t *testing.T) {
	t.Run("modern version asks the tool", func(t *testing.T) {
		runner := newFakeRunner(map[string]string{
			"--version": "1.7.0",
			"--lib-dir": "/opt/cocotb/libs",
		})
		tool := NewToolWithRunner("icarus", runner)
		dir, err := tool.LibDir()
		require.NoError(t, err)
		assert.Equal(t, "/opt/cocotb/libs", dir)
	})

	t.Run("pre-1.6 falls back to prefix layout", func(t *testing.T) {
		runner := newFakeRunner(map[string]string{
			"--version": "1.5.2",
			"--prefix":  "/opt/cocotb",
		})
		tool := NewToolWithRunner("icarus", runner)
		dir, err := tool.LibDir()
		require.NoError(t, err)
		assert.Equal(t, "/opt/cocotb/cocotb/libs", dir)
		assert.Equal(t, 0, runner.calls["--lib-dir"])
	})
}

func TestTool_VPIPath(t *testing.T) {
	t.Run("modern version asks the tool", func(t *testing.T) {
		runner := newFakeRunner(map[string]string{
			"--version":                  "1.6.0",
			"--lib-name-path vpi icarus": "/opt/cocotb/libs/libcocotbvpi_icarus.so",
		})
		tool := NewToolWithRunner("icarus", runner)
		path, err := tool.VPIPath()
		require.NoError(t, err)
		assert.Equal(t, "/opt/cocotb/libs/libcocotbvpi_icarus.so", path)
	})

	t.Run("pre-1.6 falls back to prefix layout", func(t *testing.T) {
		runner := newFakeRunner(map[string]string{
			"--version": "1.4.0",
			"--prefix":  "/opt/cocotb",
		})
		tool := NewToolWithRunner("ghdl", runner)
		path, err := tool.VPIPath()
		require.NoError(t, err)
		assert.Equal(t, "/opt/cocotb/cocotb/libs/libcocotbvpi_ghdl.so", path)
	})
}

func TestTool_LibName(t *testing.T) {
	runner := newFakeRunner(map[string]string{
		"--lib_name vpi icarus": "libcocotbvpi_icarus",
	})
	tool := NewToolWithRunner("icarus", runner)
	name, err := tool.VPILibName()
	require.NoError(t, err)
	assert.Equal(t, "libcocotbvpi_icarus", name)
}
