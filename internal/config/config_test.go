package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "comma-separated entry with spaces",
			input:    []string{"a, b,c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "already normalized list",
			input:    []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "mixed entries",
			input:    []string{"a,b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty entries dropped",
			input:    []string{"", "a,, b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeList(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		once := NormalizeList([]string{"a, b,c"})
		twice := NormalizeList(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalization not idempotent: %v vs %v", once, twice)
		}
	})
}

func TestSplitList(t *testing.T) {
	if got := SplitList(""); got != nil {
		t.Errorf("expected nil for empty string, got %v", got)
	}
	expected := []string{"a", "b", "c"}
	if got := SplitList("a, b,c"); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.DesignFile != DefaultDesignFile {
		t.Errorf("expected DesignFile %s, got %s", DefaultDesignFile, cfg.DesignFile)
	}
	if cfg.SimCommand != DefaultSimCommand {
		t.Errorf("expected SimCommand %s, got %s", DefaultSimCommand, cfg.SimCommand)
	}
	if cfg.ResultPrefix != DefaultResultPrefix {
		t.Errorf("expected ResultPrefix %s, got %s", DefaultResultPrefix, cfg.ResultPrefix)
	}
	if cfg.Cocotb.ResultsFile != DefaultResultsFile {
		t.Errorf("expected ResultsFile %s, got %s", DefaultResultsFile, cfg.Cocotb.ResultsFile)
	}
	if cfg.Cocotb.ResolveX != ResolveXValueError {
		t.Errorf("expected ResolveX %s, got %s", ResolveXValueError, cfg.Cocotb.ResolveX)
	}
	if !cfg.Cocotb.ReducedLogFmt {
		t.Error("expected ReducedLogFmt to default to true")
	}
}

func TestConfig_Apply(t *testing.T) {
	t.Run("flag overrides", func(t *testing.T) {
		cfg := New()
		seed := int64(42)
		err := cfg.Apply(Flags{
			DesignFile:  "other.yaml",
			SimCommand:  "make SIM=icarus",
			ResultsFile: "out.xml",
			ResolveX:    "ZEROS",
			Testcase:    "test_a, test_b",
			GpiExtra:    "liba,libb",
			RandomSeed:  &seed,
			Coverage:    true,
			NoShortLog:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.DesignFile != "other.yaml" {
			t.Errorf("expected other.yaml, got %s", cfg.DesignFile)
		}
		if cfg.SimCommand != "make SIM=icarus" {
			t.Errorf("unexpected sim command: %s", cfg.SimCommand)
		}
		if cfg.Cocotb.ResolveX != ResolveXZeros {
			t.Errorf("expected ZEROS, got %s", cfg.Cocotb.ResolveX)
		}
		if !reflect.DeepEqual(cfg.Cocotb.Testcase, []string{"test_a", "test_b"}) {
			t.Errorf("unexpected testcase list: %v", cfg.Cocotb.Testcase)
		}
		if !reflect.DeepEqual(cfg.Cocotb.GpiExtra, []string{"liba", "libb"}) {
			t.Errorf("unexpected gpi list: %v", cfg.Cocotb.GpiExtra)
		}
		if cfg.Cocotb.RandomSeed == nil || *cfg.Cocotb.RandomSeed != 42 {
			t.Errorf("unexpected random seed: %v", cfg.Cocotb.RandomSeed)
		}
		if !cfg.Cocotb.Coverage {
			t.Error("expected coverage enabled")
		}
		if cfg.Cocotb.ReducedLogFmt {
			t.Error("expected reduced log format disabled")
		}
	})

	t.Run("invalid resolve-x", func(t *testing.T) {
		cfg := New()
		if err := cfg.Apply(Flags{ResolveX: "MAYBE"}); err == nil {
			t.Error("expected error for invalid resolve-x value")
		}
	})

	t.Run("empty flags keep defaults", func(t *testing.T) {
		cfg := New()
		if err := cfg.Apply(Flags{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DesignFile != DefaultDesignFile {
			t.Errorf("expected default design file, got %s", cfg.DesignFile)
		}
		if cfg.Cocotb.RandomSeed != nil {
			t.Errorf("expected nil random seed, got %v", cfg.Cocotb.RandomSeed)
		}
	})
}

func TestConfig_GetResultsPath(t *testing.T) {
	cfg := New()

	t.Run("relative path resolves against run dir", func(t *testing.T) {
		cfg.Cocotb.ResultsFile = "results.xml"
		expected := filepath.Join("/designs/adder", "results.xml")
		if got := cfg.GetResultsPath("/designs/adder"); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})

	t.Run("absolute path kept", func(t *testing.T) {
		cfg.Cocotb.ResultsFile = "/tmp/results.xml"
		if got := cfg.GetResultsPath("/designs/adder"); got != "/tmp/results.xml" {
			t.Errorf("expected /tmp/results.xml, got %s", got)
		}
	})
}

func TestConfig_LoadEnv(t *testing.T) {
	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(EnvSimCommand, "vvp sim.vvp")
		t.Setenv(EnvResultsFile, "report.xml")
		t.Setenv(EnvResolveX, "RANDOM")

		cfg := New()
		cfg.LoadEnv()

		if cfg.SimCommand != "vvp sim.vvp" {
			t.Errorf("unexpected sim command: %s", cfg.SimCommand)
		}
		if cfg.Cocotb.ResultsFile != "report.xml" {
			t.Errorf("unexpected results file: %s", cfg.Cocotb.ResultsFile)
		}
		if cfg.Cocotb.ResolveX != ResolveXRandom {
			t.Errorf("unexpected resolve-x: %s", cfg.Cocotb.ResolveX)
		}
	})

	t.Run("invalid resolve-x ignored", func(t *testing.T) {
		t.Setenv(EnvResolveX, "NOPE")
		cfg := New()
		cfg.LoadEnv()
		if cfg.Cocotb.ResolveX != ResolveXValueError {
			t.Errorf("expected default resolve-x, got %s", cfg.Cocotb.ResolveX)
		}
	})
}
