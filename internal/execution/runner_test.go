package execution

import (
	"context"
	"strings"
	"testing"

	"cotb/internal/config"
)

func TestRunner_Run(t *testing.T) {
	t.Run("passes derived environment to the command", func(t *testing.T) {
		cfg := config.New()
		cfg.SimCommand = "env"
		runner := NewRunner(cfg)

		result := runner.Run(context.Background(), t.TempDir(), map[string]string{
			"MODULE":   "test_adder",
			"TOPLEVEL": "adder",
		})
		if !result.Success {
			t.Fatalf("expected success, got error: %v", result.Error)
		}
		if !strings.Contains(result.Output, "MODULE=test_adder") {
			t.Errorf("derived env missing from command environment:\n%s", result.Output)
		}
		if !strings.Contains(result.Output, "TOPLEVEL=adder") {
			t.Errorf("derived env missing from command environment:\n%s", result.Output)
		}
	})

	t.Run("failing command", func(t *testing.T) {
		cfg := config.New()
		cfg.SimCommand = "false"
		runner := NewRunner(cfg)

		result := runner.Run(context.Background(), t.TempDir(), nil)
		if result.Success {
			t.Error("expected failure")
		}
		if result.Error == nil {
			t.Error("expected an error")
		}
	})

	t.Run("empty command", func(t *testing.T) {
		cfg := config.New()
		cfg.SimCommand = "   "
		runner := NewRunner(cfg)

		result := runner.Run(context.Background(), t.TempDir(), nil)
		if result.Success || result.Error == nil {
			t.Error("expected an error for empty simulator command")
		}
	})
}
