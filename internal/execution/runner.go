package execution

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"cotb/internal/config"
	"cotb/internal/domain"
)

// Runner executes the simulation harness once per flow invocation
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the configured simulator command in dir with the derived
// environment appended to the current process environment
func (r *Runner) Run(ctx context.Context, dir string, env map[string]string) domain.RunResult {
	fields := strings.Fields(r.config.SimCommand)
	if len(fields) == 0 {
		return domain.RunResult{Error: fmt.Errorf("empty simulator command")}
	}
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = dir

	cmd.Env = os.Environ()
	for _, key := range sortedKeys(env) {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, env[key]))
	}

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.RunResult{
		Command:  r.config.SimCommand,
		Success:  err == nil,
		Output:   string(output),
		Error:    err,
		Duration: time.Since(start),
	}
}

func sortedKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
