package domain

import "time"

// RunResult represents the outcome of one simulator invocation
type RunResult struct {
	Command  string        // Command line that was executed
	Success  bool          // Whether the process exited cleanly
	Output   string        // Combined stdout/stderr
	Error    error         // Error if the invocation itself failed
	Duration time.Duration // Wall-clock time of the run
}

// FlowResultMeta contains metadata about one flow run
type FlowResultMeta struct {
	Tests           int     `json:"tests"`
	Errors          int     `json:"errors"`
	Failures        int     `json:"failures"`
	Skipped         int     `json:"skipped"`
	Time            float64 `json:"time"` // simulator-reported seconds, summed over suites
	Success         bool    `json:"success"`
	SimCommand      string  `json:"sim_command,omitempty"`
	Duration        string  `json:"duration,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	Timestamp       string  `json:"timestamp"`
}

// FlowResultOutput is the complete persisted record of a flow run
type FlowResultOutput struct {
	Meta     FlowResultMeta `json:"meta"`
	Delta    map[string]any `json:"delta"`
	Failures []TestCase     `json:"failures"`
}
