package ui

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"cotb/internal/config"
	"cotb/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintEnv displays the derived environment table, sorted by key
func (f *Formatter) PrintEnv(env map[string]string) {
	if len(env) == 0 {
		color.Yellow("cocotb is not requested by this design; environment is empty")
		return
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		color.New(color.FgCyan).Printf("%s", k)
		fmt.Printf("=%s\n", env[k])
	}
}

// PrintSummary displays the aggregated flow result as a table followed by a
// verdict line and the failed cases, if any
func (f *Formatter) PrintSummary(meta domain.FlowResultMeta, failures []domain.TestCase) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Cocotb Test Results                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")
	printRow("Tests", color.New(color.FgWhite), "%d", meta.Tests)
	printDivider()
	printRow("Errors", countColor(meta.Errors), "%d", meta.Errors)
	printDivider()
	printRow("Failures", countColor(meta.Failures), "%d", meta.Failures)
	printDivider()
	printRow("Skipped", color.New(color.FgYellow), "%d", meta.Skipped)
	printDivider()
	printRow("Sim Time", color.New(color.FgWhite), "%.3fs", meta.Time)
	if meta.Duration != "" {
		printDivider()
		printRow("Duration", color.New(color.FgWhite), "%s", meta.Duration)
	}
	printDivider()
	printRow("Timestamp", color.New(color.FgWhite), "%s", meta.Timestamp)
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Success {
		color.Green("✓ All tests passed!")
		return
	}
	if meta.Tests == 0 {
		color.Red("✗ No tests were discovered")
		return
	}
	color.Red("✗ %d error(s), %d failure(s)", meta.Errors, meta.Failures)
	for _, tc := range failures {
		name := tc.Name
		if tc.Classname != "" {
			name = tc.Classname + "." + tc.Name
		}
		fmt.Print("  ")
		color.New(color.FgRed).Printf("%s: %s", tc.Result, name)
		if tc.Message != "" {
			fmt.Printf(": %s", tc.Message)
		}
		fmt.Println()
	}
}

func printRow(label string, c *color.Color, format string, value any) {
	fmt.Printf("│ %-31s │ ", label)
	c.Printf("%-27s", fmt.Sprintf(format, value))
	fmt.Println(" │")
}

func printDivider() {
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
}

func countColor(n int) *color.Color {
	if n > 0 {
		return color.New(color.FgRed)
	}
	return color.New(color.FgGreen)
}
