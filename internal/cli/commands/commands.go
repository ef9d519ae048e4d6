package commands

import (
	"go.uber.org/zap"

	"cotb/internal/cli"
	"cotb/internal/cocotb"
	"cotb/internal/config"
	"cotb/internal/execution"
	"cotb/internal/storage"
	"cotb/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Env      *EnvCommand
	Results  *ResultsCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *zap.Logger) *Commands {
	resolver := cocotb.NewResolver(cfg, log)
	runner := execution.NewRunner(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, log, resolver, runner, jsonStorage, formatter),
		Env:      NewEnvCommand(cfg, resolver, formatter),
		Results:  NewResultsCommand(cfg, log, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		flags.RandomSeedSet = cmd.Flags().Changed("random-seed")
		return cfg.Apply(flags.ToConfigFlags())
	}

	addHarnessFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&flags.DesignFile, "design", "d", "", "Path to the design description file")
		cmd.Flags().StringVarP(&flags.ResultsFile, "results-file", "r", "", "xUnit results file the harness writes")
		cmd.Flags().StringVar(&flags.ResolveX, "resolve-x", "", "How to resolve X/Z/U/W bits (VALUE_ERROR, ZEROS, ONES, RANDOM)")
		cmd.Flags().StringVarP(&flags.Testcase, "testcase", "t", "", "Comma-separated list of test cases to run")
		cmd.Flags().StringVar(&flags.GpiExtra, "gpi-extra", "", "Comma-separated list of extra GPI libraries to load")
		cmd.Flags().Int64Var(&flags.RandomSeed, "random-seed", 0, "Seed the harness RNG to recreate a previous test stimulus")
		cmd.Flags().BoolVar(&flags.Coverage, "coverage", false, "Collect coverage data if supported by the simulation tool")
		cmd.Flags().BoolVar(&flags.NoShortLog, "no-short-log", false, "Disable the reduced harness log format")
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the cocotb test harness",
		Long:    "Derive the harness environment from the design description, launch the simulator, and aggregate the results file into a pass/fail verdict",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	addHarnessFlags(runCmd)
	runCmd.Flags().StringVarP(&flags.SimCommand, "sim-command", "s", "", "Command that launches the simulator")
	runCmd.Flags().StringVar(&flags.Prefix, "prefix", "", "Key prefix for the flow-result delta")
	rootCmd.AddCommand(runCmd)

	// Env command
	envCmd := &cobra.Command{
		Use:     "env",
		Short:   "Print the derived harness environment",
		Long:    "Derive and print the environment-variable table the harness would be launched with, without running anything",
		RunE:    c.Env.Execute,
		PreRunE: applyFlags,
	}
	addHarnessFlags(envCmd)
	rootCmd.AddCommand(envCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:     "results",
		Short:   "Aggregate an existing results file",
		Long:    "Parse an xUnit results file into summary statistics and a pass/fail verdict without running the simulator",
		RunE:    c.Results.Execute,
		PreRunE: applyFlags,
	}
	resultsCmd.Flags().StringVarP(&flags.ResultsFile, "results-file", "r", "", "xUnit results file to aggregate")
	resultsCmd.Flags().StringVar(&flags.Prefix, "prefix", "", "Key prefix for the flow-result delta")
	rootCmd.AddCommand(resultsCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display failed test cases from the last flow run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
