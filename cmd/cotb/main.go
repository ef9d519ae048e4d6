package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"cotb/internal/cli"
	"cotb/internal/cli/commands"
	"cotb/internal/config"
	"cotb/internal/logging"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	log, level := logging.New()
	defer log.Sync()

	// Create initial config with defaults, then .env/environment overrides
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create root command
	rootCmd := &cobra.Command{
		Use:     "cotb",
		Short:   "Cocotb co-simulation flow launcher",
		Long:    `Derive the environment a cocotb test harness needs from a declarative design description, launch the simulator with it, and aggregate the xUnit results file into a pass/fail verdict.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.Verbose {
				level.SetLevel(zap.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, log)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
