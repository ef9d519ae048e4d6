package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cotb/internal/cocotb"
	"cotb/internal/config"
	"cotb/internal/design"
	"cotb/internal/domain"
	"cotb/internal/execution"
	"cotb/internal/report"
	"cotb/internal/storage"
	"cotb/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	log       *zap.Logger
	resolver  *cocotb.Resolver
	runner    *execution.Runner
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	log *zap.Logger,
	resolver *cocotb.Resolver,
	runner *execution.Runner,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		log:       log,
		resolver:  resolver,
		runner:    runner,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	d, err := design.Load(rc.config.DesignFile)
	if err != nil {
		return err
	}

	env, err := rc.resolver.Resolve(d)
	if err != nil {
		return err
	}

	spinner := ui.NewSpinner(fmt.Sprintf("Running %s: ", rc.config.SimCommand))
	spinner.Start()
	result := rc.runner.Run(cmd.Context(), d.RootPath, env)
	spinner.Stop()

	if result.Error != nil {
		// The results file still decides the verdict; surface the output so
		// a crashed simulator is not silent
		rc.log.Error("simulator exited with an error",
			zap.String("command", result.Command),
			zap.Error(result.Error),
		)
		fmt.Print(result.Output)
	}

	results := report.NewResults(rc.config.GetResultsPath(d.RootPath), rc.log)
	delta, success, err := results.Summarize(rc.config.ResultPrefix)
	if err != nil {
		return err
	}
	rep, err := results.Report()
	if err != nil {
		return err
	}
	cases, err := results.TestCases()
	if err != nil {
		return err
	}
	var failures []domain.TestCase
	for _, tc := range cases {
		if tc.Failed() {
			failures = append(failures, tc)
		}
	}

	output := &domain.FlowResultOutput{
		Meta: domain.FlowResultMeta{
			Tests:           rep.Tests(),
			Errors:          rep.Errors(),
			Failures:        rep.Failures(),
			Skipped:         rep.Skipped(),
			Time:            rep.Time(),
			Success:         success,
			SimCommand:      result.Command,
			Duration:        result.Duration.String(),
			DurationSeconds: result.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Delta:    delta,
		Failures: failures,
	}
	if err := rc.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save flow results: %w", err)
	}

	rc.formatter.PrintSummary(output.Meta, failures)
	if !success {
		return fmt.Errorf("cocotb run failed for design %s", d.Name)
	}
	color.Green("Flow results saved to %s", rc.config.GetOutputPath())
	return nil
}
