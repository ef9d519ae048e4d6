package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cotb/internal/config"
	"cotb/internal/domain"
	"cotb/internal/report"
	"cotb/internal/ui"
)

// ResultsCommand handles the results command
type ResultsCommand struct {
	config    *config.Config
	log       *zap.Logger
	formatter *ui.Formatter
}

// NewResultsCommand creates a new ResultsCommand
func NewResultsCommand(cfg *config.Config, log *zap.Logger, formatter *ui.Formatter) *ResultsCommand {
	return &ResultsCommand{
		config:    cfg,
		log:       log,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ResultsCommand) Execute(cmd *cobra.Command, args []string) error {
	results := report.NewResults(rc.config.GetResultsPath("."), rc.log)
	_, success, err := results.Summarize(rc.config.ResultPrefix)
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

	meta := domain.FlowResultMeta{
		Tests:     rep.Tests(),
		Errors:    rep.Errors(),
		Failures:  rep.Failures(),
		Skipped:   rep.Skipped(),
		Time:      rep.Time(),
		Success:   success,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	rc.formatter.PrintSummary(meta, failures)
	if !success {
		return fmt.Errorf("results file reports failure")
	}
	return nil
}
