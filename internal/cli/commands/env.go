package commands

import (
	"github.com/spf13/cobra"

	"cotb/internal/cocotb"
	"cotb/internal/config"
	"cotb/internal/design"
	"cotb/internal/ui"
)

// EnvCommand handles the env command
type EnvCommand struct {
	config    *config.Config
	resolver  *cocotb.Resolver
	formatter *ui.Formatter
}

// NewEnvCommand creates a new EnvCommand
func NewEnvCommand(cfg *config.Config, resolver *cocotb.Resolver, formatter *ui.Formatter) *EnvCommand {
	return &EnvCommand{
		config:    cfg,
		resolver:  resolver,
		formatter: formatter,
	}
}

// Execute runs the command
func (ec *EnvCommand) Execute(cmd *cobra.Command, args []string) error {
	d, err := design.Load(ec.config.DesignFile)
	if err != nil {
		return err
	}

	env, err := ec.resolver.Resolve(d)
	if err != nil {
		return err
	}

	ec.formatter.PrintEnv(env)
	return nil
}
