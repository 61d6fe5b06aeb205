package cli

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var version = "0.1.0"

var log = commonlog.GetLogger("gasopt.cli")

// NewRootCommand creates the gasopt command tree.
func NewRootCommand() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "gasopt",
		Short: "Detect gas optimization opportunities in Solidity code",
		Long: `gasopt is a static analyzer for Solidity contracts. It walks each
contract once and reports storage reads inside loops, public functions that
could be external, state variables that waste storage slots and string revert
messages that could be custom errors.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newRulesCmd())
	return cmd
}
