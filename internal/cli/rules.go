package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRules(cmd.OutOrStdout())
		},
	}
}

func printRules(w io.Writer) error {
	bold := color.New(color.FgWhite, color.Bold).SprintFunc()
	name := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if _, err := fmt.Fprintf(w, "%s\n\n", color.New(color.Bold).Sprint("📋 Available Rules:")); err != nil {
		return err
	}
	for _, e := range rules.Catalog() {
		tag := ""
		if !e.Default {
			tag = dim(" (opt-in)")
		}
		if _, err := fmt.Fprintf(w, "%s%s %s%s\n    %s\n\n",
			bold("  • "), name(e.Name), dim("["+issue.Type(e.Name).Code()+"]"), tag, dim(e.Description)); err != nil {
			return err
		}
	}
	return nil
}
