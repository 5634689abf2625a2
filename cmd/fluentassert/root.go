package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fluentassert",
		Short: "Inspect fluent assertion failure rendering",
		Long: `fluentassert renders string comparisons the way the assertion
library reports them, and prints the options resolved from
FLUENT_* variables and the FLUENT_CONFIG file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDiffCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fluentassert version %s\n", version)
		},
	})

	return root
}
