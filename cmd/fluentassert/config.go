package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"digital.vasic.fluentassertions/pkg/config"
	"digital.vasic.fluentassertions/pkg/env"
)

func newConfigCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved options as YAML",
		Long: `Print the options assertions would use: built-in defaults,
overlaid with the file named by FLUENT_CONFIG and FLUENT_* variables.
A .env file can supply variables not set in the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := env.NewLoader()
			if envFile != "" {
				if err := loader.Load(envFile); err != nil {
					return err
				}
			}

			c, err := config.Load(loader)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(c)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Load variables from a .env file")

	return cmd
}
