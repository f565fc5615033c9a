// config.go implements the 'picoprime config' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peardox/pico-prime/internal/prime/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves defaults, the optional config file, PICOPRIME_*
environment variables, and flags, and prints the result as YAML. The
output is itself a valid config file.

Unlike run and bench, config displays an invalid configuration instead
of refusing to load it; violations are logged as warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}

		doc, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), doc)

		if err := cfg.Validate(); err != nil {
			log.WithError(err).Warn("configuration does not validate")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
