// version.go implements the 'picoprime version' command.
package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/peardox/pico-prime/prime"
)

// atLeast is the --at-least flag: a minimum semver the runtime must
// satisfy. Scripts that parse report lines pin the format with it.
var atLeast string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Version prints the benchmark runtime version and algorithm.

With --at-least, the command fails when the runtime is older than the
given semver, so wrapper scripts can refuse to run against an output
format they do not understand:

  picoprime version --at-least 1.0.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := prime.GetInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "picoprime version %s (%s, %d primes per trial)\n",
			info.Version, info.Algorithm, info.Capacity)

		if atLeast == "" {
			return nil
		}
		ok, err := prime.AtLeast(atLeast)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Errorf("picoprime %s is older than required %s", prime.Version, atLeast)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVar(&atLeast, "at-least", "", "fail unless the runtime is at least this semver")
	rootCmd.AddCommand(versionCmd)
}
