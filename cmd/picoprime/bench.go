// bench.go implements the 'picoprime bench' command: unattended
// back-to-back trials, the mode the button-driven firmware never had.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peardox/pico-prime/internal/prime/trial"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run trials back to back without a trigger source",
	Long: `Bench runs trials immediately one after another instead of waiting for
trigger events, for unattended measurement. Report lines are identical
to triggered runs. --passes bounds the session; 0 runs until
interrupted. The pass in flight when an interrupt arrives completes
before the session stops.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"capacity": cfg.Capacity,
		"passes":   cfg.Passes,
	}).Info("starting unattended benchmark")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := trial.New(cfg.Capacity, cmd.OutOrStdout())
	runner.Start()

	for pass := 0; cfg.Passes == 0 || pass < cfg.Passes; pass++ {
		if ctx.Err() != nil {
			log.Info("interrupted")
			break
		}
		if _, err := runner.OnTrigger(); err != nil {
			return err
		}
	}

	log.WithField("passes", runner.Stats().Passes).Info("benchmark finished")
	return nil
}
