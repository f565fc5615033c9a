// run.go implements the 'picoprime run' command: the firmware-faithful
// triggered benchmark loop.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/peardox/pico-prime/internal/prime/config"
	"github.com/peardox/pico-prime/internal/prime/trial"
	"github.com/peardox/pico-prime/internal/prime/trigger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll the trigger source and run one trial per press",
	Long: `Run prints the startup FreeHeap line, then polls the trigger source at
the configured interval (100ms by default, like the firmware) and runs
one trial per detected press. Trials are synchronous and blocking by
design: polling pauses while a trial runs, so trials never overlap and
a started trial always completes.

Trigger sources:
  stdin    one trial per line (press Enter)
  signal   one trial per SIGUSR1 (kill -USR1 <pid>)

The loop runs until interrupted (SIGINT/SIGTERM) or a trial fails; a
failed trial is fatal, never retried.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, closeSrc, err := newSource(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	log.WithFields(logrus.Fields{
		"capacity": cfg.Capacity,
		"interval": cfg.Interval,
		"source":   cfg.Source,
	}).Info("starting triggered benchmark")

	runner := trial.New(cfg.Capacity, cmd.OutOrStdout())
	runner.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	poller := &trigger.Poller{
		Source:   src,
		Interval: cfg.Interval,
		Handler: func() error {
			_, err := runner.OnTrigger()
			return err
		},
	}
	g.Go(func() error { return poller.Run(ctx) })

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	log.WithField("passes", runner.Stats().Passes).Info("benchmark stopped")
	return nil
}

// newSource builds the configured trigger source. The returned func
// releases whatever the source holds (a signal subscription; nothing
// for stdin).
func newSource(cfg config.Config) (trigger.Source, func(), error) {
	switch cfg.Source {
	case config.SourceStdin:
		return trigger.NewStdinSource(os.Stdin), func() {}, nil
	case config.SourceSignal:
		s := trigger.NewSignalSource(syscall.SIGUSR1)
		return s, s.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown trigger source %q", cfg.Source) // unreachable after Validate
	}
}
