// root.go wires the cobra command tree, flag/viper binding, and the
// diagnostic logger shared by all subcommands.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/peardox/pico-prime/internal/prime/config"
)

var (
	// cfgFile is the --config flag value; empty means no config file.
	cfgFile string

	// v is the process-wide configuration registry. Flags, environment
	// and the optional config file all land here.
	v = viper.New()

	// log is the diagnostic logger. Report lines never go through it:
	// they are the tool's output contract and print raw to stdout,
	// while diagnostics go to stderr where scripts ignore them.
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "picoprime",
	Short: "Prime-generation benchmark ported from RP2040 firmware",
	Long: `picoprime times how long it takes to compute the first N primes by
trial division (N = 60000 by default) and keeps a running average
across trials.

The original firmware ran one trial per BOOTSEL button press. Here a
trial is triggered by a line on stdin or a SIGUSR1 delivery ("run"), or
trials run back to back unattended ("bench"). Report lines match the
firmware byte for byte:

  FreeHeap = <bytes>
  Last Prime = <uint>
  Runtime = <seconds>
  Runtime = <seconds>, Pass = <n>, Average Runtime = <seconds>`,
	SilenceUsage: true,
}

func init() {
	config.Bind(v)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	pf.Int("capacity", config.DefaultCapacity, "primes generated per trial")
	pf.Duration("interval", config.DefaultInterval, "trigger polling interval")
	pf.String("source", config.DefaultSource, "trigger source: stdin or signal")
	pf.IntP("passes", "p", 0, "bench mode: trials to run (0 = until interrupted)")
	pf.String("log-level", config.DefaultLogLevel, "diagnostic log level")

	for _, name := range []string{"capacity", "interval", "source", "passes", "log-level"} {
		if err := v.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err) // flag registered three lines up; only a typo gets here
		}
	}

	log.SetOutput(os.Stderr)
}

// loadConfig resolves and validates the effective configuration, then
// points the logger at the configured level. Every subcommand that runs
// trials goes through here; "config" skips validation deliberately so
// it can display a broken setup.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, err // unreachable after Validate
	}
	log.SetLevel(level)

	return cfg, nil
}
