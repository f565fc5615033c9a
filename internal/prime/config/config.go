// Package config loads and validates the benchmark configuration.
//
// The firmware had exactly one knob, a compile-time prime count. The
// host port keeps that as the central setting and adds the knobs a CLI
// needs: polling interval, trigger source, pass count for unattended
// runs, and log level. Values come from defaults, an optional YAML
// config file, PICOPRIME_* environment variables, and flags, in
// ascending precedence (viper's usual order).
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/peardox/pico-prime/internal/prime/generator"
)

// Trigger source names accepted by the "source" setting.
const (
	// SourceStdin triggers a trial per line read from standard input.
	SourceStdin = "stdin"

	// SourceSignal triggers a trial per SIGUSR1 delivery.
	SourceSignal = "signal"
)

// Defaults. Capacity and interval match the reference firmware build.
const (
	DefaultCapacity = 60000
	DefaultInterval = 100 * time.Millisecond
	DefaultSource   = SourceStdin
	DefaultLogLevel = "info"

	// EnvPrefix is the environment variable prefix: capacity comes from
	// PICOPRIME_CAPACITY, log level from PICOPRIME_LOG_LEVEL, and so on.
	EnvPrefix = "PICOPRIME"
)

// Config is the effective benchmark configuration.
type Config struct {
	// Capacity is the number of primes generated per trial.
	Capacity int `mapstructure:"capacity" yaml:"capacity"`

	// Interval is the trigger polling period.
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`

	// Source selects the trigger input: SourceStdin or SourceSignal.
	Source string `mapstructure:"source" yaml:"source"`

	// Passes is the number of back-to-back trials in bench mode.
	// 0 means run until interrupted. Ignored by the triggered run mode.
	Passes int `mapstructure:"passes" yaml:"passes"`

	// LogLevel is a logrus level name for diagnostic logging.
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
}

// Default returns the configuration the firmware shipped with.
func Default() Config {
	return Config{
		Capacity: DefaultCapacity,
		Interval: DefaultInterval,
		Source:   DefaultSource,
		Passes:   0,
		LogLevel: DefaultLogLevel,
	}
}

// Bind registers defaults and environment handling on v. Call once per
// viper instance, before Load.
func Bind(v *viper.Viper) {
	v.SetDefault("capacity", DefaultCapacity)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("source", DefaultSource)
	v.SetDefault("passes", 0)
	v.SetDefault("log-level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file at path (none when empty) and
// unmarshals the effective settings. The result is not yet validated;
// callers decide when to run Validate so that "picoprime config" can
// display a broken configuration instead of refusing to.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshaling config")
	}
	return cfg, nil
}

// Validate checks every setting and reports all violations at once,
// combined with multierr, so a user fixes a bad config in one round
// trip.
func (c Config) Validate() error {
	var err error

	if c.Capacity <= 3 {
		err = multierr.Append(err, errors.Errorf("capacity must be greater than 3, got %d", c.Capacity))
	} else if c.Capacity > generator.MaxCapacity {
		err = multierr.Append(err, errors.Errorf("capacity %d exceeds the storage limit of %d", c.Capacity, generator.MaxCapacity))
	}

	if c.Interval <= 0 {
		err = multierr.Append(err, errors.Errorf("interval must be positive, got %v", c.Interval))
	}

	switch c.Source {
	case SourceStdin, SourceSignal:
	default:
		err = multierr.Append(err, errors.Errorf("unknown trigger source %q (want %q or %q)", c.Source, SourceStdin, SourceSignal))
	}

	if c.Passes < 0 {
		err = multierr.Append(err, errors.Errorf("passes must not be negative, got %d", c.Passes))
	}

	if _, perr := logrus.ParseLevel(c.LogLevel); perr != nil {
		err = multierr.Append(err, errors.Errorf("unknown log level %q", c.LogLevel))
	}

	return err
}

// YAML renders the configuration as a YAML document, the format the
// "picoprime config" subcommand prints and the config file accepts.
func (c Config) YAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "marshaling config")
	}
	return string(b), nil
}
