// Package trigger provides the event sources that stand in for the
// firmware's BOOTSEL button, and the fixed-interval polling loop that
// watches them.
//
// A Source latches discrete press events; the Poller samples it on a
// coarse ticker and runs the trial handler synchronously on each press.
// Because the handler runs on the polling goroutine, trials can never
// overlap, which the benchmark's statistics depend on.
package trigger

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"time"
)

// DefaultInterval is the polling period, matching the firmware's 100ms
// sleep between button samples. Coarse on purpose: the press is a human
// action and the trial it starts runs far longer than one tick.
const DefaultInterval = 100 * time.Millisecond

// Source is an edge-detected trigger input.
//
// Pressed reports whether at least one press event arrived since the
// previous call, and consumes it. Multiple presses between polls
// coalesce into one: a held or mashed button still yields one trial per
// poll at most, and sources latch at most one pending press.
type Source interface {
	Pressed() bool
}

// StdinSource turns lines on a reader into press events: each line read
// (an Enter keypress on an interactive terminal) latches one press.
type StdinSource struct {
	presses chan struct{}
}

// NewStdinSource starts a background reader on r and returns the source.
// The reader goroutine exits when r reaches EOF or fails; presses
// already latched remain consumable.
func NewStdinSource(r io.Reader) *StdinSource {
	s := &StdinSource{presses: make(chan struct{}, 1)}
	go s.watch(r)
	return s
}

func (s *StdinSource) watch(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case s.presses <- struct{}{}:
		default: // press already pending, coalesce
		}
	}
}

// Pressed consumes one latched press, if any.
func (s *StdinSource) Pressed() bool {
	select {
	case <-s.presses:
		return true
	default:
		return false
	}
}

// SignalSource turns OS signal deliveries into press events, so a trial
// can be triggered from another terminal (kill -USR1 <pid>).
type SignalSource struct {
	signals chan os.Signal
}

// NewSignalSource subscribes to the given signals and returns the
// source. Callers should Close it when done to release the subscription.
func NewSignalSource(signals ...os.Signal) *SignalSource {
	s := &SignalSource{signals: make(chan os.Signal, 1)}
	signal.Notify(s.signals, signals...)
	return s
}

// Pressed consumes one pending signal delivery, if any.
func (s *SignalSource) Pressed() bool {
	select {
	case <-s.signals:
		return true
	default:
		return false
	}
}

// Close unsubscribes from signal delivery.
func (s *SignalSource) Close() {
	signal.Stop(s.signals)
}

// Poller samples a Source at a fixed interval and runs Handler once per
// detected press.
type Poller struct {
	// Source is the trigger input to sample. Required.
	Source Source

	// Interval is the sampling period; DefaultInterval when zero or
	// negative.
	Interval time.Duration

	// Handler runs one trial. It executes synchronously on the polling
	// goroutine: sampling pauses until it returns, so trials are
	// serialized and never cancelled mid-run. Required.
	Handler func() error
}

// Run polls until ctx is cancelled or Handler fails.
//
// Returns ctx.Err() after cancellation and the handler's error
// unchanged after a failed trial. A press observed in the same tick as
// cancellation may or may not run; once a trial starts it always
// completes.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !p.Source.Pressed() {
				continue
			}
			if err := p.Handler(); err != nil {
				return err
			}
		}
	}
}
