// Package trial drives repeated benchmark passes and keeps the running
// statistics that span them.
//
// A Runner owns everything one benchmark session needs: the configured
// prime capacity, the output sink for report lines, and the accumulated
// Stats. There is no package-level state; two Runners never share
// anything. Runners are not safe for concurrent use and never need to
// be: the trigger loop that drives them is serialized by construction.
package trial

import (
	"fmt"
	"io"
	"time"

	"github.com/peardox/pico-prime/internal/prime/generator"
	"github.com/peardox/pico-prime/internal/prime/sysinfo"
)

// GenerateFunc is the prime-generation dependency of a Runner. Production
// code uses generator.Generate; tests substitute scripted results.
type GenerateFunc func(capacity int) (generator.Result, error)

// Stats accumulates timing across every pass of a session.
//
// Initialized at session start, mutated once per completed pass, read
// for reporting. Never reset mid-session.
type Stats struct {
	// Passes counts completed generation passes.
	Passes int

	// Total is the sum of elapsed times over all completed passes.
	Total time.Duration
}

// AverageSeconds returns the running mean elapsed time in fractional
// seconds, or 0 before the first pass.
func (s Stats) AverageSeconds() float64 {
	if s.Passes == 0 {
		return 0
	}
	return s.Total.Seconds() / float64(s.Passes)
}

// Report describes one completed pass.
type Report struct {
	// Elapsed is this pass's wall-clock duration.
	Elapsed time.Duration

	// Pass is the 1-based pass number within the session.
	Pass int

	// AverageSeconds is the running mean over all passes so far,
	// including this one.
	AverageSeconds float64

	// LastPrime is the largest prime found. Informational: the first
	// pass prints it, later passes carry it but do not.
	LastPrime uint32

	// FirstPass marks the session's first report, which uses the short
	// report format.
	FirstPass bool
}

// Runner executes one benchmark pass per trigger and reports results.
type Runner struct {
	capacity int
	out      io.Writer
	stats    Stats

	// Injection points for tests. Production values are set by New.
	generate GenerateFunc
	freeHeap func() uint64
}

// New returns a Runner that generates capacity primes per pass and
// writes report lines to out.
//
// Capacity validation happens on the first pass, inside the generator;
// a Runner built with a bad capacity fails on first trigger rather than
// at construction, matching the propagate-unchanged error policy.
func New(capacity int, out io.Writer) *Runner {
	return &Runner{
		capacity: capacity,
		out:      out,
		generate: generator.Generate,
		freeHeap: sysinfo.FreeHeap,
	}
}

// Start emits the one-time startup diagnostic line:
//
//	FreeHeap = <bytes>
//
// The firmware printed this before its first trial so a user could judge
// whether the prime buffer would fit. Call it once, before the first
// OnTrigger.
func (r *Runner) Start() {
	fmt.Fprintf(r.out, "FreeHeap = %d\n", r.freeHeap())
}

// OnTrigger runs exactly one benchmark pass: generate, accumulate,
// report.
//
// The first pass of a session prints the two-line format:
//
//	Last Prime = <uint>
//	Runtime = <seconds>
//
// Every later pass prints the one-line running summary:
//
//	Runtime = <seconds>, Pass = <n>, Average Runtime = <seconds>
//
// Generator failures propagate unchanged and leave Stats untouched: a
// failed pass is not counted. OnTrigger is not re-entrant; callers must
// serialize triggers.
func (r *Runner) OnTrigger() (Report, error) {
	res, err := r.generate(r.capacity)
	if err != nil {
		return Report{}, err
	}

	r.stats.Passes++
	r.stats.Total += res.Elapsed

	rep := Report{
		Elapsed:        res.Elapsed,
		Pass:           r.stats.Passes,
		AverageSeconds: r.stats.AverageSeconds(),
		LastPrime:      res.LastPrime(),
		FirstPass:      r.stats.Passes == 1,
	}
	r.report(rep)
	return rep, nil
}

// Stats returns a copy of the accumulated session statistics.
func (r *Runner) Stats() Stats {
	return r.stats
}

// report renders rep to the output sink. The formats (including %f's
// six decimal places) are the tool's observable contract; embedders
// parse these lines.
func (r *Runner) report(rep Report) {
	if rep.FirstPass {
		fmt.Fprintf(r.out, "Last Prime = %d\n", rep.LastPrime)
		fmt.Fprintf(r.out, "Runtime = %f\n", rep.Elapsed.Seconds())
		return
	}
	fmt.Fprintf(r.out, "Runtime = %f, Pass = %d, Average Runtime = %f\n",
		rep.Elapsed.Seconds(), rep.Pass, rep.AverageSeconds)
}
