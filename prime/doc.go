// Package prime is the public face of the pico-prime benchmark: a
// trial-division prime generator with a timing contract, ported from a
// Raspberry Pi Pico firmware benchmark to a host-side Go module.
//
// # Quick Start
//
// The picoprime CLI drives the benchmark interactively:
//
//	$ picoprime run             # one trial per Enter keypress
//	$ picoprime bench -p 10     # ten unattended trials
//
// Embedders call the workload directly:
//
//	res, err := prime.Generate(prime.DefaultCapacity)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.LastPrime(), res.Seconds())
//
// # What a trial does
//
// One trial computes the first N primes (N = 60000 in the reference
// configuration) by incremental trial division: seed {2, 3, 5, 7}, test
// odd candidates against the primes already found up to the integer
// square root of the candidate, short-circuit on the first divisor. The
// elapsed wall-clock time of the pass is the benchmark measurement; the
// CLI accumulates a running average across trials.
//
// # API Overview
//
// The package provides:
//   - The workload: [Generate], [Result], [DefaultCapacity], [MaxCapacity]
//   - Failure sentinels: [ErrCapacity], [ErrResourceExhausted]
//   - Version information: [GetInfo], [Version], [AtLeast]
//
// Trial orchestration (trigger polling, report formatting, running
// statistics) lives in the picoprime CLI and is not part of the public
// surface.
//
// # Origins
//
// The benchmark began life as RP2040 firmware that ran a trial each
// time the BOOTSEL button was pressed and printed runtime and running
// average over the serial console. This port preserves the algorithm,
// the report line formats, and the 100ms trigger-polling cadence, and
// replaces the button with stdin or SIGUSR1. Unlike the firmware, it
// validates capacity instead of silently overrunning its buffer.
package prime
