// Package main implements the picoprime CLI.
//
// picoprime is a host-side port of an RP2040 firmware benchmark: each
// trigger event runs one trial that computes the first N primes by
// trial division, and the tool reports per-trial runtime plus a running
// average across trials.
//
// Usage:
//
//	picoprime run                # one trial per Enter keypress
//	picoprime run --source signal   # one trial per SIGUSR1
//	picoprime bench -p 10        # ten unattended trials
//	picoprime version            # version information
//	picoprime config             # effective configuration as YAML
//
// The firmware triggered on the BOOTSEL button and printed over the
// serial console; the CLI keeps the exact report line formats so output
// is comparable across the two.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
