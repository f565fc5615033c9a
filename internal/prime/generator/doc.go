// Package generator computes prime sequences by incremental trial
// division. It is the compute kernel of the pico-prime benchmark: every
// trial runs Generate once and times it.
//
// # Algorithm
//
// The buffer is seeded with {2, 3, 5, 7}. From there the search tests
// only odd candidates, advancing by 2 each step. A candidate is prime
// when no already-found prime up to floor(sqrt(candidate)) divides it;
// the divisor scan starts at 3 because odd candidates are never even,
// and short-circuits on the first zero remainder.
//
// The scan over known primes is bounded without an explicit index check:
// all primes below the candidate are already stored in increasing order,
// and one of them always exceeds the square root of the candidate, so
// the `<= limit` condition stops the scan inside the filled region of
// the buffer.
//
// # Contract
//
// For any capacity in (3, MaxCapacity]:
//   - exactly capacity primes are returned, strictly increasing
//   - the first four are always 2, 3, 5, 7
//   - repeated calls with the same capacity yield identical sequences
//   - elapsed time is non-negative, nanosecond resolution
//
// Capacity 4 returns the bare seed with no search performed. Capacities
// of 3 or less fail with ErrCapacity; capacities above MaxCapacity fail
// with ErrResourceExhausted before any allocation. The original firmware
// performed neither check and could write past its fixed buffer; the
// explicit errors replace that silent overflow.
//
// # Performance
//
// The cost per trial grows slightly faster than linearly in capacity
// (the divisor scan lengthens as primes thin out). The reference
// configuration of 60000 primes completes in milliseconds on a desktop
// CPU versus tens of seconds on the RP2040 the benchmark was written
// for.
package generator
