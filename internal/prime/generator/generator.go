// Package generator implements the benchmark workload: computing the
// first N primes by incremental trial division.
//
// See doc.go for detailed documentation of the algorithm and its
// invariants.
package generator

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

const (
	// SeedCount is the number of primes pre-loaded into the buffer
	// before the search loop starts. Seeding {2, 3, 5, 7} lets the
	// candidate loop step over odd numbers only and skip the trivial
	// divisibility-by-2 test entirely.
	SeedCount = 4

	// MaxCapacity is the largest supported capacity: the number of
	// primes below 2^32. The prime after the 203280221st does not fit
	// in a uint32 buffer entry, so larger requests cannot be stored.
	MaxCapacity = 203280221
)

var (
	// ErrCapacity reports a capacity too small to hold the seed primes.
	// Requests must ask for more than SeedCount-1 primes.
	ErrCapacity = errors.New("generator: capacity must be greater than 3")

	// ErrResourceExhausted reports a capacity whose primes cannot be
	// stored: the request exceeds MaxCapacity.
	ErrResourceExhausted = errors.New("generator: capacity exceeds uint32 storage")
)

// Result holds one completed generation pass.
//
// Primes contains exactly the requested number of primes in strictly
// increasing order. Elapsed is the wall-clock time the pass took,
// measured at nanosecond resolution.
type Result struct {
	Primes  []uint32
	Elapsed time.Duration
}

// LastPrime returns the largest prime found, i.e. the final buffer entry.
func (r Result) LastPrime() uint32 {
	return r.Primes[len(r.Primes)-1]
}

// Seconds returns the elapsed time as fractional seconds, the unit used
// by the benchmark report lines.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Generate computes the first capacity primes and reports how long the
// computation took.
//
// The result is deterministic: the same capacity always produces the
// identical sequence. Generate performs no I/O and keeps no state
// between calls; the returned buffer is owned by the caller.
//
// Errors:
//   - ErrCapacity if capacity <= 3 (the seed needs four slots)
//   - ErrResourceExhausted if capacity > MaxCapacity
func Generate(capacity int) (Result, error) {
	if capacity <= SeedCount-1 {
		return Result{}, errors.Wrapf(ErrCapacity, "requested %d", capacity)
	}
	if capacity > MaxCapacity {
		return Result{}, errors.Wrapf(ErrResourceExhausted, "requested %d, limit %d", capacity, MaxCapacity)
	}

	start := time.Now()
	primes := sequence(capacity)
	return Result{Primes: primes, Elapsed: time.Since(start)}, nil
}

// sequence fills and returns a buffer of the first capacity primes.
//
// The search walks odd candidates upward from the last seed prime and
// trial-divides each by the primes already found, up to the integer
// square root of the candidate. Divisors above the square root cannot be
// the smallest factor of a composite, so the scan stops there.
//
// The inner scan starts at index 1 (divisor 3): stepping candidates by 2
// already rules out divisibility by 2. It terminates before reading past
// the last stored prime because every prime below the candidate is
// already in the buffer, and at least one of them exceeds the square
// root of the candidate. The strictly-increasing storage order is what
// makes the <= limit early exit sound; both properties hold by
// induction from the seed.
func sequence(capacity int) []uint32 {
	primes := make([]uint32, capacity)
	primes[0] = 2
	primes[1] = 3
	primes[2] = 5
	primes[3] = 7

	// index points at the last filled slot; candidate resumes from the
	// largest known prime.
	index := SeedCount - 1
	candidate := primes[index]

	for index < capacity-1 {
		candidate += 2
		limit := isqrt(candidate)

		isPrime := true
		for i := 1; primes[i] <= limit; i++ {
			if candidate%primes[i] == 0 {
				isPrime = false
				break
			}
		}

		if isPrime {
			index++
			primes[index] = candidate
		}
	}

	return primes
}

// isqrt returns floor(sqrt(n)).
//
// math.Sqrt is exact for every uint32 input in practice, but the result
// is verified and corrected in integer arithmetic so the search limit is
// never off by one at perfect-square boundaries. The corrections run in
// uint64 to avoid overflow near the top of the uint32 range.
func isqrt(n uint32) uint32 {
	r := uint64(math.Sqrt(float64(n)))
	for r*r > uint64(n) {
		r--
	}
	for (r+1)*(r+1) <= uint64(n) {
		r++
	}
	return uint32(r)
}
