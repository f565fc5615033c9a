// Package prime provides the public API for the pico-prime benchmark
// workload.
//
// See doc.go for detailed documentation and examples.
package prime

import internal "github.com/peardox/pico-prime/internal/prime/generator"

// DefaultCapacity is the reference configuration: the number of primes
// the original firmware computed per trial.
const DefaultCapacity = 60000

// MaxCapacity is the largest capacity Generate accepts; the primes for
// larger requests no longer fit the uint32 buffer entries.
const MaxCapacity = internal.MaxCapacity

// Result holds the prime sequence and elapsed time of one generation
// pass. Alias of the internal result so embedders and the CLI share one
// type.
type Result = internal.Result

// Sentinel errors, re-exported for errors.Is checks by embedders.
var (
	// ErrCapacity reports a capacity of 3 or less; the seed primes
	// {2, 3, 5, 7} need four slots.
	ErrCapacity = internal.ErrCapacity

	// ErrResourceExhausted reports a capacity above MaxCapacity.
	ErrResourceExhausted = internal.ErrResourceExhausted
)

// Generate computes the first capacity primes by incremental trial
// division and reports the wall-clock time the pass took.
//
// The sequence is deterministic and strictly increasing, and always
// starts 2, 3, 5, 7. Generate keeps no state between calls; the
// returned buffer belongs to the caller.
//
// Example:
//
//	res, err := prime.Generate(prime.DefaultCapacity)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Last Prime = %d\n", res.LastPrime())
//	fmt.Printf("Runtime = %f\n", res.Seconds())
func Generate(capacity int) (Result, error) {
	return internal.Generate(capacity)
}
