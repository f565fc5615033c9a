package generator

import (
	"fmt"
	"testing"
)

// BenchmarkGenerate measures full-pass cost at several capacities,
// including the reference firmware configuration of 60000 primes.
func BenchmarkGenerate(b *testing.B) {
	for _, capacity := range []int{1000, 10000, 60000} {
		b.Run(fmt.Sprintf("capacity=%d", capacity), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := Generate(capacity); err != nil {
					b.Fatalf("Generate failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkSequence isolates the search loop from timing and validation
// overhead.
func BenchmarkSequence(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = sequence(60000)
	}
}
