package scale_test

import (
	"testing"

	"github.com/katalvlaran/strongunit/scale"
)

// BenchmarkScale_Mul measures the cross-reduced product.
func BenchmarkScale_Mul(b *testing.B) {
	x, y := scale.MustNew(1000, 3600), scale.MustNew(60, 1)
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkScale_Sqrt measures the exact integer root.
func BenchmarkScale_Sqrt(b *testing.B) {
	x := scale.MustNew(1_000_000_000_000, 1)
	for i := 0; i < b.N; i++ {
		if _, err := x.Sqrt(); err != nil {
			b.Fatalf("Sqrt failed: %v", err)
		}
	}
}
