package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/symdiag/symmetry"
)

// BenchmarkBuildMatrix measures an 8-variable (16×16) matrix build.
// Complexity: O(n·2^n)
func BenchmarkBuildMatrix(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := symmetry.BuildMatrix(8); err != nil {
			b.Fatalf("BuildMatrix failed: %v", err)
		}
	}
}

// BenchmarkLocate measures the scanning lookup of the last cell.
func BenchmarkLocate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, ok, err := symmetry.Locate(255, 8); err != nil || !ok {
			b.Fatalf("Locate failed: ok=%v err=%v", ok, err)
		}
	}
}

// BenchmarkPositionOf measures the closed-form lookup for comparison.
func BenchmarkPositionOf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := symmetry.PositionOf(255, 8); err != nil {
			b.Fatalf("PositionOf failed: %v", err)
		}
	}
}
