package testutil

import (
	"math"
	"testing"
)

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.0+1e-10, 1e-9) {
		t.Fatal("expected values within tolerance")
	}
	if WithinTolerance(1.0, 1.1, 1e-3) {
		t.Fatal("expected values outside tolerance")
	}
	if WithinTolerance(math.NaN(), 0, 1) {
		t.Fatal("NaN must never be within tolerance")
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2 + 1e-12, 3}, 1e-9)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}
