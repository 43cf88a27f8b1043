package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}

	if got := Clamp(12, 0, 8); got != 8 {
		t.Fatalf("Clamp(12, 0, 8) = %d, want 8", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestDBConversions(t *testing.T) {
	if db := LinearToDB(0.5); !NearlyEqual(db, -6.020599913279624, 1e-12) {
		t.Fatalf("LinearToDB(0.5) = %v, want ~-6.02", db)
	}
	if db := LinearPowerToDB(100); !NearlyEqual(db, 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", db)
	}
	if !math.IsInf(LinearToDB(0), -1) || !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) || !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative input")
	}
}

func TestFloorDB(t *testing.T) {
	tests := []struct {
		name string
		db   float64
		want float64
	}{
		{name: "above floor", db: -20, want: -20},
		{name: "below floor", db: -200, want: -120},
		{name: "neg inf", db: math.Inf(-1), want: -120},
		{name: "nan", db: math.NaN(), want: -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloorDB(tt.db, -120); got != tt.want {
				t.Fatalf("FloorDB(%v) = %v, want %v", tt.db, got, tt.want)
			}
		})
	}
}
