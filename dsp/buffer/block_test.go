package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New[float64](8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	if b.Valid() != 0 {
		t.Fatalf("Valid() = %d, want 0", b.Valid())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New[int16](-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestSetValidClamps(t *testing.T) {
	b := New[byte](4)

	tests := []struct {
		in, want int
	}{
		{in: 2, want: 2},
		{in: -3, want: 0},
		{in: 9, want: 4},
	}

	for _, tt := range tests {
		b.SetValid(tt.in)
		if b.Valid() != tt.want {
			t.Fatalf("SetValid(%d): Valid() = %d, want %d", tt.in, b.Valid(), tt.want)
		}
		if len(b.Data()) != tt.want {
			t.Fatalf("SetValid(%d): len(Data()) = %d, want %d", tt.in, len(b.Data()), tt.want)
		}
	}
}

func TestZero(t *testing.T) {
	b := New[float64](3)
	copy(b.Samples(), []float64{1, 2, 3})
	b.SetValid(3)

	b.Zero()

	if b.Valid() != 0 {
		t.Fatalf("Valid() = %d after Zero", b.Valid())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v after Zero", i, v)
		}
	}
}
