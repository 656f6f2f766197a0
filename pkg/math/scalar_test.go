package math

import (
	"math"
	"testing"
)

func TestConstants(t *testing.T) {
	if Zero[float32]() != 0 || One[float32]() != 1 || Two[float32]() != 2 {
		t.Error("float32 small constants incorrect")
	}
	if Half[float64]() != 0.5 || Quarter[float64]() != 0.25 {
		t.Error("float64 fractions incorrect")
	}
	if Pi[float64]() != math.Pi {
		t.Errorf("Pi[float64]() = %v", Pi[float64]())
	}
	if Pi[float32]() != float32(math.Pi) {
		t.Errorf("Pi[float32]() = %v", Pi[float32]())
	}

	// Integer instantiations truncate.
	if Half[int]() != 0 || Quarter[int64]() != 0 || Pi[int32]() != 3 {
		t.Error("integer constants should truncate")
	}
}

func TestScalarFunctions(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
	}{
		{"Sqrt", Sqrt(2.0), math.Sqrt2},
		{"Sin", Sin(0.5), math.Sin(0.5)},
		{"Cos", Cos(0.5), math.Cos(0.5)},
		{"Tan", Tan(0.5), math.Tan(0.5)},
		{"Asin", Asin(0.5), math.Pi / 6},
		{"Acos", Acos(0.5), math.Pi / 3},
		{"Atan2", Atan2(1.0, -1.0), 3 * math.Pi / 4},
		{"Abs", Abs(-2.5), 2.5},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-12 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestScalarFunctionsFloat32(t *testing.T) {
	tests := []struct {
		name      string
		got, want float32
	}{
		{"Sqrt", Sqrt[float32](4), 2},
		{"Sin", Sin(float32(math.Pi / 2)), 1},
		{"Cos", Cos[float32](0), 1},
		{"Asin", Asin[float32](1), float32(math.Pi / 2)},
		{"Atan2", Atan2[float32](0, -1), float32(math.Pi)},
	}
	for _, tt := range tests {
		if math.Abs(float64(tt.got-tt.want)) > 1e-6 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestScalarInteger(t *testing.T) {
	if got := Sqrt(26); got != 5 {
		t.Errorf("Sqrt(26) = %v, want 5", got)
	}
	if got := Abs[int8](-7); got != 7 {
		t.Errorf("Abs(-7) = %v, want 7", got)
	}

	v := Vec3[int]{3, 4, 0}
	if got := v.Length(); got != 5 {
		t.Errorf("int Vec3 length = %v, want 5", got)
	}
	if got := v.Cross(Vec3[int]{0, 0, 1}); got != (Vec3[int]{4, -3, 0}) {
		t.Errorf("int Vec3 cross = %v", got)
	}
	if got := (Mat2[int]{{1, 2}, {3, 4}}).Det(); got != -2 {
		t.Errorf("int Mat2 det = %v, want -2", got)
	}
}

func TestMinMaxClamp(t *testing.T) {
	if Max(2, 3) != 3 || Min(2, 3) != 2 {
		t.Error("Max/Min incorrect")
	}
	tests := []struct {
		x, want float64
	}{
		{-5, 0},
		{0.5, 0.5},
		{7, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v, 0, 1) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
