package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRay_At(t *testing.T) {
	tests := []struct {
		name     string
		ray      Ray
		t        float32
		expected Point3
	}{
		{
			name:     "origin at t=0",
			ray:      NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1)),
			t:        0,
			expected: NewVec3(1, 2, 3),
		},
		{
			name:     "unit direction",
			ray:      NewRay(NewVec3(0, 0, 10), NewVec3(0, 0, -1)),
			t:        4,
			expected: NewVec3(0, 0, 6),
		},
		{
			name:     "unnormalized direction",
			ray:      NewRay(NewVec3(0, 0, 0), NewVec3(2, 0, 0)),
			t:        1.5,
			expected: NewVec3(3, 0, 0),
		},
		{
			name:     "negative t goes backwards",
			ray:      NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)),
			t:        -2,
			expected: NewVec3(0, -2, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ray.At(tt.t)
			const tolerance = 1e-6
			if math32.Sqrt(got.Sub(tt.expected).LenSqr()) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Dot(b); got != 32 {
		t.Errorf("Expected dot 32, got %f", got)
	}
	if got := a.LenSqr(); got != 14 {
		t.Errorf("Expected squared length 14, got %f", got)
	}
	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Expected sum (5,7,9), got %v", got)
	}
	if got := b.Sub(a).Mul(2); got != NewVec3(6, 6, 6) {
		t.Errorf("Expected (6,6,6), got %v", got)
	}
}
