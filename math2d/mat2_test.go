package math2d

import (
	"math"
	"testing"
)

func matApproxEq(a, b Mat2) bool {
	return approxEq(a.M00, b.M00) && approxEq(a.M01, b.M01) &&
		approxEq(a.M10, b.M10) && approxEq(a.M11, b.M11)
}

func TestRotationZero(t *testing.T) {
	r := Rotation(0)
	if !matApproxEq(r, Identity()) {
		t.Errorf("Rotation(0) = %v, want identity", r)
	}
	v := V2(3.7, -1.2)
	if got := r.MulVec(v); !vecApproxEq(got, v) {
		t.Errorf("Rotation(0).MulVec(%v) = %v, want unchanged", v, got)
	}
}

func TestScalingOne(t *testing.T) {
	if s := Scaling(1); !matApproxEq(s, Identity()) {
		t.Errorf("Scaling(1) = %v, want identity", s)
	}
}

func TestRotationQuarterTurn(t *testing.T) {
	// Standard convention: (10,0) rotated by π/2 lands on (0,10).
	got := Rotation(math.Pi / 2).MulVec(V2(10, 0))
	if !vecApproxEq(got, V2(0, 10)) {
		t.Errorf("Rotation(π/2).MulVec((10,0)) = %v, want (0,10)", got)
	}
}

func TestRotationZeroVector(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi, -2.1, 17} {
		if got := Rotation(angle).MulVec(Zero()); got != Zero() {
			t.Errorf("Rotation(%v).MulVec(zero) = %v, want zero", angle, got)
		}
	}
}

func TestMulOrder(t *testing.T) {
	// Non-commutative for non-uniform scale: check the order explicitly.
	r := Rotation(math.Pi / 2)
	s := ScalingXY(2, 1)

	rs := r.Mul(s).MulVec(V2(1, 0)) // scale first, then rotate
	sr := s.Mul(r).MulVec(V2(1, 0)) // rotate first, then scale

	if !vecApproxEq(rs, V2(0, 2)) {
		t.Errorf("rotate∘scale (1,0) = %v, want (0,2)", rs)
	}
	if !vecApproxEq(sr, V2(0, 1)) {
		t.Errorf("scale∘rotate (1,0) = %v, want (0,1)", sr)
	}
}

func TestDet(t *testing.T) {
	tests := []struct {
		name string
		m    Mat2
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform scale", Scaling(3), 9},
		{"rotation", Rotation(1.234), 1},
		{"degenerate", Mat2{M00: 1, M01: 2, M10: 2, M11: 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Det(); !approxEq(got, tt.want) {
				t.Errorf("Det = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	m := Rotation(0.7).Mul(Scaling(2))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("Inverse reported degenerate for a rotation*scale matrix")
	}
	if got := m.Mul(inv); !matApproxEq(got, Identity()) {
		t.Errorf("m.Mul(inv) = %v, want identity", got)
	}
}

func TestInverseDegenerate(t *testing.T) {
	m := Mat2{M00: 1, M01: 2, M10: 2, M11: 4}
	if _, ok := m.Inverse(); ok {
		t.Error("Inverse of a singular matrix reported ok")
	}
}
