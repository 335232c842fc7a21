package vecmath

import "testing"

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func vecApproxEqual(a, b Vec3) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) && approxEqual(a.Z, b.Z)
}

func TestVec3AddSub(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)
	if got := a.Add(b); !vecApproxEqual(got, New(5, 7, 9)) {
		t.Errorf("Add() = %v, want (5,7,9)", got)
	}
	if got := b.Sub(a); !vecApproxEqual(got, New(3, 3, 3)) {
		t.Errorf("Sub() = %v, want (3,3,3)", got)
	}
}

func TestVec3CrossDot(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	z := New(0, 0, 1)

	if got := x.Cross(y); !vecApproxEqual(got, z) {
		t.Errorf("Cross(x,y) = %v, want z", got)
	}
	if got := x.Dot(y); !approxEqual(got, 0) {
		t.Errorf("Dot(x,y) = %v, want 0", got)
	}
	if got := x.Dot(x); !approxEqual(got, 1) {
		t.Errorf("Dot(x,x) = %v, want 1", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"unit x", New(1, 0, 0), New(1, 0, 0)},
		{"scaled x", New(5, 0, 0), New(1, 0, 0)},
		{"zero vector", Zero, Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); !vecApproxEqual(got, tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Lerp(t *testing.T) {
	a := New(0, 0, 0)
	b := New(10, 10, 10)
	if got := a.Lerp(b, 0.5); !vecApproxEqual(got, New(5, 5, 5)) {
		t.Errorf("Lerp(0.5) = %v, want (5,5,5)", got)
	}
	if got := a.Lerp(b, 0); !vecApproxEqual(got, a) {
		t.Errorf("Lerp(0) = %v, want a", got)
	}
	if got := a.Lerp(b, 1); !vecApproxEqual(got, b) {
		t.Errorf("Lerp(1) = %v, want b", got)
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := New(0, 0, 0)
	b := New(10, 0, 0)

	tests := []struct {
		name    string
		p       Vec3
		wantPt  Vec3
		wantT   float32
	}{
		{"midpoint", New(5, 1, 0), New(5, 0, 0), 0.5},
		{"before start clamps", New(-5, 0, 0), a, 0},
		{"after end clamps", New(15, 0, 0), b, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, tParam := ClosestPointOnSegment(tt.p, a, b)
			if !vecApproxEqual(pt, tt.wantPt) {
				t.Errorf("point = %v, want %v", pt, tt.wantPt)
			}
			if !approxEqual(tParam, tt.wantT) {
				t.Errorf("t = %v, want %v", tParam, tt.wantT)
			}
		})
	}
}

func TestTriangleNormal(t *testing.T) {
	a := New(0, 0, 0)
	b := New(1, 0, 0)
	c := New(0, 1, 0)
	n := TriangleNormal(a, b, c).Normalize()
	if !vecApproxEqual(n, New(0, 0, 1)) {
		t.Errorf("TriangleNormal() = %v, want (0,0,1)", n)
	}
}
