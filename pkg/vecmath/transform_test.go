package vecmath

import "testing"

func TestTransformIdentity(t *testing.T) {
	p := New(1, 2, 3)
	if got := Identity.TransformPoint(p); !vecApproxEqual(got, p) {
		t.Errorf("Identity.TransformPoint() = %v, want %v", got, p)
	}
}

func TestTransformTranslate(t *testing.T) {
	tr := Transform{Position: New(10, 0, 0), Scale: New(1, 1, 1)}
	got := tr.TransformPoint(New(1, 1, 1))
	want := New(11, 1, 1)
	if !vecApproxEqual(got, want) {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestTransformScale(t *testing.T) {
	tr := Transform{Scale: New(2, 3, 4)}
	got := tr.TransformPoint(New(1, 1, 1))
	want := New(2, 3, 4)
	if !vecApproxEqual(got, want) {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestTransformRotateZ90(t *testing.T) {
	tr := Transform{Scale: New(1, 1, 1), Rotation: New(0, 0, float32(halfPi))}
	got := tr.TransformPoint(New(1, 0, 0))
	want := New(0, 1, 0)
	if !vecApproxEqual(got, want) {
		t.Errorf("rotateZ(90deg) on (1,0,0) = %v, want %v", got, want)
	}
}

const halfPi = 1.5707963267948966

func TestTransformDirectionNormalizes(t *testing.T) {
	tr := Transform{Scale: New(2, 2, 2)}
	got := tr.TransformDirection(New(1, 0, 0))
	want := New(1, 0, 0)
	if !vecApproxEqual(got, want) {
		t.Errorf("TransformDirection() = %v, want unit %v", got, want)
	}
}
