package modifier

import "testing"

func TestDecimateReducesTriangleCount(t *testing.T) {
	m := unitCubeMesh(t) // 12 triangles
	out := Decimate(m, DecimateOptions{Ratio: 0.5})

	if got := out.Geometry.TriangleCount(); got >= m.Geometry.TriangleCount() {
		t.Fatalf("TriangleCount() = %d, want fewer than %d", got, m.Geometry.TriangleCount())
	}
	if out.Geometry.TriangleCount() < 4 {
		t.Fatalf("TriangleCount() = %d, below the floor of 4", out.Geometry.TriangleCount())
	}
	if err := out.Geometry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDecimateNeverGoesBelowFloorOfFour(t *testing.T) {
	m := unitCubeMesh(t)
	out := Decimate(m, DecimateOptions{Ratio: 0.01})

	if out.Geometry.TriangleCount() < 4 {
		t.Fatalf("TriangleCount() = %d, below the floor of 4", out.Geometry.TriangleCount())
	}
}

func TestDecimateRatioOneIsNoOp(t *testing.T) {
	m := unitCubeMesh(t)
	out := Decimate(m, DecimateOptions{Ratio: 1})
	if out.Geometry.TriangleCount() != m.Geometry.TriangleCount() {
		t.Fatalf("ratio=1 should not reduce triangle count")
	}
}

func TestDecimateAcceptsAliasModesWithoutError(t *testing.T) {
	m := unitCubeMesh(t)
	for _, mode := range []DecimateMode{DecimateCollapse, DecimatePlanar, DecimateUnsubdivide} {
		out := Decimate(m, DecimateOptions{Ratio: 0.5, Mode: mode})
		if out.Geometry.TriangleCount() > m.Geometry.TriangleCount() {
			t.Errorf("mode %v increased triangle count", mode)
		}
	}
}
