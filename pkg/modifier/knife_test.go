package modifier

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/vecmath"
)

func TestKnifeShortPolylineIsNoOp(t *testing.T) {
	m := singleTriangleMesh(t)
	out := Knife(m, []vecmath.Vec3{vecmath.New(0, 0, 0)}, KnifeOptions{})
	if out.Geometry.TriangleCount() != m.Geometry.TriangleCount() {
		t.Fatalf("single-point polyline should be a no-op")
	}
}

func TestKnifeThroughCutSplitsTriangle(t *testing.T) {
	m := singleTriangleMesh(t)
	// A segment passing through the triangle's interior point (0.25,0.25,0)
	// perpendicular to its plane.
	polyline := []vecmath.Vec3{
		vecmath.New(0.25, 0.25, 1),
		vecmath.New(0.25, 0.25, -1),
	}
	out := Knife(m, polyline, KnifeOptions{ThroughCut: true})

	if out.Geometry.TriangleCount() <= m.Geometry.TriangleCount() {
		t.Fatalf("expected knife cut to split the triangle")
	}
	if err := out.Geometry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
