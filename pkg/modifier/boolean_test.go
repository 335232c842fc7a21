package modifier

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/vecmath"
)

func TestBooleanDifferenceOfSelfIsEmpty(t *testing.T) {
	m := unitCubeMesh(t)
	out := Boolean(m, m, BooleanDifference)
	if out.Geometry.TriangleCount() != 0 {
		t.Fatalf("TriangleCount() = %d, want 0", out.Geometry.TriangleCount())
	}
}

func TestBooleanUnionResetsTransformToIdentity(t *testing.T) {
	m := unitCubeMesh(t)
	m.Transform.Position = vecmath.New(5, 5, 5)
	out := Boolean(m, m, BooleanUnion)
	if out.Transform != vecmath.Identity {
		t.Errorf("Transform = %v, want identity", out.Transform)
	}
	if err := out.Geometry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
