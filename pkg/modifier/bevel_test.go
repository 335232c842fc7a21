package modifier

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/meshkernel"
)

func TestBevelNoSelectionIsNoOp(t *testing.T) {
	m := singleTriangleMesh(t)
	out := Bevel(m, nil, BevelOptions{Amount: 0.1})
	if out.Geometry.VertexCount() != m.Geometry.VertexCount() {
		t.Fatalf("vertex count changed on empty selection")
	}
}

func TestBevelAddsRibbonGeometry(t *testing.T) {
	m := singleTriangleMesh(t)
	out := Bevel(m, []meshkernel.Edge{{A: 0, B: 1}}, BevelOptions{Amount: 0.1})

	if out.Geometry.VertexCount() <= m.Geometry.VertexCount() {
		t.Fatalf("expected bevel to add vertices, got %d (was %d)",
			out.Geometry.VertexCount(), m.Geometry.VertexCount())
	}
	if out.Geometry.TriangleCount() <= m.Geometry.TriangleCount() {
		t.Fatalf("expected bevel to add triangles")
	}
	if err := out.Geometry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
