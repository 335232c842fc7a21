package modifier

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/meshkernel"
)

func TestLoopCutNoSelectionIsNoOp(t *testing.T) {
	m := singleTriangleMesh(t)
	out := LoopCut(m, nil, LoopCutOptions{NumberOfCuts: 1})
	if out.Geometry.TriangleCount() != m.Geometry.TriangleCount() {
		t.Fatalf("TriangleCount() changed on empty selection")
	}
}

func TestLoopCutOneCutFansFromOppositeVertex(t *testing.T) {
	m := singleTriangleMesh(t)
	out := LoopCut(m, []meshkernel.Edge{{A: 0, B: 1}}, LoopCutOptions{NumberOfCuts: 1})

	// 3 original + 1 cut vertex = 4; fan of [a, c1, b] around opposite = 2 triangles.
	if got := out.Geometry.VertexCount(); got != 4 {
		t.Fatalf("VertexCount() = %d, want 4", got)
	}
	if got := out.Geometry.TriangleCount(); got != 2 {
		t.Fatalf("TriangleCount() = %d, want 2", got)
	}
	if err := out.Geometry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoopCutTwoCutsOnSharedVertex(t *testing.T) {
	m := singleTriangleMesh(t)
	out := LoopCut(m, []meshkernel.Edge{{A: 0, B: 1}, {A: 1, B: 2}}, LoopCutOptions{NumberOfCuts: 1})

	// 3 original + 2 cut vertices = 5.
	if got := out.Geometry.VertexCount(); got != 5 {
		t.Fatalf("VertexCount() = %d, want 5", got)
	}
	// Tip + base band (2 triangles) = 3.
	if got := out.Geometry.TriangleCount(); got != 3 {
		t.Fatalf("TriangleCount() = %d, want 3", got)
	}
}
