package modifier

import "testing"

func TestSubdivideZeroIterationsIsNoOp(t *testing.T) {
	m := unitCubeMesh(t)
	out := Subdivide(m, SubdivideOptions{Iterations: 0})

	if out.Geometry.VertexCount() != m.Geometry.VertexCount() {
		t.Fatalf("VertexCount() = %d, want %d", out.Geometry.VertexCount(), m.Geometry.VertexCount())
	}
	if out.Geometry.TriangleCount() != m.Geometry.TriangleCount() {
		t.Fatalf("TriangleCount() = %d, want %d", out.Geometry.TriangleCount(), m.Geometry.TriangleCount())
	}
}

func TestSubdivideOnceQuadrantsTriangleCount(t *testing.T) {
	m := unitCubeMesh(t)
	out := Subdivide(m, SubdivideOptions{Iterations: 1})

	want := m.Geometry.TriangleCount() * 4
	if got := out.Geometry.TriangleCount(); got != want {
		t.Fatalf("TriangleCount() = %d, want %d", got, want)
	}
}

func TestSubdivideTwiceIs16xTriangleCount(t *testing.T) {
	m := unitCubeMesh(t)
	out := Subdivide(m, SubdivideOptions{Iterations: 2})

	want := m.Geometry.TriangleCount() * 16
	if got := out.Geometry.TriangleCount(); got != want {
		t.Fatalf("TriangleCount() = %d, want %d", got, want)
	}
}

// TestSubdivideMemoizesSharedEdgeMidpoint verifies §4.4's documented
// algorithm (memoization keyed on unordered edge) using a two-triangle quad
// where both triangles share the diagonal 0-2: the diagonal's midpoint must
// be created once and reused by both triangles, not duplicated.
func TestSubdivideMemoizesSharedEdgeMidpoint(t *testing.T) {
	m := twoTriangleQuad(t)
	out := Subdivide(m, SubdivideOptions{Iterations: 1})

	// 4 original + 5 edge midpoints (4 outer boundary edges + 1 shared
	// diagonal, deduped) = 9 vertices, not 4 + 3*2 = 10.
	if got := out.Geometry.VertexCount(); got != 9 {
		t.Fatalf("VertexCount() = %d, want 9 (shared diagonal midpoint not deduped)", got)
	}

	// Two original triangles -> 4 sub-triangles each = 8.
	if got := out.Geometry.TriangleCount(); got != 8 {
		t.Fatalf("TriangleCount() = %d, want 8", got)
	}
}

func TestSubdivideSmoothMovesOriginalVerticesTowardCentroid(t *testing.T) {
	m := twoTriangleQuad(t)
	out := Subdivide(m, SubdivideOptions{Iterations: 1, Smooth: true})

	// Original vertex 0 sat at (-1,0,-1); smoothing must move it off that
	// exact position toward the centroid of its adjacency.
	orig := m.Geometry.Vertex(0)
	moved := out.Geometry.Vertex(0)
	if vecApproxEqual(orig, moved) {
		t.Errorf("vertex 0 did not move under smoothing: stayed at %v", moved)
	}
}

func TestSubdivideUnsmoothedKeepsOriginalVerticesInPlace(t *testing.T) {
	m := twoTriangleQuad(t)
	out := Subdivide(m, SubdivideOptions{Iterations: 1, Smooth: false})

	for i := 0; i < m.Geometry.VertexCount(); i++ {
		if !vecApproxEqual(m.Geometry.Vertex(uint32(i)), out.Geometry.Vertex(uint32(i))) {
			t.Errorf("vertex %d moved without Smooth set", i)
		}
	}
}
