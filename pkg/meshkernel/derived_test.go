package meshkernel

import "testing"

func TestRebuildEdgesAndFacesDedupes(t *testing.T) {
	// Two triangles sharing edge (1,2): (0,1,2) and (2,1,3).
	indices := []uint32{0, 1, 2, 2, 1, 3}
	normals := make([]float32, 4*3)

	edges, faces := RebuildEdgesAndFaces(indices, normals)

	if len(faces) != 2 {
		t.Fatalf("len(faces) = %d, want 2", len(faces))
	}

	want := map[Edge]bool{
		{A: 0, B: 1}: true,
		{A: 1, B: 2}: true,
		{A: 0, B: 2}: true,
		{A: 1, B: 3}: true,
		{A: 2, B: 3}: true,
	}
	if len(edges) != len(want) {
		t.Fatalf("len(edges) = %d, want %d", len(edges), len(want))
	}
	for _, e := range edges {
		if e.A >= e.B {
			t.Errorf("edge %v does not satisfy a<b", e)
		}
		if !want[e] {
			t.Errorf("unexpected edge %v", e)
		}
	}
}

func TestRebuildEdgesAndFacesDropsDegenerate(t *testing.T) {
	indices := []uint32{0, 0, 1, 0, 1, 2}
	normals := make([]float32, 3*3)

	_, faces := RebuildEdgesAndFaces(indices, normals)
	if len(faces) != 1 {
		t.Fatalf("len(faces) = %d, want 1 (degenerate triangle dropped)", len(faces))
	}
}

func TestRecomputeVertexNormalsUnitLength(t *testing.T) {
	g := unitTriangleGeometry()
	// Corrupt the normals; RecomputeVertexNormals should derive fresh ones
	// purely from positions.
	for i := range g.Normals {
		g.Normals[i] = 0
	}
	g.RecomputeVertexNormals()

	for i := 0; i < g.VertexCount(); i++ {
		n := g.Normal(uint32(i))
		l := n.Len()
		if l < 1-1e-4 || l > 1+1e-4 {
			t.Errorf("vertex %d normal length = %v, want ~1", i, l)
		}
	}
}

func TestRecomputeVertexNormalsIsolatedVertexIsZero(t *testing.T) {
	g := &Geometry{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 5, 5, 5},
		Normals:  make([]float32, 4*3),
		UVs:      make([]float32, 4*2),
		Indices:  []uint32{0, 1, 2},
	}
	g.RecomputeVertexNormals()

	isolated := g.Normal(3)
	if isolated.Len() != 0 {
		t.Errorf("isolated vertex normal = %v, want zero vector", isolated)
	}
}
