package modifier

import "testing"

func TestSolidifyCreatesTwoShells(t *testing.T) {
	m := twoTriangleQuad(t)
	out := Solidify(m, SolidifyOptions{Thickness: 0.2, Offset: 0})

	if got := out.Geometry.VertexCount(); got != m.Geometry.VertexCount()*2 {
		t.Fatalf("VertexCount() = %d, want %d", got, m.Geometry.VertexCount()*2)
	}
	if got := out.Geometry.TriangleCount(); got != m.Geometry.TriangleCount()*2 {
		t.Fatalf("TriangleCount() = %d, want %d", got, m.Geometry.TriangleCount()*2)
	}
}

func TestSolidifyFillRimAddsBoundaryQuads(t *testing.T) {
	m := twoTriangleQuad(t) // 4 boundary edges around the quad perimeter
	withoutRim := Solidify(m, SolidifyOptions{Thickness: 0.2, Offset: 0})
	withRim := Solidify(m, SolidifyOptions{Thickness: 0.2, Offset: 0, FillRim: true})

	if withRim.Geometry.TriangleCount() <= withoutRim.Geometry.TriangleCount() {
		t.Fatalf("expected FillRim to add triangles")
	}
	if err := withRim.Geometry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSolidifyEvenThicknessUsesFaceDerivedNormals(t *testing.T) {
	m := twoTriangleQuad(t)
	out := Solidify(m, SolidifyOptions{Thickness: 0.2, Offset: 1, EvenThickness: true})
	if err := out.Geometry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	// The quad's winding gives a -Y geometric normal, opposite its stored +Y
	// normals, so the outer shell moves down by the full thickness.
	if p := out.Geometry.Vertex(0); !approxEqual(p.Y, -0.2) {
		t.Errorf("outer vertex 0 y = %v, want -0.2 (face-derived normal)", p.Y)
	}
}
