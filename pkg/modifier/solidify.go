package modifier

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// SolidifyOptions configures Solidify (§4.9).
type SolidifyOptions struct {
	Thickness     float32
	Offset        float32 // in [-1, 1]; 0 centers the shell on the surface.
	EvenThickness bool
	FillRim       bool
}

// Solidify gives a surface mesh thickness by building an outer and an inner
// shell displaced along per-vertex normals, optionally closing the gap
// between them at boundary edges with rim quads.
func Solidify(m *meshkernel.Mesh, opts SolidifyOptions) *meshkernel.Mesh {
	g := m.Geometry
	normals := make([]vecmath.Vec3, g.VertexCount())
	for v := range normals {
		if opts.EvenThickness {
			normals[v] = evenNormalAt(g, uint32(v))
		} else {
			normals[v] = g.Normal(uint32(v))
		}
	}

	outerOffset := opts.Thickness * (opts.Offset + 1) / 2
	innerOffset := opts.Thickness * (opts.Offset - 1) / 2

	out := &meshkernel.Geometry{}
	n := g.VertexCount()

	outerBase := uint32(0)
	for v := 0; v < n; v++ {
		pos := g.Vertex(uint32(v)).Add(normals[v].Scale(outerOffset))
		u, uvV := g.UV(uint32(v))
		out.AppendVertex(pos, normals[v], u, uvV)
	}
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		out.AppendTriangle(outerBase+a, outerBase+b, outerBase+c)
	}

	innerBase := uint32(out.VertexCount())
	for v := 0; v < n; v++ {
		pos := g.Vertex(uint32(v)).Add(normals[v].Scale(innerOffset))
		u, uvV := g.UV(uint32(v))
		out.AppendVertex(pos, normals[v].Negate(), u, uvV)
	}
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		// Reversed winding for the inner shell, per §4.9.
		out.AppendTriangle(innerBase+a, innerBase+c, innerBase+b)
	}

	if opts.FillRim {
		for _, e := range boundaryEdgesOfMesh(g) {
			appendRimQuad(out, g, normals, e, outerOffset, innerOffset)
		}
	}

	out.Rebuild()
	return m.WithGeometry(out)
}

// evenNormalAt sums the geometric (area-weighted) face normals of every
// triangle incident to v and renormalizes, per §4.9's "even" normal
// definition.
func evenNormalAt(g *meshkernel.Geometry, v uint32) vecmath.Vec3 {
	var sum vecmath.Vec3
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		if a == v || b == v || c == v {
			sum = sum.Add(vecmath.TriangleNormal(g.Vertex(a), g.Vertex(b), g.Vertex(c)))
		}
	}
	if sum.LenSq() == 0 {
		return g.Normal(v)
	}
	return sum.Normalize()
}

func appendRimQuad(out, g *meshkernel.Geometry, normals []vecmath.Vec3, e meshkernel.Edge, outerOffset, innerOffset float32) {
	a, b := e.A, e.B
	outerA := g.Vertex(a).Add(normals[a].Scale(outerOffset))
	outerB := g.Vertex(b).Add(normals[b].Scale(outerOffset))
	innerA := g.Vertex(a).Add(normals[a].Scale(innerOffset))
	innerB := g.Vertex(b).Add(normals[b].Scale(innerOffset))

	edgeDir := outerB.Sub(outerA)
	rimNormal := edgeDir.Cross(innerA.Sub(outerA)).Normalize()

	i0 := out.AppendVertex(outerA, rimNormal, 0, 0)
	i1 := out.AppendVertex(outerB, rimNormal, 1, 0)
	i2 := out.AppendVertex(innerB, rimNormal, 1, 1)
	i3 := out.AppendVertex(innerA, rimNormal, 0, 1)

	out.AppendTriangle(i0, i1, i2)
	out.AppendTriangle(i0, i2, i3)
}
