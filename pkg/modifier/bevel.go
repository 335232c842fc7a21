package modifier

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// BevelOptions configures Bevel (§4.6).
type BevelOptions struct {
	Amount   float32
	Segments int // accepted but collapsed to a single ring; see doc comment.
}

// Bevel approximates a chamfer: for each selected edge and each adjacent
// face, it clones both endpoints offset perpendicular to the edge within
// that face's plane, rewires triangles onto the first clone of each
// endpoint, and bridges originals to clones with ribbon quads. Segments > 1
// is accepted but always produces a single ring — a known simplification
// carried over from §4.6.
func Bevel(m *meshkernel.Mesh, edges []meshkernel.Edge, opts BevelOptions) *meshkernel.Mesh {
	if len(edges) == 0 {
		return m.Clone()
	}

	g := m.Geometry
	selected := make(map[meshkernel.Edge]bool, len(edges))
	for _, e := range edges {
		selected[edgeKey(e.A, e.B)] = true
	}

	out := g.Clone()
	// first clone made for each original vertex; later clones of the same
	// vertex are still created (so ribbon quads exist per-face) but triangle
	// rewiring always uses this first one, per §4.6's "simple implementation".
	firstClone := make(map[uint32]uint32)

	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		tri := [3]uint32{a, b, c}
		faceNormal := vecmath.TriangleNormal(g.Vertex(a), g.Vertex(b), g.Vertex(c))

		for i := 0; i < 3; i++ {
			x, y := tri[i], tri[(i+1)%3]
			if !selected[edgeKey(x, y)] {
				continue
			}
			edgeDir := g.Vertex(y).Sub(g.Vertex(x)).Normalize()
			perp := edgeDir.Cross(faceNormal).Normalize()
			offset := perp.Scale(opts.Amount)

			cx := cloneVertexOffset(out, g, x, offset)
			cy := cloneVertexOffset(out, g, y, offset)
			if _, ok := firstClone[x]; !ok {
				firstClone[x] = cx
			}
			if _, ok := firstClone[y]; !ok {
				firstClone[y] = cy
			}

			out.AppendTriangle(x, y, cy)
			out.AppendTriangle(x, cy, cx)
		}
	}

	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		base := t * 3
		if cl, ok := firstClone[a]; ok {
			out.Indices[base] = cl
		}
		if cl, ok := firstClone[b]; ok {
			out.Indices[base+1] = cl
		}
		if cl, ok := firstClone[c]; ok {
			out.Indices[base+2] = cl
		}
	}

	out.Rebuild()
	return m.WithGeometry(out)
}

func cloneVertexOffset(out, g *meshkernel.Geometry, v uint32, offset vecmath.Vec3) uint32 {
	pos := g.Vertex(v).Add(offset)
	u, uvV := g.UV(v)
	return out.AppendVertex(pos, g.Normal(v), u, uvV)
}
