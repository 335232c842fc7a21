package modifier

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// KnifeOptions configures Knife (§4.10). AngleConstraint is stored for host
// use but not enforced by the kernel.
type KnifeOptions struct {
	ThroughCut      bool
	AngleConstraint float32
}

const knifeExtend = 1000
const knifeEpsilon = 1e-6

// knifeHit records a single segment-triangle intersection.
type knifeHit struct {
	triangle int
	ba, bb, bc float32 // barycentric weights at a, b, c
}

// Knife cuts the mesh along a world-space polyline. Each consecutive segment
// is (optionally) extended and intersected against every triangle via a
// segment-triangle Möller-Trumbore variant; each hit triangle is
// retriangulated around the new edge-split vertex (or vertices).
func Knife(m *meshkernel.Mesh, polyline []vecmath.Vec3, opts KnifeOptions) *meshkernel.Mesh {
	if len(polyline) < 2 {
		return m.Clone()
	}

	g := m.Geometry
	out := g.Clone()

	hitsByTriangle := make(map[int][]knifeHit)
	for i := 0; i+1 < len(polyline); i++ {
		p0, p1 := polyline[i], polyline[i+1]
		if opts.ThroughCut {
			dir := p1.Sub(p0).Normalize()
			p0 = p0.Sub(dir.Scale(knifeExtend))
			p1 = p1.Add(dir.Scale(knifeExtend))
		}
		for t := 0; t < g.TriangleCount(); t++ {
			a, b, c := g.Triangle(t)
			if hit, ok := intersectSegmentTriangle(p0, p1, g.Vertex(a), g.Vertex(b), g.Vertex(c)); ok {
				hitsByTriangle[t] = append(hitsByTriangle[t], hit)
			}
		}
	}

	newIndices := make([]uint32, 0, len(g.Indices))
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		hits := hitsByTriangle[t]
		switch len(hits) {
		case 0:
			newIndices = append(newIndices, a, b, c)
		case 1:
			newIndices = append(newIndices, retriangulateKnifeOneCut(out, g, a, b, c, hits[0])...)
		case 2:
			tris, ok := retriangulateKnifeTwoCuts(out, g, a, b, c, hits)
			if !ok {
				newIndices = append(newIndices, a, b, c)
				continue
			}
			newIndices = append(newIndices, tris...)
		default:
			newIndices = append(newIndices, a, b, c)
		}
	}
	out.Indices = newIndices

	out.Rebuild()
	return m.WithGeometry(out)
}

// intersectSegmentTriangle is Möller-Trumbore restricted to t in [0,1].
func intersectSegmentTriangle(p0, p1, a, b, c vecmath.Vec3) (knifeHit, bool) {
	dir := p1.Sub(p0)
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	h := dir.Cross(edge2)
	det := edge1.Dot(h)
	if det > -knifeEpsilon && det < knifeEpsilon {
		return knifeHit{}, false
	}
	invDet := 1 / det
	s := p0.Sub(a)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return knifeHit{}, false
	}
	q := s.Cross(edge1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return knifeHit{}, false
	}
	t := edge2.Dot(q) * invDet
	if t < 0 || t > 1 {
		return knifeHit{}, false
	}
	return knifeHit{ba: 1 - u - v, bb: u, bc: v}, true
}

// splitEdgeForHit picks which edge of (a,b,c) to split per §4.10: reject
// near-vertex hits (any barycentric weight > 0.95), else split the edge
// opposite the smallest-weight vertex.
func splitEdgeForHit(g *meshkernel.Geometry, a, b, c uint32, hit knifeHit) (x, y uint32, t float32, ok bool) {
	if hit.ba > 0.95 || hit.bb > 0.95 || hit.bc > 0.95 {
		return 0, 0, 0, false
	}
	switch {
	case hit.ba <= hit.bb && hit.ba <= hit.bc:
		return b, c, hit.bb / (hit.bb + hit.bc), true
	case hit.bb <= hit.ba && hit.bb <= hit.bc:
		return c, a, hit.bc / (hit.bc + hit.ba), true
	default:
		return a, b, hit.ba / (hit.ba + hit.bb), true
	}
}

func splitVertex(out, g *meshkernel.Geometry, x, y uint32, t float32) uint32 {
	pos := g.Vertex(x).Lerp(g.Vertex(y), t)
	n := g.Normal(x).Lerp(g.Normal(y), t).Normalize()
	ux, vx := g.UV(x)
	uy, vy := g.UV(y)
	return out.AppendVertex(pos, n, ux+(uy-ux)*t, vx+(vy-vx)*t)
}

func retriangulateKnifeOneCut(out, g *meshkernel.Geometry, a, b, c uint32, hit knifeHit) []uint32 {
	x, y, t, ok := splitEdgeForHit(g, a, b, c, hit)
	if !ok {
		return []uint32{a, b, c}
	}
	s := splitVertex(out, g, x, y, t)
	opposite := thirdVertex(a, b, c, x, y)
	return []uint32{opposite, x, s, opposite, s, y}
}

func retriangulateKnifeTwoCuts(out, g *meshkernel.Geometry, a, b, c uint32, hits []knifeHit) ([]uint32, bool) {
	x1, y1, t1, ok1 := splitEdgeForHit(g, a, b, c, hits[0])
	x2, y2, t2, ok2 := splitEdgeForHit(g, a, b, c, hits[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	e1, e2 := edgeKey(x1, y1), edgeKey(x2, y2)
	if e1 == e2 {
		return nil, false // both cuts landed on the same edge; not the adjacent-edges case
	}
	shared, ok := sharedVertex(e1, e2)
	if !ok {
		return nil, false // opposite edges: impossible in a triangle but guarded
	}
	s1 := splitVertex(out, g, x1, y1, t1)
	s2 := splitVertex(out, g, x2, y2, t2)
	o1 := otherEndpoint(e1, shared)
	o2 := otherEndpoint(e2, shared)
	return []uint32{shared, s1, s2, s1, o1, o2, s1, o2, s2}, true
}

func thirdVertex(a, b, c, x, y uint32) uint32 {
	for _, v := range [3]uint32{a, b, c} {
		if v != x && v != y {
			return v
		}
	}
	return a
}

func sharedVertex(e1, e2 meshkernel.Edge) (uint32, bool) {
	switch {
	case e1.A == e2.A || e1.A == e2.B:
		return e1.A, true
	case e1.B == e2.A || e1.B == e2.B:
		return e1.B, true
	default:
		return 0, false
	}
}

func otherEndpoint(e meshkernel.Edge, v uint32) uint32 {
	if e.A == v {
		return e.B
	}
	return e.A
}

// KnifeProject flattens the projected mesh's edge endpoints into a polyline
// (in the order the edges are given) and delegates to Knife with
// ThroughCut forced true, per §4.10.
func KnifeProject(m *meshkernel.Mesh, projected *meshkernel.Mesh, edges []meshkernel.Edge, opts KnifeOptions) *meshkernel.Mesh {
	polyline := make([]vecmath.Vec3, 0, len(edges)*2)
	for _, e := range edges {
		polyline = append(polyline, projected.Geometry.Vertex(e.A), projected.Geometry.Vertex(e.B))
	}
	opts.ThroughCut = true
	return Knife(m, polyline, opts)
}
