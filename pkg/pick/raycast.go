package pick

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// epsilon is the Möller–Trumbore tolerance mandated by §4.2.
const epsilon = 1e-6

// RaycastHit describes a successful ray/mesh intersection.
type RaycastHit struct {
	Mesh     *meshkernel.Mesh
	Distance float32 // t along the ray
	Point    vecmath.Vec3
	Triangle int // index of the hit triangle, indices[3*Triangle:3*Triangle+3]
	U, V     float32
}

// Named mesh entry for scene-level raycasts.
type SceneMesh struct {
	Mesh    *meshkernel.Mesh
	Visible bool
}

// intersectTriangle implements Möller–Trumbore. Returns ok=false on a miss;
// a hit additionally requires t > epsilon per §4.2.
func intersectTriangle(ray Ray, a, b, c vecmath.Vec3) (t, u, v float32, ok bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, false // ray parallel to triangle
	}

	invDet := 1 / det
	s := ray.Origin.Sub(a)
	u = invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = invDet * edge2.Dot(q)
	if t <= epsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// worldVertex returns vertex i of g transformed into world space by tr.
func worldVertex(g *meshkernel.Geometry, tr vecmath.Transform, i uint32) vecmath.Vec3 {
	return tr.TransformPoint(g.Vertex(i))
}

// RaycastMesh intersects ray against the full index buffer of m, first
// transformed into world space by m.Transform. The hit with the smallest
// positive t wins; a miss returns ok=false.
func RaycastMesh(ray Ray, m *meshkernel.Mesh) (hit RaycastHit, ok bool) {
	g := m.Geometry
	best := RaycastHit{Distance: -1}
	found := false

	for tri := 0; tri < g.TriangleCount(); tri++ {
		ia, ib, ic := g.Triangle(tri)
		a := worldVertex(g, m.Transform, ia)
		b := worldVertex(g, m.Transform, ib)
		c := worldVertex(g, m.Transform, ic)

		t, u, v, hitOK := intersectTriangle(ray, a, b, c)
		if !hitOK {
			continue
		}
		if !found || t < best.Distance {
			best = RaycastHit{
				Mesh:     m,
				Distance: t,
				Point:    ray.Origin.Add(ray.Direction.Scale(t)),
				Triangle: tri,
				U:        u,
				V:        v,
			}
			found = true
		}
	}

	return best, found
}

// Raycast intersects ray against a scene of meshes, skipping invisible ones,
// and returns the hit with the smallest t across the whole scene (§4.2).
func Raycast(ray Ray, meshes []SceneMesh) (hit RaycastHit, ok bool) {
	best := RaycastHit{Distance: -1}
	found := false

	for _, sm := range meshes {
		if !sm.Visible || sm.Mesh == nil {
			continue
		}
		h, hitOK := RaycastMesh(ray, sm.Mesh)
		if !hitOK {
			continue
		}
		if !found || h.Distance < best.Distance {
			best = h
			found = true
		}
	}

	return best, found
}

// FindClosestVertex brute-forces every transformed vertex of m and returns
// the index of the one nearest to point (world space).
func FindClosestVertex(m *meshkernel.Mesh, point vecmath.Vec3) int {
	g := m.Geometry
	best := -1
	var bestDistSq float32

	for i := 0; i < g.VertexCount(); i++ {
		wp := worldVertex(g, m.Transform, uint32(i))
		d := wp.DistanceSq(point)
		if best == -1 || d < bestDistSq {
			best = i
			bestDistSq = d
		}
	}
	return best
}

// IsPointNearEdge projects point onto the transformed segment for edgeIdx
// (clamped to [0,1]) and reports whether the Euclidean distance is within
// threshold.
func IsPointNearEdge(m *meshkernel.Mesh, point vecmath.Vec3, edgeIdx int, threshold float32) bool {
	g := m.Geometry
	if edgeIdx < 0 || edgeIdx >= len(g.Edges) {
		return false
	}
	e := g.Edges[edgeIdx]
	a := worldVertex(g, m.Transform, e.A)
	b := worldVertex(g, m.Transform, e.B)

	closest, _ := vecmath.ClosestPointOnSegment(point, a, b)
	return closest.Distance(point) <= threshold
}
