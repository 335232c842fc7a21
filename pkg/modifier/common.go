// Package modifier implements the mesh operators of §4.3-§4.12: extrude,
// subdivide, loop cut, bevel, mirror, array, solidify, knife, bridge and
// decimate, plus the Boolean CSG wrapper whose BSP kernel lives in the bsp
// subpackage. Each operator here is a pure
// function (Mesh, Options) -> Mesh, following the contract of §2 and §5.
package modifier

import "github.com/chazu/meshkernel/pkg/meshkernel"

// edgeKey canonicalizes an unordered vertex pair the way §3 mandates for
// the derived Edges list: a < b.
func edgeKey(a, b uint32) meshkernel.Edge {
	if a > b {
		a, b = b, a
	}
	return meshkernel.Edge{A: a, B: b}
}

// faceTriangles returns the three vertex indices of each selected face.
func faceTriangles(g *meshkernel.Geometry, faceIndices []int) [][3]uint32 {
	tris := make([][3]uint32, 0, len(faceIndices))
	for _, fi := range faceIndices {
		a, b, c := g.Triangle(fi)
		tris = append(tris, [3]uint32{a, b, c})
	}
	return tris
}

// selectedVertexSet returns the set of distinct vertex indices referenced
// by the given triangles, plus a stable ordering of that set.
func selectedVertexSet(tris [][3]uint32) (order []uint32, set map[uint32]bool) {
	set = make(map[uint32]bool)
	for _, tri := range tris {
		for _, v := range tri {
			if !set[v] {
				set[v] = true
				order = append(order, v)
			}
		}
	}
	return order, set
}

// boundaryEdgesOfSelection returns the edges of the selected triangles that
// are not shared with another selected triangle, i.e. the boundary of the
// selection (§4.3, §4.9). Equality is checked both directions, matching an
// unordered edge.
func boundaryEdgesOfSelection(tris [][3]uint32) []meshkernel.Edge {
	count := make(map[meshkernel.Edge]int)
	order := make([]meshkernel.Edge, 0)
	for _, tri := range tris {
		edges := [3]meshkernel.Edge{
			edgeKey(tri[0], tri[1]),
			edgeKey(tri[1], tri[2]),
			edgeKey(tri[2], tri[0]),
		}
		for _, e := range edges {
			if count[e] == 0 {
				order = append(order, e)
			}
			count[e]++
		}
	}

	boundary := make([]meshkernel.Edge, 0, len(order))
	for _, e := range order {
		if count[e] == 1 {
			boundary = append(boundary, e)
		}
	}
	return boundary
}

// boundaryEdgesOfMesh returns every edge that appears in exactly one
// triangle of the whole geometry (§4.9, glossary "boundary edge").
func boundaryEdgesOfMesh(g *meshkernel.Geometry) []meshkernel.Edge {
	count := make(map[meshkernel.Edge]int)
	order := make([]meshkernel.Edge, 0)
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		edges := [3]meshkernel.Edge{edgeKey(a, b), edgeKey(b, c), edgeKey(c, a)}
		for _, e := range edges {
			if count[e] == 0 {
				order = append(order, e)
			}
			count[e]++
		}
	}

	boundary := make([]meshkernel.Edge, 0)
	for _, e := range order {
		if count[e] == 1 {
			boundary = append(boundary, e)
		}
	}
	return boundary
}

// directedBoundaryEdge returns the (a,b) orientation of a boundary edge as
// it actually occurs in one of the selected triangles (CCW winding), so
// that side faces built from it point outward correctly.
func directedBoundaryEdge(tris [][3]uint32, e meshkernel.Edge) (a, b uint32) {
	for _, tri := range tris {
		for i := 0; i < 3; i++ {
			x, y := tri[i], tri[(i+1)%3]
			if edgeKey(x, y) == e {
				return x, y
			}
		}
	}
	return e.A, e.B
}
