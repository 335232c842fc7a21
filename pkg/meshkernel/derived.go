package meshkernel

import "github.com/chazu/meshkernel/pkg/vecmath"

// RebuildEdgesAndFaces reconstructs the derived Edges and Faces lists for
// indices, skipping degenerate triangles (repeated indices), per §3
// invariant 3 and §4.1. Face.Normal is taken from the vertex normal of the
// triangle's first vertex, the cheap proxy §4.1 prescribes for callers that
// have not computed anything better.
func RebuildEdgesAndFaces(indices []uint32, normals []float32) ([]Edge, []Face) {
	edgeSet := make(map[Edge]struct{})
	faces := make([]Face, 0, len(indices)/3)

	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		if a == b || b == c || a == c {
			continue
		}

		addEdge(edgeSet, a, b)
		addEdge(edgeSet, b, c)
		addEdge(edgeSet, c, a)

		faces = append(faces, Face{
			VertexIndices: [3]uint32{a, b, c},
			Normal:        vertexNormalAt(normals, a),
		})
	}

	edges := make([]Edge, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	return edges, faces
}

func addEdge(set map[Edge]struct{}, a, b uint32) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	set[Edge{A: a, B: b}] = struct{}{}
}

func vertexNormalAt(normals []float32, i uint32) vecmath.Vec3 {
	o := int(i) * 3
	if o+2 >= len(normals) {
		return vecmath.Zero
	}
	return vecmath.Vec3{X: normals[o], Y: normals[o+1], Z: normals[o+2]}
}

// Rebuild recomputes g.Edges and g.Faces in place from g.Indices and
// g.Normals. Every operator calls this as its last step (§4.1).
func (g *Geometry) Rebuild() {
	g.Edges, g.Faces = RebuildEdgesAndFaces(g.Indices, g.Normals)
}

// RecomputeVertexNormals overwrites g.Normals by accumulating area-weighted
// face normals per vertex and renormalizing (§4.1). Used whenever positions
// are authoritative and vertices may occupy unmapped positions: decimation,
// sculpting, and any operator that creates geometry from scratch. Isolated
// vertices with no incident face are left as the zero vector, per the §8
// invariant allowing unit-length-or-explicitly-zero normals.
func (g *Geometry) RecomputeVertexNormals() {
	n := g.VertexCount()
	accum := make([]vecmath.Vec3, n)

	for t := 0; t+2 < len(g.Indices); t += 3 {
		a, b, c := g.Indices[t], g.Indices[t+1], g.Indices[t+2]
		if a == b || b == c || a == c {
			continue
		}
		pa, pb, pc := g.Vertex(a), g.Vertex(b), g.Vertex(c)
		// The cross product's magnitude is twice the triangle's area, so
		// accumulating it unnormalized naturally area-weights the average.
		faceNormal := vecmath.TriangleNormal(pa, pb, pc)
		accum[a] = accum[a].Add(faceNormal)
		accum[b] = accum[b].Add(faceNormal)
		accum[c] = accum[c].Add(faceNormal)
	}

	for i := 0; i < n; i++ {
		g.SetNormal(uint32(i), accum[i].Normalize())
	}
}
