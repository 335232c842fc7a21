package modifier

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// ExtrudeOptions configures Extrude (§4.3).
type ExtrudeOptions struct {
	Distance   float32
	UseNormals bool
}

// Extrude clones the vertices of the selected faces, offsets the clones
// along a normal, remaps the selected triangles onto the clones, and seams
// the gap with side quads along the selection boundary. An empty selection
// is a no-op (§7 regime 1): the input is returned, defensively copied.
func Extrude(m *meshkernel.Mesh, faceIndices []int, opts ExtrudeOptions) *meshkernel.Mesh {
	if len(faceIndices) == 0 {
		return m.Clone()
	}

	g := m.Geometry
	tris := faceTriangles(g, faceIndices)
	selectedVerts, _ := selectedVertexSet(tris)

	avgNormal := averageFaceNormal(g, tris)

	out := g.Clone()
	clone := make(map[uint32]uint32, len(selectedVerts))
	for _, v := range selectedVerts {
		var n vecmath.Vec3
		if opts.UseNormals {
			n = g.Normal(v)
		} else {
			n = avgNormal
		}
		newPos := g.Vertex(v).Add(n.Scale(opts.Distance))
		u, uvV := g.UV(v)
		clone[v] = out.AppendVertex(newPos, n, u, uvV)
	}

	// Remap selected triangles onto their clones in place: the cap replaces
	// the original faces, and the original vertices remain only as the base
	// of the side walls built below.
	for _, fi := range faceIndices {
		a, b, c := g.Triangle(fi)
		base := fi * 3
		out.Indices[base] = clone[a]
		out.Indices[base+1] = clone[b]
		out.Indices[base+2] = clone[c]
	}

	boundary := boundaryEdgesOfSelection(tris)
	for _, e := range boundary {
		a, b := directedBoundaryEdge(tris, e)
		aPrime, bPrime := clone[a], clone[b]
		// Side quad a -> b -> b' -> a', split into two triangles.
		out.AppendTriangle(a, b, bPrime)
		out.AppendTriangle(a, bPrime, aPrime)
	}

	out.Rebuild()
	return m.WithGeometry(out)
}

// averageFaceNormal sums and normalizes the geometric normals of the given
// triangles, the §4.3 fallback used when UseNormals is false.
func averageFaceNormal(g *meshkernel.Geometry, tris [][3]uint32) vecmath.Vec3 {
	var sum vecmath.Vec3
	for _, tri := range tris {
		a, b, c := g.Vertex(tri[0]), g.Vertex(tri[1]), g.Vertex(tri[2])
		sum = sum.Add(vecmath.TriangleNormal(a, b, c))
	}
	return sum.Normalize()
}
