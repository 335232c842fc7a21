package modifier

import "github.com/chazu/meshkernel/pkg/meshkernel"

// SubdivideOptions configures Subdivide (§4.4).
type SubdivideOptions struct {
	Iterations int
	Smooth     bool
}

// Subdivide performs 1-to-4 triangle subdivision, optionally followed by a
// Catmull-Clark-flavoured smoothing pass, for Iterations full passes.
// Iterations <= 0 is a no-op (§7 regime 1).
func Subdivide(m *meshkernel.Mesh, opts SubdivideOptions) *meshkernel.Mesh {
	if opts.Iterations <= 0 {
		return m.Clone()
	}

	g := m.Geometry.Clone()
	for i := 0; i < opts.Iterations; i++ {
		g = subdivideOnce(g, opts.Smooth)
	}
	g.Rebuild()
	return m.WithGeometry(g)
}

func subdivideOnce(g *meshkernel.Geometry, smooth bool) *meshkernel.Geometry {
	originalVertexCount := uint32(g.VertexCount())

	out := &meshkernel.Geometry{
		Vertices: append([]float32(nil), g.Vertices...),
		Normals:  append([]float32(nil), g.Normals...),
		UVs:      append([]float32(nil), g.UVs...),
	}

	midpoints := make(map[meshkernel.Edge]uint32)
	midpoint := func(a, b uint32) uint32 {
		key := edgeKey(a, b)
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		pos := g.Vertex(a).Lerp(g.Vertex(b), 0.5)
		n := g.Normal(a).Lerp(g.Normal(b), 0.5).Normalize()
		ua, va := g.UV(a)
		ub, vb := g.UV(b)
		idx := out.AppendVertex(pos, n, (ua+ub)/2, (va+vb)/2)
		midpoints[key] = idx
		return idx
	}

	newIndices := make([]uint32, 0, len(g.Indices)*4)
	for t := 0; t+2 < len(g.Indices); t += 3 {
		v0, v1, v2 := g.Indices[t], g.Indices[t+1], g.Indices[t+2]
		m01 := midpoint(v0, v1)
		m12 := midpoint(v1, v2)
		m20 := midpoint(v2, v0)

		newIndices = append(newIndices,
			v0, m01, m20,
			v1, m12, m01,
			v2, m20, m12,
			m01, m12, m20,
		)
	}
	out.Indices = newIndices

	if smooth {
		smoothOriginalVertices(out, originalVertexCount)
	}

	return out
}

// smoothOriginalVertices moves every original vertex (index < vertexCount)
// 25% of the way toward the centroid of its post-split adjacency, per
// §4.4. Midpoint vertices are left untouched.
func smoothOriginalVertices(out *meshkernel.Geometry, vertexCount uint32) {
	adjacency := make(map[uint32][]uint32)
	seen := make(map[meshkernel.Edge]bool)
	for t := 0; t+2 < len(out.Indices); t += 3 {
		a, b, c := out.Indices[t], out.Indices[t+1], out.Indices[t+2]
		pairs := [3][2]uint32{{a, b}, {b, c}, {c, a}}
		for _, p := range pairs {
			key := edgeKey(p[0], p[1])
			if seen[key] {
				continue
			}
			seen[key] = true
			if p[0] < vertexCount {
				adjacency[p[0]] = append(adjacency[p[0]], p[1])
			}
			if p[1] < vertexCount {
				adjacency[p[1]] = append(adjacency[p[1]], p[0])
			}
		}
	}

	for v, neighbors := range adjacency {
		if len(neighbors) == 0 {
			continue
		}
		centroid := out.Vertex(neighbors[0])
		for _, n := range neighbors[1:] {
			centroid = centroid.Add(out.Vertex(n))
		}
		centroid = centroid.Scale(1 / float32(len(neighbors)))

		orig := out.Vertex(v)
		moved := orig.Lerp(centroid, 0.25)
		out.SetVertex(v, moved)
	}
}
