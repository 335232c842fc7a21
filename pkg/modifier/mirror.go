package modifier

import "github.com/chazu/meshkernel/pkg/meshkernel"

// MirrorOptions configures Mirror (§4.7).
type MirrorOptions struct {
	AxisIdx        int // 0=X, 1=Y, 2=Z
	FlipNormals    bool
	Merge          bool
	MergeThreshold float32
}

// Mirror duplicates every vertex across the plane perpendicular to AxisIdx,
// flips the winding of every mirrored triangle, and concatenates the
// original and mirrored geometry. When Merge is set, a vertex within
// MergeThreshold of the mirror plane is reused instead of duplicated so the
// seam doesn't double up.
func Mirror(m *meshkernel.Mesh, opts MirrorOptions) *meshkernel.Mesh {
	g := m.Geometry
	out := g.Clone()

	n := g.VertexCount()
	remap := make([]uint32, n)
	for v := 0; v < n; v++ {
		pos := g.Vertex(uint32(v))
		onPlane := opts.Merge && absf(pos.Component(opts.AxisIdx)) < opts.MergeThreshold
		if onPlane {
			remap[v] = uint32(v)
			continue
		}

		mirroredPos := pos.WithComponent(opts.AxisIdx, -pos.Component(opts.AxisIdx))
		norm := g.Normal(uint32(v))
		if opts.FlipNormals {
			norm = norm.WithComponent(opts.AxisIdx, -norm.Component(opts.AxisIdx))
		}
		u, uvV := g.UV(uint32(v))
		if opts.AxisIdx == 0 {
			u = 1 - u
		}
		remap[v] = out.AppendVertex(mirroredPos, norm, u, uvV)
	}

	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		// Reverse winding (a,c,b) so the mirrored triangle remains front-facing.
		out.AppendTriangle(remap[a], remap[c], remap[b])
	}

	out.Rebuild()
	return m.WithGeometry(out)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
