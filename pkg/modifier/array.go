package modifier

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// ArrayMode selects how ArrayOptions.Offset is interpreted per copy (§4.8).
type ArrayMode int

const (
	ArrayConstant ArrayMode = iota
	ArrayRelative
	ArrayObject
)

// ArrayOptions configures Array (§4.8).
type ArrayOptions struct {
	Count          int
	Mode           ArrayMode
	Offset         vecmath.Vec3
	MergeVertices  bool
	MergeDecimals  int // precision for the close-vertex merge bucket key; 0 defaults to 4.
}

// Array produces Count rigid copies of the input, each offset by a
// per-mode step, concatenated into one geometry. Count <= 1 is a no-op.
func Array(m *meshkernel.Mesh, opts ArrayOptions) *meshkernel.Mesh {
	if opts.Count <= 1 {
		return m.Clone()
	}

	g := m.Geometry
	step := opts.Offset
	if opts.Mode == ArrayRelative {
		size := boundingBoxSize(g)
		step = vecmath.New(opts.Offset.X*size.X, opts.Offset.Y*size.Y, opts.Offset.Z*size.Z)
	}

	out := &meshkernel.Geometry{}
	for copyIdx := 0; copyIdx < opts.Count; copyIdx++ {
		translate := step.Scale(float32(copyIdx))
		base := uint32(out.VertexCount())
		for v := 0; v < g.VertexCount(); v++ {
			pos := g.Vertex(uint32(v)).Add(translate)
			u, uvV := g.UV(uint32(v))
			out.AppendVertex(pos, g.Normal(uint32(v)), u, uvV)
		}
		for t := 0; t < g.TriangleCount(); t++ {
			a, b, c := g.Triangle(t)
			out.AppendTriangle(base+a, base+b, base+c)
		}
	}

	if opts.MergeVertices {
		mergeCloseVertices(out, opts.MergeDecimals)
	}

	out.Rebuild()
	return m.WithGeometry(out)
}

func boundingBoxSize(g *meshkernel.Geometry) vecmath.Vec3 {
	if g.VertexCount() == 0 {
		return vecmath.Zero
	}
	min := g.Vertex(0)
	max := g.Vertex(0)
	for v := 1; v < g.VertexCount(); v++ {
		p := g.Vertex(uint32(v))
		min = vecmath.New(minf(min.X, p.X), minf(min.Y, p.Y), minf(min.Z, p.Z))
		max = vecmath.New(maxf(max.X, p.X), maxf(max.Y, p.Y), maxf(max.Z, p.Z))
	}
	return max.Sub(min)
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// mergeCloseVertices buckets vertices whose positions agree to `decimals`
// digits, then remaps indices onto the first vertex seen per bucket. A
// brute-force pass within a bucket is unnecessary since the key quantizes
// position directly; this matches §4.8's acceptance of an O(N) bucket pass
// given target mesh sizes.
func mergeCloseVertices(g *meshkernel.Geometry, decimals int) {
	if decimals <= 0 {
		decimals = 4
	}

	type key struct{ x, y, z int64 }
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}

	buckets := make(map[key]uint32)
	remap := make([]uint32, g.VertexCount())
	keep := &meshkernel.Geometry{}

	for v := 0; v < g.VertexCount(); v++ {
		p := g.Vertex(uint32(v))
		k := key{
			x: int64(float64(p.X) * scale),
			y: int64(float64(p.Y) * scale),
			z: int64(float64(p.Z) * scale),
		}
		if idx, ok := buckets[k]; ok {
			remap[v] = idx
			continue
		}
		u, uvV := g.UV(uint32(v))
		idx := keep.AppendVertex(p, g.Normal(uint32(v)), u, uvV)
		buckets[k] = idx
		remap[v] = idx
	}

	newIndices := make([]uint32, 0, len(g.Indices))
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		ra, rb, rc := remap[a], remap[b], remap[c]
		if ra == rb || rb == rc || rc == ra {
			continue // degenerate after merge, drop per §3's derived-data rule
		}
		newIndices = append(newIndices, ra, rb, rc)
	}

	g.Vertices = keep.Vertices
	g.Normals = keep.Normals
	g.UVs = keep.UVs
	g.Indices = newIndices
}
