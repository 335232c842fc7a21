package modifier

import (
	"math"

	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// DecimateMode selects the decimation strategy (§4.12). Planar and
// Unsubdivide are documented aliases that currently delegate to Collapse.
type DecimateMode int

const (
	DecimateCollapse DecimateMode = iota
	DecimatePlanar
	DecimateUnsubdivide
)

// DecimateOptions configures Decimate (§4.12).
type DecimateOptions struct {
	Ratio float32
	Mode  DecimateMode
}

// quadric is the symmetric 4x4 error quadric, stored as the ten scalars of
// its upper triangle: xx, xy, xz, xw, yy, yz, yw, zz, zw, ww.
type quadric [10]float64

func planeQuadric(n vecmath.Vec3, d float64) quadric {
	nx, ny, nz := float64(n.X), float64(n.Y), float64(n.Z)
	return quadric{
		nx * nx, nx * ny, nx * nz, nx * d,
		ny * ny, ny * nz, ny * d,
		nz * nz, nz * d,
		d * d,
	}
}

func (q quadric) add(o quadric) quadric {
	var out quadric
	for i := range q {
		out[i] = q[i] + o[i]
	}
	return out
}

// evaluate computes vᵀQv for homogeneous v=(x,y,z,1).
func (q quadric) evaluate(x, y, z float64) float64 {
	return x*x*q[0] + 2*x*y*q[1] + 2*x*z*q[2] + 2*x*q[3] +
		y*y*q[4] + 2*y*z*q[5] + 2*y*q[6] +
		z*z*q[7] + 2*z*q[8] +
		q[9]
}

type decimateEdge struct{ a, b uint32 }

// Decimate reduces the mesh's triangle count to floor(T*ratio) (floor 4) by
// repeatedly collapsing the surviving edge with the lowest quadric error at
// its midpoint, per §4.12. Planar and Unsubdivide modes currently delegate
// to the same collapse procedure and are accepted without erroring.
func Decimate(m *meshkernel.Mesh, opts DecimateOptions) *meshkernel.Mesh {
	g := m.Geometry
	targetTris := int(float32(g.TriangleCount()) * opts.Ratio)
	if targetTris < 4 {
		targetTris = 4
	}
	if targetTris >= g.TriangleCount() {
		return m.Clone()
	}

	n := g.VertexCount()
	positions := make([]vecmath.Vec3, n)
	for v := 0; v < n; v++ {
		positions[v] = g.Vertex(uint32(v))
	}
	removed := make([]bool, n)
	quadrics := make([]quadric, n)
	indices := append([]uint32(nil), g.Indices...)

	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		nrm := vecmath.TriangleNormal(positions[a], positions[b], positions[c]).Normalize()
		d := -float64(nrm.Dot(positions[a]))
		q := planeQuadric(nrm, d)
		quadrics[a] = quadrics[a].add(q)
		quadrics[b] = quadrics[b].add(q)
		quadrics[c] = quadrics[c].add(q)
	}

	edgeSet := make(map[decimateEdge]bool)
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		for _, p := range [3][2]uint32{{a, b}, {b, c}, {c, a}} {
			x, y := p[0], p[1]
			if x > y {
				x, y = y, x
			}
			edgeSet[decimateEdge{x, y}] = true
		}
	}

	triCount := len(indices) / 3
	for triCount > targetTris && len(edgeSet) > 0 {
		var bestA, bestB uint32
		bestErr := math.Inf(1)
		found := false
		for e := range edgeSet {
			mid := positions[e.a].Lerp(positions[e.b], 0.5)
			err := quadrics[e.a].add(quadrics[e.b]).evaluate(float64(mid.X), float64(mid.Y), float64(mid.Z))
			if !found || err < bestErr {
				bestErr, bestA, bestB, found = err, e.a, e.b, true
			}
		}
		if !found {
			break
		}

		mid := positions[bestA].Lerp(positions[bestB], 0.5)
		positions[bestA] = mid
		quadrics[bestA] = quadrics[bestA].add(quadrics[bestB])
		removed[bestB] = true

		newIndices := make([]uint32, 0, len(indices))
		for t := 0; t+2 < len(indices); t += 3 {
			a, b, c := indices[t], indices[t+1], indices[t+2]
			if a == bestB {
				a = bestA
			}
			if b == bestB {
				b = bestA
			}
			if c == bestB {
				c = bestA
			}
			if a == b || b == c || c == a {
				continue
			}
			newIndices = append(newIndices, a, b, c)
		}
		indices = newIndices
		triCount = len(indices) / 3

		newEdgeSet := make(map[decimateEdge]bool, len(edgeSet))
		for e := range edgeSet {
			x, y := e.a, e.b
			if x == bestB {
				x = bestA
			}
			if y == bestB {
				y = bestA
			}
			if x == y {
				continue
			}
			if x > y {
				x, y = y, x
			}
			newEdgeSet[decimateEdge{x, y}] = true
		}
		edgeSet = newEdgeSet
	}

	out := compactDecimatedGeometry(g, positions, removed, indices)
	out.RecomputeVertexNormals()
	out.Rebuild()
	return m.WithGeometry(out)
}

// compactDecimatedGeometry drops removed vertices and remaps indices.
func compactDecimatedGeometry(g *meshkernel.Geometry, positions []vecmath.Vec3, removed []bool, indices []uint32) *meshkernel.Geometry {
	remap := make([]uint32, len(positions))
	out := &meshkernel.Geometry{}
	for v := range positions {
		if removed[v] {
			continue
		}
		u, uvV := g.UV(uint32(v))
		remap[v] = out.AppendVertex(positions[v], g.Normal(uint32(v)), u, uvV)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		out.AppendTriangle(remap[indices[i]], remap[indices[i+1]], remap[indices[i+2]])
	}
	return out
}
