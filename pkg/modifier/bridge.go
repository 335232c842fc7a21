package modifier

import (
	"math"

	"github.com/chazu/meshkernel/pkg/meshkernel"
)

// BlendCurve selects the intermediate-loop reshaping curve for Bridge (§4.11).
type BlendCurve int

const (
	BlendLinear BlendCurve = iota
	BlendSmooth
	BlendSphere
)

// BridgeOptions configures Bridge (§4.11).
type BridgeOptions struct {
	Twist      int
	Segments   int
	Smoothness float32
	Blend      BlendCurve
}

// Bridge connects two vertex-index loops L1, L2 with Segments-1 intermediate
// loops, aligning them by minimal total offset distance when they're the
// same length and untwisted, or by the explicit Twist otherwise.
func Bridge(m *meshkernel.Mesh, l1, l2 []uint32, opts BridgeOptions) *meshkernel.Mesh {
	if len(l1) < 3 || len(l2) < 3 || opts.Segments < 1 {
		return m.Clone()
	}

	g := m.Geometry
	out := g.Clone()

	offset := opts.Twist
	if len(l1) == len(l2) && opts.Twist == 0 {
		offset = bestAlignmentOffset(g, l1, l2)
	}

	n := len(l1)
	aligned2 := make([]uint32, n)
	for i := 0; i < n; i++ {
		aligned2[i] = l2[((i+offset)%len(l2)+len(l2))%len(l2)]
	}

	loops := make([][]uint32, opts.Segments+1)
	loops[0] = l1
	loops[opts.Segments] = aligned2
	for s := 1; s < opts.Segments; s++ {
		t := float32(s) / float32(opts.Segments)
		shaped := shapeBlend(opts.Blend, t)
		loops[s] = make([]uint32, n)
		for i := 0; i < n; i++ {
			loops[s][i] = bridgeIntermediateVertex(out, g, l1[i], aligned2[i], shaped, opts.Smoothness)
		}
	}

	for s := 0; s+1 < len(loops); s++ {
		a, b := loops[s], loops[s+1]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			out.AppendTriangle(a[i], a[j], b[j])
			out.AppendTriangle(a[i], b[j], b[i])
		}
	}

	out.Rebuild()
	return m.WithGeometry(out)
}

func shapeBlend(blend BlendCurve, t float32) float32 {
	switch blend {
	case BlendSmooth:
		return 3*t*t - 2*t*t*t
	case BlendSphere:
		d := 2*t - 1
		return 0.5*float32(math.Sqrt(float64(1-d*d))) + 0.5
	default:
		return t
	}
}

func bridgeIntermediateVertex(out, g *meshkernel.Geometry, v1, v2 uint32, t, smoothness float32) uint32 {
	p1, p2 := g.Vertex(v1), g.Vertex(v2)
	n1, n2 := g.Normal(v1), g.Normal(v2)
	pos := p1.Lerp(p2, t)
	if smoothness > 0 {
		sumNormal := n1.Add(n2)
		if sumNormal.LenSq() > 0 {
			bulge := float32(math.Sin(math.Pi*float64(t))) * smoothness * p1.Distance(p2) * 0.25
			pos = pos.Add(sumNormal.Normalize().Scale(bulge))
		}
	}
	n := n1.Lerp(n2, t).Normalize()
	u1, v1uv := g.UV(v1)
	u2, v2uv := g.UV(v2)
	return out.AppendVertex(pos, n, u1+(u2-u1)*t, v1uv+(v2uv-v1uv)*t)
}

// bestAlignmentOffset picks the rotational offset of l2 that minimises the
// sum of distances to l1, per §4.11.
func bestAlignmentOffset(g *meshkernel.Geometry, l1, l2 []uint32) int {
	n := len(l2)
	best, bestCost := 0, float32(math.MaxFloat32)
	for off := 0; off < n; off++ {
		var cost float32
		for i := range l1 {
			p1 := g.Vertex(l1[i])
			p2 := g.Vertex(l2[(i+off)%n])
			cost += p1.Distance(p2)
		}
		if cost < bestCost {
			bestCost, best = cost, off
		}
	}
	return best
}

// DetectEdgeLoops builds an adjacency map from the given edges and walks
// unvisited neighbours to form loops of length >= 3 (§4.11).
func DetectEdgeLoops(edges []meshkernel.Edge) [][]uint32 {
	adjacency := make(map[uint32][]uint32)
	for _, e := range edges {
		adjacency[e.A] = append(adjacency[e.A], e.B)
		adjacency[e.B] = append(adjacency[e.B], e.A)
	}

	visited := make(map[meshkernel.Edge]bool)
	var loops [][]uint32

	for _, e := range edges {
		if visited[edgeKey(e.A, e.B)] {
			continue
		}
		loop := walkLoop(adjacency, visited, e.A)
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

func walkLoop(adjacency map[uint32][]uint32, visited map[meshkernel.Edge]bool, start uint32) []uint32 {
	loop := []uint32{start}
	current := start
	for {
		var next uint32
		found := false
		for _, n := range adjacency[current] {
			key := edgeKey(current, n)
			if !visited[key] {
				visited[key] = true
				next = n
				found = true
				break
			}
		}
		if !found {
			break
		}
		if next == start {
			break
		}
		loop = append(loop, next)
		current = next
	}
	return loop
}
