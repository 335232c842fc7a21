package modifier

import "github.com/chazu/meshkernel/pkg/meshkernel"

// LoopCutOptions configures LoopCut (§4.5).
type LoopCutOptions struct {
	NumberOfCuts int
}

// LoopCut inserts NumberOfCuts evenly spaced cut vertices along each selected
// edge, then retriangulates every triangle touching a cut edge. Triangles
// with all three edges cut are a rare, undocumented case; this core falls
// back to keeping such a triangle unchanged, per the §4.5 "3 cuts" fallback
// extended to the symmetric case.
func LoopCut(m *meshkernel.Mesh, edges []meshkernel.Edge, opts LoopCutOptions) *meshkernel.Mesh {
	if len(edges) == 0 || opts.NumberOfCuts <= 0 {
		return m.Clone()
	}

	g := m.Geometry
	selected := make(map[meshkernel.Edge]bool, len(edges))
	for _, e := range edges {
		selected[edgeKey(e.A, e.B)] = true
	}

	out := g.Clone()
	out.Indices = out.Indices[:0]

	// cuts[edge] is the ordered list of new vertex indices from A to B.
	cuts := make(map[meshkernel.Edge][]uint32)
	cutsFor := func(a, b uint32) []uint32 {
		key := edgeKey(a, b)
		if c, ok := cuts[key]; ok {
			return c
		}
		c := make([]uint32, opts.NumberOfCuts)
		for k := 1; k <= opts.NumberOfCuts; k++ {
			t := float32(k) / float32(opts.NumberOfCuts+1)
			pos := g.Vertex(key.A).Lerp(g.Vertex(key.B), t)
			n := g.Normal(key.A).Lerp(g.Normal(key.B), t).Normalize()
			ua, va := g.UV(key.A)
			ub, vb := g.UV(key.B)
			c[k-1] = out.AppendVertex(pos, n, ua+(ub-ua)*t, va+(vb-va)*t)
		}
		cuts[key] = c
		return c
	}

	// orderedCuts returns the cut list walking from a to b, reversing the
	// canonical (A->B) list when the triangle edge runs the other way.
	orderedCuts := func(a, b uint32) []uint32 {
		key := edgeKey(a, b)
		c := cutsFor(a, b)
		if key.A == a {
			return c
		}
		rev := make([]uint32, len(c))
		for i, v := range c {
			rev[len(c)-1-i] = v
		}
		return rev
	}

	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		abCut := selected[edgeKey(a, b)]
		bcCut := selected[edgeKey(b, c)]
		caCut := selected[edgeKey(c, a)]

		n := 0
		for _, v := range [3]bool{abCut, bcCut, caCut} {
			if v {
				n++
			}
		}

		switch n {
		case 0:
			out.AppendTriangle(a, b, c)
		case 1:
			retriangulateOneCut(out, a, b, c, abCut, bcCut, caCut, orderedCuts)
		case 2:
			retriangulateTwoCuts(out, a, b, c, abCut, bcCut, caCut, orderedCuts)
		default:
			out.AppendTriangle(a, b, c)
		}
	}

	out.Rebuild()
	return m.WithGeometry(out)
}

// retriangulateOneCut fans from the opposite vertex through [a, c1..ck, b]
// for whichever edge of (a,b,c) is cut.
func retriangulateOneCut(out *meshkernel.Geometry, a, b, c uint32, abCut, bcCut, caCut bool, orderedCuts func(x, y uint32) []uint32) {
	var u, v, opposite uint32
	switch {
	case abCut:
		u, v, opposite = a, b, c
	case bcCut:
		u, v, opposite = b, c, a
	default:
		u, v, opposite = c, a, b
	}

	seq := append([]uint32{u}, orderedCuts(u, v)...)
	seq = append(seq, v)
	for i := 0; i+1 < len(seq); i++ {
		out.AppendTriangle(opposite, seq[i], seq[i+1])
	}
}

// retriangulateTwoCuts handles two cut edges sharing a vertex s: a tip
// triangle, a strip of quads through corresponding cut pairs, and a base
// band joining the final cuts to the non-shared vertices.
func retriangulateTwoCuts(out *meshkernel.Geometry, a, b, c uint32, abCut, bcCut, caCut bool, orderedCuts func(x, y uint32) []uint32) {
	var s, o1, o2 uint32
	var seq1, seq2 []uint32
	switch {
	case abCut && bcCut:
		s, o1, o2 = b, a, c
		seq1 = orderedCuts(b, a)
		seq2 = orderedCuts(b, c)
	case bcCut && caCut:
		s, o1, o2 = c, b, a
		seq1 = orderedCuts(c, b)
		seq2 = orderedCuts(c, a)
	default: // caCut && abCut
		s, o1, o2 = a, c, b
		seq1 = orderedCuts(a, c)
		seq2 = orderedCuts(a, b)
	}

	if len(seq1) == 0 || len(seq2) == 0 || len(seq1) != len(seq2) {
		out.AppendTriangle(a, b, c)
		return
	}

	out.AppendTriangle(s, seq1[0], seq2[0])
	for i := 0; i+1 < len(seq1); i++ {
		out.AppendTriangle(seq1[i], seq1[i+1], seq2[i])
		out.AppendTriangle(seq1[i+1], seq2[i+1], seq2[i])
	}
	last := len(seq1) - 1
	out.AppendTriangle(seq1[last], o1, o2)
	out.AppendTriangle(seq1[last], o2, seq2[last])
}
