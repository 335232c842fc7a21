package bsp

// node is one arena slot of a Tree. front/back are indices into Tree.nodes,
// or -1 when absent. Storing the tree as a flat slice (per §9's "Vec<Node>
// with Option<NodeId>" suggestion) lets every traversal below run with an
// explicit stack instead of native recursion.
type node struct {
	plane    Plane
	polygons []Polygon
	front    int
	back     int
}

// Tree is a BSP tree of polygons.
type Tree struct {
	nodes []node
}

// NewTree builds a Tree from an initial polygon list. An empty list yields
// an empty tree (no root node).
func NewTree(polygons []Polygon) *Tree {
	t := &Tree{}
	t.Build(polygons)
	return t
}

func (t *Tree) newNode() int {
	t.nodes = append(t.nodes, node{front: -1, back: -1})
	return len(t.nodes) - 1
}

// Build inserts polygons into the tree, choosing the first incoming
// polygon's plane as the split plane at each newly created node (§4.13).
func (t *Tree) Build(polygons []Polygon) {
	if len(polygons) == 0 {
		return
	}
	root := 0
	firstNew := len(t.nodes)
	if len(t.nodes) == 0 {
		root = t.newNode()
	}

	type job struct {
		idx   int
		polys []Polygon
	}
	stack := []job{{root, polygons}}

	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		idx := j.idx

		if idx >= firstNew && len(t.nodes[idx].polygons) == 0 && len(j.polys) > 0 {
			t.nodes[idx].plane = j.polys[0].Plane
		}
		plane := t.nodes[idx].plane

		var coplanarFront, coplanarBack, frontPolys, backPolys []Polygon
		for _, p := range j.polys {
			splitPolygon(plane, p, &coplanarFront, &coplanarBack, &frontPolys, &backPolys)
		}
		t.nodes[idx].polygons = append(t.nodes[idx].polygons, coplanarFront...)
		t.nodes[idx].polygons = append(t.nodes[idx].polygons, coplanarBack...)

		if len(frontPolys) > 0 {
			if t.nodes[idx].front == -1 {
				t.nodes[idx].front = t.newNode()
			}
			stack = append(stack, job{t.nodes[idx].front, frontPolys})
		}
		if len(backPolys) > 0 {
			if t.nodes[idx].back == -1 {
				t.nodes[idx].back = t.newNode()
			}
			stack = append(stack, job{t.nodes[idx].back, backPolys})
		}
	}
}

// Invert flips every polygon's winding and negates every plane in the
// tree, swapping front/back child pointers — an operation over the whole
// arena in a single flat pass, since the arena already is the traversal.
func (t *Tree) Invert() {
	for i := range t.nodes {
		n := &t.nodes[i]
		n.plane = n.plane.negate()
		for pi := range n.polygons {
			n.polygons[pi] = n.polygons[pi].invert()
		}
		n.front, n.back = n.back, n.front
	}
}

// AllPolygons concatenates every node's polygon list. The arena is already
// flat, so this needs no traversal stack.
func (t *Tree) AllPolygons() []Polygon {
	var out []Polygon
	for _, n := range t.nodes {
		out = append(out, n.polygons...)
	}
	return out
}

// ClipPolygons recursively splits polygons against the tree starting at
// its root, keeping the front result when no front child exists and
// discarding the back result when no back child exists (§4.13). An empty
// tree (no root node) returns the input unchanged.
func (t *Tree) ClipPolygons(polygons []Polygon) []Polygon {
	if len(t.nodes) == 0 {
		return polygons
	}

	type job struct {
		idx    int
		polys  []Polygon
		isBack bool
	}
	var output []Polygon
	stack := []job{{0, polygons, false}}

	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if j.idx == -1 {
			if !j.isBack {
				output = append(output, j.polys...)
			}
			continue
		}

		n := t.nodes[j.idx]
		var coplanarFront, coplanarBack, frontPolys, backPolys []Polygon
		for _, p := range j.polys {
			splitPolygon(n.plane, p, &coplanarFront, &coplanarBack, &frontPolys, &backPolys)
		}
		frontPolys = append(frontPolys, coplanarFront...)
		backPolys = append(backPolys, coplanarBack...)

		stack = append(stack, job{n.front, frontPolys, false})
		stack = append(stack, job{n.back, backPolys, true})
	}

	return output
}

// ClipTo clips every node's own polygon list in this tree against other,
// per §4.13: `A.polygons <- clipPolygons(B, A.polygons)` applied at every
// node of A, not only its root.
func (t *Tree) ClipTo(other *Tree) {
	if len(t.nodes) == 0 {
		return
	}
	stack := []int{0}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t.nodes[idx].polygons = other.ClipPolygons(t.nodes[idx].polygons)

		if f := t.nodes[idx].front; f != -1 {
			stack = append(stack, f)
		}
		if b := t.nodes[idx].back; b != -1 {
			stack = append(stack, b)
		}
	}
}
