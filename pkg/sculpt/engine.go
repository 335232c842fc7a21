package sculpt

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

// Engine is the sole stateful component of the kernel (§5, §9): it owns
// exactly one Mesh between SetMesh calls and mutates its vertex positions
// in place in response to pointer events.
type Engine struct {
	mesh     *meshkernel.Mesh
	settings BrushSettings
	symmetry [3]bool // X, Y, Z mirror planes

	snapshot  []vecmath.Vec3
	inStroke  bool
	adjacency [][]uint32
}

// NewEngine returns an Engine with no bound mesh.
func NewEngine() *Engine {
	return &Engine{}
}

// SetMesh binds mesh to the engine, releasing any previously bound mesh.
// Any in-progress stroke is discarded.
func (e *Engine) SetMesh(mesh *meshkernel.Mesh) {
	e.mesh = mesh
	e.inStroke = false
	e.snapshot = nil
	e.adjacency = buildAdjacency(mesh.Geometry)
}

// SetBrushSettings replaces the active brush configuration.
func (e *Engine) SetBrushSettings(settings BrushSettings) {
	e.settings = settings
}

// SetSymmetry enables or disables mirroring across the given axis
// (0=X, 1=Y, 2=Z).
func (e *Engine) SetSymmetry(axis int, on bool) {
	if axis < 0 || axis > 2 {
		return
	}
	e.symmetry[axis] = on
}

// BeginStroke snapshots the current vertex positions so UndoStroke can
// restore them, and marks a stroke as active.
func (e *Engine) BeginStroke(hit vecmath.Vec3) {
	if e.mesh == nil {
		return
	}
	n := e.mesh.Geometry.VertexCount()
	e.snapshot = make([]vecmath.Vec3, n)
	for i := 0; i < n; i++ {
		e.snapshot[i] = e.mesh.Geometry.Vertex(uint32(i))
	}
	e.inStroke = true
}

// UpdateStroke applies one brush step at hitPoint with world-space delta,
// then replays the same step for every enabled symmetry plane with
// hitPoint and delta reflected across that axis (§4.14 step 5). A no-op
// before BeginStroke (§7).
func (e *Engine) UpdateStroke(hitPoint, delta vecmath.Vec3) {
	if e.mesh == nil || !e.inStroke {
		return
	}

	e.applyStroke(hitPoint, delta)
	for axis := 0; axis < 3; axis++ {
		if !e.symmetry[axis] {
			continue
		}
		e.applyStroke(reflect(hitPoint, axis), reflect(delta, axis))
	}
}

func reflect(v vecmath.Vec3, axis int) vecmath.Vec3 {
	return v.WithComponent(axis, -v.Component(axis))
}

func (e *Engine) applyStroke(hitPoint, delta vecmath.Vec3) {
	g := e.mesh.Geometry
	radius := e.settings.Radius
	if radius <= 0 {
		return
	}
	strength := e.settings.Strength
	if e.settings.Invert {
		strength = -strength
	}

	flattenNormal, flattenOK := e.averageNormalNear(hitPoint, radius)

	n := g.VertexCount()
	offsets := make([]vecmath.Vec3, n)
	touched := make([]bool, n)
	for v := 0; v < n; v++ {
		pos := g.Vertex(uint32(v))
		d := pos.Distance(hitPoint)
		if d > radius {
			continue
		}
		t := d / radius
		w := falloffWeight(t, e.settings.Falloff, uint32(v)) * strength

		offsets[v] = brushOffset(e.settings.Type, g, uint32(v), pos, hitPoint, delta, w, radius, e.adjacency, flattenNormal, flattenOK)
		touched[v] = true
	}

	for v := 0; v < n; v++ {
		if touched[v] {
			g.SetVertex(uint32(v), g.Vertex(uint32(v)).Add(offsets[v]))
		}
	}
}

func brushOffset(brush BrushType, g *meshkernel.Geometry, v uint32, pos, hitPoint, delta vecmath.Vec3, w, radius float32, adjacency [][]uint32, flattenNormal vecmath.Vec3, flattenOK bool) vecmath.Vec3 {
	switch brush {
	case BrushGrab:
		return delta.Scale(w)
	case BrushSmooth:
		mean := meanNeighbor(g, v, adjacency)
		return mean.Sub(pos).Scale(w)
	case BrushClay:
		return g.Normal(v).Scale(w * 0.3 * radius)
	case BrushCrease:
		towardHit := hitPoint.Sub(pos).Scale(0.5)
		inward := g.Normal(v).Negate().Scale(0.5)
		return towardHit.Add(inward).Scale(0.3 * w)
	case BrushInflate:
		return g.Normal(v).Scale(w * 0.2 * radius)
	case BrushFlatten:
		if !flattenOK {
			return vecmath.Zero
		}
		dist := pos.Sub(hitPoint).Dot(flattenNormal)
		return flattenNormal.Scale(-dist * w)
	case BrushPinch:
		return hitPoint.Sub(pos).Scale(0.2 * w)
	default:
		return vecmath.Zero
	}
}

// averageNormalNear computes the mean vertex normal within radius of
// hitPoint, used by BrushFlatten's reference plane.
func (e *Engine) averageNormalNear(hitPoint vecmath.Vec3, radius float32) (vecmath.Vec3, bool) {
	g := e.mesh.Geometry
	var sum vecmath.Vec3
	count := 0
	for v := 0; v < g.VertexCount(); v++ {
		if g.Vertex(uint32(v)).Distance(hitPoint) <= radius {
			sum = sum.Add(g.Normal(uint32(v)))
			count++
		}
	}
	if count == 0 || sum.LenSq() == 0 {
		return vecmath.Zero, false
	}
	return sum.Normalize(), true
}

func meanNeighbor(g *meshkernel.Geometry, v uint32, adjacency [][]uint32) vecmath.Vec3 {
	neighbors := adjacency[v]
	if len(neighbors) == 0 {
		return g.Vertex(v)
	}
	var sum vecmath.Vec3
	for _, n := range neighbors {
		sum = sum.Add(g.Vertex(n))
	}
	return sum.Scale(1 / float32(len(neighbors)))
}

func buildAdjacency(g *meshkernel.Geometry) [][]uint32 {
	adjacency := make([][]uint32, g.VertexCount())
	seen := make(map[meshkernel.Edge]bool)
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		for _, pair := range [3][2]uint32{{a, b}, {b, c}, {c, a}} {
			x, y := pair[0], pair[1]
			edge := meshkernel.Edge{A: x, B: y}
			if edge.A > edge.B {
				edge.A, edge.B = edge.B, edge.A
			}
			if seen[edge] {
				continue
			}
			seen[edge] = true
			adjacency[x] = append(adjacency[x], y)
			adjacency[y] = append(adjacency[y], x)
		}
	}
	return adjacency
}

// EndStroke runs one smooth pass (if AutoSmooth > 0), recomputes every
// per-vertex normal by summing incident face normals and normalising (no
// area weighting), and clears stroke state.
func (e *Engine) EndStroke() {
	if e.mesh == nil || !e.inStroke {
		return
	}
	if e.settings.AutoSmooth > 0 {
		e.smoothPass(e.settings.AutoSmooth)
	}
	recomputeUnweightedNormals(e.mesh.Geometry)
	e.inStroke = false
	e.snapshot = nil
}

func (e *Engine) smoothPass(strength float32) {
	g := e.mesh.Geometry
	n := g.VertexCount()
	moved := make([]vecmath.Vec3, n)
	for v := 0; v < n; v++ {
		mean := meanNeighbor(g, uint32(v), e.adjacency)
		moved[v] = g.Vertex(uint32(v)).Lerp(mean, strength)
	}
	for v := 0; v < n; v++ {
		g.SetVertex(uint32(v), moved[v])
	}
}

// recomputeUnweightedNormals sums face normals of incident triangles with
// no area weighting, per §4.14's EndStroke contract (distinct from
// meshkernel.Geometry.RecomputeVertexNormals, which area-weights).
func recomputeUnweightedNormals(g *meshkernel.Geometry) {
	n := g.VertexCount()
	accum := make([]vecmath.Vec3, n)
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		if a == b || b == c || a == c {
			continue
		}
		fn := vecmath.TriangleNormal(g.Vertex(a), g.Vertex(b), g.Vertex(c)).Normalize()
		accum[a] = accum[a].Add(fn)
		accum[b] = accum[b].Add(fn)
		accum[c] = accum[c].Add(fn)
	}
	for v := 0; v < n; v++ {
		if accum[v].LenSq() > 0 {
			g.SetNormal(uint32(v), accum[v].Normalize())
		}
	}
}

// UndoStroke restores the BeginStroke snapshot and recomputes normals.
func (e *Engine) UndoStroke() {
	if e.mesh == nil || e.snapshot == nil {
		return
	}
	g := e.mesh.Geometry
	for v, pos := range e.snapshot {
		g.SetVertex(uint32(v), pos)
	}
	recomputeUnweightedNormals(g)
	e.inStroke = false
	e.snapshot = nil
}
