package modifier

import (
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/modifier/bsp"
)

// BooleanOperation selects the CSG operation for Boolean (§4.13, §6).
type BooleanOperation int

const (
	BooleanUnion BooleanOperation = iota
	BooleanDifference
	BooleanIntersect
)

// Boolean bakes both meshes into world-space polygons (applying their full
// Transform), runs the selected BSP operation, and fan-triangulates the
// result back into a fresh Geometry. UVs are lost ((0,0) per output
// vertex), a known and documented limitation of the BSP path (§4.13). The
// output Mesh's Transform is reset to identity because it was baked into
// the positions.
func Boolean(a, b *meshkernel.Mesh, op BooleanOperation) *meshkernel.Mesh {
	polyA := bakePolygons(a)
	polyB := bakePolygons(b)

	var result []bsp.Polygon
	switch op {
	case BooleanDifference:
		result = bsp.Difference(polyA, polyB)
	case BooleanIntersect:
		result = bsp.Intersect(polyA, polyB)
	default:
		result = bsp.Union(polyA, polyB)
	}

	g := triangulatePolygons(result)
	out := meshkernel.New(a.Name, g)
	out.Material = a.Material
	return out
}

// bakePolygons applies mesh's Transform to produce world-space polygons,
// one per input triangle, carrying per-vertex normals for interpolation
// across BSP splits.
func bakePolygons(m *meshkernel.Mesh) []bsp.Polygon {
	g := m.Geometry
	polys := make([]bsp.Polygon, 0, g.TriangleCount())
	for t := 0; t < g.TriangleCount(); t++ {
		a, b, c := g.Triangle(t)
		verts := [3]bsp.Vertex{
			bakeVertex(m, a),
			bakeVertex(m, b),
			bakeVertex(m, c),
		}
		plane := bsp.PlaneFromTriangle(verts[0].Pos, verts[1].Pos, verts[2].Pos)
		polys = append(polys, bsp.Polygon{Vertices: verts[:], Plane: plane})
	}
	return polys
}

func bakeVertex(m *meshkernel.Mesh, idx uint32) bsp.Vertex {
	pos := m.Transform.TransformPoint(m.Geometry.Vertex(idx))
	normal := m.Transform.TransformDirection(m.Geometry.Normal(idx))
	return bsp.Vertex{Pos: pos, Normal: normal}
}

// triangulatePolygons fan-triangulates every polygon (pos[0], pos[i],
// pos[i+1]) into a fresh Geometry with UVs zeroed, per §4.13.
func triangulatePolygons(polys []bsp.Polygon) *meshkernel.Geometry {
	g := &meshkernel.Geometry{}
	for _, poly := range polys {
		if len(poly.Vertices) < 3 {
			continue
		}
		indices := make([]uint32, len(poly.Vertices))
		for i, v := range poly.Vertices {
			indices[i] = g.AppendVertex(v.Pos, v.Normal, 0, 0)
		}
		for i := 1; i+1 < len(indices); i++ {
			g.AppendTriangle(indices[0], indices[i], indices[i+1])
		}
	}
	g.Rebuild()
	return g
}
