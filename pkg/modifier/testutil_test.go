package modifier

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func vecApproxEqual(a, b vecmath.Vec3) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) && approxEqual(a.Z, b.Z)
}

// singleTriangleMesh returns an upward-facing right triangle at the origin.
func singleTriangleMesh(t *testing.T) *meshkernel.Mesh {
	t.Helper()
	g := &meshkernel.Geometry{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		UVs:      []float32{0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}
	g.Rebuild()
	return meshkernel.New("tri", g)
}

// twoTriangleQuad returns a flat XZ-plane quad made of two triangles
// sharing the diagonal (0,1,2) and (0,2,3).
func twoTriangleQuad(t *testing.T) *meshkernel.Mesh {
	t.Helper()
	g := &meshkernel.Geometry{
		Vertices: []float32{
			-1, 0, -1,
			1, 0, -1,
			1, 0, 1,
			-1, 0, 1,
		},
		Normals: []float32{0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
		UVs:     []float32{0, 0, 1, 0, 1, 1, 0, 1},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	g.Rebuild()
	return meshkernel.New("quad", g)
}

// unitCubeMesh returns a 24-vertex, 12-triangle cube with no shared vertices
// between faces, matching the §8 scenario-1 fixture description.
func unitCubeMesh(t *testing.T) *meshkernel.Mesh {
	t.Helper()
	faces := [6][4][3]float32{
		{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},    // +Z
		{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // -Z
		{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // -X
		{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // +X
		{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // +Y
		{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // -Y
	}

	g := &meshkernel.Geometry{}
	for _, face := range faces {
		base := uint32(g.VertexCount())
		a := vecmath.New(face[0][0], face[0][1], face[0][2])
		b := vecmath.New(face[1][0], face[1][1], face[1][2])
		c := vecmath.New(face[2][0], face[2][1], face[2][2])
		n := vecmath.TriangleNormal(a, b, c).Normalize()
		for _, p := range face {
			g.AppendVertex(vecmath.New(p[0], p[1], p[2]), n, 0, 0)
		}
		g.AppendTriangle(base, base+1, base+2)
		g.AppendTriangle(base, base+2, base+3)
	}
	g.Rebuild()
	return meshkernel.New("cube", g)
}
