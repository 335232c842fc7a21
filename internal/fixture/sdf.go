// Package fixture builds real, non-trivial test geometry for the rest of
// the module via github.com/deadsy/sdfx's marching-cubes renderer, the way
// the teacher kernel's sdfx backend does it (see pkg/kernel/sdfx in the
// upstream lignin tree): describe a solid implicitly, then tessellate.
// This package backs tests and the demo command; production operators
// never depend on it.
package fixture

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

func vec3From(v v3.Vec) vecmath.Vec3 {
	return vecmath.New(float32(v.X), float32(v.Y), float32(v.Z))
}

// Sphere tessellates a radius-r sphere centered at the origin with
// marching cubes at the given cell resolution, returning a ready-to-use
// Mesh with per-vertex normals already populated from the triangle data.
func Sphere(name string, radius float64, cells int) (*meshkernel.Mesh, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("fixture: sdfx.Sphere3D: %w", err)
	}
	return tessellate(name, s, cells)
}

// Box tessellates an axis-aligned box centered at the origin.
func Box(name string, x, y, z float64, cells int) (*meshkernel.Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("fixture: sdfx.Box3D: %w", err)
	}
	return tessellate(name, s, cells)
}

func tessellate(name string, s sdf.SDF3, cells int) (*meshkernel.Mesh, error) {
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	g := &meshkernel.Geometry{}
	for _, tri := range triangles {
		n := tri.Normal()
		normal := vec3From(n)
		a := g.AppendVertex(vec3From(tri[0]), normal, 0, 0)
		b := g.AppendVertex(vec3From(tri[1]), normal, 0, 0)
		c := g.AppendVertex(vec3From(tri[2]), normal, 0, 0)
		g.AppendTriangle(a, b, c)
	}
	g.Rebuild()

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("fixture: tessellated geometry invalid: %w", err)
	}
	return meshkernel.New(name, g), nil
}
