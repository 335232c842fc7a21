// Package meshkernel defines the mesh data model shared by every operator:
// the flat-array Geometry container, the Mesh wrapper, and the derived
// edge/face rebuilder. Operations elsewhere in the module consume and
// return values of these types; the package itself holds no operator
// logic beyond derived-data reconstruction (see derived.go).
package meshkernel

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/chazu/meshkernel/pkg/vecmath"
)

// Edge is a derived, deduplicated, unordered vertex index pair with A < B.
type Edge struct {
	A, B uint32
}

// Face is a derived per-triangle record.
type Face struct {
	VertexIndices [3]uint32
	Normal        vecmath.Vec3
}

// Material is opaque to the kernel: operators pass it through unchanged.
type Material struct {
	Color      vecmath.Color
	Ambient    float32
	Diffuse    float32
	Specular   float32
	Shininess  float32
	Opacity    float32
	Flags      map[string]bool
}

// Geometry is the central flat-array mesh representation (§3). Vertices,
// Normals and UVs are packed per-vertex; Indices are packed per-triangle.
// Edges and Faces are derived data, rebuilt by RebuildEdgesAndFaces at the
// end of every operator.
type Geometry struct {
	Vertices []float32 // len 3*N
	Normals  []float32 // len 3*N
	UVs      []float32 // len 2*N

	Indices []uint32 // len 3*T, CCW front-facing triples

	Edges []Edge
	Faces []Face
}

// VertexCount returns N, the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount returns T, the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Vertex returns the position of vertex i.
func (g *Geometry) Vertex(i uint32) vecmath.Vec3 {
	o := int(i) * 3
	return vecmath.Vec3{X: g.Vertices[o], Y: g.Vertices[o+1], Z: g.Vertices[o+2]}
}

// SetVertex overwrites the position of vertex i.
func (g *Geometry) SetVertex(i uint32, v vecmath.Vec3) {
	o := int(i) * 3
	g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2] = v.X, v.Y, v.Z
}

// Normal returns the normal of vertex i.
func (g *Geometry) Normal(i uint32) vecmath.Vec3 {
	o := int(i) * 3
	return vecmath.Vec3{X: g.Normals[o], Y: g.Normals[o+1], Z: g.Normals[o+2]}
}

// SetNormal overwrites the normal of vertex i.
func (g *Geometry) SetNormal(i uint32, v vecmath.Vec3) {
	o := int(i) * 3
	g.Normals[o], g.Normals[o+1], g.Normals[o+2] = v.X, v.Y, v.Z
}

// UV returns the texture coordinate of vertex i.
func (g *Geometry) UV(i uint32) (u, v float32) {
	o := int(i) * 2
	return g.UVs[o], g.UVs[o+1]
}

// SetUV overwrites the texture coordinate of vertex i.
func (g *Geometry) SetUV(i uint32, u, v float32) {
	o := int(i) * 2
	g.UVs[o], g.UVs[o+1] = u, v
}

// Triangle returns the three vertex indices of triangle t.
func (g *Geometry) Triangle(t int) (a, b, c uint32) {
	o := t * 3
	return g.Indices[o], g.Indices[o+1], g.Indices[o+2]
}

// AppendVertex appends a new vertex and returns its index. pos, normal and
// uv must describe the same single vertex.
func (g *Geometry) AppendVertex(pos, normal vecmath.Vec3, u, v float32) uint32 {
	idx := uint32(g.VertexCount())
	g.Vertices = append(g.Vertices, pos.X, pos.Y, pos.Z)
	g.Normals = append(g.Normals, normal.X, normal.Y, normal.Z)
	g.UVs = append(g.UVs, u, v)
	return idx
}

// AppendTriangle appends a new triangle (a,b,c), CCW front-facing.
func (g *Geometry) AppendTriangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// Clone returns a deep copy of g, including derived data.
func (g *Geometry) Clone() *Geometry {
	out := &Geometry{
		Vertices: append([]float32(nil), g.Vertices...),
		Normals:  append([]float32(nil), g.Normals...),
		UVs:      append([]float32(nil), g.UVs...),
		Indices:  append([]uint32(nil), g.Indices...),
		Edges:    append([]Edge(nil), g.Edges...),
		Faces:    append([]Face(nil), g.Faces...),
	}
	return out
}

// Validate checks the hard, regime-3 invariants of §3/§8: buffer lengths
// agree and every index is in range. It does not check edges/faces, which
// are always rebuilt rather than trusted. Returns a non-nil error — never
// panics — because callers are expected to validate host-supplied input
// before calling into the kernel, not to recover from a panic mid-operator.
func (g *Geometry) Validate() error {
	n := g.VertexCount()
	if len(g.Vertices) != n*3 {
		return fmt.Errorf("meshkernel: vertices length %d is not a multiple of 3", len(g.Vertices))
	}
	if len(g.Normals) != n*3 {
		return fmt.Errorf("meshkernel: normals length %d does not match vertex count %d", len(g.Normals), n)
	}
	if len(g.UVs) != n*2 {
		return fmt.Errorf("meshkernel: uvs length %d does not match vertex count %d", len(g.UVs), n)
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("meshkernel: indices length %d is not a multiple of 3", len(g.Indices))
	}
	for _, idx := range g.Indices {
		if int(idx) >= n {
			return fmt.Errorf("meshkernel: index %d out of range for %d vertices", idx, n)
		}
	}
	return nil
}

// Mesh wraps a Geometry with identity, placement, and scene metadata (§3).
// Kernel operators only read Geometry and Transform; the remaining fields
// exist so host state can round-trip a Mesh without losing information.
type Mesh struct {
	ID       string
	Name     string
	Geometry *Geometry
	Material Material
	Transform vecmath.Transform
	Visible  bool
	Locked   bool
	ParentID string
}

// New wraps geometry into a fresh Mesh with a generated ID and an identity
// transform, ready to be returned from a primitive factory (out of scope
// here) or a test fixture.
func New(name string, geometry *Geometry) *Mesh {
	return &Mesh{
		ID:        uuid.NewString(),
		Name:      name,
		Geometry:  geometry,
		Transform: vecmath.Identity,
		Visible:   true,
	}
}

// Clone returns a deep copy of m, preserving ID so callers can correlate
// versions of the "same" mesh across operator calls (§3 lifecycle note).
func (m *Mesh) Clone() *Mesh {
	out := *m
	out.Geometry = m.Geometry.Clone()
	return &out
}

// WithGeometry returns a shallow copy of m with its Geometry replaced,
// preserving identity, material, transform and scene metadata. This is the
// shape most operators' output takes: `return mesh.WithGeometry(g2)`;
// Boolean instead returns a fresh Mesh from New.
func (m *Mesh) WithGeometry(g *Geometry) *Mesh {
	out := *m
	out.Geometry = g
	return &out
}
