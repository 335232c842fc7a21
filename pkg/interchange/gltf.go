// Package interchange exports meshkernel.Mesh values to glTF, the one
// external file format the kernel needs to round-trip through (§1's "host
// application" boundary: a modeler kernel is only useful if its output can
// leave the process). Grounded on taigrr-trophy's pkg/models/gltf.go, which
// uses the same github.com/qmuntal/gltf library to walk a Document's
// meshes/accessors/bufferViews; this package runs that traversal in reverse,
// encoding a Geometry into accessors instead of decoding one out of them.
package interchange

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/chazu/meshkernel/pkg/meshkernel"
)

// ExportGLB encodes m as a single-mesh, single-primitive binary glTF (.glb)
// document and writes it to path. Positions, normals and the first UV
// channel are written as separate accessors sharing one buffer view each,
// matching the teacher's attribute layout (POSITION/NORMAL/TEXCOORD_0).
func ExportGLB(m *meshkernel.Mesh, path string) error {
	doc, err := buildDocument(m)
	if err != nil {
		return fmt.Errorf("interchange: build document: %w", err)
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("interchange: save %q: %w", path, err)
	}
	return nil
}

// ExportGLTF encodes m as a text + external-buffer glTF (.gltf) document.
func ExportGLTF(m *meshkernel.Mesh, path string) error {
	doc, err := buildDocument(m)
	if err != nil {
		return fmt.Errorf("interchange: build document: %w", err)
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("interchange: save %q: %w", path, err)
	}
	return nil
}

func buildDocument(m *meshkernel.Mesh) (*gltf.Document, error) {
	g := m.Geometry
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}

	n := g.VertexCount()
	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	uvs := make([][2]float32, n)
	for i := 0; i < n; i++ {
		v := g.Vertex(uint32(i))
		nrm := g.Normal(uint32(i))
		u, vv := g.UV(uint32(i))
		positions[i] = [3]float32{v.X, v.Y, v.Z}
		normals[i] = [3]float32{nrm.X, nrm.Y, nrm.Z}
		// glTF's TEXCOORD_0 is top-left origin; the kernel's UVs are
		// bottom-left, so flip V on the way out (inverse of the teacher
		// loader's flip on the way in).
		uvs[i] = [2]float32{u, 1 - vv}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "meshkernel"

	posIdx := modeler.WritePosition(doc, positions)
	normIdx := modeler.WriteNormal(doc, normals)
	uvIdx := modeler.WriteTextureCoord(doc, uvs)
	indicesIdx := modeler.WriteIndices(doc, g.Indices)

	mesh := &gltf.Mesh{
		Name: m.Name,
		Primitives: []*gltf.Primitive{
			{
				Indices: gltf.Index(indicesIdx),
				Attributes: map[string]uint32{
					gltf.POSITION:   posIdx,
					gltf.NORMAL:     normIdx,
					gltf.TEXCOORD_0: uvIdx,
				},
				Mode: gltf.PrimitiveTriangles,
			},
		},
	}
	doc.Meshes = append(doc.Meshes, mesh)

	node := &gltf.Node{
		Name: m.Name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	}
	doc.Nodes = append(doc.Nodes, node)

	scene := &gltf.Scene{Nodes: []uint32{uint32(len(doc.Nodes) - 1)}}
	doc.Scenes = append(doc.Scenes, scene)
	doc.Scene = gltf.Index(uint32(len(doc.Scenes) - 1))

	return doc, nil
}
