// Command meshkernel demonstrates the operator kernel end to end: build a
// primitive, run it through a chain of modifiers, and report the resulting
// geometry at each step.
package main

import (
	"fmt"
	"log"

	"github.com/chazu/meshkernel/internal/fixture"
	"github.com/chazu/meshkernel/pkg/interchange"
	"github.com/chazu/meshkernel/pkg/meshkernel"
	"github.com/chazu/meshkernel/pkg/modifier"
	"github.com/chazu/meshkernel/pkg/vecmath"
)

func main() {
	box, err := fixture.Box("demo-box", 1, 1, 1, 24)
	if err != nil {
		log.Fatal(err)
	}
	report("primitive box", box)

	subdivided := modifier.Subdivide(box, modifier.SubdivideOptions{Iterations: 1, Smooth: true})
	report("subdivide x1 (smooth)", subdivided)

	solidified := modifier.Solidify(subdivided, modifier.SolidifyOptions{
		Thickness: 0.05,
		Offset:    1,
		FillRim:   true,
	})
	report("solidify", solidified)

	mirrored := modifier.Mirror(box, modifier.MirrorOptions{AxisIdx: 0, Merge: true, MergeThreshold: 0.01})
	report("mirror across X", mirrored)

	offsetBox, err := fixture.Box("offset-box", 1, 1, 1, 24)
	if err != nil {
		log.Fatal(err)
	}
	offsetBox.Transform.Position = vecmath.New(0.5, 0, 0)
	union := modifier.Boolean(box, offsetBox, modifier.BooleanUnion)
	report("boolean union", union)

	if err := interchange.ExportGLB(union, "union.glb"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote union.glb")

	fmt.Println("done")
}

func report(stage string, m *meshkernel.Mesh) {
	fmt.Printf("%-24s vertices=%-6d triangles=%-6d\n", stage, m.Geometry.VertexCount(), m.Geometry.TriangleCount())
}
