// Package pick implements the picking kernel (§4.2): ray construction from
// screen coordinates, Möller–Trumbore ray/triangle intersection against a
// transformed mesh or scene, closest-vertex queries, and near-edge tests.
// Every function here is a pure query; none errors — a miss is reported
// with ok=false, never an error (§7).
package pick

import (
	"math"

	"github.com/chazu/meshkernel/pkg/vecmath"
)

// CameraType distinguishes perspective and orthographic projection.
type CameraType int

const (
	Perspective CameraType = iota
	Orthographic
)

// Camera describes the viewpoint a screen-space pick is cast from.
type Camera struct {
	Type     CameraType
	Position vecmath.Vec3
	Target   vecmath.Vec3
	Up       vecmath.Vec3
	Fov      float32 // radians, perspective only
	Zoom     float32 // orthographic half-height
	Near     float32
	Far      float32
}

// Ray is a world-space origin + direction, direction assumed unit length.
type Ray struct {
	Origin    vecmath.Vec3
	Direction vecmath.Vec3
}

// basis returns the camera's orthonormal forward/right/up vectors.
func (c Camera) basis() (forward, right, up vecmath.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// GetRayFromMouse builds a world-space ray from a canvas-pixel mouse
// position, per §4.2.
func GetRayFromMouse(x, y, w, h float32, camera Camera) Ray {
	forward, right, up := camera.basis()

	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h
	aspect := w / h

	switch camera.Type {
	case Orthographic:
		origin := camera.Position.
			Add(right.Scale(ndcX * camera.Zoom * aspect)).
			Add(up.Scale(ndcY * camera.Zoom))
		return Ray{Origin: origin, Direction: forward}
	default: // Perspective
		tanHalfFov := float32(math.Tan(float64(camera.Fov) / 2))
		dir := forward.
			Add(right.Scale(ndcX * tanHalfFov * aspect)).
			Add(up.Scale(ndcY * tanHalfFov)).
			Normalize()
		return Ray{Origin: camera.Position, Direction: dir}
	}
}
