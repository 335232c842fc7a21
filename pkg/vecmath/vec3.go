// Package vecmath provides the 3D vector, color, and transform primitives
// shared by every mesh operator in the kernel.
package vecmath

import "math"

// Vec3 is an immutable 3D vector with 32-bit float components, matching the
// packed XYZ layout used throughout Geometry.
type Vec3 struct {
	X, Y, Z float32
}

// Zero is the zero vector.
var Zero = Vec3{}

// New creates a Vec3 from three components.
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Negate returns -a.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product a . b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of a.
func (a Vec3) Len() float32 {
	return float32(math.Sqrt(float64(a.X*a.X + a.Y*a.Y + a.Z*a.Z)))
}

// LenSq returns the squared length of a (avoids the sqrt).
func (a Vec3) LenSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the direction of a, or the zero
// vector if a is (near) zero length.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l < 1e-12 {
		return Zero
	}
	inv := 1 / l
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

// Lerp returns the linear interpolation between a and b at parameter t.
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the Euclidean distance between a and b.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Len()
}

// DistanceSq returns the squared Euclidean distance between a and b.
func (a Vec3) DistanceSq(b Vec3) float32 {
	return a.Sub(b).LenSq()
}

// Component returns the component at the given axis index (0=X, 1=Y, 2=Z).
func (a Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	default:
		panic("vecmath: invalid axis index")
	}
}

// WithComponent returns a copy of a with the given axis set to v.
func (a Vec3) WithComponent(axis int, v float32) Vec3 {
	switch axis {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	default:
		panic("vecmath: invalid axis index")
	}
	return a
}

// TriangleNormal returns the unnormalized normal of the triangle (a,b,c)
// using the right-hand rule over edges (b-a) and (c-a).
func TriangleNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// ClosestPointOnSegment projects p onto the segment (a,b), clamped to
// [0,1], and returns both the closest point and the clamp parameter t.
func ClosestPointOnSegment(p, a, b Vec3) (closest Vec3, t float32) {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < 1e-12 {
		return a, 0
	}
	t = p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t)), t
}
