package vecmath

// Color is an RGBA color. R, G, B are in [0,255]; A is in [0,1], matching
// the §3 data model.
type Color struct {
	R, G, B float32
	A       float32
}

// White is opaque white.
var White = Color{R: 255, G: 255, B: 255, A: 1}
