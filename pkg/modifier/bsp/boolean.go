package bsp

// Union, Difference and Intersect implement the §4.13 operation table.
// Each takes ownership of the two input polygon lists (via fresh trees) and
// returns the resulting polygon list; the caller bakes it back into a mesh.

func Union(a, b []Polygon) []Polygon {
	ta, tb := NewTree(a), NewTree(b)
	ta.ClipTo(tb)
	tb.ClipTo(ta)
	tb.Invert()
	tb.ClipTo(ta)
	tb.Invert()
	ta.Build(tb.AllPolygons())
	return ta.AllPolygons()
}

func Difference(a, b []Polygon) []Polygon {
	ta, tb := NewTree(a), NewTree(b)
	ta.Invert()
	ta.ClipTo(tb)
	tb.ClipTo(ta)
	tb.Invert()
	tb.ClipTo(ta)
	tb.Invert()
	ta.Build(tb.AllPolygons())
	ta.Invert()
	return ta.AllPolygons()
}

func Intersect(a, b []Polygon) []Polygon {
	ta, tb := NewTree(a), NewTree(b)
	ta.Invert()
	tb.ClipTo(ta)
	tb.Invert()
	ta.ClipTo(tb)
	tb.ClipTo(ta)
	ta.Build(tb.AllPolygons())
	ta.Invert()
	return ta.AllPolygons()
}
