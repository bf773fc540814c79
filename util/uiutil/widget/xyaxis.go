package widget

import "image"

// Allows calculations to be done X oriented, and have it translated to Y axis.
// Stack layouts compute with the major axis as X and the minor axis as Y.
type XYAxis struct {
	YAxis bool
}

func (xy XYAxis) Point(p image.Point) image.Point {
	if xy.YAxis {
		return image.Point{p.Y, p.X}
	}
	return p
}
func (xy XYAxis) Geometry(g Geometry) Geometry {
	if xy.YAxis {
		return Geometry{g.Y, g.X, g.H, g.W}
	}
	return g
}

// Left/Right become the major axis start/end, Top/Bottom the minor axis start/end.
func (xy XYAxis) Padding(p Padding) Padding {
	if xy.YAxis {
		return Padding{Left: p.Top, Right: p.Bottom, Top: p.Left, Bottom: p.Right}
	}
	return p
}

// Major axis compliance bits: compliant, smaller, larger.
func (xy XYAxis) MajorBits() (Compliance, Compliance, Compliance) {
	if xy.YAxis {
		return HeightCompliant, HeightSmaller, HeightLarger
	}
	return WidthCompliant, WidthSmaller, WidthLarger
}
func (xy XYAxis) MinorBits() (Compliance, Compliance, Compliance) {
	return XYAxis{!xy.YAxis}.MajorBits()
}
