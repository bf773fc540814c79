package widget

import (
	"fmt"
	"image"
)

// Position and size of an area. Sizes are image.Point values (X=width, Y=height).
type Geometry struct {
	X, Y int
	W, H int
}

func Geom(x, y, w, h int) Geometry {
	return Geometry{X: x, Y: y, W: w, H: h}
}

func GeometryFromRect(r image.Rectangle) Geometry {
	return Geometry{r.Min.X, r.Min.Y, r.Dx(), r.Dy()}
}

func (g Geometry) Pos() image.Point {
	return image.Point{g.X, g.Y}
}
func (g Geometry) Size() image.Point {
	return image.Point{g.W, g.H}
}
func (g Geometry) Rect() image.Rectangle {
	return image.Rect(g.X, g.Y, g.X+g.W, g.Y+g.H)
}

func (g Geometry) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", g.X, g.Y, g.W, g.H)
}

//----------

type Padding struct {
	Left, Right, Top, Bottom int
}

func (p Padding) Horizontal() int { return p.Left + p.Right }
func (p Padding) Vertical() int   { return p.Top + p.Bottom }
