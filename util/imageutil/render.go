package imageutil

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// A rectangle to render. Boxes are painted in order, later boxes on top.
type Box struct {
	Rect  image.Rectangle
	Label string
	Color color.Color // nil picks a palette color by depth
	Depth int
}

var palette = []color.Color{
	colornames.Lightsteelblue,
	colornames.Wheat,
	colornames.Palegreen,
	colornames.Lightpink,
	colornames.Khaki,
	colornames.Plum,
}

func PaletteColor(depth int) color.Color {
	if depth < 0 {
		depth = -depth
	}
	return palette[depth%len(palette)]
}

//----------

// Image with the size needed to show all the boxes.
func Render(boxes []Box) *image.RGBA {
	bounds := image.Rectangle{}
	for _, b := range boxes {
		bounds = bounds.Union(b.Rect)
	}
	img := image.NewRGBA(bounds)
	FillRectangle(img, bounds, colornames.White)
	for _, b := range boxes {
		DrawBox(img, b)
	}
	return img
}

func DrawBox(img draw.Image, b Box) {
	r := b.Rect.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	c := b.Color
	if c == nil {
		c = PaletteColor(b.Depth)
	}
	FillRectangle(img, r, c)
	BorderRectangle(img, r, Shade(c, 0.4), 1)

	if b.Label != "" {
		fg := colornames.Black
		if !IsLighter(c) {
			fg = colornames.White
		}
		DrawLabel(img, r, b.Label, fg)
	}
}

// Draws the text at the top left of r, clipped to r.
func DrawLabel(img draw.Image, r image.Rectangle, s string, c color.Color) {
	face := basicfont.Face7x13
	m := face.Metrics()
	h := m.Height.Ceil()
	if r.Dy() < h+2 || r.Dx() < 4 {
		return
	}
	sub := &clipImage{img, r.Inset(1)}
	d := &font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(r.Min.X+2, r.Min.Y+1+m.Ascent.Ceil()),
	}
	d.DrawString(s)
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

//----------

// Restricts drawing to a rectangle.
type clipImage struct {
	draw.Image
	r image.Rectangle
}

func (ci *clipImage) Bounds() image.Rectangle {
	return ci.r.Intersect(ci.Image.Bounds())
}

func (ci *clipImage) Set(x, y int, c color.Color) {
	if image.Pt(x, y).In(ci.r) {
		ci.Image.Set(x, y, c)
	}
}
