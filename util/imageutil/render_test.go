package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/colornames"
)

func TestRender(t *testing.T) {
	boxes := []Box{
		{Rect: image.Rect(0, 0, 100, 50), Label: "root"},
		{Rect: image.Rect(10, 10, 40, 40), Label: "a", Color: colornames.Red, Depth: 1},
	}
	img := Render(boxes)
	if img.Bounds() != image.Rect(0, 0, 100, 50) {
		t.Fatal(img.Bounds())
	}

	// inside "a", away from the border and the label
	if c := img.RGBAAt(30, 35); c != colornames.Red {
		t.Fatal(c)
	}
	// border
	if c := img.RGBAAt(10, 20); c == colornames.Red {
		t.Fatal(c)
	}
	// root fill
	if c := img.RGBAAt(90, 45); c != RgbaColor(PaletteColor(0)) {
		t.Fatal(c)
	}

	buf := &bytes.Buffer{}
	if err := EncodePNG(buf, img); err != nil {
		t.Fatal(err)
	}
	img2, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if img2.Bounds() != img.Bounds() {
		t.Fatal(img2.Bounds())
	}
}

func TestTintShade(t *testing.T) {
	c := color.RGBA{100, 100, 100, 255}
	if u := RgbaColor(Shade(c, 0.5)); u.R != 50 {
		t.Fatal(u)
	}
	if u := RgbaColor(Tint(c, 0.5)); u.R != 177 {
		t.Fatal(u)
	}
	if IsLighter(colornames.Black) || !IsLighter(colornames.White) {
		t.Fatal()
	}
}
