package widget

import "image/color"

// Leaf node. Sized by its parent layout within its min/max bounds.
type Rectangle struct {
	ENode
	Color color.Color // used by debug renderers, nil picks a default
}

func NewRectangle(name string) *Rectangle {
	r := &Rectangle{}
	r.Init(r, name)
	return r
}
