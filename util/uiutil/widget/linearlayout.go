package widget

// Layout with indexed insertion, space between childs and padding.
type LinearLayout struct {
	EmbedLayout
}

// Index is the child position, or LayoutEnd to append. Out of range indexes append.
func (ll *LinearLayout) AddViewAt(n Node, sf uint, pos MinorPosition, ext MinorSize, percentage float64, index int) {
	ll.insert(n, sf, pos, ext, percentage, index)
}

func (ll *LinearLayout) AddLayoutAt(l Layouter, sf uint, pos MinorPosition, ext MinorSize, percentage float64, index int) {
	ll.insert(l, sf, pos, ext, percentage, index)
}

// Negative values are clamped to zero.
func (ll *LinearLayout) SetSpaceBetweenChildren(space int) {
	if space < 0 {
		space = 0
	}
	ll.spaceBetween = space
}

func (ll *LinearLayout) SetPadding(left, right, top, bottom int) {
	ll.padding = Padding{Left: left, Right: right, Top: top, Bottom: bottom}
}
