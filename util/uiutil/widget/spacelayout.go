package widget

// Empty layout used to take space between other childs.
type SpaceLayout struct {
	EmbedLayout
}

func NewSpaceLayout() *SpaceLayout {
	sp := &SpaceLayout{}
	sp.InitLayout(sp, "")
	return sp
}

func NewSpaceLayoutMinMax(minW, maxW, minH, maxH int) *SpaceLayout {
	sp := NewSpaceLayout()
	sp.SetMinimumSize(minW, minH)
	sp.SetMaximumSize(maxW, maxH)
	return sp
}

func (sp *SpaceLayout) Kind() Kind {
	return KindSpace
}

func (sp *SpaceLayout) FindWidget(Node) bool {
	return false
}
func (sp *SpaceLayout) IsEmpty() bool {
	return true
}

// Doesn't hold childs.
func (sp *SpaceLayout) AddView(n Node, sf uint, pos MinorPosition, ext MinorSize, percentage float64) {
}
func (sp *SpaceLayout) AddLayout(l Layouter, sf uint, pos MinorPosition, ext MinorSize, percentage float64) {
}
func (sp *SpaceLayout) Append(nodes ...Node) {
}
