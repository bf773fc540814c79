package widget

// Implemented by nodes that embed a View.
type Viewer interface {
	Node
	EmbedView() *View
}

//----------

// A node that delegates its size to a composition layout.
type View struct {
	ENode

	// Can be relayouted alone, without a full tree solve.
	CanBreak bool
	// Relayout requests coming from a child relayout only that child.
	Splitter bool

	layout Layouter
}

func NewView(name string) *View {
	v := &View{}
	v.Init(v, name)
	return v
}

func (v *View) EmbedView() *View {
	return v
}

func (v *View) Kind() Kind {
	return KindView
}

func (v *View) CanBreakLayout() bool {
	return v.CanBreak
}

//----------

func (v *View) Layout() Layouter {
	return v.layout
}

// Replaces the composition layout. The layout can't have a parent.
func (v *View) SetLayout(l Layouter) {
	if l != nil {
		le := l.Embed()
		if le == &v.EmbedNode {
			contractViolation("%v: view layout is the view itself", &v.EmbedNode)
			return
		}
		if le.Parent != nil {
			contractViolation("%v: layout %v already has a parent", &v.EmbedNode, le)
			return
		}
	}
	if v.layout != nil {
		v.layout.Embed().Parent = nil
	}
	v.layout = l
	if l != nil {
		l.Embed().Parent = &v.EmbedNode
	}
	v.InitiateResizeLayout()
}

//----------

func (v *View) ComputeContentSize(s *Solver) Compliance {
	if v.layout == nil {
		return FullyCompliant
	}
	defer v.guardCompute()()
	pre := v.Size()

	// the layout gets the same geometry as the view
	le := v.layout.Embed()
	le.SetGeometryG(v.Geometry())

	v.layout.ComputeContentSize(s)

	// an empty layout doesn't change the view size
	if !v.layout.IsEmpty() {
		v.SetGeometryG(le.Geometry())
	}

	post := v.Size()
	ret := compareSize(pre.X, post.X, WidthCompliant, WidthSmaller, WidthLarger)
	ret.Add(compareSize(pre.Y, post.Y, HeightCompliant, HeightSmaller, HeightLarger))
	return ret
}

func (v *View) ComputeContentPosition(s *Solver, offX, offY int) {
	if v.layout == nil {
		return
	}
	le := v.layout.Embed()
	if le.StretchFactor() != 0 {
		le.SetGeometryG(v.Geometry())
	} else {
		le.SetBaseXY(v.X(), v.Y())
	}
	v.layout.ComputeContentPosition(s, offX, offY)
}
