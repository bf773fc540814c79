package widget

import (
	"image"

	"github.com/jmigpin/arealayout/util/mathutil"
)

type layerAttrs struct {
	expand bool
	rect   Geometry // relative to the layout position, used if not expanded
}

type InputMode int

const (
	InputActive    InputMode = iota // only the active layer gets input
	InputComposite                  // all visible and sensitive layers, top to bottom
)

//----------

// Childs are stacked on top of each other. First/last child is the bottom/top layer.
//
// No stretch distribution: expanded layers get the layout size (at least their minimum), the others get their own rect. The layout grows to fit the expanded layers.
type LayeredLayout struct {
	EmbedLayout

	PaintAll  bool
	InputMode InputMode

	active *EmbedNode
}

func NewLayeredLayout(name string) *LayeredLayout {
	ll := &LayeredLayout{}
	ll.InitLayout(ll, name)
	return ll
}

//----------

// If expand is false, the layer is placed at rect (relative to the layout position). The first layer becomes the active one.
func (ll *LayeredLayout) AddLayer(n Node, expand bool, rect Geometry) {
	if !ll.insert(n, 1, PositionStart, ExtendFull, 100, LayoutEnd) {
		return
	}
	ne := n.Embed()
	ne.layer = &layerAttrs{expand: expand, rect: rect}
	if ll.active == nil {
		ll.active = ne
	}
	ll.InitiateResizeLayout()
}

// No-op if n is not a layer of this layout.
func (ll *LayeredLayout) UpdateLayer(n Node, expand bool, rect Geometry) {
	if n == nil {
		return
	}
	ne := n.Embed()
	if ne.Parent != &ll.EmbedNode || ne.layer == nil {
		return
	}
	ne.layer.expand = expand
	ne.layer.rect = rect
	ll.InitiateResizeLayout()
}

// If the active layer is removed, the first remaining layer becomes active.
func (ll *LayeredLayout) RemoveLayer(n Node) {
	if n == nil {
		return
	}
	ne := n.Embed()
	if ne.Parent != &ll.EmbedNode {
		return
	}
	ll.EmbedLayout.RemoveChildObject(n)
	ne.layer = nil
	if ll.active == ne {
		ll.active = elemEmbed(ll.childs.Front())
	}
	ll.InitiateResizeLayout()
}

// Layers added with the layout functions are expanded.
func (ll *LayeredLayout) AddView(n Node, sf uint, pos MinorPosition, ext MinorSize, percentage float64) {
	ll.AddLayer(n, true, Geometry{})
}
func (ll *LayeredLayout) AddLayout(l Layouter, sf uint, pos MinorPosition, ext MinorSize, percentage float64) {
	ll.AddLayer(l, true, Geometry{})
}
func (ll *LayeredLayout) Append(nodes ...Node) {
	for _, n := range nodes {
		ll.AddLayer(n, true, Geometry{})
	}
}

func (ll *LayeredLayout) RemoveChildObject(n Node) {
	ll.RemoveLayer(n)
}

func (ll *LayeredLayout) Clear() {
	ll.Iterate2(func(c *EmbedNode) {
		c.layer = nil
	})
	ll.EmbedLayout.Clear()
	ll.active = nil
}

//----------

// Returns -1 if there are no layers.
func (ll *LayeredLayout) ActiveLayerN() int {
	i, k := -1, 0
	ll.Iterate(func(c *EmbedNode) bool {
		if c == ll.active {
			i = k
			return false
		}
		k++
		return true
	})
	return i
}

func (ll *LayeredLayout) SetActiveLayerN(i int) {
	if i < 0 || i >= ll.ChildsLen() {
		contractViolation("%v: layer index out of range: %v", &ll.EmbedNode, i)
		return
	}
	e := ll.childs.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	ll.setActive(elemEmbed(e))
}

func (ll *LayeredLayout) ActiveLayer() Node {
	if ll.active == nil {
		return nil
	}
	return ll.active.Wrapper
}

func (ll *LayeredLayout) SetActiveLayer(n Node) {
	if n == nil {
		contractViolation("%v: nil layer", &ll.EmbedNode)
		return
	}
	ne := n.Embed()
	if ne.Parent != &ll.EmbedNode {
		contractViolation("%v: %v is not a layer", &ll.EmbedNode, ne)
		return
	}
	ll.setActive(ne)
}

func (ll *LayeredLayout) setActive(ne *EmbedNode) {
	if ll.active == ne {
		return
	}
	ll.active = ne
	ll.InitiateResizeLayout()
}

//----------

// Layers to paint, bottom to top.
func (ll *LayeredLayout) PaintTargets() []Node {
	if !ll.PaintAll {
		if ll.active != nil && ll.active.IsVisible() {
			return []Node{ll.active.Wrapper}
		}
		return nil
	}
	u := []Node{}
	ll.Iterate2(func(c *EmbedNode) {
		if c.IsVisible() {
			u = append(u, c.Wrapper)
		}
	})
	return u
}

// Layers that receive input, in dispatch order.
func (ll *LayeredLayout) InputTargets() []Node {
	ok := func(c *EmbedNode) bool {
		return c.IsVisible() && c.IsSensitive()
	}
	if ll.InputMode == InputActive {
		if ll.active != nil && ok(ll.active) {
			return []Node{ll.active.Wrapper}
		}
		return nil
	}
	u := []Node{}
	ll.IterateReverse2(func(c *EmbedNode) {
		if ok(c) {
			u = append(u, c.Wrapper)
		}
	})
	return u
}

//----------

func (ll *LayeredLayout) ComputeContentSize(s *Solver) Compliance {
	defer ll.guardCompute()()
	pre := ll.Size()
	size := ll.sizeLayers(s, pre)
	if size != pre {
		// the layout fits its expanded layers, which then get the new size
		ll.setSize(size)
		ll.sizeLayers(s, ll.Size())
	}

	ll.Wrapper.ComputeContentPosition(s, 0, 0)

	post := ll.Size()
	ret := compareSize(pre.X, post.X, WidthCompliant, WidthSmaller, WidthLarger)
	ret.Add(compareSize(pre.Y, post.Y, HeightCompliant, HeightSmaller, HeightLarger))
	return ret
}

// Returns the size needed by the expanded layers.
func (ll *LayeredLayout) sizeLayers(s *Solver, size image.Point) image.Point {
	grow := size
	for _, c := range ll.visibleChilds() {
		expanded := c.layer == nil || c.layer.expand
		if expanded {
			w := mathutil.Max(size.X, c.minSize.X)
			h := mathutil.Max(size.Y, c.minSize.Y)
			c.SetGeometry(ll.X(), ll.Y(), w, h)
		} else {
			r := c.layer.rect
			c.SetGeometry(ll.X()+r.X, ll.Y()+r.Y, r.W, r.H)
		}

		if k := c.kind(); k.IsLayout() || k == KindView {
			c.Wrapper.ComputeContentSize(s)
		}

		if expanded {
			grow.X = mathutil.Max(grow.X, c.Width())
			grow.Y = mathutil.Max(grow.Y, c.Height())
		}
	}
	return grow
}

func (ll *LayeredLayout) ComputeContentPosition(s *Solver, offX, offY int) {
	for _, c := range ll.visibleChilds() {
		x, y := ll.X()+offX, ll.Y()+offY
		if c.layer != nil && !c.layer.expand {
			x += c.layer.rect.X
			y += c.layer.rect.Y
		}
		c.SetBaseXY(x, y)
		if k := c.kind(); k.IsLayout() || k == KindView {
			c.Wrapper.ComputeContentPosition(s, 0, 0)
		}
	}
}
