package widget

import (
	"container/list"
	"image"
)

// A node that owns an ordered list of childs.
type Layouter interface {
	Node
	LayoutEmbed() *EmbedLayout
	FindWidget(Node) bool
	IsEmpty() bool
}

//----------

type Stacking int

const (
	StackStart Stacking = iota // left in a hlayout, top in a vlayout
	StackEnd
	StackCenter
	StackExpand // leftover space is shared around every child
)

// Index to append a child with the insertion functions.
const LayoutEnd = -1

//----------

type EmbedLayout struct {
	ENode
	ContentStacking Stacking

	spaceBetween int
	padding      Padding
	content      image.Point // content size of the last solve

	childs list.List
}

func (el *EmbedLayout) InitLayout(wrapper Layouter, name string) {
	el.Init(wrapper, name)
	el.ContentStacking = StackExpand
}

func (el *EmbedLayout) LayoutEmbed() *EmbedLayout {
	return el
}

func (el *EmbedLayout) Kind() Kind {
	return KindLayout
}

//----------

func (el *EmbedLayout) AddView(n Node, sf uint, pos MinorPosition, ext MinorSize, percentage float64) {
	el.insert(n, sf, pos, ext, percentage, LayoutEnd)
}

func (el *EmbedLayout) AddLayout(l Layouter, sf uint, pos MinorPosition, ext MinorSize, percentage float64) {
	el.insert(l, sf, pos, ext, percentage, LayoutEnd)
}

// Adds with the default policies: stretch factor 1, start positioning, full extend.
func (el *EmbedLayout) Append(nodes ...Node) {
	for _, n := range nodes {
		el.insert(n, 1, PositionStart, ExtendFull, 100, LayoutEnd)
	}
}

// Adds a space filler.
func (el *EmbedLayout) AddSpace(sf uint) *SpaceLayout {
	sp := NewSpaceLayout()
	el.AddLayout(sp, sf, PositionStart, ExtendFull, 100)
	return sp
}

func (el *EmbedLayout) insert(n Node, sf uint, pos MinorPosition, ext MinorSize, percentage float64, index int) bool {
	if n == nil {
		contractViolation("%v: add nil child", &el.EmbedNode)
		return false
	}
	ne := n.Embed()
	if ne == &el.EmbedNode {
		contractViolation("%v: adding into itself", &el.EmbedNode)
		return false
	}
	if ne.Parent != nil {
		contractViolation("%v: child %v already has a parent", &el.EmbedNode, ne)
		return false
	}

	ne.SetStretchFactor(sf)
	ne.SetPositioning(pos)
	ne.SetExtend(ext)
	ne.SetPercentage(percentage)

	if index < 0 && index != LayoutEnd {
		index = 0
	}
	if index == LayoutEnd || index >= el.childs.Len() {
		ne.elem = el.childs.PushBack(ne)
	} else {
		mark := el.childs.Front()
		for i := 0; i < index; i++ {
			mark = mark.Next()
		}
		ne.elem = el.childs.InsertBefore(ne, mark)
	}
	ne.Parent = &el.EmbedNode
	if ne.Wrapper == nil {
		ne.Wrapper = n
	}
	return true
}

//----------

// No-op if not a child.
func (el *EmbedLayout) RemoveChildObject(n Node) {
	if n == nil {
		return
	}
	ne := n.Embed()
	if ne.Parent != &el.EmbedNode {
		return
	}
	el.childs.Remove(ne.elem)
	ne.elem = nil
	ne.Parent = nil
}

func (el *EmbedLayout) Clear() {
	for e := el.childs.Front(); e != nil; e = e.Next() {
		ne := elemEmbed(e)
		ne.elem = nil
		ne.Parent = nil
	}
	el.childs.Init()
}

//----------

func (el *EmbedLayout) FindWidget(n Node) bool {
	if n == nil {
		return false
	}
	found := false
	el.Iterate(func(c *EmbedNode) bool {
		found = c == n.Embed()
		return !found
	})
	return found
}

func (el *EmbedLayout) IsEmpty() bool {
	return el.childs.Len() == 0
}

// Searches the childs, and the childs of the child layouts.
func (el *EmbedLayout) SearchInAllSubNodes(n Node) bool {
	if n == nil {
		return false
	}
	found := false
	el.Iterate(func(c *EmbedNode) bool {
		if c == n.Embed() {
			found = true
		} else if l, ok := c.Wrapper.(Layouter); ok && c.kind().IsLayout() {
			found = l.LayoutEmbed().SearchInAllSubNodes(n)
		}
		return !found
	})
	return found
}

//----------

func (el *EmbedLayout) MaxStretchFactor() uint {
	v := uint(0)
	el.Iterate2(func(c *EmbedNode) {
		if c.stretch >= v {
			v = c.stretch
		}
	})
	return v
}

func (el *EmbedLayout) MinStretchFactor() uint {
	v := ^uint(0)
	el.Iterate2(func(c *EmbedNode) {
		if c.stretch <= v {
			v = c.stretch
		}
	})
	return v
}

// Number of childs with the given stretch factor.
func (el *EmbedLayout) NumStretchFactor(sf uint) int {
	k := 0
	el.Iterate2(func(c *EmbedNode) {
		if c.stretch == sf {
			k++
		}
	})
	return k
}

//----------

func (el *EmbedLayout) ContentStackingPolicy() Stacking {
	return el.ContentStacking
}
func (el *EmbedLayout) SetContentDistribution(s Stacking) {
	el.ContentStacking = s
}

func (el *EmbedLayout) Padding() Padding {
	return el.padding
}

func (el *EmbedLayout) SpaceBetweenChildren() int {
	return el.spaceBetween
}

// Size of the content computed on the last solve.
func (el *EmbedLayout) ContentSize() image.Point {
	return el.content
}

//----------

func (el *EmbedLayout) ChildsLen() int {
	return el.childs.Len()
}

func elemEmbed(e *list.Element) *EmbedNode {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode)
}

func (el *EmbedLayout) Iterate(f func(*EmbedNode) bool) {
	for e := el.childs.Front(); e != nil; e = e.Next() {
		if !f(elemEmbed(e)) {
			break
		}
	}
}

// Iterate2 family functions: iterate all without break possibility.

func (el *EmbedLayout) Iterate2(f func(*EmbedNode)) {
	for e := el.childs.Front(); e != nil; e = e.Next() {
		f(elemEmbed(e))
	}
}
func (el *EmbedLayout) IterateReverse2(f func(*EmbedNode)) {
	for e := el.childs.Back(); e != nil; e = e.Prev() {
		f(elemEmbed(e))
	}
}

func (el *EmbedLayout) ChildsWrappers() []Node {
	w := []Node{}
	el.Iterate2(func(c *EmbedNode) {
		w = append(w, c.Wrapper)
	})
	return w
}

func (el *EmbedLayout) visibleChilds() []*EmbedNode {
	u := make([]*EmbedNode, 0, el.childs.Len())
	el.Iterate2(func(c *EmbedNode) {
		if c.IsVisible() {
			u = append(u, c)
		}
	})
	return u
}
