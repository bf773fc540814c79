package widget

import (
	"container/list"
	"image"
	"log"
	"math"

	"github.com/jmigpin/arealayout/util/mathutil"
)

type Node interface {
	fullNode() // ensure that EmbedNode can't be directly assigned to a Node

	Embed() *EmbedNode
	Kind() Kind

	// Computes the size of the node content and adjusts the node size. Returns how the final size compares with the size the node had before the call.
	ComputeContentSize(s *Solver) Compliance
	// Sets childs positions from already computed sizes, doesn't resize.
	ComputeContentPosition(s *Solver, offX, offY int)
}

//----------

type Kind int

const (
	KindArea Kind = iota
	KindView
	KindLayout
	KindSpace // space filler, is a layout
)

func (k Kind) IsLayout() bool {
	return k == KindLayout || k == KindSpace
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

const (
	AreaMinWidth  = 1
	AreaMinHeight = 1
	AreaMaxWidth  = math.MaxInt32
	AreaMaxHeight = math.MaxInt32

	DefaultWidth  = 70
	DefaultHeight = 24
)

type EmbedNode struct {
	Name    string
	Wrapper Node
	Parent  *EmbedNode

	OnGeometryChanged func(Geometry)

	geom    Geometry
	minSize image.Point
	maxSize image.Point

	stretch     uint
	positioning MinorPosition
	extend      MinorSize
	percentage  float64

	layoutDone  bool
	hidden      bool
	insensitive bool

	sched Scheduler
	layer *layerAttrs // set while a child of a layered layout
	elem  *list.Element
}

// Must be called by every node constructor. Sets the defaults and the wrapper used to reach the full node.
func (en *EmbedNode) Init(wrapper Node, name string) {
	en.Name = name
	en.Wrapper = wrapper
	en.geom = Geometry{0, 0, DefaultWidth, DefaultHeight}
	en.minSize = image.Point{AreaMinWidth, AreaMinHeight}
	en.maxSize = image.Point{AreaMaxWidth, AreaMaxHeight}
	en.stretch = 1
	en.positioning = PositionCenter
	en.percentage = 100
}

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

func (en *EmbedNode) Kind() Kind {
	return KindArea
}

func (en *EmbedNode) ComputeContentSize(s *Solver) Compliance {
	return FullyCompliant
}

func (en *EmbedNode) ComputeContentPosition(s *Solver, offX, offY int) {
}

//----------

func (en *EmbedNode) kind() Kind {
	if en.Wrapper == nil {
		return KindArea
	}
	return en.Wrapper.Kind()
}

func (en *EmbedNode) String() string {
	if en.Name != "" {
		return en.Name
	}
	return "<unnamed>"
}

//----------

func (en *EmbedNode) Geometry() Geometry { return en.geom }
func (en *EmbedNode) X() int             { return en.geom.X }
func (en *EmbedNode) Y() int             { return en.geom.Y }
func (en *EmbedNode) Width() int         { return en.geom.W }
func (en *EmbedNode) Height() int        { return en.geom.H }
func (en *EmbedNode) Pos() image.Point   { return en.geom.Pos() }
func (en *EmbedNode) Size() image.Point  { return en.geom.Size() }

//----------

// Clamps the size into the min/max bounds. Setting the same geometry is a no-op.
func (en *EmbedNode) SetGeometry(x, y, w, h int) {
	w = mathutil.Limit(w, en.minSize.X, en.maxSize.X)
	h = mathutil.Limit(h, en.minSize.Y, en.maxSize.Y)
	en.setGeom(Geometry{x, y, w, h})
}

func (en *EmbedNode) SetGeometryG(g Geometry) {
	en.SetGeometry(g.X, g.Y, g.W, g.H)
}

func (en *EmbedNode) SetBaseX(x int) {
	en.SetGeometry(x, en.geom.Y, en.geom.W, en.geom.H)
}
func (en *EmbedNode) SetBaseY(y int) {
	en.SetGeometry(en.geom.X, y, en.geom.W, en.geom.H)
}
func (en *EmbedNode) SetBaseXY(x, y int) {
	en.SetGeometry(x, y, en.geom.W, en.geom.H)
}
func (en *EmbedNode) SetBaseSize(w, h int) {
	en.SetGeometry(en.geom.X, en.geom.Y, w, h)
}
func (en *EmbedNode) SetBaseWidth(w int) {
	en.SetGeometry(en.geom.X, en.geom.Y, w, en.geom.H)
}
func (en *EmbedNode) SetBaseHeight(h int) {
	en.SetGeometry(en.geom.X, en.geom.Y, en.geom.W, h)
}

func (en *EmbedNode) setSize(s image.Point) {
	en.SetBaseSize(s.X, s.Y)
}

// Doesn't clamp.
func (en *EmbedNode) setGeom(g Geometry) {
	if g == en.geom {
		return
	}
	en.geom = g
	en.InitiateResizeLayout()
	if en.OnGeometryChanged != nil {
		en.OnGeometryChanged(g)
	}
}

//----------

func (en *EmbedNode) ApplyMinWidth() {
	g := en.geom
	g.W = en.minSize.X
	en.setGeom(g)
}
func (en *EmbedNode) ApplyMinHeight() {
	g := en.geom
	g.H = en.minSize.Y
	en.setGeom(g)
}
func (en *EmbedNode) ApplyMaxWidth() {
	g := en.geom
	g.W = en.maxSize.X
	en.setGeom(g)
}
func (en *EmbedNode) ApplyMaxHeight() {
	g := en.geom
	g.H = en.maxSize.Y
	en.setGeom(g)
}

// Applies the minimum on the x axis of the given orientation.
func (en *EmbedNode) applyMin(xya XYAxis) {
	if xya.YAxis {
		en.ApplyMinHeight()
	} else {
		en.ApplyMinWidth()
	}
}

//----------

func (en *EmbedNode) MinimumSize() image.Point { return en.minSize }
func (en *EmbedNode) MaximumSize() image.Point { return en.maxSize }

func (en *EmbedNode) SetMinimumSize(w, h int) {
	if w < 0 || h < 0 {
		contractViolation("%v: negative minimum size: %v,%v", en, w, h)
		return
	}
	en.minSize = image.Point{w, h}
	en.checkMinSize()
	en.InitiateResizeLayout()
}
func (en *EmbedNode) SetMaximumSize(w, h int) {
	if w < 0 || h < 0 {
		contractViolation("%v: negative maximum size: %v,%v", en, w, h)
		return
	}
	en.maxSize = image.Point{w, h}
	en.checkMaxSize()
	en.InitiateResizeLayout()
}
func (en *EmbedNode) SetMinMaxSize(w, h int) {
	en.SetMinimumSize(w, h)
	en.SetMaximumSize(w, h)
}

func (en *EmbedNode) SetMinimumWidth(w int) {
	en.SetMinimumSize(w, en.minSize.Y)
}
func (en *EmbedNode) SetMinimumHeight(h int) {
	en.SetMinimumSize(en.minSize.X, h)
}
func (en *EmbedNode) SetMaximumWidth(w int) {
	en.SetMaximumSize(w, en.maxSize.Y)
}
func (en *EmbedNode) SetMaximumHeight(h int) {
	en.SetMaximumSize(en.maxSize.X, h)
}

// Repairs the bounds after the minimum changed: the maximum is pushed up and the geometry grows if needed.
func (en *EmbedNode) checkMinSize() {
	en.minSize.X = mathutil.Limit(en.minSize.X, AreaMinWidth, AreaMaxWidth)
	en.minSize.Y = mathutil.Limit(en.minSize.Y, AreaMinHeight, AreaMaxHeight)
	if en.minSize.X > en.maxSize.X {
		en.maxSize.X = en.minSize.X
	}
	if en.minSize.Y > en.maxSize.Y {
		en.maxSize.Y = en.minSize.Y
	}
	if en.geom.W < en.minSize.X {
		en.geom.W = en.minSize.X
	}
	if en.geom.H < en.minSize.Y {
		en.geom.H = en.minSize.Y
	}
}

// Repairs the bounds after the maximum changed: the minimum is pushed down and the geometry shrinks if needed.
func (en *EmbedNode) checkMaxSize() {
	en.maxSize.X = mathutil.Limit(en.maxSize.X, AreaMinWidth, AreaMaxWidth)
	en.maxSize.Y = mathutil.Limit(en.maxSize.Y, AreaMinHeight, AreaMaxHeight)
	if en.minSize.X > en.maxSize.X {
		en.minSize.X = en.maxSize.X
	}
	if en.minSize.Y > en.maxSize.Y {
		en.minSize.Y = en.maxSize.Y
	}
	if en.geom.W > en.maxSize.X {
		en.geom.W = en.maxSize.X
	}
	if en.geom.H > en.maxSize.Y {
		en.geom.H = en.maxSize.Y
	}
}

//----------

func (en *EmbedNode) StretchFactor() uint { return en.stretch }
func (en *EmbedNode) SetStretchFactor(sf uint) {
	en.stretch = sf
}

func (en *EmbedNode) Positioning() MinorPosition { return en.positioning }
func (en *EmbedNode) SetPositioning(p MinorPosition) {
	en.positioning = p
}

func (en *EmbedNode) Extend() MinorSize { return en.extend }
func (en *EmbedNode) SetExtend(e MinorSize) {
	en.extend = e
}

func (en *EmbedNode) Percentage() float64 { return en.percentage }
func (en *EmbedNode) SetPercentage(p float64) {
	en.percentage = mathutil.Limit(p, 1, 100)
}

func (en *EmbedNode) IsLayoutDone() bool { return en.layoutDone }
func (en *EmbedNode) SetLayoutDone(v bool) {
	en.layoutDone = v
}

//----------

func (en *EmbedNode) IsVisible() bool { return !en.hidden }
func (en *EmbedNode) SetVisible(v bool) {
	if en.hidden == !v {
		return
	}
	en.hidden = !v
	// invisible areas don't take space, the parent needs a new layout
	if en.Parent != nil {
		en.Parent.InitiateResizeLayout()
	}
}

func (en *EmbedNode) IsSensitive() bool { return !en.insensitive }
func (en *EmbedNode) SetSensitive(v bool) {
	en.insensitive = !v
}

//----------

func (en *EmbedNode) ParentWrapper() Node {
	if en.Parent == nil {
		return nil
	}
	return en.Parent.Wrapper
}

func (en *EmbedNode) Root() *EmbedNode {
	n := en
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

//----------

type MinorPosition int

const (
	PositionStart MinorPosition = iota // top in a hlayout, left in a vlayout
	PositionEnd
	PositionCenter
)

// How the minor dimension size of a child is derived from the layout minor dimension size.
type MinorSize int

const (
	ExtendFull MinorSize = iota
	ExtendPercentage
	ExtendFix
	ExtendMatchContent
)

//----------

// Programming errors are logged and the operation is ignored.
func contractViolation(f string, args ...interface{}) {
	log.Printf("widget: "+f, args...)
}
