package widget

import (
	"image"

	"github.com/jmigpin/arealayout/util/mathutil"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

//----------

// Stacks the childs along the major axis (x for horizontal, y for vertical). The minor axis size and position of each child come from its extend and positioning policies.
//
// All calculations are done X oriented (major=X, minor=Y) and translated with XYAxis.
type StackLayout struct {
	LinearLayout
	Axis Axis
}

func NewHLayout(name string) *StackLayout {
	return NewStackLayout(Horizontal, name)
}

func NewVLayout(name string) *StackLayout {
	return NewStackLayout(Vertical, name)
}

func NewStackLayout(axis Axis, name string) *StackLayout {
	sl := &StackLayout{Axis: axis}
	sl.InitLayout(sl, name)
	// pack from the start, leftover space goes to the end
	sl.ContentStacking = StackStart
	return sl
}

func (sl *StackLayout) xyAxis() XYAxis {
	return XYAxis{YAxis: sl.Axis == Vertical}
}

//----------

func (sl *StackLayout) ComputeContentSize(s *Solver) Compliance {
	if sl.ChildsLen() == 0 {
		return FullyCompliant
	}
	defer sl.guardCompute()()

	xya := sl.xyAxis()
	childs := sl.visibleChilds()

	origMinor := xya.Point(sl.Size()).Y

	if sl.stretch == 0 {
		// the size must fit the childs: collapse and let the childs extend it
		sl.collapse()
	}

	pad := xya.Padding(sl.padding)
	padMajor := pad.Left + pad.Right

	limit := s.outerLimit(len(childs))
	for pass := 0; ; pass++ {
		fitting, content := sl.sizeChilds(s, xya, childs)
		sl.content = xya.Point(image.Point{fitting - padMajor, content})

		// grow to fit the childs on the major axis
		pre := sl.Size()
		size := xya.Point(pre)
		if size.X < fitting {
			size.X = fitting
			sl.setSize(xya.Point(size))
		}

		// a collapsed layout always restarts from the same size
		if sl.stretch == 0 || sl.Size() == pre {
			break
		}
		// the childs were distributed in the smaller size
		if pass == limit {
			s.noFixedPoint(&sl.EmbedNode, "grow", pass)
			break
		}
	}

	sl.Wrapper.ComputeContentPosition(s, 0, 0)

	// major axis is compliant by construction (grows to fit)
	majorCompliant, _, _ := xya.MajorBits()
	minorCompliant, minorSmaller, minorLarger := xya.MinorBits()
	ret := majorCompliant
	minor := xya.Point(sl.Size()).Y
	ret.Add(compareSize(origMinor, minor, minorCompliant, minorSmaller, minorLarger))
	return ret
}

// Sizes the childs until no child asks for another pass. Sets the layout minor size. Returns the major size needed by the childs (with spacing and padding), and the minor content size.
func (sl *StackLayout) sizeChilds(s *Solver, xya XYAxis, childs []*EmbedNode) (int, int) {
	for _, c := range childs {
		c.layoutDone = false
	}

	pad := xya.Padding(sl.padding)
	padMajor := pad.Left + pad.Right
	padMinor := pad.Top + pad.Bottom
	spacing := 0
	if len(childs) > 0 {
		spacing = (len(childs) - 1) * sl.spaceBetween
	}
	maxMinor := xya.Point(sl.maxSize).Y

	fitting := spacing + padMajor
	content := 0
	limit := s.outerLimit(len(childs))
	for iter := 0; ; iter++ {
		if iter == limit {
			s.noFixedPoint(&sl.EmbedNode, "size", iter)
			break
		}

		size := xya.Point(sl.Size())
		avail := image.Point{size.X - spacing - padMajor, size.Y - padMinor}

		sl.distribute(s, xya, childs, avail.X)
		sl.placeChilds(xya, childs, image.Point{}, true)

		fitting = spacing + padMajor
		content = avail.Y
		unadjusted := false

		// childs with full extend that might have been sized with a collapsed layout
		fullUnadjusted := []int{}

		for _, c := range childs {
			k := c.kind()
			if k.IsLayout() || k == KindView {
				before := xya.Point(c.Size())
				ret := c.Wrapper.ComputeContentSize(s)
				after := xya.Point(c.Size())

				_, minorSmaller, _ := xya.MinorBits()

				// the child didn't keep the proposed size: its size wins, and the siblings get another pass
				if after.X != before.X && !c.layoutDone {
					c.layoutDone = true
					unadjusted = true
				}

				if !ret.HasAny(minorSmaller) && c.extend == ExtendFull && after.Y < xya.Point(c.maxSize).Y {
					// a child layout with stretch 0 always collapses, it won't use the size given
					if !(k.IsLayout() && c.stretch == 0) {
						fullUnadjusted = append(fullUnadjusted, after.Y)
					}
				}

				if c.extend == ExtendMatchContent && after.Y != before.Y {
					m := xya.Point(c.minSize)
					m.Y = after.Y
					m = xya.Point(m)
					c.minSize = m
					c.checkMinSize()
					unadjusted = true
				}
			} else if c.extend == ExtendFull {
				cs := xya.Point(c.Size())
				if cs.Y < xya.Point(c.maxSize).Y {
					fullUnadjusted = append(fullUnadjusted, cs.Y)
				}
			}

			cs := xya.Point(c.Size())
			fitting += cs.X

			if k == KindSpace {
				continue
			}
			if sl.stretch != 0 {
				// a child is larger then the layout, and the layout can still grow
				if content < cs.Y && content+padMinor < maxMinor {
					content = cs.Y
					unadjusted = true
				}
			} else if content <= cs.Y {
				content = cs.Y
			}
		}

		// minor size of the layout is the largest child
		size = xya.Point(sl.Size())
		size.Y = content + padMinor
		sl.setSize(xya.Point(size))

		availMinor := xya.Point(sl.Size()).Y - padMinor
		for _, v := range fullUnadjusted {
			if v < availMinor {
				unadjusted = true
				break
			}
		}

		if !unadjusted {
			break
		}
	}
	return fitting, content
}

// Collapses along the major axis of the parent stack, or both axes if the parent is not a stack.
func (sl *StackLayout) collapse() {
	size := sl.Size()
	if p, ok := sl.ParentWrapper().(*StackLayout); ok {
		if p.Axis == Horizontal {
			size.X = 1
		} else {
			size.Y = 1
		}
	} else {
		size = image.Point{1, 1}
	}
	sl.setSize(size)
}

//----------

// Sizes the childs major dimension according to their stretch factor.
func (sl *StackLayout) distribute(s *Solver, xya XYAxis, childs []*EmbedNode, width int) {
	flexible := func(c *EmbedNode) bool {
		return c.stretch != 0 && !c.layoutDone
	}
	major := func(c *EmbedNode) int {
		return xya.Point(c.Size()).X
	}

	limit := s.innerLimit(len(childs))
	for iter := 0; ; iter++ {
		if iter == limit {
			s.noFixedPoint(&sl.EmbedNode, "stretch", iter)
			return
		}

		maxSF := uint(0)
		for _, c := range childs {
			if !c.layoutDone && c.stretch >= maxSF {
				maxSF = c.stretch
			}
		}

		for _, c := range childs {
			if c.stretch == 0 && !c.layoutDone {
				c.applyMin(xya)
			}
		}

		// all childs are fixed, or sized to their max or min
		if maxSF == 0 {
			return
		}

		available := width
		for _, c := range childs {
			if !flexible(c) {
				available -= major(c)
			}
		}

		// no room
		if available <= 2 {
			for _, c := range childs {
				if flexible(c) {
					c.applyMin(xya)
					c.layoutDone = true
				}
			}
			return
		}

		//    ref * sum(sf/maxSF) = available
		sumSF := 0
		var last *EmbedNode
		for _, c := range childs {
			if flexible(c) {
				sumSF += int(c.stretch)
				last = c
			}
		}
		ref := available * int(maxSF) / sumSF

		distributed := 0
		needRecompute := false
		for _, c := range childs {
			if needRecompute {
				break
			}
			if !flexible(c) {
				// fixed elements are re-set to be checked against min/max
				c.setSize(c.Size())
				continue
			}

			w := ref
			if c.stretch != maxSF {
				w = ref * int(c.stretch) / int(maxSF)
			}
			distributed += w

			// the last element gets the rounding remainder
			if c == last && available-distributed > 0 {
				w += available - distributed
				distributed = available
			}

			size := xya.Point(c.Size())
			min := xya.Point(c.minSize).X
			max := xya.Point(c.maxSize).X
			if w < min || w > max {
				if w < min {
					size.X = min
				} else {
					size.X = max
				}
				c.setSize(xya.Point(size))

				// widgets are done, a layout must still resize itself to fit its childs
				if k := c.kind(); !k.IsLayout() || k == KindSpace {
					c.layoutDone = true
					needRecompute = true
				}
				continue
			}
			size.X = w
			c.setSize(xya.Point(size))
		}
		if !needRecompute {
			return
		}
	}
}

//----------

// Returns the space before the first child, and the margin on each side of every child.
func (sl *StackLayout) stacking(xya XYAxis, childs []*EmbedNode, remaining int) (int, int) {
	used := 0
	for _, c := range childs {
		used += xya.Point(c.Size()).X
	}
	per := 0
	if len(childs) > 0 {
		per = (remaining - used) / len(childs)
	}
	margin := 0
	if per > 0 {
		margin = per / 2
	}

	switch sl.ContentStacking {
	case StackStart:
		return 0, 0
	case StackEnd:
		if remaining-used < 0 {
			return 0, 0
		}
		return remaining - used, 0
	case StackCenter:
		off := (remaining - used) / 2
		if off < 0 {
			off = 0
		}
		return off, 0
	default:
		return 0, margin
	}
}

// Positions the childs. If extend is true, the childs minor size is also set from their extend policy.
func (sl *StackLayout) placeChilds(xya XYAxis, childs []*EmbedNode, off image.Point, extend bool) {
	size := xya.Point(sl.Size())
	pad := xya.Padding(sl.padding)
	spacing := 0
	if len(childs) > 0 {
		spacing = (len(childs) - 1) * sl.spaceBetween
	}
	avail := image.Point{
		size.X - spacing - pad.Left - pad.Right,
		size.Y - pad.Top - pad.Bottom,
	}

	origin := xya.Point(sl.Pos())
	cur := origin.Add(image.Point{pad.Left, pad.Top}).Add(off)

	offset, margin := sl.stacking(xya, childs, avail.X)
	cur.X += offset

	for _, c := range childs {
		cur.X += margin
		cs := xya.Point(c.Size())

		if extend {
			switch c.extend {
			case ExtendPercentage:
				// childs of this element may still make it larger
				cs.Y = mathutil.Percent(avail.Y, c.percentage)
			case ExtendMatchContent:
				// minimum size, childs of this element may make it larger
				cs.Y = 0
			case ExtendFix:
			default:
				cs.Y = avail.Y
			}
			c.setSize(xya.Point(cs))
			cs = xya.Point(c.Size())
		}

		p := cur
		if c.extend != ExtendFull || cs.Y < avail.Y {
			switch c.positioning {
			case PositionStart:
			case PositionEnd:
				if cs.Y < avail.Y {
					p.Y += avail.Y - cs.Y
				}
			default:
				if cs.Y < avail.Y {
					p.Y += (avail.Y - cs.Y) / 2
				}
			}
		}
		c.SetGeometryG(xya.Geometry(Geometry{p.X, p.Y, cs.X, cs.Y}))

		cur.X += cs.X + margin + sl.spaceBetween
	}
}

//----------

func (sl *StackLayout) ComputeContentPosition(s *Solver, offX, offY int) {
	xya := sl.xyAxis()
	childs := sl.visibleChilds()
	off := xya.Point(image.Point{offX, offY})
	sl.placeChilds(xya, childs, off, false)

	// the offset is already part of the childs position
	for _, c := range childs {
		if k := c.kind(); k.IsLayout() || k == KindView {
			c.Wrapper.ComputeContentPosition(s, 0, 0)
		}
	}
}
