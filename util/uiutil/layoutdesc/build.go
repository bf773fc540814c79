package layoutdesc

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jmigpin/arealayout/util/uiutil/widget"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Widget tree built from a description.
type Tree struct {
	Root  widget.Node
	Nodes []widget.Node // pre-order, a view layout comes after the view
	Desc  *Desc

	descs map[widget.Node]*Desc
	names map[string]widget.Node
}

func (t *Tree) Node(name string) (widget.Node, bool) {
	n, ok := t.names[name]
	return n, ok
}

//----------

func Build(d *Desc) (*Tree, error) {
	t := &Tree{
		Desc:  d,
		descs: map[widget.Node]*Desc{},
		names: map[string]widget.Node{},
	}
	n, err := t.build(d, "")
	if err != nil {
		return nil, err
	}
	t.Root = n

	// the root has no parent to set its policies
	if d.Stretch != nil {
		n.Embed().SetStretchFactor(*d.Stretch)
	}
	return t, nil
}

func (t *Tree) build(d *Desc, path string) (widget.Node, error) {
	path = joinPath(path, d)

	n, err := newNode(d)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if d.Name != "" {
		if _, ok := t.names[d.Name]; ok {
			return nil, fmt.Errorf("%v: duplicate name", path)
		}
		t.names[d.Name] = n
	}
	t.Nodes = append(t.Nodes, n)
	t.descs[n] = d

	if err := setup(n, d); err != nil {
		return nil, errors.Wrap(err, path)
	}

	switch u := n.(type) {
	case *widget.View:
		if len(d.Children) > 0 {
			return nil, fmt.Errorf("%v: view has children, use layout", path)
		}
		if d.Layout != nil {
			c, err := t.build(d.Layout, path)
			if err != nil {
				return nil, err
			}
			l, ok := c.(widget.Layouter)
			if !ok || !l.Kind().IsLayout() {
				return nil, fmt.Errorf("%v: view layout is not a layout: %v", path, d.Layout.Kind)
			}
			u.SetLayout(l)
		}
	case *widget.LayeredLayout:
		for _, cd := range d.Children {
			c, err := t.build(cd, path)
			if err != nil {
				return nil, err
			}
			expand, rect, err := layerPolicy(cd)
			if err != nil {
				return nil, errors.Wrap(err, joinPath(path, cd))
			}
			u.AddLayer(c, expand, rect)
		}
		if d.Active != nil {
			u.SetActiveLayerN(*d.Active)
		}
	case widget.Layouter:
		if d.Layout != nil {
			return nil, fmt.Errorf("%v: only views have a layout", path)
		}
		if u.Kind() == widget.KindSpace && len(d.Children) > 0 {
			return nil, fmt.Errorf("%v: space can't have children", path)
		}
		for _, cd := range d.Children {
			c, err := t.build(cd, path)
			if err != nil {
				return nil, err
			}
			if err := addChild(u.LayoutEmbed(), c, cd); err != nil {
				return nil, errors.Wrap(err, joinPath(path, cd))
			}
		}
	default:
		if len(d.Children) > 0 || d.Layout != nil {
			return nil, fmt.Errorf("%v: %v can't have children", path, d.Kind)
		}
	}
	return n, nil
}

//----------

func newNode(d *Desc) (widget.Node, error) {
	switch d.Kind {
	case "hlayout":
		return widget.NewHLayout(d.Name), nil
	case "vlayout":
		return widget.NewVLayout(d.Name), nil
	case "layered":
		return widget.NewLayeredLayout(d.Name), nil
	case "view":
		v := widget.NewView(d.Name)
		v.CanBreak = d.CanBreak
		v.Splitter = d.Splitter
		return v, nil
	case "rect", "":
		r := widget.NewRectangle(d.Name)
		if d.Color != "" {
			c, err := parseColor(d.Color)
			if err != nil {
				return nil, err
			}
			r.Color = c
		}
		return r, nil
	case "space":
		sp := widget.NewSpaceLayout()
		sp.Name = d.Name
		return sp, nil
	default:
		return nil, fmt.Errorf("unknown kind: %q", d.Kind)
	}
}

func setup(n widget.Node, d *Desc) error {
	en := n.Embed()

	if d.Min != nil {
		w, h, err := pair("min", d.Min, en.MinimumSize().X, en.MinimumSize().Y)
		if err != nil {
			return err
		}
		en.SetMinimumSize(w, h)
	}
	if d.Max != nil {
		w, h, err := pair("max", d.Max, en.MaximumSize().X, en.MaximumSize().Y)
		if err != nil {
			return err
		}
		en.SetMaximumSize(w, h)
	}
	if d.Geometry != nil {
		if len(d.Geometry) != 4 {
			return fmt.Errorf("geometry: expecting 4 values: %v", d.Geometry)
		}
		g := d.Geometry
		en.SetGeometry(g[0], g[1], g[2], g[3])
	}

	if el, ok := n.(widget.Layouter); ok {
		if d.Stacking != "" {
			s, err := parseStacking(d.Stacking)
			if err != nil {
				return err
			}
			el.LayoutEmbed().SetContentDistribution(s)
		}
	}
	if sl, ok := n.(*widget.StackLayout); ok {
		sl.SetSpaceBetweenChildren(d.Spacing)
		if d.Padding != nil {
			p := d.Padding
			if len(p) != 4 {
				return fmt.Errorf("padding: expecting 4 values: %v", p)
			}
			sl.SetPadding(p[0], p[1], p[2], p[3])
		}
	}
	if ll, ok := n.(*widget.LayeredLayout); ok {
		ll.PaintAll = d.PaintAll
		switch d.InputMode {
		case "", "active":
		case "composite":
			ll.InputMode = widget.InputComposite
		default:
			return fmt.Errorf("unknown input mode: %q", d.InputMode)
		}
	}

	if d.Visible != nil {
		en.SetVisible(*d.Visible)
	}
	if d.Sensitive != nil {
		en.SetSensitive(*d.Sensitive)
	}
	return nil
}

func addChild(el *widget.EmbedLayout, c widget.Node, d *Desc) error {
	if d.Layer != nil {
		return fmt.Errorf("layer policy outside a layered layout")
	}
	sf := uint(1)
	if d.Stretch != nil {
		sf = *d.Stretch
	}
	pos := widget.PositionStart
	if d.Positioning != "" {
		p, err := parsePositioning(d.Positioning)
		if err != nil {
			return err
		}
		pos = p
	}
	ext := widget.ExtendFull
	if d.Extend != "" {
		e, err := parseExtend(d.Extend)
		if err != nil {
			return err
		}
		ext = e
	}
	pct := 100.0
	if d.Percentage != nil {
		pct = *d.Percentage
	}

	if l, ok := c.(widget.Layouter); ok && l.Kind().IsLayout() {
		el.AddLayout(l, sf, pos, ext, pct)
	} else {
		el.AddView(c, sf, pos, ext, pct)
	}
	return nil
}

func layerPolicy(d *Desc) (bool, widget.Geometry, error) {
	if d.Layer == nil {
		return true, widget.Geometry{}, nil
	}
	expand := d.Layer.Rect == nil
	if d.Layer.Expand != nil {
		expand = *d.Layer.Expand
	}
	var g widget.Geometry
	if d.Layer.Rect != nil {
		r := d.Layer.Rect
		if len(r) != 4 {
			return false, g, fmt.Errorf("layer rect: expecting 4 values: %v", r)
		}
		g = widget.Geom(r[0], r[1], r[2], r[3])
	}
	if !expand && d.Layer.Rect == nil {
		return false, g, fmt.Errorf("layer: not expanded and without rect")
	}
	return expand, g, nil
}

//----------

func parseStacking(s string) (widget.Stacking, error) {
	switch s {
	case "start":
		return widget.StackStart, nil
	case "end":
		return widget.StackEnd, nil
	case "center":
		return widget.StackCenter, nil
	case "expand":
		return widget.StackExpand, nil
	}
	return 0, fmt.Errorf("unknown stacking: %q", s)
}

func parsePositioning(s string) (widget.MinorPosition, error) {
	switch s {
	case "start":
		return widget.PositionStart, nil
	case "end":
		return widget.PositionEnd, nil
	case "center":
		return widget.PositionCenter, nil
	}
	return 0, fmt.Errorf("unknown positioning: %q", s)
}

func parseExtend(s string) (widget.MinorSize, error) {
	switch s {
	case "full":
		return widget.ExtendFull, nil
	case "percentage":
		return widget.ExtendPercentage, nil
	case "fix":
		return widget.ExtendFix, nil
	case "matchcontent":
		return widget.ExtendMatchContent, nil
	}
	return 0, fmt.Errorf("unknown extend: %q", s)
}

func parseColor(s string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("unknown color: %q", s)
	}
	return c, nil
}

// zero values keep the defaults
func pair(field string, u []int, dw, dh int) (int, int, error) {
	if len(u) != 2 {
		return 0, 0, fmt.Errorf("%v: expecting 2 values: %v", field, u)
	}
	w, h := u[0], u[1]
	if w == 0 {
		w = dw
	}
	if h == 0 {
		h = dh
	}
	return w, h, nil
}

func joinPath(path string, d *Desc) string {
	name := d.Name
	if name == "" {
		name = "<" + d.Kind + ">"
	}
	if path == "" {
		return name
	}
	return path + "/" + name
}
