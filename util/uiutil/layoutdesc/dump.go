package layoutdesc

import (
	"fmt"
	"io"

	"github.com/jmigpin/arealayout/util/uiutil/widget"
)

// Pre-order walk of the visible nodes. Returning false skips the node childs.
func Walk(n widget.Node, fn func(widget.Node) bool) {
	if !n.Embed().IsVisible() {
		return
	}
	if !fn(n) {
		return
	}
	switch u := n.(type) {
	case *widget.View:
		if l := u.Layout(); l != nil {
			Walk(l, fn)
		}
	case widget.Layouter:
		for _, c := range u.LayoutEmbed().ChildsWrappers() {
			Walk(c, fn)
		}
	}
}

// Writes "name x y w h" for every named visible node.
func (t *Tree) Dump(w io.Writer) error {
	var err error
	Walk(t.Root, func(n widget.Node) bool {
		en := n.Embed()
		if en.Name == "" {
			return true
		}
		g := en.Geometry()
		_, err = fmt.Fprintf(w, "%s %d %d %d %d\n", en.Name, g.X, g.Y, g.W, g.H)
		return err == nil
	})
	return err
}

//----------

type NodeGeometry struct {
	Node     widget.Node
	Geometry widget.Geometry
}

type Snapshot []NodeGeometry

func (t *Tree) Snapshot() Snapshot {
	s := make(Snapshot, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		s = append(s, NodeGeometry{n, n.Embed().Geometry()})
	}
	return s
}

// Re-applies the geometries. Sizes are clamped by the current bounds.
func (t *Tree) Restore(s Snapshot) {
	for _, ng := range s {
		ng.Node.Embed().SetGeometryG(ng.Geometry)
	}
}

// Returns a description of each differing geometry.
func (s Snapshot) Diff(s2 Snapshot) []string {
	u := []string{}
	if len(s) != len(s2) {
		return append(u, fmt.Sprintf("length: %d != %d", len(s), len(s2)))
	}
	for i, ng := range s {
		ng2 := s2[i]
		if ng.Node != ng2.Node {
			u = append(u, fmt.Sprintf("%d: different nodes: %v, %v", i, ng.Node.Embed(), ng2.Node.Embed()))
			continue
		}
		if ng.Geometry != ng2.Geometry {
			u = append(u, fmt.Sprintf("%v: %v != %v", ng.Node.Embed(), ng.Geometry, ng2.Geometry))
		}
	}
	return u
}

//----------

// Updates the description geometries with the current node geometries.
func (t *Tree) UpdateDesc() *Desc {
	for _, n := range t.Nodes {
		g := n.Embed().Geometry()
		t.descs[n].Geometry = []int{g.X, g.Y, g.W, g.H}
	}
	return t.Desc
}
