package widget

import "testing"

func TestLayoutQueueRoute(t *testing.T) {
	root, nodes := newNestedTree()
	q := NewLayoutQueue()
	root.SetScheduler(q)

	r1 := nodes[2].Embed()
	r1.SetMinimumWidth(10)
	r1.SetMinimumWidth(12)
	if q.Len() != 1 {
		t.Fatal(q.Len())
	}
	if n := q.Flush(); n != 1 {
		t.Fatal(n)
	}
	// geometry changes while solving don't queue new layouts
	if q.Len() != 0 {
		t.Fatal(q.Len())
	}
	testGeom(t, nodes[1], Geom(0, 0, 60, 100))
}

func TestLayoutQueueComputing(t *testing.T) {
	root, nodes := newNestedTree()
	q := NewLayoutQueue()
	root.SetScheduler(q)

	leave := q.enterCompute()
	nodes[2].Embed().SetMinimumWidth(10)
	if q.Len() != 0 || !q.IsComputingLayout() {
		t.Fatal(q.Len())
	}
	leave()
	if q.IsComputingLayout() {
		t.Fatal("still computing")
	}

	nodes[2].Embed().SetMinimumWidth(11)
	q.Remove(root)
	if q.Len() != 0 {
		t.Fatal(q.Len())
	}
}

func TestLayoutQueueDirectCompute(t *testing.T) {
	type exp struct {
		name  string
		build func() Node
	}
	tests := []exp{
		{"stack", func() Node {
			root, _ := newNestedTree()
			return root
		}},
		{"layered", func() Node {
			ll, _ := newTestLayered()
			return ll
		}},
		{"view", func() Node {
			v := NewView("v")
			v.SetGeometry(0, 0, 50, 50)
			l := NewHLayout("l")
			rs := addRects(l, 1, 1)
			rs[0].SetMinimumSize(80, 10)
			v.SetLayout(l)
			return v
		}},
	}
	for _, e := range tests {
		root := e.build()
		q := NewLayoutQueue()
		root.Embed().SetScheduler(q)

		// solving without the solver entry point still doesn't queue
		root.ComputeContentSize(q.Solver)
		if q.Len() != 0 || q.IsComputingLayout() {
			t.Fatalf("%v: %v", e.name, q.Len())
		}

		root.Embed().SetMinimumWidth(500)
		if q.Len() != 1 {
			t.Fatalf("%v: %v", e.name, q.Len())
		}
	}
}

func TestLayoutQueueNoScheduler(t *testing.T) {
	r := NewRectangle("r")
	r.InitiateResizeLayout()
	if r.Scheduler() != nil {
		t.Fatal()
	}
}

//----------

type viewTree struct {
	root  *StackLayout
	view  *View
	inner *StackLayout
	rect  *Rectangle
	q     *LayoutQueue
}

func newViewTree(canBreak, splitter bool) *viewTree {
	vt := &viewTree{}
	vt.root = newTestHLayout(300, 100)
	vt.view = NewView("view")
	vt.view.CanBreak = canBreak
	vt.view.Splitter = splitter
	vt.inner = NewVLayout("inner")
	vt.rect = NewRectangle("rect")
	vt.inner.AddView(vt.rect, 1, PositionStart, ExtendFull, 100)
	vt.view.SetLayout(vt.inner)
	vt.root.AddView(vt.view, 1, PositionStart, ExtendFull, 100)

	vt.q = NewLayoutQueue()
	vt.root.SetScheduler(vt.q)
	return vt
}

func (vt *viewTree) queued(n Node) bool {
	_, ok := vt.q.queued[n]
	return ok
}

func TestResizeRouteView(t *testing.T) {
	type exp struct {
		canBreak, splitter bool
		target             func(*viewTree) Node
	}
	tests := []exp{
		{false, false, func(vt *viewTree) Node { return vt.root }},
		{true, false, func(vt *viewTree) Node { return vt.view }},
		{true, true, func(vt *viewTree) Node { return vt.inner }},
	}
	for i, e := range tests {
		vt := newViewTree(e.canBreak, e.splitter)
		vt.rect.SetMinimumHeight(7)
		if vt.q.Len() != 1 || !vt.queued(e.target(vt)) {
			t.Fatalf("%d: %v", i, vt.q.Len())
		}
	}
}

func TestResizeRouteViewItself(t *testing.T) {
	vt := newViewTree(true, true)
	vt.view.SetMinimumWidth(5)
	if !vt.queued(vt.view) {
		t.Fatal()
	}
}
