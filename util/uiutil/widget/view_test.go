package widget

import "testing"

func TestView(t *testing.T) {
	vt := newViewTree(false, false)
	vt.rect.SetMinimumHeight(10)

	NewSolver().Solve(vt.root)
	testGeom(t, vt.view, Geom(0, 0, 300, 100))
	testGeom(t, vt.inner, Geom(0, 0, 300, 100))
	testGeom(t, vt.rect, Geom(0, 0, 300, 100))
}

func TestViewAdoptsLayoutSize(t *testing.T) {
	v := NewView("v")
	v.SetGeometry(0, 0, 50, 50)
	l := NewHLayout("l")
	rs := addRects(l, 1, 1)
	rs[0].SetMinimumSize(80, 10)
	v.SetLayout(l)

	ret := NewSolver().Solve(v)
	testGeom(t, v, Geom(0, 0, 80, 50))
	if ret != WidthLarger|HeightCompliant {
		t.Fatal(ret)
	}
}

func TestViewEmptyLayout(t *testing.T) {
	v := NewView("v")
	v.SetGeometry(0, 0, 50, 50)
	v.SetLayout(NewHLayout("l"))
	ret := NewSolver().Solve(v)
	testGeom(t, v, Geom(0, 0, 50, 50))
	if ret != FullyCompliant {
		t.Fatal(ret)
	}
}

func TestViewSetLayout(t *testing.T) {
	v := NewView("v")
	l1 := NewHLayout("l1")
	l2 := NewHLayout("l2")
	v.SetLayout(l1)
	v.SetLayout(l2)
	if l1.Parent != nil || l2.Parent != &v.EmbedNode || v.Layout() != l2 {
		t.Fatal()
	}

	// already parented
	v2 := NewView("v2")
	v2.SetLayout(l2)
	if v2.Layout() != nil {
		t.Fatal()
	}
}
