package layoutdesc

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/arealayout/util/testutil"
	"github.com/jmigpin/arealayout/util/uiutil/widget"
)

func TestSolveArchive(t *testing.T) {
	ar, err := testutil.ParseTxtarFile("testdata/solve.txt")
	if err != nil {
		t.Fatal(err)
	}
	testutil.RunArchive2(t, ar, func(t2 *testing.T, name string, in, out []byte) error {
		tree, err := buildSrc(in)
		if err != nil {
			return err
		}
		s := widget.NewSolver()
		s.Solve(tree.Root)
		if err := s.Err(); err != nil {
			return err
		}

		buf := &bytes.Buffer{}
		if err := tree.Dump(buf); err != nil {
			return err
		}
		res := testutil.TrimLineSpaces(buf.String())
		exp := testutil.TrimLineSpaces(string(out))
		if res != exp {
			return fmt.Errorf("\n-- result --\n%s\n-- expected --\n%s", res, exp)
		}

		// solving again from the solved state is a no-op
		snap := tree.Snapshot()
		tree.Restore(snap)
		s.Solve(tree.Root)
		if d := snap.Diff(tree.Snapshot()); len(d) > 0 {
			return fmt.Errorf("not a fixed point:\n%s", strings.Join(d, "\n"))
		}
		return nil
	})
}

func buildSrc(src []byte) (*Tree, error) {
	d, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Build(d)
}

//----------

func TestBuildErrors(t *testing.T) {
	srcs := []string{
		``,
		`kind: circle`,
		`{kind: hlayout, unknownfield: 1}`,
		`{kind: rect, children: [{kind: rect}]}`,
		`{kind: space, children: [{kind: rect}]}`,
		`{kind: view, children: [{kind: rect}]}`,
		`{kind: view, layout: {kind: rect}}`,
		`{kind: hlayout, layout: {kind: vlayout}}`,
		`{kind: hlayout, children: [{name: a}, {name: a}]}`,
		`{kind: hlayout, geometry: [1, 2]}`,
		`{kind: hlayout, padding: [1]}`,
		`{kind: hlayout, stacking: sideways}`,
		`{kind: hlayout, children: [{extend: some}]}`,
		`{kind: hlayout, children: [{positioning: left}]}`,
		`{kind: hlayout, children: [{layer: {expand: true}}]}`,
		`{kind: layered, children: [{layer: {expand: false}}]}`,
		`{kind: layered, inputmode: all}`,
		`{kind: rect, color: notacolor}`,
		`{kind: rect, min: [1, 2, 3]}`,
	}
	for i, src := range srcs {
		_, err := buildSrc([]byte(src))
		if err == nil {
			t.Fatalf("%d: expecting error: %v", i, src)
		}
		t.Log(err)
	}
}

func TestBuildPolicies(t *testing.T) {
	src := `
kind: vlayout
name: root
stretch: 0
children:
  - {name: a, stretch: 3, positioning: end, extend: percentage, percentage: 40, color: Red}
  - kind: layered
    name: l
    paintall: true
    inputmode: composite
    active: 1
    children:
      - {name: b}
      - {name: c, sensitive: false}
`
	tree, err := buildSrc([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Root.Embed().StretchFactor() != 0 {
		t.Fatal(tree.Root.Embed().StretchFactor())
	}

	n, ok := tree.Node("a")
	if !ok {
		t.Fatal("a not found")
	}
	a := n.(*widget.Rectangle)
	if a.StretchFactor() != 3 || a.Positioning() != widget.PositionEnd ||
		a.Extend() != widget.ExtendPercentage || a.Percentage() != 40 || a.Color == nil {
		t.Fatal(spew.Sdump(a.StretchFactor(), a.Positioning(), a.Extend(), a.Percentage()))
	}

	n, _ = tree.Node("l")
	l := n.(*widget.LayeredLayout)
	if !l.PaintAll || l.InputMode != widget.InputComposite || l.ActiveLayerN() != 1 {
		t.Fatal(l.PaintAll, l.InputMode, l.ActiveLayerN())
	}
	c, _ := tree.Node("c")
	if c.Embed().IsSensitive() {
		t.Fatal("c is sensitive")
	}
	if len(tree.Nodes) != 5 {
		t.Fatal(len(tree.Nodes))
	}
}

func TestDescMarshal(t *testing.T) {
	src := "kind: hlayout\nname: root\ngeometry: [0, 0, 10, 10]\n"
	d, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	if d2.Kind != "hlayout" || d2.Name != "root" || len(d2.Geometry) != 4 {
		t.Fatal(string(b))
	}
}

func TestSnapshotDiff(t *testing.T) {
	tree, err := buildSrc([]byte(`{kind: hlayout, name: root, children: [{name: a}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s1 := tree.Snapshot()
	a, _ := tree.Node("a")
	a.Embed().SetGeometry(1, 1, 5, 5)
	d := s1.Diff(tree.Snapshot())
	if len(d) != 1 {
		t.Fatal(d)
	}
	tree.Restore(s1)
	if d := s1.Diff(tree.Snapshot()); len(d) != 0 {
		t.Fatal(d)
	}
}

func TestUpdateDesc(t *testing.T) {
	src := `{kind: hlayout, name: root, geometry: [0, 0, 300, 100], children: [{name: a}, {name: b}]}`
	tree, err := buildSrc([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	widget.NewSolver().Solve(tree.Root)
	d := tree.UpdateDesc()
	g := d.Children[1].Geometry
	if len(g) != 4 || g[0] != 150 || g[2] != 150 || g[3] != 100 {
		t.Fatal(spew.Sdump(d))
	}

	// the updated description builds the same solved tree
	b, err := d.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	tree2, err := buildSrc(b)
	if err != nil {
		t.Fatal(err)
	}
	widget.NewSolver().Solve(tree2.Root)
	buf1, buf2 := &bytes.Buffer{}, &bytes.Buffer{}
	_ = tree.Dump(buf1)
	_ = tree2.Dump(buf2)
	if buf1.String() != buf2.String() {
		t.Fatalf("%s\n%s", buf1, buf2)
	}
}
