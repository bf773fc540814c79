package core

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmigpin/arealayout/util/testutil"
	"github.com/jmigpin/arealayout/util/uiutil/layoutdesc"
)

const treeSrc = `
kind: hlayout
name: root
geometry: [0, 0, 300, 100]
children:
  - {kind: rect, name: a, color: red}
  - kind: layered
    name: l
    children:
      - {kind: rect, name: b}
      - {kind: rect, name: c}
`

func writeTree(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(name, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

//----------

func TestToolRun(t *testing.T) {
	opt := &Options{Filename: writeTree(t, treeSrc)}
	buf := &bytes.Buffer{}
	if err := NewTool(opt, buf).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	exp := `
		root 0 0 300 100
		a 0 0 150 100
		l 150 0 150 100
		b 150 0 150 100
		c 150 0 150 100
	`
	if testutil.TrimLineSpaces(buf.String()) != testutil.TrimLineSpaces(exp) {
		t.Fatal(buf.String())
	}
}

func TestToolOutputs(t *testing.T) {
	opt := &Options{Filename: writeTree(t, treeSrc)}
	if err := opt.Outputs.Set("a, l"); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := NewTool(opt, buf).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	exp := "a 0 0 150 100\nl 150 0 150 100"
	if testutil.TrimLineSpaces(buf.String()) != exp {
		t.Fatal(buf.String())
	}
	if err := opt.Outputs.Set("a,,b"); err == nil {
		t.Fatal("expecting error")
	}
}

func TestToolDump(t *testing.T) {
	opt := &Options{Filename: writeTree(t, treeSrc), Dump: true}
	buf := &bytes.Buffer{}
	if err := NewTool(opt, buf).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	d, err := layoutdesc.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	g := d.Children[1].Geometry
	if len(g) != 4 || g[0] != 150 || g[2] != 150 {
		t.Fatal(buf.String())
	}
}

func TestToolPNG(t *testing.T) {
	opt := &Options{Filename: writeTree(t, treeSrc)}
	opt.PNG = filepath.Join(t.TempDir(), "out.png")
	if err := NewTool(opt, &bytes.Buffer{}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(opt.PNG)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 100 {
		t.Fatal(b)
	}
}

func TestToolBadFile(t *testing.T) {
	opt := &Options{Filename: writeTree(t, "kind: circle")}
	err := NewTool(opt, &bytes.Buffer{}).Run(context.Background())
	if err == nil {
		t.Fatal("expecting error")
	}
	t.Log(err)

	opt.Filename = filepath.Join(t.TempDir(), "missing.yaml")
	if err := NewTool(opt, &bytes.Buffer{}).Run(context.Background()); err == nil {
		t.Fatal("expecting error")
	}
}

func TestBoxes(t *testing.T) {
	d, err := layoutdesc.Parse([]byte(treeSrc))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := layoutdesc.Build(d)
	if err != nil {
		t.Fatal(err)
	}
	// only the active layer of "l" is painted
	bs := Boxes(tree.Root)
	names := []string{}
	for _, b := range bs {
		names = append(names, b.Label)
	}
	if len(names) != 4 || names[3] != "b" {
		t.Fatal(names)
	}
	if bs[1].Color == nil || bs[2].Color != nil || bs[3].Depth != 2 {
		t.Fatal(bs)
	}
}

func TestToolWatch(t *testing.T) {
	opt := &Options{Filename: writeTree(t, treeSrc), Watch: true}
	tool := NewTool(opt, &bytes.Buffer{})

	var mu sync.Mutex
	solves := 0
	solved := make(chan struct{}, 8)
	tool.onSolve = func(err error) {
		mu.Lock()
		solves++
		mu.Unlock()
		select {
		case solved <- struct{}{}:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tool.Run(ctx) }()

	// initial solve
	<-solved
	// give time for the watcher to be setup
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(opt.Filename, []byte(treeSrc), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-solved:
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for solve on change")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	mu.Lock()
	defer mu.Unlock()
	if solves < 2 {
		t.Fatal(solves)
	}
}

func TestToolPNGScale(t *testing.T) {
	opt := &Options{Filename: writeTree(t, treeSrc), Scale: 0.5}
	opt.PNG = filepath.Join(t.TempDir(), "out.png")
	if err := NewTool(opt, &bytes.Buffer{}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(opt.PNG)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 150 || cfg.Height != 50 {
		t.Fatal(cfg.Width, cfg.Height)
	}
}
