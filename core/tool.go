package core

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/disintegration/imaging"
	"github.com/jmigpin/arealayout/util/fswatcher"
	"github.com/jmigpin/arealayout/util/imageutil"
	"github.com/jmigpin/arealayout/util/uiutil/layoutdesc"
	"github.com/jmigpin/arealayout/util/uiutil/widget"
	"github.com/pkg/errors"
)

// Loads a tree description, solves it, and writes the results.
type Tool struct {
	opt *Options
	out io.Writer

	// called after each solve (ex: on watch), for tests
	onSolve func(error)
}

func NewTool(opt *Options, out io.Writer) *Tool {
	return &Tool{opt: opt, out: out}
}

func (t *Tool) Run(ctx context.Context) error {
	if err := t.solveFile(); err != nil {
		return err
	}
	if t.opt.Watch {
		return t.watch(ctx)
	}
	return nil
}

//----------

func (t *Tool) solveFile() error {
	err := t.solveFile2()
	if t.onSolve != nil {
		t.onSolve(err)
	}
	return err
}

func (t *Tool) solveFile2() error {
	d, err := layoutdesc.ParseFile(t.opt.Filename)
	if err != nil {
		return err
	}
	tree, err := layoutdesc.Build(d)
	if err != nil {
		return errors.Wrap(err, t.opt.Filename)
	}

	if err := t.solve(tree); err != nil {
		// the best geometries were kept, still write the results
		log.Print(err)
	}

	buf := &bytes.Buffer{}
	if err := t.write(buf, tree); err != nil {
		return err
	}
	_, err = t.out.Write(buf.Bytes())
	return err
}

func (t *Tool) solve(tree *layoutdesc.Tree) error {
	q := widget.NewLayoutQueue()
	q.Solver.MaxIterations = t.opt.MaxIter
	tree.Root.Embed().SetScheduler(q)
	defer tree.Root.Embed().SetScheduler(nil)

	q.QueueObjectLayout(tree.Root)
	q.Flush()
	return q.Solver.Err()
}

func (t *Tool) write(w io.Writer, tree *layoutdesc.Tree) error {
	if t.opt.Spew {
		spew.Fdump(w, tree.Desc)
	}

	if t.opt.Dump {
		b, err := tree.UpdateDesc().Marshal()
		if err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	} else {
		if err := t.writeGeometries(w, tree); err != nil {
			return err
		}
	}

	if t.opt.PNG != "" {
		if err := t.writePNG(tree); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tool) writeGeometries(w io.Writer, tree *layoutdesc.Tree) error {
	buf := &bytes.Buffer{}
	if err := tree.Dump(buf); err != nil {
		return err
	}
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		line := sc.Text()
		name, _, _ := strings.Cut(line, " ")
		if !t.opt.Outputs.has(name) {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (t *Tool) writePNG(tree *layoutdesc.Tree) error {
	var img image.Image = imageutil.Render(Boxes(tree.Root))
	if sc := t.opt.Scale; sc > 0 && sc != 1 {
		w := int(float64(img.Bounds().Dx()) * sc)
		if w < 1 {
			w = 1
		}
		img = imaging.Resize(img, w, 0, imaging.NearestNeighbor)
	}
	f, err := os.Create(t.opt.PNG)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := imageutil.EncodePNG(f, img); err != nil {
		return errors.Wrap(err, t.opt.PNG)
	}
	return f.Close()
}

//----------

func (t *Tool) watch(ctx context.Context) error {
	w, err := fswatcher.NewFileWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(t.opt.Filename); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-w.Events():
			switch u := ev.(type) {
			case error:
				log.Print(u)
			case *fswatcher.Event:
				// keep watching on errors, the file might be in the middle of being edited
				if err := t.solveFile(); err != nil {
					log.Print(err)
				}
			}
		}
	}
}

//----------

// Boxes of the nodes that would be painted, parents first.
func Boxes(root widget.Node) []imageutil.Box {
	return appendBoxes(nil, root, 0)
}

func appendBoxes(u []imageutil.Box, n widget.Node, depth int) []imageutil.Box {
	en := n.Embed()
	if !en.IsVisible() {
		return u
	}
	b := imageutil.Box{Rect: en.Geometry().Rect(), Label: en.Name, Depth: depth}
	if r, ok := n.(*widget.Rectangle); ok {
		b.Color = r.Color
	}
	if n.Kind() != widget.KindSpace {
		u = append(u, b)
	}

	switch v := n.(type) {
	case *widget.View:
		if l := v.Layout(); l != nil {
			u = appendBoxes(u, l, depth+1)
		}
	case *widget.LayeredLayout:
		for _, c := range v.PaintTargets() {
			u = appendBoxes(u, c, depth+1)
		}
	case widget.Layouter:
		for _, c := range v.LayoutEmbed().ChildsWrappers() {
			u = appendBoxes(u, c, depth+1)
		}
	}
	return u
}
