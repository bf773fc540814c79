package fswatcher

import (
	"path/filepath"
	"sync"

	fsnotify "github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watches files by watching their directories. Editors often save by renaming a new file over the old one, which a watch on the file itself would lose.
type FileWatcher struct {
	w      *fsnotify.Watcher
	events chan interface{} // *Event or error
	done   chan struct{}
	opMask Op

	mu    sync.Mutex
	files map[string]bool // cleaned names
	dirs  map[string]int  // watched dirs, number of files
}

func NewFileWatcher() (*FileWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FileWatcher{
		w:      w0,
		events: make(chan interface{}),
		done:   make(chan struct{}),
		files:  map[string]bool{},
		dirs:   map[string]int{},
	}
	w.opMask = Create | Modify | Rename
	go w.eventLoop()
	return w, nil
}

//----------

func (w *FileWatcher) Close() error {
	close(w.done)
	return w.w.Close()
}

func (w *FileWatcher) OpMask() *Op {
	return &w.opMask
}

func (w *FileWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FileWatcher) Add(name string) error {
	name = filepath.Clean(name)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[name] {
		return nil
	}
	dir := filepath.Dir(name)
	if w.dirs[dir] == 0 {
		if err := w.w.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %v", name)
		}
	}
	w.dirs[dir]++
	w.files[name] = true
	return nil
}

func (w *FileWatcher) Remove(name string) error {
	name = filepath.Clean(name)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.files[name] {
		return nil
	}
	delete(w.files, name)
	dir := filepath.Dir(name)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		return w.w.Remove(dir)
	}
	return nil
}

func (w *FileWatcher) watching(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[filepath.Clean(name)]
}

//----------

func (w *FileWatcher) eventLoop() {
	for {
		var ev interface{}
		select {
		case <-w.done:
			return
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			ev = err
		case fev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !w.watching(fev.Name) {
				continue
			}
			op := convertOp(fev.Op)
			if op&w.opMask == 0 {
				continue
			}
			ev = &Event{Op: op, Name: filepath.Clean(fev.Name)}
		}

		select {
		case <-w.done:
			return
		case w.events <- ev:
		}
	}
}

func convertOp(fop fsnotify.Op) Op {
	var op Op
	if fop.Has(fsnotify.Create) {
		op.Add(Create)
	}
	if fop.Has(fsnotify.Write) {
		op.Add(Modify)
	}
	if fop.Has(fsnotify.Remove) {
		op.Add(Remove)
	}
	if fop.Has(fsnotify.Rename) {
		op.Add(Rename)
	}
	if fop.Has(fsnotify.Chmod) {
		op.Add(Attrib)
	}
	return op
}
