package widget

import "container/list"

// Schedules deferred layout solves. Usually one per window, attached to the root node.
type Scheduler interface {
	QueueObjectLayout(Node)
	IsComputingLayout() bool
	ComputeElementLayout(Node)
}

// Implemented by schedulers that want the solver to flag a solve in progress.
type computeGuard interface {
	enterCompute() (leave func())
}

//----------

func (en *EmbedNode) SetScheduler(s Scheduler) {
	en.sched = s
}

// Nearest scheduler going up the tree.
func (en *EmbedNode) Scheduler() Scheduler {
	for n := en; n != nil; n = n.Parent {
		if n.sched != nil {
			return n.sched
		}
	}
	return nil
}

// Flags a solve in progress until the returned func is called. Nests.
func (en *EmbedNode) guardCompute() (leave func()) {
	if g, ok := en.Scheduler().(computeGuard); ok {
		return g.enterCompute()
	}
	return func() {}
}

//----------

// Queues a layout of the nearest node that can be solved on its own: a root layout, or a view that can break the layout. Ignored while a solve is in progress.
func (en *EmbedNode) InitiateResizeLayout() {
	en.initiateResizeLayout(nil)
}

func (en *EmbedNode) initiateResizeLayout(child *EmbedNode) {
	sched := en.Scheduler()
	if sched == nil || sched.IsComputingLayout() {
		return
	}
	if n := en.resizeTarget(child); n != nil {
		sched.QueueObjectLayout(n)
	}
}

func (en *EmbedNode) resizeTarget(child *EmbedNode) Node {
	switch en.kind() {
	case KindView:
		v := en.Wrapper.(Viewer).EmbedView()
		if v.CanBreakLayout() {
			// a splitter relayouts only the side that changed
			if child != nil && v.Splitter {
				return child.Wrapper
			}
			return v.Wrapper
		}
		if en.Parent != nil {
			return en.Parent.resizeTarget(en)
		}
		return v.Wrapper
	case KindLayout, KindSpace:
		if en.Parent == nil {
			// main layout, or the layout of a floating area
			return en.Wrapper
		}
		if pv, ok := en.Parent.Wrapper.(Viewer); ok && en.Parent.kind() == KindView {
			v := pv.EmbedView()
			if v.CanBreakLayout() {
				if child != nil && v.Splitter {
					return en.Wrapper
				}
				return v.Wrapper
			}
		}
		return en.Parent.resizeTarget(en)
	default:
		if en.Parent != nil {
			return en.Parent.resizeTarget(en)
		}
		return nil
	}
}

//----------

// Scheduler that keeps the queued nodes until Flush is called (ex: once per frame).
type LayoutQueue struct {
	Solver *Solver

	q         list.List
	queued    map[Node]*list.Element
	computing bool
}

func NewLayoutQueue() *LayoutQueue {
	return &LayoutQueue{
		Solver: NewSolver(),
		queued: map[Node]*list.Element{},
	}
}

func (lq *LayoutQueue) QueueObjectLayout(n Node) {
	if lq.computing {
		return
	}
	if _, ok := lq.queued[n]; ok {
		return
	}
	lq.queued[n] = lq.q.PushBack(n)
}

func (lq *LayoutQueue) IsComputingLayout() bool {
	return lq.computing
}

// Solves now.
func (lq *LayoutQueue) ComputeElementLayout(n Node) {
	lq.Solver.Solve(n)
}

// Node won't be solved on the next flush.
func (lq *LayoutQueue) Remove(n Node) {
	if e, ok := lq.queued[n]; ok {
		lq.q.Remove(e)
		delete(lq.queued, n)
	}
}

func (lq *LayoutQueue) Len() int {
	return lq.q.Len()
}

// Solves all queued nodes. Returns the number of solved nodes.
func (lq *LayoutQueue) Flush() int {
	k := 0
	for e := lq.q.Front(); e != nil; e = lq.q.Front() {
		n := lq.q.Remove(e).(Node)
		delete(lq.queued, n)
		lq.ComputeElementLayout(n)
		k++
	}
	return k
}

func (lq *LayoutQueue) enterCompute() func() {
	old := lq.computing
	lq.computing = true
	return func() { lq.computing = old }
}
