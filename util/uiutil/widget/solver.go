package widget

import (
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Context of a synchronous layout solve. Carries the iteration limits and collects the errors of loops that didn't reach a fixed point.
type Solver struct {
	// If >0, overrides the per-loop iteration limits.
	MaxIterations int
	Logger        *log.Logger

	errs []error
}

func NewSolver() *Solver {
	return &Solver{Logger: log.Default()}
}

// Full synchronous solve of the subtree at n.
func (s *Solver) Solve(n Node) Compliance {
	defer n.Embed().guardCompute()()
	return n.ComputeContentSize(s)
}

//----------

func (s *Solver) Err() error {
	switch len(s.errs) {
	case 0:
		return nil
	case 1:
		return s.errs[0]
	}
	u := []string{}
	for _, e := range s.errs {
		u = append(u, e.Error())
	}
	return errors.New(strings.Join(u, "\n"))
}

func (s *Solver) Errors() []error {
	return s.errs
}

func (s *Solver) ClearErrors() {
	s.errs = nil
}

//----------

func (s *Solver) outerLimit(nChilds int) int {
	if s.MaxIterations > 0 {
		return s.MaxIterations
	}
	return 4*nChilds + 16
}

func (s *Solver) innerLimit(nChilds int) int {
	if s.MaxIterations > 0 {
		return s.MaxIterations
	}
	return 2*nChilds + 4
}

// The best geometry so far is kept.
func (s *Solver) noFixedPoint(en *EmbedNode, loop string, iters int) {
	err := errors.Errorf("%v: %s loop: no fixed point after %d iterations", en, loop, iters)
	s.errs = append(s.errs, err)
	if s.Logger != nil {
		s.Logger.Print(err)
	}
}
