package solver

import (
	"fmt"
	"io"
)

// BoundProbe describes one probe of the objective minimization loop.
type BoundProbe interface {
	// Bound is the objective upper bound that was assumed.
	Bound() int
	// Satisfiable reports whether the model was satisfiable under the
	// bound.
	Satisfiable() bool
}

// Tracer observes the progress of objective minimization.
type Tracer interface {
	Trace(p BoundProbe)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ BoundProbe) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p BoundProbe) {
	outcome := "unsatisfiable"
	if p.Satisfiable() {
		outcome = "satisfiable"
	}
	fmt.Fprintf(t.Writer, "objective <= %d: %s\n", p.Bound(), outcome)
}

type boundProbe struct {
	bound int
	sat   bool
}

func (p boundProbe) Bound() int {
	return p.bound
}

func (p boundProbe) Satisfiable() bool {
	return p.sat
}
