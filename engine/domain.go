package engine

import (
	"fmt"
)

// Dom is a handle to a domain registered with a Solver. Domain identity
// is referential: two Dom handles naming domains of equal size are not
// interchangeable, since each carves out its own predicates' axes.
type Dom struct {
	solver *Solver
	idx    int
}

// domain is the named, sized set a Dom handle refers to.
type domain struct {
	name string
	size int
}

// Size returns the domain's cardinality.
func (d Dom) Size() int {
	return d.solver.state.domains[d.idx].size
}

// Name returns the domain's registered name.
func (d Dom) Name() string {
	return d.solver.state.domains[d.idx].name
}

// String renders the domain as "<name> = <size>", per the diagnostic
// textual output format.
func (d Dom) String() string {
	dm := d.solver.state.domains[d.idx]
	return fmt.Sprintf("%s = %d", dm.name, dm.size)
}
