package fd

import "github.com/sirupsen/logrus"

// Model declares variables, views and propagators, then drives the
// search that satisfies or optimizes them. A Model is not safe for
// concurrent use, but it is reusable: Solve, Enumerate, Minimize and
// Maximize each start from the Model's declared state and never mutate
// it, so the same Model can be searched more than once.
type Model struct {
	vars       *Vars
	props      []propagator
	dependents [][]PropId
	config     *solverConfig
}

// NewModel creates an empty model.
func NewModel(opts ...Option) *Model {
	c := defaultSolverConfig()
	for _, opt := range opts {
		opt(c)
	}
	return &Model{vars: newVars(), config: c}
}

// NewVar declares a variable with domain [min, max], failing with
// ErrInvalidRange if min is not strictly less than max. Use
// NewVarBounds to allow a singleton domain.
func (m *Model) NewVar(min, max int32) (VarId, error) {
	if min >= max {
		return 0, ErrInvalidRange
	}
	return m.vars.newVar(min, max), nil
}

// NewVarBounds declares a variable with domain [min, max], failing with
// ErrInvalidRange if min is greater than max.
func (m *Model) NewVarBounds(min, max int32) (VarId, error) {
	if min > max {
		return 0, ErrInvalidRange
	}
	return m.vars.newVar(min, max), nil
}

// NewVarBinary declares a variable with domain {0, 1}.
func (m *Model) NewVarBinary() VarId {
	return m.vars.newVar(0, 1)
}

// Const declares a variable whose domain is the single value c. Unlike
// Lit, which builds a zero-storage View, this allocates an actual
// VarId, for use wherever an API requires one (for example in a
// Propagator dependency list or as an argument to Solution.Value).
func (m *Model) Const(c int32) VarId {
	return m.vars.newVar(c, c)
}

// Opposite returns a view of -v.
func (m *Model) Opposite(v View) View { return Opposite(v) }

// Plus returns a view of v+k for a constant offset k.
func (m *Model) Plus(v View, k int32) View { return Plus(v, k) }

// Times returns a view of v*s.
func (m *Model) Times(v View, s int32) View { return Times(v, s) }

// TimesPos returns a view of v*s for a strictly positive scale.
func (m *Model) TimesPos(v View, s int32) View { return TimesPos(v, s) }

// TimesNeg returns a view of v*s for a strictly negative scale.
func (m *Model) TimesNeg(v View, s int32) View { return TimesNeg(v, s) }

// Add declares a fresh variable s constrained by x + y == s and returns
// it.
func (m *Model) Add(x, y View) VarId {
	xMin, xMax := x.Min(m.vars), x.Max(m.vars)
	yMin, yMax := y.Min(m.vars), y.Max(m.vars)
	s := m.vars.newVar(addInt32(xMin, yMin), addInt32(xMax, yMax))
	m.register(addProp{x: x, y: y, s: s})
	return s
}

// Sum declares a fresh variable s constrained by sum(xs) == s and
// returns it. It fails with ErrEmptyAggregate if xs is empty.
func (m *Model) Sum(xs []View) (VarId, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyAggregate
	}
	var lo, hi int64
	for _, x := range xs {
		lo += int64(x.Min(m.vars))
		hi += int64(x.Max(m.vars))
	}
	s := m.vars.newVar(clampInt32(lo), clampInt32(hi))
	m.register(sumProp{xs: append([]View(nil), xs...), s: s})
	return s, nil
}

// Linear declares a fresh variable s constrained by sum(xs[i]*coefs[i])
// == s and returns it. It fails with ErrEmptyAggregate if xs is empty,
// or ErrMismatchedLength if xs and coefs have different lengths. Each
// term xs[i]*coefs[i] is a zero-storage scaled View, so Linear
// allocates only the one aggregate variable s.
func (m *Model) Linear(xs []View, coefs []int32) (VarId, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyAggregate
	}
	if len(xs) != len(coefs) {
		return 0, ErrMismatchedLength
	}
	scaled := make([]View, len(xs))
	for i, x := range xs {
		scaled[i] = Times(x, coefs[i])
	}
	return m.Sum(scaled)
}

// Equals posts the constraint x == y.
func (m *Model) Equals(x, y View) { m.register(equalsProp{x: x, y: y}) }

// Leq posts the constraint x <= y.
func (m *Model) Leq(x, y View) { m.register(leqProp{x: x, y: y}) }

// Lt posts the constraint x < y, encoded as Leq(Plus(x, 1), y).
func (m *Model) Lt(x, y View) { m.Leq(Plus(x, 1), y) }

// Geq posts the constraint x >= y.
func (m *Model) Geq(x, y View) { m.Leq(y, x) }

// Gt posts the constraint x > y.
func (m *Model) Gt(x, y View) { m.Lt(y, x) }

// Propagator registers a custom bounds-consistency rule, to be re-run
// whenever any of deps changes.
func (m *Model) Propagator(p CustomPropagator, deps []VarId) {
	m.register(customPropagator{p: p, vars: append([]VarId(nil), deps...)})
}

func (m *Model) register(p propagator) PropId {
	id := PropId(len(m.props))
	m.props = append(m.props, p)
	for len(m.dependents) < m.vars.Len() {
		m.dependents = append(m.dependents, nil)
	}
	for _, v := range p.deps() {
		m.dependents[v] = append(m.dependents[v], id)
	}
	return id
}

// snapshot freezes the current declared state into an initial search
// context: a private copy of the domain store plus the model's
// (already-immutable) propagator and dependency tables.
func (m *Model) snapshot() *Vars {
	for len(m.dependents) < m.vars.Len() {
		m.dependents = append(m.dependents, nil)
	}
	return m.vars.clone()
}

// Solve returns the first solution found, or false if the model is
// infeasible.
func (m *Model) Solve() (*Solution, bool) {
	it := m.Enumerate()
	return it.Next()
}

// Enumerate returns a lazy iterator over every solution to the model.
func (m *Model) Enumerate() *Solutions {
	return newSolutions(m.snapshot(), m.props, m.dependents, m.config.brancher, enumerateMode{}, m.config.logger, m.config.solutionLimit)
}

// Minimize searches for an assignment minimizing obj, returning the
// optimum (the last, strictly-best solution found before the tree was
// exhausted) or false if the model is infeasible.
func (m *Model) Minimize(obj View) (*Solution, bool) {
	it := m.minimizeIter(obj)
	var best *Solution
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		best = s
	}
	return best, best != nil
}

// Maximize searches for an assignment maximizing obj, returning the
// optimum or false if the model is infeasible. It is implemented as
// Minimize(Opposite(obj)).
func (m *Model) Maximize(obj View) (*Solution, bool) {
	return m.Minimize(Opposite(obj))
}

// MinimizeAll returns a lazy iterator yielding every strict improvement
// found while minimizing obj, ending with the optimum.
func (m *Model) MinimizeAll(obj View) *Solutions {
	return m.minimizeIter(obj)
}

// MaximizeAll returns a lazy iterator yielding every strict improvement
// found while maximizing obj, ending with the optimum.
func (m *Model) MaximizeAll(obj View) *Solutions {
	return m.minimizeIter(Opposite(obj))
}

func (m *Model) minimizeIter(obj View) *Solutions {
	return newSolutions(m.snapshot(), m.props, m.dependents, m.config.brancher, &minimizeMode{obj: obj}, m.config.logger, m.config.solutionLimit)
}

// Logger returns the logger the model was configured with.
func (m *Model) Logger() *logrus.Logger { return m.config.logger }
