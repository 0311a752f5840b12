package fd

// PropId identifies a propagator registered on a Model.
type PropId int

// propagator narrows the domains of the variables it depends on. prune
// is called whenever a dependency's bounds change (and once, for every
// propagator, before the first branch of a search); it must be
// idempotent at a fixed point, since the agenda only stops scheduling a
// propagator once a round of pruning leaves its dependencies unchanged.
type propagator interface {
	prune(vars *Vars) error
	deps() []VarId
}

// CustomPropagator lets a caller register arbitrary bounds-consistency
// logic that the built-in propagators don't cover. Prune must only ever
// narrow bounds (via the View or Vars methods it closes over) and
// report failure by returning a non-nil error; it must never read or
// write domain state outside the Vars it is given.
type CustomPropagator interface {
	Prune(vars *Vars) error
}

type customPropagator struct {
	p    CustomPropagator
	vars []VarId
}

func (c customPropagator) prune(vars *Vars) error { return c.p.Prune(vars) }
func (c customPropagator) deps() []VarId          { return c.vars }

// equalsProp enforces x == y by intersecting their bounds.
type equalsProp struct{ x, y View }

func (p equalsProp) deps() []VarId { return viewVars(p.x, p.y) }

func (p equalsProp) prune(vars *Vars) error {
	min := max32(p.x.Min(vars), p.y.Min(vars))
	max := min32(p.x.Max(vars), p.y.Max(vars))
	if _, err := p.x.TrySetMin(vars, min); err != nil {
		return err
	}
	if _, err := p.x.TrySetMax(vars, max); err != nil {
		return err
	}
	if _, err := p.y.TrySetMin(vars, min); err != nil {
		return err
	}
	if _, err := p.y.TrySetMax(vars, max); err != nil {
		return err
	}
	return nil
}

// leqProp enforces x <= y.
type leqProp struct{ x, y View }

func (p leqProp) deps() []VarId { return viewVars(p.x, p.y) }

func (p leqProp) prune(vars *Vars) error {
	if _, err := p.x.TrySetMax(vars, p.y.Max(vars)); err != nil {
		return err
	}
	if _, err := p.y.TrySetMin(vars, p.x.Min(vars)); err != nil {
		return err
	}
	return nil
}
