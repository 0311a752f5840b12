package fd

// mode governs how the search driver treats each solution it reaches:
// plain enumeration yields every one, while optimization tightens the
// objective before exploring further so that only strict improvements
// can still be found.
type mode interface {
	// onBranch runs once a branch's Space has been freshly mutated and
	// is about to be propagated to a fixed point. Returning an error
	// fails the branch outright, before propagation even starts.
	onBranch(sp *Space) error
	onSolution(vars *Vars)
}

type enumerateMode struct{}

func (enumerateMode) onBranch(sp *Space) error { return nil }
func (enumerateMode) onSolution(vars *Vars)    {}

// minimizeMode tightens obj < best on every branch once a first
// solution has been found, implementing optimization as one-shot bound
// tightening rather than a persistent propagator: the threshold is
// fixed for the lifetime of the Space it is applied to and never needs
// re-evaluation, so there is nothing for a live propagator to add.
type minimizeMode struct {
	obj  View
	best *int32
}

func (m *minimizeMode) onBranch(sp *Space) error {
	if m.best == nil {
		return nil
	}
	_, err := m.obj.TrySetMax(sp.vars, *m.best-1)
	return err
}

func (m *minimizeMode) onSolution(vars *Vars) {
	v := m.obj.Min(vars)
	m.best = &v
}
