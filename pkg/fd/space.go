package fd

// Space is one node of the search tree: a snapshot of variable domains
// paired with the (immutable, model-wide) propagators and dependency
// table they are checked against. Propagators are stateless functions
// of the current bounds, so only the domain store needs to be cloned
// when the driver branches; props and dependents are shared by every
// Space descended from the same Model.
type Space struct {
	vars       *Vars
	props      []propagator
	dependents [][]PropId
}

func (s *Space) clone() *Space {
	return &Space{vars: s.vars.clone(), props: s.props, dependents: s.dependents}
}

// propagateToFixedPoint runs every currently-scheduled propagator to
// completion, reporting whether the space landed on a full assignment.
func (s *Space) propagateToFixedPoint(ag *agenda) (bool, error) {
	return propagate(s.vars, s.props, s.dependents, ag)
}

func (s *Space) newAgenda() *agenda {
	return newAgenda(len(s.props))
}

// scheduleDependentsOf seeds an agenda with the propagators that watch
// the given variable, for use after a branch mutation or objective
// tightening changes that variable's bounds directly (outside of the
// normal prune/drain cycle).
func (s *Space) scheduleDependentsOf(ag *agenda, id VarId) {
	for _, dp := range s.dependents[id] {
		ag.schedule(dp)
	}
}
