package fd

// propagate drains the agenda, pruning each scheduled propagator and
// rescheduling whichever of its dependents watch the variables it just
// narrowed, until the agenda empties (a fixed point: stalled or
// solved), a propagator fails (an empty domain: infeasible), or every
// variable is assigned, in which case it reports a solution at once
// without running the propagators still left on the agenda.
//
// dependents[v] lists the propagators that must be re-run whenever
// variable v's bounds change.
func propagate(vars *Vars, props []propagator, dependents [][]PropId, ag *agenda) (assigned bool, err error) {
	for {
		p, ok := ag.pop()
		if !ok {
			return vars.IsFullyAssigned(), nil
		}
		if err := props[p].prune(vars); err != nil {
			return false, err
		}
		for _, v := range vars.DrainEvents() {
			for _, dp := range dependents[v] {
				ag.schedule(dp)
			}
		}
		if vars.IsFullyAssigned() {
			return true, nil
		}
	}
}
