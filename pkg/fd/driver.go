package fd

import "github.com/sirupsen/logrus"

// Solutions is a lazy, depth-first iterator over a search's solutions.
// It owns an explicit stack of branchFrames in place of recursion, so a
// search with a deep decision tree never grows the Go call stack: each
// call to Next descends until it finds a solution or exhausts the tree,
// backtracking by popping frames off the stack rather than returning
// through nested calls.
type Solutions struct {
	props         []propagator
	dependents    [][]PropId
	brancher      Brancher
	mode          mode
	logger        *logrus.Logger
	solutionLimit int

	stack []*branchFrame
	cur   *branchFrame

	pending *Solution
	done    bool

	nodes      int
	solutions  int
	backtracks int
}

func newSolutions(vars *Vars, props []propagator, dependents [][]PropId, brancher Brancher, m mode, logger *logrus.Logger, solutionLimit int) *Solutions {
	it := &Solutions{props: props, dependents: dependents, brancher: brancher, mode: m, logger: logger, solutionLimit: solutionLimit}

	sp := &Space{vars: vars, props: props, dependents: dependents}
	ag := sp.newAgenda()
	for i := range props {
		ag.schedule(PropId(i))
	}
	assigned, err := sp.propagateToFixedPoint(ag)
	if err != nil {
		it.logFields().WithError(err).Debug("fd: initial propagation failed")
		it.done = true
		return it
	}
	if assigned {
		it.mode.onSolution(sp.vars)
		it.pending = newSolutionFromVars(sp.vars)
		return it
	}
	frame, ok := newBranchFrame(sp, brancher)
	if !ok {
		it.done = true
		return it
	}
	it.cur = frame
	return it
}

// logFields builds the nodes_explored/backtracks/solutions_found
// fields every diagnostic log entry carries.
func (it *Solutions) logFields() *logrus.Entry {
	return it.logger.WithFields(logrus.Fields{
		"nodes_explored":  it.nodes,
		"backtracks":      it.backtracks,
		"solutions_found": it.solutions,
	})
}

// Next advances the search and returns its next solution, or false once
// the tree is exhausted.
func (it *Solutions) Next() (*Solution, bool) {
	if it.solutionLimit > 0 && it.solutions >= it.solutionLimit {
		it.done = true
		it.pending = nil
		return nil, false
	}
	if it.pending != nil {
		s := it.pending
		it.pending = nil
		it.done = true
		it.solutions++
		return s, true
	}
	if it.done {
		return nil, false
	}

	for {
		if it.cur == nil {
			if len(it.stack) == 0 {
				it.done = true
				return nil, false
			}
			it.cur = it.stack[len(it.stack)-1]
			it.stack = it.stack[:len(it.stack)-1]
			it.backtracks++
			it.logFields().Debug("fd: backtrack")
			continue
		}

		sp, m, ok := it.cur.next()
		if !ok {
			it.cur = nil
			continue
		}

		it.nodes++
		if err := m.apply(sp.vars, it.cur.pivot); err != nil {
			it.logFields().WithError(err).Debug("fd: branch failed")
			continue
		}
		if err := it.mode.onBranch(sp); err != nil {
			it.logFields().WithError(err).Debug("fd: branch failed")
			continue
		}

		ag := sp.newAgenda()
		for _, v := range sp.vars.DrainEvents() {
			sp.scheduleDependentsOf(ag, v)
		}
		assigned, err := sp.propagateToFixedPoint(ag)
		if err != nil {
			it.logFields().WithError(err).Debug("fd: branch failed")
			continue
		}
		if assigned {
			it.mode.onSolution(sp.vars)
			it.solutions++
			it.logFields().Debug("fd: solution found")
			return newSolutionFromVars(sp.vars), true
		}

		child, ok := newBranchFrame(sp, it.brancher)
		if !ok {
			// Every variable assigned yet the engine stalled: cannot
			// happen for a domain store with no externally-constrained
			// variables, but guard rather than loop forever.
			continue
		}
		it.logFields().Debug("fd: stall, branching")
		it.stack = append(it.stack, it.cur)
		it.cur = child
	}
}

// All drains the iterator and returns every solution it yields, in
// discovery order. For an optimization Mode this is every strict
// improvement found, ending with the optimum.
func (it *Solutions) All() []*Solution {
	var out []*Solution
	for {
		s, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// NodesExplored reports how many branch mutations the search has
// applied so far, for diagnostics.
func (it *Solutions) NodesExplored() int { return it.nodes }

// SolutionsFound reports how many solutions the search has yielded so
// far, for diagnostics.
func (it *Solutions) SolutionsFound() int { return it.solutions }
