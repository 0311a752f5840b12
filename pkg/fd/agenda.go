package fd

import "github.com/bits-and-blooms/bitset"

// agenda is the FIFO work queue of propagators awaiting a pruning pass.
// Membership is tracked with a bitset so that scheduling an
// already-queued propagator a second time (common when several of its
// dependencies change in the same round) is a constant-time no-op
// rather than a linear scan of the queue.
type agenda struct {
	queue     []PropId
	head      int
	scheduled *bitset.BitSet
}

func newAgenda(numProps int) *agenda {
	return &agenda{scheduled: bitset.New(uint(numProps))}
}

func (a *agenda) schedule(p PropId) {
	if a.scheduled.Test(uint(p)) {
		return
	}
	a.scheduled.Set(uint(p))
	a.queue = append(a.queue, p)
}

func (a *agenda) pop() (PropId, bool) {
	if a.head >= len(a.queue) {
		return 0, false
	}
	p := a.queue[a.head]
	a.head++
	a.scheduled.Clear(uint(p))
	return p, true
}
