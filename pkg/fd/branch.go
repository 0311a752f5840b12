package fd

// mutationKind selects which bound a Mutation narrows.
type mutationKind int

const (
	mutSet mutationKind = iota
	mutMin
	mutMax
)

// Mutation is one candidate narrowing of a pivot variable's domain,
// produced by an Enumerator and applied to a single child Space.
type Mutation struct {
	kind  mutationKind
	value int32
}

func (m Mutation) apply(vars *Vars, pivot VarId) error {
	switch m.kind {
	case mutSet:
		return vars.TrySet(pivot, m.value)
	case mutMin:
		_, err := vars.TrySetMin(pivot, m.value)
		return err
	case mutMax:
		_, err := vars.TrySetMax(pivot, m.value)
		return err
	}
	return nil
}

// Picker chooses the next unassigned variable to branch on.
type Picker interface {
	pick(vars *Vars) (VarId, bool)
}

// FirstUnassigned picks the lowest-numbered variable that is not yet
// assigned. It is the default Picker.
func FirstUnassigned() Picker { return firstUnassignedPicker{} }

type firstUnassignedPicker struct{}

func (firstUnassignedPicker) pick(vars *Vars) (VarId, bool) {
	for id := VarId(0); int(id) < vars.Len(); id++ {
		if !vars.IsAssigned(id) {
			return id, true
		}
	}
	return 0, false
}

// Enumerator produces the ordered sequence of Mutations to try on a
// chosen pivot variable. The search driver explores them depth-first in
// the order returned, so the first Mutation is tried (and fully
// exhausted) before the second is ever considered.
type Enumerator interface {
	enumerate(pivot VarId, vars *Vars) []Mutation
}

// BinarySplit splits the pivot's domain at its midpoint: the left child
// gets pivot <= mid, the right child pivot > mid. It is the default
// Enumerator.
func BinarySplit() Enumerator { return binarySplitEnumerator{} }

type binarySplitEnumerator struct{}

func (binarySplitEnumerator) enumerate(pivot VarId, vars *Vars) []Mutation {
	min, max := vars.Min(pivot), vars.Max(pivot)
	mid := int32(int64(min) + (int64(max)-int64(min))/2)
	return []Mutation{
		{kind: mutMax, value: mid},
		{kind: mutMin, value: mid + 1},
	}
}

// ValueOrder selects the direction EnumerateValues walks a domain in.
type ValueOrder int

const (
	OrderAsc ValueOrder = iota
	OrderDesc
)

// EnumerateValues tries every value of the pivot's domain in turn,
// ascending or descending according to order, instead of splitting it
// in half. It is exhaustive at a single branch point: useful for small
// domains where binary search adds depth without pruning power.
func EnumerateValues(order ValueOrder) Enumerator { return valueEnumerator{order: order} }

type valueEnumerator struct{ order ValueOrder }

func (e valueEnumerator) enumerate(pivot VarId, vars *Vars) []Mutation {
	min, max := vars.Min(pivot), vars.Max(pivot)
	n := int(max-min) + 1
	muts := make([]Mutation, n)
	for i := 0; i < n; i++ {
		var v int32
		if e.order == OrderAsc {
			v = min + int32(i)
		} else {
			v = max - int32(i)
		}
		muts[i] = Mutation{kind: mutSet, value: v}
	}
	return muts
}

// Brancher pairs a Picker with an Enumerator. The zero value is not
// usable; construct one with defaultBrancher or WithBrancher.
type Brancher struct {
	pick      Picker
	enumerate Enumerator
}

func defaultBrancher() Brancher {
	return Brancher{pick: FirstUnassigned(), enumerate: BinarySplit()}
}

// branch picks a pivot and its candidate mutations, reporting false if
// every variable is already assigned.
func (b Brancher) branch(vars *Vars) (VarId, []Mutation, bool) {
	pivot, ok := b.pick.pick(vars)
	if !ok {
		return 0, nil, false
	}
	return pivot, b.enumerate.enumerate(pivot, vars), true
}

// branchFrame is the search driver's cursor into one node's candidate
// children: the parent Space plus the pivot and mutations computed for
// it, with idx tracking how many children have already been handed out.
type branchFrame struct {
	space     *Space
	pivot     VarId
	mutations []Mutation
	idx       int
}

func newBranchFrame(sp *Space, br Brancher) (*branchFrame, bool) {
	pivot, muts, ok := br.branch(sp.vars)
	if !ok {
		return nil, false
	}
	return &branchFrame{space: sp, pivot: pivot, mutations: muts}, true
}

// next hands out the next child: a fresh clone of the frame's Space
// with the next Mutation still unapplied, plus that Mutation itself.
// The parent Space is retained so later siblings still see its
// unmutated domain.
func (f *branchFrame) next() (*Space, Mutation, bool) {
	if f.idx >= len(f.mutations) {
		return nil, Mutation{}, false
	}
	m := f.mutations[f.idx]
	f.idx++
	return f.space.clone(), m, true
}
