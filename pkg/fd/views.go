package fd

import "math"

// View is a read-and-narrow window onto a variable's domain. Views carry
// no mutable state of their own: Opposite, Plus, Times, TimesPos and
// TimesNeg are thin affine transforms computed on demand from an inner
// View, and a constant built with Lit never touches the domain store at
// all. This lets propagators be written once against View and reused
// for both bare variables and arbitrary affine expressions over them.
type View interface {
	// Var returns the underlying variable id this view reads through,
	// if it passes through exactly one (a bare VarId or any chain of
	// affine wrappers around one). Constants answer false.
	Var() (VarId, bool)

	Min(vars *Vars) int32
	Max(vars *Vars) int32

	// TrySetMin raises the view's minimum to m, translating the bound
	// back through the affine transform onto the underlying variable.
	// It fails if doing so would empty the domain.
	TrySetMin(vars *Vars, m int32) (int32, error)

	// TrySetMax lowers the view's maximum to M, translating the bound
	// back through the affine transform onto the underlying variable.
	TrySetMax(vars *Vars, M int32) (int32, error)
}

// Lit returns a constant view: a fixed integer that never allocates a
// variable and rejects any attempt to narrow it past its own value.
func Lit(c int32) View { return constView(c) }

type constView int32

func (c constView) Var() (VarId, bool) { return 0, false }
func (c constView) Min(vars *Vars) int32 { return int32(c) }
func (c constView) Max(vars *Vars) int32 { return int32(c) }

func (c constView) TrySetMin(vars *Vars, m int32) (int32, error) {
	if m > int32(c) {
		return 0, errFailed
	}
	return int32(c), nil
}

func (c constView) TrySetMax(vars *Vars, M int32) (int32, error) {
	if M < int32(c) {
		return 0, errFailed
	}
	return int32(c), nil
}

// Opposite returns a view of -v: its minimum is the negation of v's
// maximum and vice versa.
func Opposite(v View) View { return oppositeView{v} }

type oppositeView struct{ inner View }

func (o oppositeView) Var() (VarId, bool) { return o.inner.Var() }
func (o oppositeView) Min(vars *Vars) int32 { return negInt32(o.inner.Max(vars)) }
func (o oppositeView) Max(vars *Vars) int32 { return negInt32(o.inner.Min(vars)) }

func (o oppositeView) TrySetMin(vars *Vars, m int32) (int32, error) {
	M, err := o.inner.TrySetMax(vars, negInt32(m))
	if err != nil {
		return 0, err
	}
	return negInt32(M), nil
}

func (o oppositeView) TrySetMax(vars *Vars, M int32) (int32, error) {
	m, err := o.inner.TrySetMin(vars, negInt32(M))
	if err != nil {
		return 0, err
	}
	return negInt32(m), nil
}

// Plus returns a view of v+k for a constant offset k.
func Plus(v View, k int32) View {
	if k == 0 {
		return v
	}
	return plusView{inner: v, k: k}
}

type plusView struct {
	inner View
	k     int32
}

func (p plusView) Var() (VarId, bool) { return p.inner.Var() }
func (p plusView) Min(vars *Vars) int32 { return addInt32(p.inner.Min(vars), p.k) }
func (p plusView) Max(vars *Vars) int32 { return addInt32(p.inner.Max(vars), p.k) }

func (p plusView) TrySetMin(vars *Vars, m int32) (int32, error) {
	v, err := p.inner.TrySetMin(vars, subInt32(m, p.k))
	if err != nil {
		return 0, err
	}
	return addInt32(v, p.k), nil
}

func (p plusView) TrySetMax(vars *Vars, M int32) (int32, error) {
	v, err := p.inner.TrySetMax(vars, subInt32(M, p.k))
	if err != nil {
		return 0, err
	}
	return addInt32(v, p.k), nil
}

// Times returns a view of v*s, dispatching to TimesPos or TimesNeg
// according to the sign of s. Times(v, 0) is a constant zero view.
func Times(v View, s int32) View {
	switch {
	case s > 0:
		return TimesPos(v, s)
	case s < 0:
		return TimesNeg(v, s)
	default:
		return Lit(0)
	}
}

// TimesPos returns a view of v*s for a strictly positive scale s.
// Bound translation divides exactly: the new minimum rounds up and the
// new maximum rounds down, so no reachable value of v is excluded.
func TimesPos(v View, s int32) View {
	if s <= 0 {
		panic("fd: TimesPos requires a strictly positive scale")
	}
	return timesPosView{inner: v, s: s}
}

type timesPosView struct {
	inner View
	s     int32
}

func (t timesPosView) Var() (VarId, bool) { return t.inner.Var() }
func (t timesPosView) Min(vars *Vars) int32 { return mulInt32(t.inner.Min(vars), t.s) }
func (t timesPosView) Max(vars *Vars) int32 { return mulInt32(t.inner.Max(vars), t.s) }

func (t timesPosView) TrySetMin(vars *Vars, m int32) (int32, error) {
	v, err := t.inner.TrySetMin(vars, int32(divCeil(int64(m), int64(t.s))))
	if err != nil {
		return 0, err
	}
	return mulInt32(v, t.s), nil
}

func (t timesPosView) TrySetMax(vars *Vars, M int32) (int32, error) {
	v, err := t.inner.TrySetMax(vars, int32(divFloor(int64(M), int64(t.s))))
	if err != nil {
		return 0, err
	}
	return mulInt32(v, t.s), nil
}

// TimesNeg returns a view of v*s for a strictly negative scale s.
func TimesNeg(v View, s int32) View {
	if s >= 0 {
		panic("fd: TimesNeg requires a strictly negative scale")
	}
	return timesNegView{inner: v, s: s}
}

type timesNegView struct {
	inner View
	s     int32
}

func (t timesNegView) Var() (VarId, bool) { return t.inner.Var() }
func (t timesNegView) Min(vars *Vars) int32 { return mulInt32(t.inner.Max(vars), t.s) }
func (t timesNegView) Max(vars *Vars) int32 { return mulInt32(t.inner.Min(vars), t.s) }

func (t timesNegView) TrySetMin(vars *Vars, m int32) (int32, error) {
	// m <= inner*s with s<0 means inner <= m/s, rounding toward -inf in
	// the reversed sense: dividing by a negative scale flips the
	// direction of rounding that keeps the bound sound.
	v, err := t.inner.TrySetMax(vars, int32(divFloor(int64(m), int64(t.s))))
	if err != nil {
		return 0, err
	}
	return mulInt32(v, t.s), nil
}

func (t timesNegView) TrySetMax(vars *Vars, M int32) (int32, error) {
	v, err := t.inner.TrySetMin(vars, int32(divCeil(int64(M), int64(t.s))))
	if err != nil {
		return 0, err
	}
	return mulInt32(v, t.s), nil
}

// divFloor returns floor(a/b) for b != 0, rounding toward negative
// infinity rather than toward zero as Go's native / does.
func divFloor(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// divCeil returns ceil(a/b) for b != 0, rounding toward positive
// infinity rather than toward zero as Go's native / does.
func divCeil(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func addInt32(a, b int32) int32 { return clampInt32(int64(a) + int64(b)) }
func subInt32(a, b int32) int32 { return clampInt32(int64(a) - int64(b)) }
func mulInt32(a, b int32) int32 { return clampInt32(int64(a) * int64(b)) }

func negInt32(a int32) int32 {
	if a == math.MinInt32 {
		return math.MaxInt32
	}
	return -a
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// viewVars collects the distinct underlying variable ids that a set of
// views pass through, for use as a propagator's dependency list.
func viewVars(views ...View) []VarId {
	out := make([]VarId, 0, len(views))
	seen := make(map[VarId]bool, len(views))
	for _, v := range views {
		id, ok := v.Var()
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
