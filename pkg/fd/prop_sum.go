package fd

// sumProp enforces sum(xs) == s. Bounds are accumulated in 64 bits so
// that long aggregates (e.g. a knapsack's weight or value sum) cannot
// overflow before being clamped back to the 32-bit domain range.
type sumProp struct {
	xs []View
	s  View
}

func (p sumProp) deps() []VarId {
	return viewVars(append(append([]View(nil), p.xs...), p.s)...)
}

func (p sumProp) prune(vars *Vars) error {
	mins := make([]int32, len(p.xs))
	maxs := make([]int32, len(p.xs))
	var sumMin, sumMax int64
	for i, x := range p.xs {
		mn, mx := x.Min(vars), x.Max(vars)
		mins[i], maxs[i] = mn, mx
		sumMin += int64(mn)
		sumMax += int64(mx)
	}

	min := max64(sumMin, int64(p.s.Min(vars)))
	max := min64(sumMax, int64(p.s.Max(vars)))

	if _, err := p.s.TrySetMin(vars, clampInt32(min)); err != nil {
		return err
	}
	if _, err := p.s.TrySetMax(vars, clampInt32(max)); err != nil {
		return err
	}
	for i, x := range p.xs {
		newMin := clampInt32(min - (sumMax - int64(maxs[i])))
		if _, err := x.TrySetMin(vars, newMin); err != nil {
			return err
		}
		newMax := clampInt32(max - (sumMin - int64(mins[i])))
		if _, err := x.TrySetMax(vars, newMax); err != nil {
			return err
		}
	}
	return nil
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
