package fd

// addProp enforces x + y == s, narrowing all three views from each
// other's current bounds in a single pass.
type addProp struct{ x, y, s View }

func (p addProp) deps() []VarId { return viewVars(p.x, p.y, p.s) }

func (p addProp) prune(vars *Vars) error {
	xMin, xMax := p.x.Min(vars), p.x.Max(vars)
	yMin, yMax := p.y.Min(vars), p.y.Max(vars)

	min := max32(addInt32(xMin, yMin), p.s.Min(vars))
	max := min32(addInt32(xMax, yMax), p.s.Max(vars))

	if _, err := p.s.TrySetMin(vars, min); err != nil {
		return err
	}
	if _, err := p.s.TrySetMax(vars, max); err != nil {
		return err
	}
	if _, err := p.x.TrySetMin(vars, subInt32(min, yMax)); err != nil {
		return err
	}
	if _, err := p.x.TrySetMax(vars, subInt32(max, yMin)); err != nil {
		return err
	}
	if _, err := p.y.TrySetMin(vars, subInt32(min, xMax)); err != nil {
		return err
	}
	if _, err := p.y.TrySetMax(vars, subInt32(max, xMin)); err != nil {
		return err
	}
	return nil
}
