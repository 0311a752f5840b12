package fd

// VarId identifies a decision variable inside a Vars store. It is also a
// View: a bare VarId reads and narrows the variable it names directly,
// with no indirection.
type VarId int

// domain is the bounds-consistent interval tracked for one variable.
type domain struct {
	min, max int32
}

func (d domain) empty() bool { return d.min > d.max }

func (d domain) assigned() bool { return d.min == d.max }

// Vars is the domain store: a dense array of variable bounds shared by
// every View and propagator in a Model, and cloned wholesale whenever
// the search driver branches.
//
// Vars also tracks, for the lifetime of a single propagation pass, the
// set of variables whose bounds changed since the caller last drained
// it. The search engine uses this to decide which propagators to wake.
type Vars struct {
	domains []domain
	changed []bool
	touched []VarId
}

func newVars() *Vars {
	return &Vars{}
}

// newVar appends a variable with the given bounds and returns its id.
// Callers are expected to have validated min <= max already.
func (vs *Vars) newVar(min, max int32) VarId {
	id := VarId(len(vs.domains))
	vs.domains = append(vs.domains, domain{min: min, max: max})
	vs.changed = append(vs.changed, false)
	return id
}

// Len reports how many variables the store holds.
func (vs *Vars) Len() int { return len(vs.domains) }

// Min returns the current minimum of a variable's domain.
func (vs *Vars) Min(id VarId) int32 { return vs.domains[id].min }

// Max returns the current maximum of a variable's domain.
func (vs *Vars) Max(id VarId) int32 { return vs.domains[id].max }

// IsAssigned reports whether a variable's domain has collapsed to a
// single value.
func (vs *Vars) IsAssigned(id VarId) bool { return vs.domains[id].assigned() }

// IsFullyAssigned reports whether every variable in the store is
// assigned, i.e. a candidate solution is ready to be read off.
func (vs *Vars) IsFullyAssigned() bool {
	for _, d := range vs.domains {
		if !d.assigned() {
			return false
		}
	}
	return true
}

func (vs *Vars) markChanged(id VarId) {
	if !vs.changed[id] {
		vs.changed[id] = true
		vs.touched = append(vs.touched, id)
	}
}

// DrainEvents returns the variables that changed since the last call to
// DrainEvents and resets the change set.
func (vs *Vars) DrainEvents() []VarId {
	if len(vs.touched) == 0 {
		return nil
	}
	out := vs.touched
	for _, id := range out {
		vs.changed[id] = false
	}
	vs.touched = nil
	return out
}

// TrySetMin raises a variable's minimum to m, failing if doing so would
// empty its domain. It returns the variable's (possibly unchanged)
// minimum on success.
func (vs *Vars) TrySetMin(id VarId, m int32) (int32, error) {
	d := vs.domains[id]
	if m <= d.min {
		return d.min, nil
	}
	if m > d.max {
		return 0, errFailed
	}
	vs.domains[id].min = m
	vs.markChanged(id)
	return m, nil
}

// TrySetMax lowers a variable's maximum to M, failing if doing so would
// empty its domain. It returns the variable's (possibly unchanged)
// maximum on success.
func (vs *Vars) TrySetMax(id VarId, M int32) (int32, error) {
	d := vs.domains[id]
	if M >= d.max {
		return d.max, nil
	}
	if M < d.min {
		return 0, errFailed
	}
	vs.domains[id].max = M
	vs.markChanged(id)
	return M, nil
}

// TrySet collapses a variable's domain to the single value k, failing
// if k lies outside the current bounds.
func (vs *Vars) TrySet(id VarId, k int32) error {
	d := vs.domains[id]
	if k < d.min || k > d.max {
		return errFailed
	}
	if d.min != k || d.max != k {
		vs.domains[id] = domain{min: k, max: k}
		vs.markChanged(id)
	}
	return nil
}

// clone produces an independent copy of the store. It is called once
// per branch explored by the search driver, so it intentionally avoids
// any allocation beyond the two backing slices.
func (vs *Vars) clone() *Vars {
	out := &Vars{
		domains: make([]domain, len(vs.domains)),
		changed: make([]bool, len(vs.changed)),
	}
	copy(out.domains, vs.domains)
	copy(out.changed, vs.changed)
	if len(vs.touched) > 0 {
		out.touched = append([]VarId(nil), vs.touched...)
	}
	return out
}

// Var implements View: a bare VarId names itself.
func (id VarId) Var() (VarId, bool) { return id, true }

// Min implements View.
func (id VarId) Min(vars *Vars) int32 { return vars.Min(id) }

// Max implements View.
func (id VarId) Max(vars *Vars) int32 { return vars.Max(id) }

// TrySetMin implements View.
func (id VarId) TrySetMin(vars *Vars, m int32) (int32, error) { return vars.TrySetMin(id, m) }

// TrySetMax implements View.
func (id VarId) TrySetMax(vars *Vars, M int32) (int32, error) { return vars.TrySetMax(id, M) }
