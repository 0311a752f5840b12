package fd

// Solution is a frozen assignment: the value bound to every variable in
// the store at the moment it became fully assigned.
type Solution struct {
	values []int32
}

func newSolutionFromVars(vars *Vars) *Solution {
	values := make([]int32, vars.Len())
	for i := range values {
		values[i] = vars.Min(VarId(i))
	}
	return &Solution{values: values}
}

// Value returns the value assigned to a single variable.
func (s *Solution) Value(v VarId) int32 { return s.values[v] }

// Values returns the values assigned to a slice of variables, in order.
func (s *Solution) Values(vs []VarId) []int32 {
	out := make([]int32, len(vs))
	for i, v := range vs {
		out[i] = s.values[v]
	}
	return out
}

// Bool reports a 0/1 variable's assignment as a boolean.
func (s *Solution) Bool(v VarId) bool { return s.values[v] != 0 }

// Bools reports a slice of 0/1 variables' assignments as booleans.
func (s *Solution) Bools(vs []VarId) []bool {
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = s.values[v] != 0
	}
	return out
}
