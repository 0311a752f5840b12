package fd

import "testing"

// evenProp is a custom propagator restricting a variable to even values,
// by trimming an odd bound inward by one.
type evenProp struct{ x VarId }

func (p evenProp) Prune(vars *Vars) error {
	if vars.Min(p.x)%2 != 0 {
		if _, err := vars.TrySetMin(p.x, vars.Min(p.x)+1); err != nil {
			return err
		}
	}
	if vars.Max(p.x)%2 != 0 {
		if _, err := vars.TrySetMax(p.x, vars.Max(p.x)-1); err != nil {
			return err
		}
	}
	return nil
}

func TestCustomPropagator(t *testing.T) {
	m := NewModel()
	x, err := m.NewVarBounds(1, 9)
	if err != nil {
		t.Fatal(err)
	}
	m.Propagator(evenProp{x: x}, []VarId{x})

	sol, ok := m.Maximize(x)
	if !ok {
		t.Fatal("Maximize() found no solution")
	}
	if got := sol.Value(x); got != 8 {
		t.Fatalf("x = %d; want 8 (largest even value in [1,9])", got)
	}
}

func TestMinimizeAllYieldsStrictImprovements(t *testing.T) {
	m := NewModel()
	x, err := m.NewVarBounds(0, 20)
	if err != nil {
		t.Fatal(err)
	}
	y, err := m.NewVarBounds(0, 20)
	if err != nil {
		t.Fatal(err)
	}
	m.Geq(x, Lit(3))
	m.Geq(y, Lit(4))
	sum := m.Add(x, y)

	it := m.MinimizeAll(sum)
	var prev int32
	count := 0
	for {
		sol, ok := it.Next()
		if !ok {
			break
		}
		count++
		got := sol.Value(sum)
		if count > 1 && got >= prev {
			t.Fatalf("solution %d: sum = %d did not strictly improve on %d", count, got, prev)
		}
		prev = got
	}
	if count == 0 {
		t.Fatal("MinimizeAll yielded no solutions")
	}
	if prev != 7 {
		t.Fatalf("final (optimal) sum = %d; want 7", prev)
	}
}
