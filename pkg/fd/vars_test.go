package fd

import "testing"

func TestVarsTrySetMin(t *testing.T) {
	vs := newVars()
	id := vs.newVar(0, 10)

	if got, err := vs.TrySetMin(id, 4); err != nil || got != 4 {
		t.Fatalf("TrySetMin(4) = %d, %v; want 4, nil", got, err)
	}
	if got := vs.Min(id); got != 4 {
		t.Fatalf("Min() = %d; want 4", got)
	}
	if got, err := vs.TrySetMin(id, 2); err != nil || got != 4 {
		t.Fatalf("TrySetMin(2) = %d, %v; want 4, nil (no widening)", got, err)
	}
	if _, err := vs.TrySetMin(id, 11); err != errFailed {
		t.Fatalf("TrySetMin(11) = %v; want errFailed", err)
	}
}

func TestVarsTrySetMax(t *testing.T) {
	vs := newVars()
	id := vs.newVar(0, 10)

	if got, err := vs.TrySetMax(id, 6); err != nil || got != 6 {
		t.Fatalf("TrySetMax(6) = %d, %v; want 6, nil", got, err)
	}
	if _, err := vs.TrySetMax(id, -1); err != errFailed {
		t.Fatalf("TrySetMax(-1) = %v; want errFailed", err)
	}
}

func TestVarsTrySet(t *testing.T) {
	vs := newVars()
	id := vs.newVar(0, 10)

	if err := vs.TrySet(id, 7); err != nil {
		t.Fatalf("TrySet(7) = %v; want nil", err)
	}
	if !vs.IsAssigned(id) {
		t.Fatalf("IsAssigned() = false; want true after TrySet")
	}
	if err := vs.TrySet(id, 3); err != errFailed {
		t.Fatalf("TrySet(3) on assigned var = %v; want errFailed", err)
	}
}

func TestVarsDrainEvents(t *testing.T) {
	vs := newVars()
	a := vs.newVar(0, 10)
	b := vs.newVar(0, 10)

	if _, err := vs.TrySetMin(a, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := vs.TrySetMin(a, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := vs.TrySetMax(b, 8); err != nil {
		t.Fatal(err)
	}

	events := vs.DrainEvents()
	if len(events) != 2 {
		t.Fatalf("DrainEvents() = %v; want exactly a and b once each", events)
	}
	if got := vs.DrainEvents(); got != nil {
		t.Fatalf("second DrainEvents() = %v; want nil", got)
	}
}

func TestVarsCloneIsIndependent(t *testing.T) {
	vs := newVars()
	id := vs.newVar(0, 10)

	clone := vs.clone()
	if _, err := clone.TrySetMin(id, 5); err != nil {
		t.Fatal(err)
	}

	if got := vs.Min(id); got != 0 {
		t.Fatalf("original Min() = %d after mutating clone; want unchanged 0", got)
	}
	if got := clone.Min(id); got != 5 {
		t.Fatalf("clone Min() = %d; want 5", got)
	}
}

func TestNewVarInvalidRange(t *testing.T) {
	m := NewModel()
	if _, err := m.NewVar(5, 5); err != ErrInvalidRange {
		t.Fatalf("NewVar(5,5) = %v; want ErrInvalidRange", err)
	}
	if _, err := m.NewVar(5, 3); err != ErrInvalidRange {
		t.Fatalf("NewVar(5,3) = %v; want ErrInvalidRange", err)
	}
	if _, err := m.NewVarBounds(5, 5); err != nil {
		t.Fatalf("NewVarBounds(5,5) = %v; want nil (singleton allowed)", err)
	}
}
