package fd

import "testing"

func TestWithSolutionLimitCapsEnumerate(t *testing.T) {
	m := NewModel(WithSolutionLimit(3))
	if _, err := m.NewVarBounds(-7, 9); err != nil {
		t.Fatal(err)
	}

	got := m.Enumerate().All()
	if len(got) != 3 {
		t.Fatalf("len(All()) = %d; want 3 (WithSolutionLimit(3) should cap the iterator)", len(got))
	}
}

func TestWithSolutionLimitZeroIsUnbounded(t *testing.T) {
	m := NewModel()
	if _, err := m.NewVarBounds(0, 4); err != nil {
		t.Fatal(err)
	}

	got := m.Enumerate().All()
	if len(got) != 5 {
		t.Fatalf("len(All()) = %d; want 5 (default solutionLimit of 0 means unbounded)", len(got))
	}
}
