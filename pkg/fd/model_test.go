package fd

import "testing"

func TestOppositeExample(t *testing.T) {
	m := NewModel()
	x, err := m.NewVarBounds(-7, 9)
	if err != nil {
		t.Fatal(err)
	}
	m.Equals(m.Opposite(x), Lit(5))

	sol, ok := m.Solve()
	if !ok {
		t.Fatal("Solve() found no solution")
	}
	if got := sol.Value(x); got != -5 {
		t.Fatalf("x = %d; want -5", got)
	}
}

func TestScalingNegativeExample(t *testing.T) {
	m := NewModel()
	x, err := m.NewVarBounds(-7, 9)
	if err != nil {
		t.Fatal(err)
	}
	m.Equals(m.Times(x, -2), Lit(4))

	sol, ok := m.Solve()
	if !ok {
		t.Fatal("Solve() found no solution")
	}
	if got := sol.Value(x); got != -2 {
		t.Fatalf("x = %d; want -2", got)
	}
}

func TestScalingNegativeExampleInfeasible(t *testing.T) {
	m := NewModel()
	x, err := m.NewVarBounds(-7, 9)
	if err != nil {
		t.Fatal(err)
	}
	m.Equals(m.Times(x, -2), Lit(3))

	if _, ok := m.Solve(); ok {
		t.Fatal("Solve() found a solution; want none (-2x=3 has no integer root)")
	}
}

func TestScalingZeroExample(t *testing.T) {
	m := NewModel()
	x, err := m.NewVarBounds(-7, 9)
	if err != nil {
		t.Fatal(err)
	}
	m.Equals(m.Times(x, 0), Lit(0))

	sol, ok := m.Maximize(x)
	if !ok {
		t.Fatal("Maximize() found no solution")
	}
	if got := sol.Value(x); got != 9 {
		t.Fatalf("x = %d; want 9", got)
	}
}

func TestScalingZeroExampleInfeasible(t *testing.T) {
	m := NewModel()
	x, err := m.NewVarBounds(-7, 9)
	if err != nil {
		t.Fatal(err)
	}
	m.Equals(m.Times(x, 0), Lit(4))

	if _, ok := m.Solve(); ok {
		t.Fatal("Solve() found a solution; want none (0x=4 is never true)")
	}
}

func TestKnapsack(t *testing.T) {
	weights := []int32{10, 60, 30, 40, 30, 20, 20, 2}
	values := []int32{1, 10, 15, 40, 60, 90, 100, 15}

	m := NewModel()
	xs := make([]VarId, len(weights))
	for i := range xs {
		xs[i] = m.NewVarBinary()
	}

	weightTerms := make([]View, len(xs))
	valueTerms := make([]View, len(xs))
	for i, x := range xs {
		weightTerms[i] = x
		valueTerms[i] = x
	}

	totalWeight, err := m.Linear(weightTerms, weights)
	if err != nil {
		t.Fatal(err)
	}
	m.Leq(totalWeight, Lit(102))

	totalValue, err := m.Linear(valueTerms, values)
	if err != nil {
		t.Fatal(err)
	}

	sol, ok := m.Maximize(totalValue)
	if !ok {
		t.Fatal("Maximize() found no solution")
	}

	if got := sol.Value(totalValue); got != 280 {
		t.Fatalf("total value = %d; want 280", got)
	}
	if got := sol.Value(totalWeight); got != 102 {
		t.Fatalf("total weight = %d; want 102", got)
	}

	want := []bool{false, false, true, false, true, true, true, true}
	got := sol.Bools(xs)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selection[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestPCBuild(t *testing.T) {
	prices := []int32{150, 250, 500}
	scores := []int32{100, 400, 800}

	m := NewModel()
	nMonitors, err := m.NewVarBounds(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	gpu := make([]VarId, len(prices))
	for i := range gpu {
		gpu[i] = m.NewVarBinary()
	}

	gpuViews := make([]View, len(gpu))
	for i, g := range gpu {
		gpuViews[i] = g
	}
	gpuSum, err := m.Sum(gpuViews)
	if err != nil {
		t.Fatal(err)
	}
	m.Equals(gpuSum, Lit(1))

	priceTerms := make([]View, len(gpu)+1)
	priceTerms[0] = nMonitors
	priceCoefs := make([]int32, len(gpu)+1)
	priceCoefs[0] = 100
	for i, g := range gpu {
		priceTerms[i+1] = g
		priceCoefs[i+1] = prices[i]
	}
	price, err := m.Linear(priceTerms, priceCoefs)
	if err != nil {
		t.Fatal(err)
	}
	m.Leq(price, Lit(600))

	scoreTerms := make([]View, len(gpu)+1)
	scoreTerms[0] = nMonitors
	scoreCoefs := make([]int32, len(gpu)+1)
	scoreCoefs[0] = 250
	for i, g := range gpu {
		scoreTerms[i+1] = g
		scoreCoefs[i+1] = scores[i]
	}
	score, err := m.Linear(scoreTerms, scoreCoefs)
	if err != nil {
		t.Fatal(err)
	}

	sol, ok := m.Maximize(score)
	if !ok {
		t.Fatal("Maximize() found no solution")
	}

	if got := sol.Value(nMonitors); got != 3 {
		t.Fatalf("n_monitors = %d; want 3", got)
	}
	if got := sol.Value(score); got != 1150 {
		t.Fatalf("score = %d; want 1150", got)
	}
	if got := sol.Value(price); got != 550 {
		t.Fatalf("price = %d; want 550", got)
	}
	if !sol.Bool(gpu[1]) {
		t.Fatalf("mid-tier gpu selector = false; want true")
	}
}
