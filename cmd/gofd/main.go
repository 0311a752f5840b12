// Command gofd runs the bundled constraint-solving demos and reports
// search statistics alongside their solutions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cplabs/gofd/pkg/fd"
)

func main() {
	root := &cobra.Command{
		Use:   "gofd",
		Short: "Finite-domain constraint solving demos",
	}
	root.AddCommand(knapsackCmd(), pcbuildCmd(), nqueensCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func knapsackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "knapsack",
		Short: "Maximize value of a 0/1 knapsack under a weight budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			weights := []int32{10, 60, 30, 40, 30, 20, 20, 2}
			values := []int32{1, 10, 15, 40, 60, 90, 100, 15}
			const budget = 102

			m := fd.NewModel()
			picks := make([]fd.VarId, len(weights))
			terms := make([]fd.View, len(weights))
			for i := range picks {
				picks[i] = m.NewVarBinary()
				terms[i] = picks[i]
			}
			totalWeight, err := m.Linear(terms, weights)
			if err != nil {
				return err
			}
			m.Leq(totalWeight, fd.Lit(budget))
			totalValue, err := m.Linear(terms, values)
			if err != nil {
				return err
			}

			it := m.MaximizeAll(totalValue)
			var last *fd.Solution
			for {
				s, ok := it.Next()
				if !ok {
					break
				}
				last = s
			}
			if last == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no feasible selection")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total weight: %d / %d\n", last.Value(totalWeight), budget)
			fmt.Fprintf(out, "total value:  %d\n", last.Value(totalValue))
			printStats(out, it)
			return nil
		},
	}
}

func pcbuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pcbuild",
		Short: "Pick a monitor count and GPU tier maximizing score under a price cap",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices := []int32{150, 250, 500}
			scores := []int32{100, 400, 800}
			const priceCap = 600

			m := fd.NewModel()
			nMonitors, err := m.NewVarBounds(1, 3)
			if err != nil {
				return err
			}
			gpus := make([]fd.VarId, len(prices))
			gpuViews := make([]fd.View, len(prices))
			for i := range gpus {
				gpus[i] = m.NewVarBinary()
				gpuViews[i] = gpus[i]
			}
			gpuCount, err := m.Sum(gpuViews)
			if err != nil {
				return err
			}
			m.Equals(gpuCount, fd.Lit(1))

			priceTerms := append([]fd.View{nMonitors}, gpuViews...)
			priceCoefs := append([]int32{100}, prices...)
			price, err := m.Linear(priceTerms, priceCoefs)
			if err != nil {
				return err
			}
			m.Leq(price, fd.Lit(priceCap))

			scoreTerms := append([]fd.View{nMonitors}, gpuViews...)
			scoreCoefs := append([]int32{250}, scores...)
			score, err := m.Linear(scoreTerms, scoreCoefs)
			if err != nil {
				return err
			}

			it := m.MaximizeAll(score)
			var last *fd.Solution
			for {
				s, ok := it.Next()
				if !ok {
					break
				}
				last = s
			}
			if last == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no feasible build")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "monitors: %d\n", last.Value(nMonitors))
			fmt.Fprintf(out, "price: %d (cap %d)\n", last.Value(price), priceCap)
			fmt.Fprintf(out, "score: %d\n", last.Value(score))
			printStats(out, it)
			return nil
		},
	}
}

func nqueensCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "nqueens",
		Short: "Place N non-attacking queens on an N×N board",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := fd.NewModel()
			rows := make([]fd.VarId, n)
			for i := range rows {
				row, err := m.NewVarBounds(0, int32(n-1))
				if err != nil {
					return err
				}
				rows[i] = row
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					m.Propagator(notEqual{x: rows[i], y: rows[j]}, []fd.VarId{rows[i], rows[j]})
					m.Propagator(notEqual{x: m.Plus(rows[i], int32(-i)), y: m.Plus(rows[j], int32(-j))}, []fd.VarId{rows[i], rows[j]})
					m.Propagator(notEqual{x: m.Plus(rows[i], int32(i)), y: m.Plus(rows[j], int32(j))}, []fd.VarId{rows[i], rows[j]})
				}
			}

			it := m.Enumerate()
			sol, ok := it.Next()
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "no solution found")
				return nil
			}
			positions := sol.Values(rows)
			for row := 0; row < n; row++ {
				for col := 0; col < n; col++ {
					if positions[col] == int32(row) {
						fmt.Fprint(out, "Q ")
					} else {
						fmt.Fprint(out, ". ")
					}
				}
				fmt.Fprintln(out)
			}
			printStats(out, it)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 6, "board size")
	return cmd
}

// notEqual is a custom propagator for x != y, used to rule out column
// and diagonal attacks between a pair of queens.
type notEqual struct{ x, y fd.View }

func (p notEqual) Prune(vars *fd.Vars) error {
	if err := p.pruneOneSide(vars, p.x, p.y); err != nil {
		return err
	}
	return p.pruneOneSide(vars, p.y, p.x)
}

func (p notEqual) pruneOneSide(vars *fd.Vars, a, b fd.View) error {
	aMin, aMax := a.Min(vars), a.Max(vars)
	if aMin != aMax {
		return nil
	}
	v := aMin
	bMin, bMax := b.Min(vars), b.Max(vars)
	if bMin == bMax && bMin == v {
		return fmt.Errorf("fd: %d cannot equal %d", v, v)
	}
	if bMin == v {
		if _, err := b.TrySetMin(vars, v+1); err != nil {
			return err
		}
	}
	if bMax == v {
		if _, err := b.TrySetMax(vars, v-1); err != nil {
			return err
		}
	}
	return nil
}

func printStats(out io.Writer, it *fd.Solutions) {
	fmt.Fprintf(out, "nodes explored: %s, solutions found: %s\n",
		humanize.Comma(int64(it.NodesExplored())), humanize.Comma(int64(it.SolutionsFound())))
}
