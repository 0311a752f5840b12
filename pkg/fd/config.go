package fd

import "github.com/sirupsen/logrus"

// Option configures a Model at construction time.
type Option func(*solverConfig)

type solverConfig struct {
	brancher      Brancher
	logger        *logrus.Logger
	solutionLimit int
}

func defaultSolverConfig() *solverConfig {
	return &solverConfig{brancher: defaultBrancher(), logger: discardLogger()}
}

// WithBrancher overrides the default FirstUnassigned/BinarySplit pair
// used to explore the search tree.
func WithBrancher(pick Picker, enumerate Enumerator) Option {
	return func(c *solverConfig) { c.brancher = Brancher{pick: pick, enumerate: enumerate} }
}

// WithLogger routes search diagnostics (branch failures, solutions
// found, node counts) through l instead of discarding them.
func WithLogger(l *logrus.Logger) Option {
	return func(c *solverConfig) { c.logger = l }
}

// WithSolutionLimit caps the number of solutions a Solutions iterator
// will yield before it reports exhaustion, regardless of how much of
// the search tree remains. A limit of 0 (the default) means unbounded.
func WithSolutionLimit(n int) Option {
	return func(c *solverConfig) { c.solutionLimit = n }
}
