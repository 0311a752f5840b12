// Package fd implements a finite-domain constraint solver over bounded
// integer variables.
//
// A Model declares variables, views over those variables, and the
// constraints (propagators) that relate them. Solve, Enumerate, Minimize
// and Maximize drive a depth-first branch-and-prune search to completion,
// satisfaction, or optimality.
//
// Domains are bounds-consistent: a variable only ever tracks a [min, max]
// interval, never an explicit value set. Propagators narrow bounds until
// a fixed point is reached or a domain collapses to empty, at which point
// the enclosing branch of the search fails and the driver backtracks.
package fd
