// Package vanvleck is an exact bookkeeping engine for canonical
// perturbation theory — it builds the generators and Kamiltonian rows of
// a Van Vleck averaging transformation symbolically, order by order.
//
// 🚀 What is vanvleck?
//
//	A small, thread-safe library that keeps every coefficient an exact
//	rational while it:
//		• grades a driven Hamiltonian into perturbation orders
//		• expands graded brackets with the static/oscillating split
//		• derives the generator S(n) that cancels each oscillating part
//		• assembles the Kamiltonian rows K(n,m) with memoized recursion
//		• renders every object as LaTeX or a compact debug string
//
// ✨ Why choose vanvleck?
//
//   - Exact – big.Rat coefficients, no floating-point drift
//   - Deterministic – same system, same order, same terms, always
//   - Honest about resonance – zero-harmonic drives fail loudly with a
//     typed error instead of dividing by zero
//   - Small API – one session object, two families of queries
//
// Everything is organized under five subpackages:
//
//	catalog/ — ready-made driven systems (Duffing, parametric pump, ...)
//	cmd/     — the vanvleck CLI (expand, generator, presets)
//	core/    — Term, Terms, Session: the bracket and the recursion
//	expr/    — immutable expression nodes with canonical keys
//	hamfile/ — strict YAML manifests for describing Hamiltonians
//
// Quick ASCII picture of what a session builds:
//
//	        m=0      m=1        m=2
//	 n=0    H(0)
//	 n=1    H(1)     {S1,H0}
//	 n=2    H(2)     {S,...}    1/2 {S1,{S1,H0}}
//
//	each cell a list of exact terms, each built once.
//
// Dive into the examples/ directory for runnable walkthroughs: the
// minimal tower, a driven Duffing oscillator, the resonance guard and
// the manifest workflow.
//
//	go get github.com/perturbkit/vanvleck
package vanvleck
