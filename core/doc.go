// Package core implements the Van Vleck canonical perturbation engine:
// graded symbolic Terms, the formal bracket that combines them, and a
// Session that memoizes the recursive construction of generators S(n)
// and transformed-Hamiltonian (Kamiltonian) pieces K(n,m).
//
// What it computes:
//
//	A base Hamiltonian is split by perturbation order, H = H_0 + H_1 + ...,
//	with the order-0 part static and higher orders oscillating at integer
//	harmonics of one drive frequency. The canonical transformation
//	K = exp(L_S) H with L_S = {S, ·} expands into the graded recursion
//
//	  K(n,0) = H_n
//	  K(n,m) = (1/m) · Σ_{k=1..n-m+1} { S(k), K(n-k, m-1) }   for 1 ≤ m ≤ n
//	  K(n,m) = 0 (empty)                                      for m > n
//
//	and the order-n generator inverts the oscillating part of the order-n
//	row with the {S(n), H_0} self-term removed:
//
//	  S(n) = ∫ osc[ K(n,0) + Σ_{m=1..n} K°(n,m) ] dt
//
//	where K° truncates the inner k-sum at k ≤ n-1 (only the m = 1 row
//	ever reaches k = n). Inversion divides each oscillating term's
//	coefficient by its harmonic; a zero-harmonic oscillating term is
//	resonant and aborts the construction with a ResonanceError.
//
// Determinism:
//
//	All sums iterate k and m in increasing order, bracket expansion keeps
//	operand order, and coefficients are exact big.Rat rationals, so two
//	sessions fed the same Hamiltonian produce structurally identical
//	results, render for render.
//
// Concurrency:
//
//	A Session serializes SetHamiltonian, K and S behind one mutex.
//	Returned Terms are immutable snapshots and safe to share.
//
// Complexity:
//
//	– Time:  O(T(n)) term constructions on the first K(n,·)/S(n) call at
//	  order n, where T(n) is the number of generated terms (combinatorial
//	  in n); repeated calls are O(1) cache lookups.
//	– Space: O(Σ T) across the two memo tables.
//
// Errors (sentinel):
//
//	– ErrNotInitialized – K or S called before SetHamiltonian.
//	– ErrInvalidOperand – nil bracket operand, a term built without the
//	  constructors, or invalid Term construction arguments.
//	– ErrOrderGap       – SetHamiltonian without an order-0 or order-1 term.
//	– ErrOrderRange     – K(n<0,·), K(·,m<0) or S(n<1).
//	– ResonanceError    – typed; a generator met a zero-harmonic
//	  oscillating term.
//
// Example usage:
//
//	sess := core.NewSession()
//	h := core.NewTerms(core.MustTerm(0), core.MustTerm(1))
//	if err := sess.SetHamiltonian(h); err != nil {
//	    log.Fatal(err)
//	}
//	s1, _ := sess.S(1)   // first-order generator, one term
//	k11, _ := sess.K(1, 1)
//	fmt.Println(s1.Latex(), k11.Latex())
package core
