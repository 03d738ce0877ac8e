// Package expr provides the formal symbolic expression trees used by the
// Van Vleck engine: operator placeholders, brackets, averaging projections
// and formal time integrals, with deterministic LaTeX and plain-text
// rendering.
//
// What it is:
//
//	A bookkeeping algebra, not a computer-algebra system. Nodes record the
//	structure of an operator expression (which brackets were taken, which
//	parts were averaged or integrated) without evaluating anything. All
//	arithmetic lives one layer up, in the core package's rational
//	coefficients.
//
// Node kinds:
//   - Atom        named operator placeholder with an order tag, e.g. H^{(1)}
//   - Bracket     formal bilinear bracket {L, R}
//   - Average     secular (time-averaged) part ⟨X⟩
//   - Oscillatory zero-average fluctuating remainder [X]_osc
//   - Integral    formal time integral ∫ X dt
//
// Determinism:
//
//	Latex, String and Key are pure functions of node structure. Key returns
//	a canonical prefix encoding: two expressions are structurally equal
//	exactly when their keys are equal. Atom names are escaped inside keys,
//	so symbols containing the grammar's own delimiters stay unambiguous.
//	Canonical orients brackets by Key and reports the sign picked up by
//	swaps ({A,B} = -{B,A}), which is how the core layer compares
//	expressions up to antisymmetry.
//
// Usage:
//
//	h0 := expr.NewAtom("H", 0)
//	h1 := expr.NewAtom("H", 1)
//	b := expr.NewBracket(expr.NewIntegral(h1), h0)
//	fmt.Println(b.Latex()) // \left\{\int\!H^{(1)}\,\mathrm{d}t,\,H^{(0)}\right\}
package expr
