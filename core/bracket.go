package core

import (
	"fmt"
	"math/big"

	"github.com/perturbkit/vanvleck/expr"
)

// Bracket computes the formal bracket {t, other}: t bracketed with every
// term of the operand, in operand order.
//
// Combining rules (orders always add, coefficients multiply):
//   - static with static: one static term {A,B}.
//   - one side rotating: one rotating term at the summed harmonic.
//   - both sides rotating: the exact split {A,B} = ⟨{A,B}⟩ + [{A,B}]_osc,
//     a static Average term plus a rotating Oscillatory term tagged with
//     the summed harmonic.
//
// Pairs whose product coefficient is exactly zero are dropped. Neither
// operand is mutated. Antisymmetry holds up to payload orientation:
// a.Bracket(b) equals b.Bracket(a).Neg() under Equal.
//
// Errors: ErrInvalidOperand when other is nil (including a typed nil
// pointer) or either side contains terms not built by the constructors.
// Complexity: O(len(left)·len(right)) term constructions.
func (t Term) Bracket(other Operand) (Terms, error) {
	return bracketOperands([]Term{t}, other)
}

// Bracket distributes the formal bracket over both collections:
// {Σ a_i, Σ b_j} = Σ_i Σ_j {a_i, b_j}, pairs enumerated in operand
// order. Combining rules and errors match Term.Bracket.
func (ts Terms) Bracket(other Operand) (Terms, error) {
	return bracketOperands(ts.list, other)
}

// bracketOperands validates both sides, then expands pairwise products.
func bracketOperands(left []Term, other Operand) (Terms, error) {
	// 1) Validate operands: the combining rules are total only over
	//    constructor-built terms.
	right, ok := operandList(other)
	if !ok {
		return Terms{}, fmt.Errorf("%w: nil bracket operand", ErrInvalidOperand)
	}
	if err := validateOperand("left", left); err != nil {
		return Terms{}, err
	}
	if err := validateOperand("right", right); err != nil {
		return Terms{}, err
	}
	// 2) Distribute pairwise in operand order; the fixed iteration order
	//    keeps every expansion deterministic.
	out := make([]Term, 0, len(left)*len(right))
	for _, a := range left {
		for _, b := range right {
			out = append(out, bracketPair(a, b)...)
		}
	}

	return Terms{list: out}, nil
}

// operandList extracts the operand's term list. Nil is refused in both
// shapes it can arrive in: a nil interface value and a typed nil pointer
// to Term or Terms, which would panic inside operandTerms.
func operandList(op Operand) ([]Term, bool) {
	switch v := op.(type) {
	case nil:
		return nil, false
	case *Term:
		if v == nil {
			return nil, false
		}
	case *Terms:
		if v == nil {
			return nil, false
		}
	}

	return op.operandTerms(), true
}

// validateOperand rejects terms that did not come from the constructors.
func validateOperand(side string, list []Term) error {
	for i, t := range list {
		if !t.valid() {
			return fmt.Errorf("%w: %s operand term %d is not constructed", ErrInvalidOperand, side, i)
		}
	}

	return nil
}

// bracketPair applies the combining rules to one ordered pair of terms.
func bracketPair(a, b Term) []Term {
	coeff := new(big.Rat).Mul(a.coeff, b.coeff)
	if coeff.Sign() == 0 {
		return nil
	}
	order := a.order + b.order
	node := expr.NewBracket(a.node, b.node)
	switch {
	case a.rotating && b.rotating:
		// The identity X = ⟨X⟩ + [X]_osc splits the product exactly: the
		// secular image lands at harmonic 0, the fluctuating image at the
		// summed harmonic.
		avg := Term{order: order, harmonic: 0, rotating: false, coeff: coeff, node: expr.NewAverage(node)}
		osc := Term{order: order, harmonic: a.harmonic + b.harmonic, rotating: true, coeff: new(big.Rat).Set(coeff), node: expr.NewOscillatory(node)}

		return []Term{avg, osc}
	case a.rotating || b.rotating:
		return []Term{{order: order, harmonic: a.harmonic + b.harmonic, rotating: true, coeff: coeff, node: node}}
	default:
		return []Term{{order: order, harmonic: 0, rotating: false, coeff: coeff, node: node}}
	}
}
