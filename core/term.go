package core

import (
	"fmt"
	"math/big"

	"github.com/perturbkit/vanvleck/expr"
)

// Shared constants for coefficient comparisons; never mutated.
var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

// Term is one symbolic summand of a graded operator series: an exact
// rational coefficient times an opaque payload expression, tagged with a
// perturbation order, a net drive harmonic and an oscillation flag.
//
// Terms are immutable: every method treats the receiver as read-only and
// returns fresh values. The zero Term is not usable; build terms with
// NewTerm or MustTerm.
type Term struct {
	order    int
	harmonic int
	rotating bool
	coeff    *big.Rat
	node     expr.Expr
}

// NewTerm builds the order-n placeholder term H^{(n)}: static for
// order 0, rotating at the fundamental harmonic for higher orders.
// Options override the symbol, harmonic, oscillation tag, coefficient
// and payload.
//
// Errors: ErrInvalidOperand on a negative order, a negative harmonic, a
// zero coefficient denominator, or a nil WithExpr payload.
// Complexity: O(1).
func NewTerm(order int, opts ...TermOption) (Term, error) {
	// 1) The order is immutable for the term's lifetime; refuse bad
	//    values before anything else.
	if order < 0 {
		return Term{}, fmt.Errorf("%w: negative term order %d", ErrInvalidOperand, order)
	}
	// 2) Seed order-derived defaults: order 0 is the static reference
	//    frame, higher orders oscillate at the fundamental harmonic.
	cfg := termSettings{symbol: expr.DefaultAtomName, coeffNum: 1, coeffDen: 1}
	if order > 0 {
		cfg.harmonic = 1
	}
	// 3) Apply options in order.
	for _, opt := range opts {
		opt(&cfg)
	}
	// 4) Validate the assembled settings.
	if cfg.harmonic < 0 {
		return Term{}, fmt.Errorf("%w: negative harmonic %d", ErrInvalidOperand, cfg.harmonic)
	}
	if cfg.coeffDen == 0 {
		return Term{}, fmt.Errorf("%w: zero coefficient denominator", ErrInvalidOperand)
	}
	if cfg.nodeSet && cfg.node == nil {
		return Term{}, fmt.Errorf("%w: nil expression payload", ErrInvalidOperand)
	}
	// 5) Resolve the oscillation tag (explicit setting wins over the
	//    harmonic-derived default) and the payload.
	rotating := cfg.harmonic != 0
	if cfg.rotatingSet {
		rotating = cfg.rotating
	}
	node := cfg.node
	if !cfg.nodeSet {
		node = expr.NewAtom(cfg.symbol, order)
	}

	return Term{
		order:    order,
		harmonic: cfg.harmonic,
		rotating: rotating,
		coeff:    big.NewRat(cfg.coeffNum, cfg.coeffDen),
		node:     node,
	}, nil
}

// MustTerm is NewTerm that panics on error. Intended for fixtures and
// examples where the arguments are literals.
func MustTerm(order int, opts ...TermOption) Term {
	t, err := NewTerm(order, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Order returns the perturbation order.
func (t Term) Order() int { return t.order }

// Harmonic returns the net drive harmonic.
func (t Term) Harmonic() int { return t.harmonic }

// Rotating reports whether the term oscillates.
func (t Term) Rotating() bool { return t.rotating }

// Coeff returns a copy of the exact rational coefficient.
func (t Term) Coeff() *big.Rat {
	if t.coeff == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(t.coeff)
}

// Expr returns the payload expression.
func (t Term) Expr() expr.Expr { return t.node }

// valid reports whether the term was built by a constructor.
func (t Term) valid() bool {
	return t.coeff != nil && t.node != nil && t.order >= 0 && t.harmonic >= 0
}

// Neg returns the term with its coefficient negated.
func (t Term) Neg() Term {
	out := t
	if t.coeff != nil {
		out.coeff = new(big.Rat).Neg(t.coeff)
	}

	return out
}

// Scale returns the term with its coefficient multiplied by factor.
// factor must be non-nil.
func (t Term) Scale(factor *big.Rat) Term {
	out := t
	if t.coeff != nil {
		out.coeff = new(big.Rat).Mul(t.coeff, factor)
	}

	return out
}

// Equal reports whether two terms agree in grading, oscillation tag and
// signed payload. Payloads are compared up to bracket orientation, with
// the orientation sign folded into the coefficient, so a term equals the
// negation of its operand-swapped image.
func (t Term) Equal(other Term) bool {
	if t.order != other.order || t.harmonic != other.harmonic || t.rotating != other.rotating {
		return false
	}
	if !t.valid() || !other.valid() {
		return t.valid() == other.valid()
	}
	sign, ok := expr.EquivalentSign(t.node, other.node)
	if !ok {
		return false
	}
	scaled := new(big.Rat).Set(other.coeff)
	if sign < 0 {
		scaled.Neg(scaled)
	}

	return t.coeff.Cmp(scaled) == 0
}

// Latex renders the signed term: the coefficient (omitted when +1,
// a bare minus when -1, \frac{p}{q} otherwise) followed by the payload.
func (t Term) Latex() string {
	if !t.valid() || t.coeff.Sign() == 0 {
		return "0"
	}
	switch {
	case t.coeff.Cmp(ratOne) == 0:
		return t.node.Latex()
	case t.coeff.Cmp(ratMinusOne) == 0:
		return "-" + t.node.Latex()
	default:
		return ratLatex(t.coeff) + `\,` + t.node.Latex()
	}
}

// String renders a compact debug form, e.g. Term{o=2 osc:2 1/4 int(...)}.
func (t Term) String() string {
	if !t.valid() {
		return "Term{zero}"
	}
	tag := "static"
	if t.rotating {
		tag = fmt.Sprintf("osc:%d", t.harmonic)
	}

	return fmt.Sprintf("Term{o=%d %s %s %s}", t.order, tag, t.coeff.RatString(), t.node)
}

// operandTerms satisfies Operand: a term is a one-element operand.
func (t Term) operandTerms() []Term { return []Term{t} }

// ratLatex renders an exact rational: integers plainly, fractions as
// \frac{p}{q} with the sign pulled out front.
func ratLatex(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	abs := new(big.Rat).Abs(r)
	rendered := fmt.Sprintf(`\frac{%s}{%s}`, abs.Num().String(), abs.Denom().String())
	if r.Sign() < 0 {
		return "-" + rendered
	}

	return rendered
}
