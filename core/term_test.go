package core_test

import (
	"math/big"
	"testing"

	"github.com/perturbkit/vanvleck/core"
	"github.com/perturbkit/vanvleck/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTerm_OrderDefaults verifies the order-derived defaults: order 0
// builds the static reference, higher orders rotate at the fundamental.
func TestNewTerm_OrderDefaults(t *testing.T) {
	static, err := core.NewTerm(0)
	require.NoError(t, err, "order 0 must construct")
	assert.Equal(t, 0, static.Order(), "order is preserved")
	assert.Equal(t, 0, static.Harmonic(), "order 0 is static")
	assert.False(t, static.Rotating(), "order 0 does not rotate")
	assert.Equal(t, `H^{(0)}`, static.Latex(), "unit coefficient renders the payload alone")

	rot, err := core.NewTerm(1)
	require.NoError(t, err, "order 1 must construct")
	assert.Equal(t, 1, rot.Harmonic(), "higher orders default to the fundamental harmonic")
	assert.True(t, rot.Rotating(), "higher orders rotate by default")
	assert.Equal(t, 0, rot.Coeff().Cmp(big.NewRat(1, 1)), "default coefficient is one")
}

// TestNewTerm_Options verifies the functional options, including the
// explicit rotating override that makes a resonant term representable.
func TestNewTerm_Options(t *testing.T) {
	term, err := core.NewTerm(1,
		core.WithSymbol("V"),
		core.WithHarmonic(2),
		core.WithCoeff(3, 4),
	)
	require.NoError(t, err, "optioned term must construct")
	assert.Equal(t, 2, term.Harmonic(), "harmonic override")
	assert.True(t, term.Rotating(), "non-zero harmonic keeps the term rotating")
	assert.Equal(t, 0, term.Coeff().Cmp(big.NewRat(3, 4)), "coefficient override")
	assert.Equal(t, `\frac{3}{4}\,V^{(1)}`, term.Latex(), "symbol and fraction render together")

	resonant, err := core.NewTerm(1, core.WithHarmonic(0), core.WithRotating(true))
	require.NoError(t, err, "resonant construction is legal")
	assert.True(t, resonant.Rotating(), "explicit rotating tag wins over the harmonic default")
	assert.Equal(t, 0, resonant.Harmonic(), "zero harmonic with rotating tag is representable")

	payload := expr.NewBracket(expr.NewAtom("H", 0), expr.NewAtom("H", 1))
	custom, err := core.NewTerm(2, core.WithExpr(payload))
	require.NoError(t, err, "custom payload must construct")
	assert.True(t, expr.Equal(payload, custom.Expr()), "payload override is kept")
}

// TestNewTerm_Validation verifies bad construction arguments are refused
// with ErrInvalidOperand, and that MustTerm panics on them.
func TestNewTerm_Validation(t *testing.T) {
	_, err := core.NewTerm(-1)
	assert.ErrorIs(t, err, core.ErrInvalidOperand, "negative order")

	_, err = core.NewTerm(1, core.WithHarmonic(-2))
	assert.ErrorIs(t, err, core.ErrInvalidOperand, "negative harmonic")

	_, err = core.NewTerm(1, core.WithCoeff(1, 0))
	assert.ErrorIs(t, err, core.ErrInvalidOperand, "zero coefficient denominator")

	_, err = core.NewTerm(1, core.WithExpr(nil))
	assert.ErrorIs(t, err, core.ErrInvalidOperand, "nil payload")

	assert.Panics(t, func() { core.MustTerm(-1) }, "MustTerm panics on invalid input")
}

// TestTerm_Immutability verifies accessors and arithmetic return fresh
// values and never alias internal state.
func TestTerm_Immutability(t *testing.T) {
	term := core.MustTerm(1, core.WithCoeff(1, 2))

	leaked := term.Coeff()
	leaked.SetInt64(99)
	assert.Equal(t, 0, term.Coeff().Cmp(big.NewRat(1, 2)), "Coeff hands out a copy")

	neg := term.Neg()
	assert.Equal(t, 0, term.Coeff().Cmp(big.NewRat(1, 2)), "Neg leaves the receiver alone")
	assert.Equal(t, 0, neg.Coeff().Cmp(big.NewRat(-1, 2)), "Neg negates the copy")

	scaled := term.Scale(big.NewRat(4, 1))
	assert.Equal(t, 0, scaled.Coeff().Cmp(big.NewRat(2, 1)), "Scale multiplies the copy")
	assert.Equal(t, 0, term.Coeff().Cmp(big.NewRat(1, 2)), "Scale leaves the receiver alone")
}

// TestTerm_EqualFoldsOrientation verifies Equal compares payloads up to
// bracket orientation with the swap sign folded into the coefficient.
func TestTerm_EqualFoldsOrientation(t *testing.T) {
	a := expr.NewAtom("H", 0)
	b := expr.NewAtom("H", 1)

	forward := core.MustTerm(1, core.WithExpr(expr.NewBracket(a, b)))
	backward := core.MustTerm(1, core.WithExpr(expr.NewBracket(b, a)), core.WithCoeff(-1, 1))

	assert.True(t, forward.Equal(backward), "swapped orientation with negated coefficient is the same term")
	assert.False(t, forward.Equal(backward.Neg()), "matching coefficients across a swap differ")

	other := core.MustTerm(1, core.WithHarmonic(2))
	assert.False(t, forward.Equal(other), "different grading never compares equal")
}

// TestTerm_LatexCoefficients verifies coefficient rendering: unit
// coefficients vanish, integers render plainly, fractions as \frac.
func TestTerm_LatexCoefficients(t *testing.T) {
	assert.Equal(t, `H^{(1)}`, core.MustTerm(1).Latex(), "coefficient +1")
	assert.Equal(t, `-H^{(1)}`, core.MustTerm(1, core.WithCoeff(-1, 1)).Latex(), "coefficient -1")
	assert.Equal(t, `2\,H^{(1)}`, core.MustTerm(1, core.WithCoeff(2, 1)).Latex(), "integer coefficient")
	assert.Equal(t, `\frac{3}{4}\,H^{(1)}`, core.MustTerm(1, core.WithCoeff(3, 4)).Latex(), "fraction")
	assert.Equal(t, `-\frac{1}{4}\,H^{(1)}`, core.MustTerm(1, core.WithCoeff(-1, 4)).Latex(), "negative fraction")
	assert.Equal(t, "0", core.MustTerm(1, core.WithCoeff(0, 5)).Latex(), "zero coefficient renders zero")
}
