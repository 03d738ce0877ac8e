package expr

import "fmt"

// Bracket is the formal bilinear bracket {Left, Right}. It records which
// two expressions were bracketed; antisymmetry is handled by Canonical,
// not by the constructor. Operands must be non-nil.
type Bracket struct {
	left, right Expr
}

// NewBracket builds the formal bracket {left, right}.
func NewBracket(left, right Expr) Bracket {
	return Bracket{left: left, right: right}
}

// Left returns the first operand.
func (b Bracket) Left() Expr { return b.left }

// Right returns the second operand.
func (b Bracket) Right() Expr { return b.right }

// Latex renders the bracket as \left\{L,\,R\right\}.
func (b Bracket) Latex() string {
	return fmt.Sprintf(`\left\{%s,\,%s\right\}`, b.left.Latex(), b.right.Latex())
}

// String renders the bracket as {L, R}.
func (b Bracket) String() string { return fmt.Sprintf("{%s, %s}", b.left, b.right) }

// Key returns "b(<L>,<R>)".
func (b Bracket) Key() string { return "b(" + b.left.Key() + "," + b.right.Key() + ")" }

// Average is the secular projection of its argument: the part that
// survives time averaging over one drive period.
type Average struct {
	arg Expr
}

// NewAverage wraps arg in a time-average projection.
func NewAverage(arg Expr) Average { return Average{arg: arg} }

// Arg returns the projected expression.
func (v Average) Arg() Expr { return v.arg }

// Latex renders the average as \left\langle X\right\rangle.
func (v Average) Latex() string {
	return fmt.Sprintf(`\left\langle %s\right\rangle`, v.arg.Latex())
}

// String renders the average as avg(X).
func (v Average) String() string { return fmt.Sprintf("avg(%s)", v.arg) }

// Key returns "g(<X>)".
func (v Average) Key() string { return "g(" + v.arg.Key() + ")" }

// Oscillatory is the fluctuating remainder of its argument: X minus its
// time average, so Average and Oscillatory of the same argument always
// recompose it exactly.
type Oscillatory struct {
	arg Expr
}

// NewOscillatory wraps arg in a fluctuating-part projection.
func NewOscillatory(arg Expr) Oscillatory { return Oscillatory{arg: arg} }

// Arg returns the projected expression.
func (o Oscillatory) Arg() Expr { return o.arg }

// Latex renders the fluctuating part as \left[X\right]_{\mathrm{osc}}.
func (o Oscillatory) Latex() string {
	return fmt.Sprintf(`\left[%s\right]_{\mathrm{osc}}`, o.arg.Latex())
}

// String renders the fluctuating part as osc(X).
func (o Oscillatory) String() string { return fmt.Sprintf("osc(%s)", o.arg) }

// Key returns "o(<X>)".
func (o Oscillatory) Key() string { return "o(" + o.arg.Key() + ")" }

// Integral is the formal time integral of its argument, the primitive
// that inverts the unperturbed evolution when a generator is built.
type Integral struct {
	arg Expr
}

// NewIntegral wraps arg in a formal time integral.
func NewIntegral(arg Expr) Integral { return Integral{arg: arg} }

// Arg returns the integrand.
func (i Integral) Arg() Expr { return i.arg }

// Latex renders the integral as \int\!X\,\mathrm{d}t.
func (i Integral) Latex() string {
	return fmt.Sprintf(`\int\!%s\,\mathrm{d}t`, i.arg.Latex())
}

// String renders the integral as int(X).
func (i Integral) String() string { return fmt.Sprintf("int(%s)", i.arg) }

// Key returns "i(<X>)".
func (i Integral) Key() string { return "i(" + i.arg.Key() + ")" }
