// Package core defines the Term construction options, the bracket
// operand contract, and the sentinel and typed errors shared by the
// perturbation engine.
//
// This file declares TermOption and its setters, the Operand interface,
// the sentinel errors, and ResonanceError.
//
// Errors:
//
//	ErrNotInitialized - K/S requested before SetHamiltonian.
//	ErrInvalidOperand - nil operand, unconstructed term, or bad construction argument.
//	ErrOrderGap       - installed Hamiltonian lacks an order-0 or order-1 part.
//	ErrOrderRange     - K/S indices outside the recursion domain.
//	ResonanceError    - zero-harmonic oscillating term met during generator inversion.
package core

import (
	"errors"
	"fmt"

	"github.com/perturbkit/vanvleck/expr"
)

// Sentinel errors for the perturbation engine.
var (
	// ErrNotInitialized indicates K or S was requested before a Hamiltonian
	// was installed with SetHamiltonian.
	ErrNotInitialized = errors.New("core: session not initialized: install a Hamiltonian first")

	// ErrInvalidOperand indicates a bracket operand or a Term construction
	// argument the engine cannot work with.
	ErrInvalidOperand = errors.New("core: invalid operand")

	// ErrOrderGap indicates SetHamiltonian received a collection without
	// both an order-0 (static reference) and an order-1 (leading
	// perturbation) part.
	ErrOrderGap = errors.New("core: hamiltonian order gap")

	// ErrOrderRange indicates K or S indices outside the recursion domain.
	ErrOrderRange = errors.New("core: order outside recursion domain")
)

// ResonanceError reports a resonant term met while building a generator:
// an oscillating term with zero net harmonic has no bounded formal time
// integral, so it cannot be removed by the canonical transformation and
// must be handled secularly by the caller instead.
type ResonanceError struct {
	// Order is the generator order S(Order) under construction.
	Order int

	// Term is the offending zero-harmonic oscillating term.
	Term Term
}

// Error implements the error interface.
func (e ResonanceError) Error() string {
	return fmt.Sprintf("core: resonant term in S(%d): %s oscillates at zero harmonic", e.Order, e.Term)
}

// Operand is the contract accepted by bracket operations: an ordered
// list of terms. Term and Terms both satisfy it; the unexported method
// keeps the implementor set closed so the combining rules stay total.
type Operand interface {
	operandTerms() []Term
}

// termSettings collects NewTerm configuration before validation.
type termSettings struct {
	symbol      string
	harmonic    int
	rotating    bool
	rotatingSet bool
	coeffNum    int64
	coeffDen    int64
	node        expr.Expr
	nodeSet     bool
}

// TermOption configures NewTerm. Options apply in order (last writer
// wins); explicit settings win over order-derived defaults.
type TermOption func(*termSettings)

// WithSymbol names the operator placeholder (default "H").
// Ignored when WithExpr supplies the payload directly.
func WithSymbol(name string) TermOption {
	return func(s *termSettings) { s.symbol = name }
}

// WithHarmonic sets the net drive harmonic. Zero marks the term static
// unless WithRotating(true) overrides the derived tag; negative values
// are rejected by NewTerm.
func WithHarmonic(k int) TermOption {
	return func(s *termSettings) { s.harmonic = k }
}

// WithRotating forces the oscillation tag regardless of the harmonic.
// Pairing WithRotating(true) with a zero harmonic builds a resonant
// term, the configuration generator inversion refuses.
func WithRotating(rotating bool) TermOption {
	return func(s *termSettings) {
		s.rotating = rotating
		s.rotatingSet = true
	}
}

// WithCoeff sets the exact rational prefactor num/den.
// A zero denominator is rejected by NewTerm.
func WithCoeff(num, den int64) TermOption {
	return func(s *termSettings) {
		s.coeffNum = num
		s.coeffDen = den
	}
}

// WithExpr replaces the payload with a caller-supplied expression.
// A nil expression is rejected by NewTerm.
func WithExpr(node expr.Expr) TermOption {
	return func(s *termSettings) {
		s.node = node
		s.nodeSet = true
	}
}
