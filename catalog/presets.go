package catalog

import (
	"fmt"
	"math/big"

	"github.com/perturbkit/vanvleck/core"
)

// DefaultSecondSymbol names the secondary TwoTone drive atom.
const DefaultSecondSymbol = "W"

// Oscillator builds a single-mode driven tower: one static core term plus
// one harmonic-1 drive at every order 1..depth, the order-k drive scaled
// by 1/k! on top of the configured strength.
func Oscillator(depth int, opts ...Option) (core.Terms, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Terms{}, err
	}
	if depth < 1 || depth > MaxDepth {
		return core.Terms{}, fmt.Errorf("%w: %d", ErrBadDepth, depth)
	}

	list := []core.Term{core.MustTerm(0)}
	factorial := int64(1)
	for k := 1; k <= depth; k++ {
		factorial *= int64(k)
		drive, err := core.NewTerm(k,
			core.WithSymbol(cfg.symbol),
			core.WithCoeff(cfg.num, cfg.den),
		)
		if err != nil {
			return core.Terms{}, fmt.Errorf("catalog: oscillator order %d: %w", k, err)
		}
		list = append(list, drive.Scale(big.NewRat(1, factorial)))
	}

	return core.NewTerms(list...), nil
}

// Duffing builds the cubic-oscillator texture: a fundamental drive at
// first order, then the classic cos^3 split at second order with 3/4 of
// the strength back on the fundamental and 1/4 on the third overtone.
func Duffing(opts ...Option) (core.Terms, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Terms{}, err
	}

	fundamental, err := core.NewTerm(1,
		core.WithSymbol(cfg.symbol),
		core.WithCoeff(cfg.num, cfg.den),
	)
	if err != nil {
		return core.Terms{}, fmt.Errorf("catalog: duffing drive: %w", err)
	}

	recoil, err := core.NewTerm(2,
		core.WithSymbol(cfg.symbol),
		core.WithCoeff(cfg.num, cfg.den),
	)
	if err != nil {
		return core.Terms{}, fmt.Errorf("catalog: duffing recoil: %w", err)
	}

	overtone, err := core.NewTerm(2,
		core.WithSymbol(cfg.symbol),
		core.WithHarmonic(3),
		core.WithCoeff(cfg.num, cfg.den),
	)
	if err != nil {
		return core.Terms{}, fmt.Errorf("catalog: duffing overtone: %w", err)
	}

	return core.NewTerms(
		core.MustTerm(0),
		fundamental,
		recoil.Scale(big.NewRat(3, 4)),
		overtone.Scale(big.NewRat(1, 4)),
	), nil
}

// Parametric builds a parametric pump: a single first-order drive at
// twice the fundamental carrying half the configured strength.
func Parametric(opts ...Option) (core.Terms, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Terms{}, err
	}

	pump, err := core.NewTerm(1,
		core.WithSymbol(cfg.symbol),
		core.WithHarmonic(2),
		core.WithCoeff(cfg.num, cfg.den),
	)
	if err != nil {
		return core.Terms{}, fmt.Errorf("catalog: parametric pump: %w", err)
	}

	return core.NewTerms(
		core.MustTerm(0),
		pump.Scale(big.NewRat(1, 2)),
	), nil
}

// TwoTone builds two commensurate first-order drives: the configured
// symbol on the fundamental at full strength, and DefaultSecondSymbol on
// the second harmonic at half strength.
func TwoTone(opts ...Option) (core.Terms, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Terms{}, err
	}

	first, err := core.NewTerm(1,
		core.WithSymbol(cfg.symbol),
		core.WithCoeff(cfg.num, cfg.den),
	)
	if err != nil {
		return core.Terms{}, fmt.Errorf("catalog: twotone fundamental: %w", err)
	}

	second, err := core.NewTerm(1,
		core.WithSymbol(DefaultSecondSymbol),
		core.WithHarmonic(2),
		core.WithCoeff(cfg.num, cfg.den),
	)
	if err != nil {
		return core.Terms{}, fmt.Errorf("catalog: twotone second harmonic: %w", err)
	}

	return core.NewTerms(
		core.MustTerm(0),
		first,
		second.Scale(big.NewRat(1, 2)),
	), nil
}

// Resonant builds a deliberately resonant system: the first-order drive
// oscillates at zero net harmonic, so generator construction must refuse
// it with a ResonanceError. Useful for exercising failure handling.
func Resonant(opts ...Option) (core.Terms, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Terms{}, err
	}

	stuck, err := core.NewTerm(1,
		core.WithSymbol(cfg.symbol),
		core.WithHarmonic(0),
		core.WithRotating(true),
		core.WithCoeff(cfg.num, cfg.den),
	)
	if err != nil {
		return core.Terms{}, fmt.Errorf("catalog: resonant drive: %w", err)
	}

	return core.NewTerms(core.MustTerm(0), stuck), nil
}
