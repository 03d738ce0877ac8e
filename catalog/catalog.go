package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/perturbkit/vanvleck/core"
)

// Sentinel errors for preset construction.
var (
	// ErrUnknownPreset is returned by Build for a name no preset answers to.
	ErrUnknownPreset = errors.New("catalog: unknown preset")

	// ErrBadDepth is returned when an Oscillator depth falls outside
	// [1, MaxDepth].
	ErrBadDepth = errors.New("catalog: depth out of range")

	// ErrBadStrength is returned when WithStrength supplied a zero
	// denominator.
	ErrBadStrength = errors.New("catalog: zero strength denominator")
)

// MaxDepth caps Oscillator towers so the factorial coefficient
// denominators stay inside int64.
const MaxDepth = 20

// DefaultDepth is the Oscillator depth Build uses when dispatching by name.
const DefaultDepth = 2

// DefaultSymbol names the drive atoms unless WithSymbol overrides it.
const DefaultSymbol = "V"

// catalogSettings collects the resolved preset options.
type catalogSettings struct {
	symbol string
	num    int64
	den    int64
}

// Option adjusts one preset knob. Options apply in order (last writer
// wins).
type Option func(*catalogSettings)

// WithSymbol names the drive atoms (default "V"). An empty name keeps
// the default.
func WithSymbol(name string) Option {
	return func(s *catalogSettings) {
		if name != "" {
			s.symbol = name
		}
	}
}

// WithStrength scales every documented drive coefficient by num/den.
// A zero denominator is rejected when the preset is built.
func WithStrength(num, den int64) Option {
	return func(s *catalogSettings) {
		s.num = num
		s.den = den
	}
}

// resolve folds the options over the defaults and validates the result.
func resolve(opts []Option) (catalogSettings, error) {
	s := catalogSettings{symbol: DefaultSymbol, num: 1, den: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.den == 0 {
		return catalogSettings{}, ErrBadStrength
	}

	return s, nil
}

// Build constructs the preset registered under name. Matching is
// case-insensitive and ignores surrounding whitespace; Oscillator is
// built at DefaultDepth. Unknown names return ErrUnknownPreset.
func Build(name string, opts ...Option) (core.Terms, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "oscillator":
		return Oscillator(DefaultDepth, opts...)
	case "duffing":
		return Duffing(opts...)
	case "parametric":
		return Parametric(opts...)
	case "twotone":
		return TwoTone(opts...)
	case "resonant":
		return Resonant(opts...)
	default:
		return core.Terms{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// Names lists the preset names Build accepts, sorted.
func Names() []string {
	return []string{"duffing", "oscillator", "parametric", "resonant", "twotone"}
}
