package hamfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/perturbkit/vanvleck/core"
)

// Sentinel errors for manifest handling.
var (
	// ErrNoTerms indicates a manifest without terms, or an empty document.
	ErrNoTerms = errors.New("hamfile: manifest has no terms")

	// ErrBadCoeff indicates a coefficient string that is not an exact
	// in-range rational.
	ErrBadCoeff = errors.New("hamfile: bad coefficient")
)

// Manifest describes a base Hamiltonian: a display name and the term
// list, in installation order.
type Manifest struct {
	// Name labels the system, e.g. "driven duffing". Informational only.
	Name string `yaml:"name"`

	// Terms lists the Hamiltonian parts in installation order.
	Terms []TermSpec `yaml:"terms"`
}

// TermSpec describes one Hamiltonian term. Optional fields use pointers
// so "absent" and "explicit zero/false" stay distinguishable.
type TermSpec struct {
	// Order is the perturbation order (required; 0 = static frame).
	Order int `yaml:"order"`

	// Harmonic optionally overrides the order-derived drive harmonic.
	Harmonic *int `yaml:"harmonic,omitempty"`

	// Rotating optionally forces the oscillation tag.
	Rotating *bool `yaml:"rotating,omitempty"`

	// Coeff is an optional exact rational prefactor: "p/q", an integer,
	// or a decimal.
	Coeff string `yaml:"coeff,omitempty"`

	// Symbol optionally names the operator placeholder (default H).
	Symbol string `yaml:"symbol,omitempty"`
}

// Load reads and parses the manifest at path.
// Errors: wrapped read errors, plus everything Parse returns.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("hamfile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes one YAML document into a Manifest. Decoding is strict:
// unknown fields are rejected so typos fail loudly.
// Errors: ErrNoTerms on an empty document, wrapped parse errors.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		// The yaml library reports io.EOF when there is no document.
		if errors.Is(err, io.EOF) {
			return Manifest{}, fmt.Errorf("%w: empty document", ErrNoTerms)
		}

		return Manifest{}, fmt.Errorf("hamfile: parse: %w", err)
	}

	return m, nil
}

// Build materializes the manifest into engine terms, preserving
// manifest order. Shape errors carry the term index; field validation
// is delegated to core.NewTerm and surfaced the same way.
//
// Errors: ErrNoTerms, ErrBadCoeff, wrapped core construction errors.
func (m Manifest) Build() (core.Terms, error) {
	if len(m.Terms) == 0 {
		return core.Terms{}, ErrNoTerms
	}
	out := make([]core.Term, 0, len(m.Terms))
	for i, spec := range m.Terms {
		opts := make([]core.TermOption, 0, 4)
		if spec.Symbol != "" {
			opts = append(opts, core.WithSymbol(spec.Symbol))
		}
		if spec.Harmonic != nil {
			opts = append(opts, core.WithHarmonic(*spec.Harmonic))
		}
		if spec.Rotating != nil {
			opts = append(opts, core.WithRotating(*spec.Rotating))
		}
		if spec.Coeff != "" {
			num, den, err := parseCoeff(spec.Coeff)
			if err != nil {
				return core.Terms{}, fmt.Errorf("%w: term %d: %q", ErrBadCoeff, i, spec.Coeff)
			}
			opts = append(opts, core.WithCoeff(num, den))
		}
		term, err := core.NewTerm(spec.Order, opts...)
		if err != nil {
			return core.Terms{}, fmt.Errorf("hamfile: term %d: %w", i, err)
		}
		out = append(out, term)
	}

	return core.NewTerms(out...), nil
}

// parseCoeff converts a coefficient string to an exact int64 rational.
func parseCoeff(s string) (num, den int64, err error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return 0, 0, fmt.Errorf("not a rational: %q", s)
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return 0, 0, fmt.Errorf("out of int64 range: %q", s)
	}

	return r.Num().Int64(), r.Denom().Int64(), nil
}
