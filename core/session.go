package core

import (
	"fmt"
	"sync"
)

// kmKey indexes the Kamiltonian memo table by (order, Lie step).
type kmKey struct {
	n, m int
}

// Session owns one perturbative construction: the installed base
// Hamiltonian partitioned by order, plus memo tables for Kamiltonian
// pieces K(n,m) and generators S(n).
//
// One mutex serializes every public call, so a Session is safe for
// concurrent use; entries are built once, cached, and returned as
// immutable snapshots. The zero Session is not usable; call NewSession.
type Session struct {
	mu sync.Mutex

	// base holds the Hamiltonian partitioned by perturbation order;
	// installed preserves the caller's term order for accessors.
	base      map[int]Terms
	installed Terms
	maxOrder  int
	ready     bool

	// Memo tables. Entries are inserted once and never mutated.
	kamiltonian map[kmKey]Terms
	generator   map[int]Terms
}

// NewSession returns an empty session. Install a Hamiltonian with
// SetHamiltonian before requesting K or S.
// Complexity: O(1).
func NewSession() *Session {
	return &Session{
		base:        make(map[int]Terms),
		kamiltonian: make(map[kmKey]Terms),
		generator:   make(map[int]Terms),
	}
}

// SetHamiltonian installs the base Hamiltonian and resets every cached
// K(n,m) and S(n), so results derived from a previous Hamiltonian never
// leak into the new construction. Installing is the only backward
// transition the session has.
//
// The collection must contain at least one order-0 term (the static
// reference frame) and at least one order-1 term (the leading
// perturbation). Interior missing orders (H_2 = 0 with H_3 present) are
// legal and read as empty rows.
//
// Errors: ErrInvalidOperand on unconstructed terms, ErrOrderGap on a
// missing order-0 or order-1 part. A failed install leaves the previous
// construction untouched.
// Complexity: O(len(h)).
func (s *Session) SetHamiltonian(h Terms) error {
	// 1) Validate and partition before touching state.
	if err := validateOperand("hamiltonian", h.list); err != nil {
		return err
	}
	parts := make(map[int]Terms, 4)
	maxOrder := 0
	for _, t := range h.list {
		part := parts[t.order]
		part.list = append(part.list, t)
		parts[t.order] = part
		if t.order > maxOrder {
			maxOrder = t.order
		}
	}
	if parts[0].Len() == 0 {
		return fmt.Errorf("%w: no order-0 (static) part", ErrOrderGap)
	}
	if parts[1].Len() == 0 {
		return fmt.Errorf("%w: no order-1 (leading perturbation) part", ErrOrderGap)
	}
	// 2) Swap in the new base and drop both memo tables.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = parts
	s.installed = NewTerms(h.list...)
	s.maxOrder = maxOrder
	s.ready = true
	s.kamiltonian = make(map[kmKey]Terms)
	s.generator = make(map[int]Terms)

	return nil
}

// K returns the Kamiltonian piece K(n,m): the order-n part of the
// transformed Hamiltonian after m applications of the Lie operator,
// built on first request and cached. K(n,0) is the order-n part of the
// installed Hamiltonian; K(n,m) is empty for m > n.
//
// Errors: ErrOrderRange on negative indices, ErrNotInitialized before
// SetHamiltonian, ResonanceError surfaced from generator construction.
// Complexity: O(1) when cached, otherwise proportional to the number of
// generated terms.
func (s *Session) K(n, m int) (Terms, error) {
	if n < 0 || m < 0 {
		return Terms{}, fmt.Errorf("%w: K(%d,%d) has negative index", ErrOrderRange, n, m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Terms{}, ErrNotInitialized
	}

	return s.kamiltonianAt(n, m)
}

// S returns the order-n generator S(n), built on first request and
// cached. Generator orders start at 1: the identity part of the
// transformation has no generator, so S(0) is a range error rather than
// an empty result.
//
// Errors: ErrOrderRange for n < 1, ErrNotInitialized before
// SetHamiltonian, ResonanceError when the order-n oscillating remainder
// contains a zero-harmonic term.
// Complexity: O(1) when cached, otherwise proportional to the number of
// generated terms.
func (s *Session) S(n int) (Terms, error) {
	if n < 1 {
		return Terms{}, fmt.Errorf("%w: S(%d), generator orders start at 1", ErrOrderRange, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Terms{}, ErrNotInitialized
	}

	return s.generatorAt(n)
}

// Hamiltonian returns the installed base Hamiltonian in installation
// order; empty before SetHamiltonian.
func (s *Session) Hamiltonian() Terms {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.installed
}

// MaxOrder returns the highest perturbation order present in the
// installed Hamiltonian; 0 before SetHamiltonian.
func (s *Session) MaxOrder() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.maxOrder
}

// Ready reports whether a Hamiltonian is installed.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ready
}
