// Package core_test contains shared fixtures for the engine tests.
//
// Purpose:
//   - Provide small, deterministic Hamiltonian fixtures.
//   - Keep magic numbers and repeated setup out of test bodies.
//   - Avoid *testing.T usage inside goroutines (concurrency tests collect
//     results first, assert after Wait).
package core_test

import (
	"testing"

	"github.com/perturbkit/vanvleck/core"
	"github.com/stretchr/testify/require"
)

// Common sizes used across tests (avoid magic numbers in test bodies).
const (
	NWorkers = 16
	NRounds  = 32
)

// minimalHamiltonian returns H = H_0 + H_1: the smallest installable
// Hamiltonian, one static term and one fundamental-harmonic drive.
func minimalHamiltonian() core.Terms {
	return core.NewTerms(core.MustTerm(0), core.MustTerm(1))
}

// drivenHamiltonian returns a richer fixture: the static frame, a
// fundamental drive, a half-weight second-harmonic drive and a static
// second-order correction.
func drivenHamiltonian() core.Terms {
	return core.NewTerms(
		core.MustTerm(0),
		core.MustTerm(1),
		core.MustTerm(1, core.WithHarmonic(2), core.WithCoeff(1, 2), core.WithSymbol("V")),
		core.MustTerm(2, core.WithHarmonic(0)),
	)
}

// resonantHamiltonian returns a Hamiltonian whose order-1 part is
// explicitly resonant: rotating-tagged at zero harmonic.
func resonantHamiltonian() core.Terms {
	return core.NewTerms(
		core.MustTerm(0),
		core.MustTerm(1, core.WithHarmonic(0), core.WithRotating(true)),
	)
}

// newReadySession returns a session with h installed, failing the test
// immediately if the install is rejected.
func newReadySession(t *testing.T, h core.Terms) *core.Session {
	t.Helper()
	sess := core.NewSession()
	require.NoError(t, sess.SetHamiltonian(h), "fixture install must succeed")

	return sess
}
