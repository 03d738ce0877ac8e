package catalog_test

import (
	"math/big"
	"testing"

	"github.com/perturbkit/vanvleck/catalog"
	"github.com/perturbkit/vanvleck/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_Dispatch verifies every advertised preset builds and installs
// cleanly, with case- and whitespace-insensitive matching.
func TestBuild_Dispatch(t *testing.T) {
	for _, name := range catalog.Names() {
		h, err := catalog.Build(name)
		require.NoError(t, err, "preset %q must build", name)
		assert.Greater(t, h.Len(), 1, "preset %q has a core and at least one drive", name)

		sess := core.NewSession()
		assert.NoError(t, sess.SetHamiltonian(h), "preset %q must install", name)
	}

	_, err := catalog.Build("  DUFFING ")
	assert.NoError(t, err, "matching ignores case and whitespace")

	_, err = catalog.Build("pendulum")
	assert.ErrorIs(t, err, catalog.ErrUnknownPreset, "unknown names are rejected")
}

// TestOscillator_Shape verifies the factorial decay and the depth bounds.
func TestOscillator_Shape(t *testing.T) {
	h, err := catalog.Oscillator(3)
	require.NoError(t, err)
	require.Equal(t, 4, h.Len(), "static core plus three drives")

	assert.Equal(t, []int{0, 1, 2, 3}, h.Orders(), "one term per order")
	assert.Equal(t, 0, h.At(1).Coeff().Cmp(big.NewRat(1, 1)), "order 1 carries 1/1!")
	assert.Equal(t, 0, h.At(2).Coeff().Cmp(big.NewRat(1, 2)), "order 2 carries 1/2!")
	assert.Equal(t, 0, h.At(3).Coeff().Cmp(big.NewRat(1, 6)), "order 3 carries 1/3!")
	for i := 1; i < h.Len(); i++ {
		assert.Equal(t, 1, h.At(i).Harmonic(), "drives sit on the fundamental")
	}

	_, err = catalog.Oscillator(0)
	assert.ErrorIs(t, err, catalog.ErrBadDepth, "depth below 1")
	_, err = catalog.Oscillator(catalog.MaxDepth + 1)
	assert.ErrorIs(t, err, catalog.ErrBadDepth, "depth above the factorial cap")
}

// TestDuffing_Split verifies the 3/4 + 1/4 overtone split and strength
// scaling.
func TestDuffing_Split(t *testing.T) {
	h, err := catalog.Duffing()
	require.NoError(t, err)
	require.Equal(t, 4, h.Len())

	assert.Equal(t, 0, h.At(1).Coeff().Cmp(big.NewRat(1, 1)), "fundamental at full strength")
	assert.Equal(t, 0, h.At(2).Coeff().Cmp(big.NewRat(3, 4)), "recoil keeps 3/4")
	assert.Equal(t, 1, h.At(2).Harmonic(), "recoil stays on the fundamental")
	assert.Equal(t, 0, h.At(3).Coeff().Cmp(big.NewRat(1, 4)), "overtone takes 1/4")
	assert.Equal(t, 3, h.At(3).Harmonic(), "overtone sits on the third harmonic")

	scaled, err := catalog.Duffing(catalog.WithStrength(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 0, scaled.At(2).Coeff().Cmp(big.NewRat(3, 8)), "strength scales the split")
}

// TestParametric_Pump verifies the half-strength second-harmonic pump.
func TestParametric_Pump(t *testing.T) {
	h, err := catalog.Parametric(catalog.WithSymbol("P"))
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())

	pump := h.At(1)
	assert.Equal(t, 2, pump.Harmonic(), "pump at twice the fundamental")
	assert.Equal(t, 0, pump.Coeff().Cmp(big.NewRat(1, 2)), "half strength")
	assert.Equal(t, `\frac{1}{2}\,P^{(1)}`, pump.Latex(), "symbol override renders")
}

// TestTwoTone_Symbols verifies the distinct symbols and harmonics of the
// two drives.
func TestTwoTone_Symbols(t *testing.T) {
	h, err := catalog.TwoTone()
	require.NoError(t, err)
	require.Equal(t, 3, h.Len())

	assert.Equal(t, 1, h.At(1).Harmonic())
	assert.Equal(t, `V^{(1)}`, h.At(1).Latex())
	assert.Equal(t, 2, h.At(2).Harmonic())
	assert.Equal(t, `\frac{1}{2}\,W^{(1)}`, h.At(2).Latex())
}

// TestResonant_RefusedByGenerator verifies the preset actually trips the
// resonance guard.
func TestResonant_RefusedByGenerator(t *testing.T) {
	h, err := catalog.Resonant()
	require.NoError(t, err)

	sess := core.NewSession()
	require.NoError(t, sess.SetHamiltonian(h), "resonant systems install fine")

	_, err = sess.S(1)
	var resErr core.ResonanceError
	require.ErrorAs(t, err, &resErr, "generator construction refuses the zero-harmonic drive")
	assert.Equal(t, 1, resErr.Order)
}

// TestOptions_Validation verifies option edge cases: empty symbol keeps
// the default, zero denominator is rejected, nil options are tolerated.
func TestOptions_Validation(t *testing.T) {
	h, err := catalog.Parametric(catalog.WithSymbol(""), nil)
	require.NoError(t, err)
	assert.Equal(t, `\frac{1}{2}\,V^{(1)}`, h.At(1).Latex(), "empty symbol keeps the default")

	_, err = catalog.Duffing(catalog.WithStrength(1, 0))
	assert.ErrorIs(t, err, catalog.ErrBadStrength, "zero denominator")
}
