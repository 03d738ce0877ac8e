package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/perturbkit/vanvleck/catalog"
	"github.com/perturbkit/vanvleck/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeManifest drops a small three-term manifest into a temp dir and
// returns its path.
func writeManifest(t *testing.T) string {
	t.Helper()
	manifest := `name: cli smoke
terms:
  - order: 0
  - order: 1
  - order: 2
    coeff: "1/2"
    symbol: V
`
	path := filepath.Join(t.TempDir(), "h.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644), "write manifest fixture")

	return path
}

// TestResolveSession_RequiresExactlyOneSource verifies the source
// contract: a manifest path and a preset name are mutually exclusive,
// and at least one of them must be given.
func TestResolveSession_RequiresExactlyOneSource(t *testing.T) {
	logger = zap.NewNop()

	_, err := resolveSession("h.yaml", "duffing")
	require.Error(t, err, "both sources must be refused")
	assert.Contains(t, err.Error(), "choose one", "conflict error names the flags")

	_, err = resolveSession("", "")
	require.Error(t, err, "no source must be refused")
	assert.Contains(t, err.Error(), "required", "missing-source error names the flags")
}

// TestResolveSession_FromManifest verifies the manifest path: the file
// is loaded, built and installed into a session that answers queries.
func TestResolveSession_FromManifest(t *testing.T) {
	logger = zap.NewNop()

	sess, err := resolveSession(writeManifest(t), "")
	require.NoError(t, err, "manifest source must build a session")
	assert.Equal(t, 2, sess.MaxOrder(), "all manifest orders installed")

	s1, err := sess.S(1)
	require.NoError(t, err, "installed session answers generator queries")
	assert.Equal(t, 1, s1.Len(), "one drive term feeds the first generator")
}

// TestResolveSession_FromPreset verifies the preset path, including the
// unknown-name failure.
func TestResolveSession_FromPreset(t *testing.T) {
	logger = zap.NewNop()

	sess, err := resolveSession("", "duffing")
	require.NoError(t, err, "known preset must build a session")
	assert.Equal(t, 2, sess.MaxOrder(), "duffing reaches second order")

	_, err = resolveSession("", "pendulum")
	assert.ErrorIs(t, err, catalog.ErrUnknownPreset, "unknown preset surfaces the catalog sentinel")
}

// TestResolveSession_MissingManifest verifies a load failure reaches the
// caller with its source context attached.
func TestResolveSession_MissingManifest(t *testing.T) {
	logger = zap.NewNop()

	_, err := resolveSession(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err, "missing manifest must fail")
	assert.Contains(t, err.Error(), "hamfile: read", "load failure keeps its origin")
}

// TestStepCap verifies the --steps bound on the bracket count per order.
func TestStepCap(t *testing.T) {
	cases := []struct {
		name     string
		n, steps int
		want     int
	}{
		{"uncapped", 3, -1, 3},
		{"cap_below_order", 3, 1, 1},
		{"cap_zero_rows", 3, 0, 0},
		{"cap_above_order", 2, 5, 2},
		{"order_zero", 0, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stepCap(tc.n, tc.steps), "row bound")
		})
	}
}

// TestRunExpand_Preset drives the expand command end to end against a
// catalog preset with a row cap in place.
func TestRunExpand_Preset(t *testing.T) {
	logger = zap.NewNop()
	expandPreset = "oscillator"
	expandOrder = 2
	expandSteps = 1
	expandPlain = true
	defer func() {
		expandPreset = ""
		expandOrder = 2
		expandSteps = -1
		expandPlain = false
	}()

	require.NoError(t, runExpand(expandCmd, nil), "expand must walk the capped rows")
}

// TestRunGenerator_SurfacesResonance verifies a resonant system aborts
// the generator command with the engine's typed error.
func TestRunGenerator_SurfacesResonance(t *testing.T) {
	logger = zap.NewNop()
	generatorPreset = "resonant"
	generatorOrder = 1
	generatorPlain = true
	defer func() {
		generatorPreset = ""
		generatorOrder = 2
		generatorPlain = false
	}()

	err := runGenerator(generatorCmd, nil)
	require.Error(t, err, "resonant preset must abort generator construction")

	var rerr core.ResonanceError
	require.ErrorAs(t, err, &rerr, "typed resonance error reaches the command")
	assert.Equal(t, 1, rerr.Order, "failure happens at first order")
}
