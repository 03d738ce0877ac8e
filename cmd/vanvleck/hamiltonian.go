package main

import (
	"errors"
	"fmt"

	"github.com/perturbkit/vanvleck/catalog"
	"github.com/perturbkit/vanvleck/core"
	"github.com/perturbkit/vanvleck/hamfile"
	"go.uber.org/zap"
)

// resolveSession builds a ready session from exactly one Hamiltonian
// source: a manifest on disk or a named catalog preset.
func resolveSession(manifestPath, presetName string) (*core.Session, error) {
	switch {
	case manifestPath != "" && presetName != "":
		return nil, errors.New("choose one of --hamiltonian or --preset")
	case manifestPath != "":
		return newSessionFromManifest(manifestPath)
	case presetName != "":
		return newSessionFromPreset(presetName)
	default:
		return nil, errors.New("one of --hamiltonian or --preset is required")
	}
}

// newSessionFromManifest loads a Hamiltonian manifest from disk, builds
// its terms and installs them into a fresh session.
func newSessionFromManifest(path string) (*core.Session, error) {
	m, err := hamfile.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("manifest loaded",
		zap.String("path", path),
		zap.String("name", m.Name),
		zap.Int("terms", len(m.Terms)))

	h, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", path, err)
	}

	return installed(h, path)
}

// newSessionFromPreset builds a catalog preset and installs it.
func newSessionFromPreset(name string) (*core.Session, error) {
	h, err := catalog.Build(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("preset built",
		zap.String("preset", name),
		zap.Int("terms", h.Len()))

	return installed(h, "preset "+name)
}

// installed wraps SetHamiltonian with a uniform error context.
func installed(h core.Terms, source string) (*core.Session, error) {
	sess := core.NewSession()
	if err := sess.SetHamiltonian(h); err != nil {
		return nil, fmt.Errorf("installing %s: %w", source, err)
	}
	logger.Debug("hamiltonian installed",
		zap.Int("maxOrder", sess.MaxOrder()),
		zap.Int("terms", h.Len()))

	return sess, nil
}

// render picks the output form for one row of terms.
func render(row core.Terms, plain bool) string {
	if plain {
		return row.String()
	}
	return row.Latex()
}
