// Package catalog provides ready-made Hamiltonians for the perturbation
// engine: small canonical driven systems assembled from core.Term values
// with exact rational coefficients.
//
// Presets:
//
//	– Oscillator  – static core plus a harmonic-1 drive at every order,
//	                the order-k drive decaying as 1/k!.
//	– Duffing     – cubic-oscillator texture: fundamental drive at first
//	                order, a 3/4 + 1/4 overtone split at second order.
//	– Parametric  – pump at twice the fundamental with coefficient 1/2.
//	– TwoTone     – two commensurate first-order drives under distinct
//	                symbols.
//	– Resonant    – a deliberately resonant drive (zero-harmonic rotating
//	                term) for exercising the failure path.
//
// Every preset is deterministic: the same name and options produce the
// same terms in the same order. Build dispatches by lower-cased name for
// callers that take the preset from user input; Names lists what it
// accepts.
//
// Example:
//
//	h, err := catalog.Duffing(catalog.WithStrength(1, 2))
//	if err != nil { ... }
//	sess := core.NewSession()
//	_ = sess.SetHamiltonian(h)
package catalog
