// Package hamfile reads YAML manifests describing base Hamiltonians, so
// perturbative constructions can be driven from files instead of code.
//
// Manifest shape:
//
//	name: driven duffing
//	terms:
//	  - order: 0                # static reference frame
//	  - order: 1                # rotating at harmonic 1 by default
//	  - order: 1
//	    harmonic: 2             # optional harmonic override
//	    coeff: "3/4"            # optional exact rational (p/q, integer or decimal)
//	    symbol: V               # optional operator symbol (default H)
//	    rotating: true          # optional explicit oscillation tag
//
// Decoding is strict: unknown fields fail loudly, so manifest typos
// never silently vanish. Build materializes the manifest into core
// terms in manifest order; field validation beyond shape (orders,
// harmonics) is delegated to the core constructors and surfaced with
// the term index attached.
//
// Errors (sentinel):
//
//	– ErrNoTerms  – manifest contains no terms (or no document at all).
//	– ErrBadCoeff – coefficient string is not an exact in-range rational.
package hamfile
