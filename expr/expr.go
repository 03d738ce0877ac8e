package expr

import (
	"fmt"
	"strings"
)

// DefaultAtomName is the operator symbol used when none is supplied.
const DefaultAtomName = "H"

// Expr is the read-only contract satisfied by every expression node.
//
// Latex  - LaTeX rendering of the node.
// String - compact plain-text rendering, suitable for logs and tests.
// Key    - canonical structural key; equal keys mean equal structure.
type Expr interface {
	Latex() string
	String() string
	Key() string
}

// Atom is a named operator placeholder carrying a perturbation order,
// e.g. the order-n Hamiltonian part H^{(n)} or a potential V^{(2)}.
// Atoms are immutable values.
type Atom struct {
	name  string
	order int
}

// NewAtom builds a placeholder with the given symbol and order.
// An empty name falls back to DefaultAtomName.
func NewAtom(name string, order int) Atom {
	if name == "" {
		name = DefaultAtomName
	}

	return Atom{name: name, order: order}
}

// Name returns the operator symbol.
func (a Atom) Name() string { return a.name }

// Order returns the perturbation-order tag.
func (a Atom) Order() int { return a.order }

// Latex renders the placeholder as name^{(order)}.
func (a Atom) Latex() string { return fmt.Sprintf("%s^{(%d)}", a.name, a.order) }

// String renders the placeholder as name(order).
func (a Atom) String() string { return fmt.Sprintf("%s(%d)", a.name, a.order) }

// Key returns the canonical key "a:<name>:<order>". Reserved characters
// inside the name are backslash-escaped, so symbols that contain the key
// grammar's own delimiters can never collide with a differently shaped
// expression.
func (a Atom) Key() string { return fmt.Sprintf("a:%s:%d", escapeKeyName(a.name), a.order) }

// keyReserved lists the bytes the key grammar itself uses, plus the
// escape character.
const keyReserved = `\:,()`

// escapeKeyName backslash-escapes reserved bytes in an atom name, keeping
// the key encoding injective. Plain symbols pass through unchanged.
func escapeKeyName(name string) string {
	if !strings.ContainsAny(name, keyReserved) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 2)
	for i := 0; i < len(name); i++ {
		if strings.IndexByte(keyReserved, name[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}

	return b.String()
}
