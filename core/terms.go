package core

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Terms is an immutable ordered collection of Term values: the common
// currency of Hamiltonians, brackets, Kamiltonian pieces and generators.
// The zero Terms is empty and ready to use; all methods return fresh
// values and never mutate the receiver.
type Terms struct {
	list []Term
}

// NewTerms builds a collection from the given terms, preserving order.
func NewTerms(ts ...Term) Terms {
	if len(ts) == 0 {
		return Terms{}
	}
	list := make([]Term, len(ts))
	copy(list, ts)

	return Terms{list: list}
}

// Len returns the number of terms.
func (ts Terms) Len() int { return len(ts.list) }

// At returns the i-th term; like slice indexing, it panics when i is out
// of range.
func (ts Terms) At(i int) Term { return ts.list[i] }

// Slice returns a fresh copy of the underlying terms.
func (ts Terms) Slice() []Term {
	out := make([]Term, len(ts.list))
	copy(out, ts.list)

	return out
}

// Add returns the concatenation of ts and other with a fresh backing
// array. Concatenation keeps construction order, which is what makes
// repeated expansions render identically.
func (ts Terms) Add(other Terms) Terms {
	if len(ts.list) == 0 && len(other.list) == 0 {
		return Terms{}
	}
	out := make([]Term, 0, len(ts.list)+len(other.list))
	out = append(out, ts.list...)
	out = append(out, other.list...)

	return Terms{list: out}
}

// OfOrder returns the terms of perturbation order n, in order.
func (ts Terms) OfOrder(n int) Terms {
	var out []Term
	for _, t := range ts.list {
		if t.order == n {
			out = append(out, t)
		}
	}

	return Terms{list: out}
}

// Oscillating returns the rotating terms, in order.
func (ts Terms) Oscillating() Terms {
	var out []Term
	for _, t := range ts.list {
		if t.rotating {
			out = append(out, t)
		}
	}

	return Terms{list: out}
}

// Secular returns the non-rotating terms, in order.
func (ts Terms) Secular() Terms {
	var out []Term
	for _, t := range ts.list {
		if !t.rotating {
			out = append(out, t)
		}
	}

	return Terms{list: out}
}

// Neg returns the collection with every coefficient negated.
func (ts Terms) Neg() Terms {
	out := make([]Term, len(ts.list))
	for i, t := range ts.list {
		out[i] = t.Neg()
	}

	return Terms{list: out}
}

// Scale returns the collection with every coefficient multiplied by
// factor. factor must be non-nil.
func (ts Terms) Scale(factor *big.Rat) Terms {
	out := make([]Term, len(ts.list))
	for i, t := range ts.list {
		out[i] = t.Scale(factor)
	}

	return Terms{list: out}
}

// Orders returns the distinct perturbation orders present, ascending.
func (ts Terms) Orders() []int {
	seen := make(map[int]struct{}, len(ts.list))
	out := make([]int, 0, len(ts.list))
	for _, t := range ts.list {
		if _, ok := seen[t.order]; ok {
			continue
		}
		seen[t.order] = struct{}{}
		out = append(out, t.order)
	}
	sort.Ints(out)

	return out
}

// Equal reports element-wise equality: same length and Term.Equal at
// every position. The engine's expansions are deterministic, so equal
// constructions compare equal position by position.
func (ts Terms) Equal(other Terms) bool {
	if len(ts.list) != len(other.list) {
		return false
	}
	for i := range ts.list {
		if !ts.list[i].Equal(other.list[i]) {
			return false
		}
	}

	return true
}

// Latex renders the signed sum of all terms; an empty collection renders
// "0". Negative coefficients fold into the joining sign.
func (ts Terms) Latex() string {
	if len(ts.list) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range ts.list {
		piece := t.Latex()
		if i == 0 {
			b.WriteString(piece)

			continue
		}
		if strings.HasPrefix(piece, "-") {
			b.WriteString(" - ")
			b.WriteString(strings.TrimPrefix(piece, "-"))
		} else {
			b.WriteString(" + ")
			b.WriteString(piece)
		}
	}

	return b.String()
}

// String renders a compact debug form listing every term.
func (ts Terms) String() string {
	if len(ts.list) == 0 {
		return "Terms[]"
	}
	parts := make([]string, len(ts.list))
	for i, t := range ts.list {
		parts[i] = t.String()
	}

	return fmt.Sprintf("Terms[%s]", strings.Join(parts, ", "))
}

// operandTerms satisfies Operand.
func (ts Terms) operandTerms() []Term { return ts.list }
