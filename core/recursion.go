package core

import (
	"math/big"

	"github.com/perturbkit/vanvleck/expr"
)

// kamiltonianAt resolves K(n,m) through the memo table. Callers hold
// s.mu and guarantee non-negative indices.
func (s *Session) kamiltonianAt(n, m int) (Terms, error) {
	key := kmKey{n: n, m: m}
	if cached, ok := s.kamiltonian[key]; ok {
		return cached, nil
	}
	built, err := s.buildKamiltonian(n, m)
	if err != nil {
		return Terms{}, err
	}
	s.kamiltonian[key] = built

	return built, nil
}

// buildKamiltonian computes one table entry of the graded expansion of
// K = exp(L_S) H:
//
//	K(n,0) = H_n
//	K(n,m) = 0 for m > n
//	K(n,m) = (1/m) Σ_{k=1..n-m+1} { S(k), K(n-k, m-1) } otherwise
func (s *Session) buildKamiltonian(n, m int) (Terms, error) {
	// 1) Base row: the installed Hamiltonian, order by order. Orders the
	//    Hamiltonian does not populate read as empty.
	if m == 0 {
		return s.base[n], nil
	}
	// 2) Above the diagonal every entry vanishes: each Lie step raises
	//    the order by at least one.
	if m > n {
		return Terms{}, nil
	}
	// 3) Interior entry: expand the k-sum in increasing order so the
	//    result is identical across sessions.
	acc := Terms{}
	weight := big.NewRat(1, int64(m))
	for k := 1; k <= n-m+1; k++ {
		sk, err := s.generatorAt(k)
		if err != nil {
			return Terms{}, err
		}
		prev, err := s.kamiltonianAt(n-k, m-1)
		if err != nil {
			return Terms{}, err
		}
		product, err := sk.Bracket(prev)
		if err != nil {
			return Terms{}, err
		}
		acc = acc.Add(product.Scale(weight))
	}

	return acc, nil
}

// generatorAt resolves S(n) through the memo table. Callers hold s.mu
// and guarantee n >= 1.
func (s *Session) generatorAt(n int) (Terms, error) {
	if cached, ok := s.generator[n]; ok {
		return cached, nil
	}
	// 1) Assemble the order-n remainder R(n) = K(n,0) + Σ_{m=1..n} K°(n,m):
	//    the row S(n) must cancel, with the {S(n), H_0} self-term left
	//    out so the recursion stays well-founded.
	remainder, err := s.kamiltonianAt(n, 0)
	if err != nil {
		return Terms{}, err
	}
	for m := 1; m <= n; m++ {
		row, err := s.selfFreeRow(n, m)
		if err != nil {
			return Terms{}, err
		}
		remainder = remainder.Add(row)
	}
	// 2) Invert the oscillating part; the secular part stays in the
	//    Kamiltonian and needs no generator.
	inverted, err := invertOscillating(n, remainder.Oscillating())
	if err != nil {
		return Terms{}, err
	}
	s.generator[n] = inverted

	return inverted, nil
}

// selfFreeRow computes K(n,m) with the k = n summand excluded. Only the
// m = 1 row can reach k = n, so higher rows reuse the memo table as-is.
func (s *Session) selfFreeRow(n, m int) (Terms, error) {
	if m >= 2 {
		return s.kamiltonianAt(n, m)
	}
	acc := Terms{}
	for k := 1; k <= n-1; k++ {
		sk, err := s.generatorAt(k)
		if err != nil {
			return Terms{}, err
		}
		base, err := s.kamiltonianAt(n-k, 0)
		if err != nil {
			return Terms{}, err
		}
		product, err := sk.Bracket(base)
		if err != nil {
			return Terms{}, err
		}
		acc = acc.Add(product)
	}

	return acc, nil
}

// invertOscillating builds generator terms from an oscillating
// remainder: each term is formally time-integrated, which divides its
// coefficient by its harmonic and wraps the payload in an Integral.
// A zero harmonic has no bounded integral; the construction stops with
// a ResonanceError naming the offending term.
func invertOscillating(order int, osc Terms) (Terms, error) {
	out := make([]Term, 0, osc.Len())
	for _, t := range osc.list {
		if t.harmonic == 0 {
			return Terms{}, ResonanceError{Order: order, Term: t}
		}
		out = append(out, Term{
			order:    t.order,
			harmonic: t.harmonic,
			rotating: true,
			coeff:    new(big.Rat).Quo(t.coeff, big.NewRat(int64(t.harmonic), 1)),
			node:     expr.NewIntegral(t.node),
		})
	}

	return Terms{list: out}, nil
}
