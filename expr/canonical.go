package expr

// Canonical returns the orientation-canonical form of e together with the
// sign accumulated while canonicalizing (+1 or -1).
//
// Brackets are antisymmetric ({A,B} = -{B,A}), so one orientation is
// chosen as canonical: operands are ordered by Key, and every swap flips
// the sign. Wrapper nodes (Average, Oscillatory, Integral) canonicalize
// their argument and pass its sign through; atoms are already canonical.
//
// Contract: Canonical never mutates e and is deterministic.
func Canonical(e Expr) (Expr, int) {
	switch n := e.(type) {
	case Bracket:
		// 1) Canonicalize both operands first, collecting their signs.
		left, leftSign := Canonical(n.left)
		right, rightSign := Canonical(n.right)
		sign := leftSign * rightSign
		// 2) Orient the bracket: smaller key on the left, swap costs a sign.
		if left.Key() > right.Key() {
			left, right = right, left
			sign = -sign
		}

		return Bracket{left: left, right: right}, sign
	case Average:
		arg, sign := Canonical(n.arg)

		return Average{arg: arg}, sign
	case Oscillatory:
		arg, sign := Canonical(n.arg)

		return Oscillatory{arg: arg}, sign
	case Integral:
		arg, sign := Canonical(n.arg)

		return Integral{arg: arg}, sign
	default:
		return e, 1
	}
}

// Equal reports structural equality of two expressions via their keys.
// Two nil expressions are equal; nil never equals a non-nil expression.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Key() == b.Key()
}

// EquivalentSign compares two expressions up to bracket orientation.
// When a and b share a canonical form it returns the relative sign
// (+1 same orientation, -1 opposite) and ok = true; otherwise ok = false
// and the sign is meaningless.
func EquivalentSign(a, b Expr) (sign int, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	canonA, signA := Canonical(a)
	canonB, signB := Canonical(b)
	if !Equal(canonA, canonB) {
		return 0, false
	}

	return signA * signB, true
}
