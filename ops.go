package cas

// Add returns a + b, flattening sums so the result never has a *Sum as a
// direct child:
//
//	Sum(xs) + Sum(ys) = Sum(xs ++ ys)
//	Sum(xs) + y       = Sum(xs ++ [y])
//	x + Sum(ys)       = Sum([x] ++ ys)
//	x + y             = Sum([x, y])
//
// Add consumes its operands: a *Sum argument may be reused as the result.
// An operand that still refers to the *Sum being extended, as in Sub(s, s),
// is cloned first so the result stays a tree. No other simplification
// happens; zero addends are kept.
func Add(a, b Term) Term {
	as, aIsSum := a.(*Sum)
	bs, bIsSum := b.(*Sum)
	switch {
	case aIsSum && bIsSum:
		if contains(b, as) || contains(a, bs) {
			bs = bs.Clone().(*Sum)
		}
		return concat(as, bs)
	case aIsSum:
		if contains(b, as) {
			b = b.Clone()
		}
		as.list().PushBack(b)
		return as
	case bIsSum:
		if contains(a, bs) {
			a = a.Clone()
		}
		bs.list().PushFront(a)
		return bs
	default:
		return newSum(a, b)
	}
}

// contains reports whether s occurs anywhere in t, t itself included.
func contains(t Term, s *Sum) bool {
	switch n := t.(type) {
	case *Sum:
		if n == s {
			return true
		}
		for i := 0; i < n.list().Len(); i++ {
			if contains(n.list().At(i), s) {
				return true
			}
		}
	case *Neg:
		return contains(n.arg, s)
	}
	return false
}

// concat moves the addends of the shorter sum onto the longer one.
func concat(xs, ys *Sum) *Sum {
	if xs.list().Len() >= ys.list().Len() {
		for ys.list().Len() > 0 {
			xs.list().PushBack(ys.list().PopFront())
		}
		return xs
	}
	for xs.list().Len() > 0 {
		ys.list().PushFront(xs.list().PopBack())
	}
	return ys
}

// AddOf folds Add over terms from the left. It returns Zero() for no terms
// and the term itself for one.
func AddOf(terms ...Term) Term {
	if len(terms) == 0 {
		return Zero()
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = Add(acc, t)
	}
	return acc
}

// Negate wraps a in a Neg node. Double negation is not collapsed.
func Negate(a Term) Term { return &Neg{arg: a} }

// Sub returns a + (-b).
func Sub(a, b Term) Term { return Add(a, Negate(b)) }

// AddAssign replaces *t with *t + other. A nil *t is treated as an empty
// accumulator and receives other unchanged.
func AddAssign(t *Term, other Term) {
	if *t == nil {
		*t = other
		return
	}
	*t = Add(*t, other)
}

// SubAssign replaces *t with *t - other. A nil *t receives -other.
func SubAssign(t *Term, other Term) { AddAssign(t, Negate(other)) }
