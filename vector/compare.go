package vector

import "cmp"

// Equal reports whether a and b hold the same logical element sequence.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}

	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}

	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if !eq(as[i], bs[i]) {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically over their logical elements:
// the first differing element decides; otherwise the shorter vector sorts
// first. The result is -1, 0, or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	as, bs := a.Slice(), b.Slice()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := cmp.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(as), len(bs))
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	as, bs := a.Slice(), b.Slice()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compare(as[i], bs[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(as), len(bs))
}

// Less reports whether a orders before b lexicographically.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
