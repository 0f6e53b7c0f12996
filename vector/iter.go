package vector

import "iter"

// All returns an index/value iterator over the logical elements.
// The vector must not grow or shrink while the iteration runs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := v.items.Data()
		for i := 0; i < v.size; i++ {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the logical elements.
// The vector must not grow or shrink while the iteration runs.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		data := v.items.Data()
		for i := 0; i < v.size; i++ {
			if !yield(data[i]) {
				return
			}
		}
	}
}
