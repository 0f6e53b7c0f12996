package vector

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vector/block"
)

// ErrOutOfRange is returned by checked access when the index is not in [0, Len).
var ErrOutOfRange = errors.New("vector: index out of range")

// Vector is a growable contiguous container. Element i lives in slot i of the
// owned block for every i < Len(); slots in [Len, Cap) hold unspecified
// zero-or-stale values and become zero-valued when Resize exposes them.
// The zero value is ready to use as an empty vector.
type Vector[T any] struct {
	items block.Block[T]
	size  int
}

// New returns a vector configured by the given options.
// Without options it is empty and does not allocate.
func New[T any](opts ...Option[T]) *Vector[T] {
	cfg := applyOptions(opts)

	capacity := cfg.capacity
	if cfg.size > capacity {
		capacity = cfg.size
	}

	v := &Vector[T]{items: block.Alloc[T](capacity), size: cfg.size}
	if cfg.fill != nil {
		data := v.items.Data()
		for i := range v.size {
			data[i] = *cfg.fill
		}
	}

	return v
}

// Of returns a vector holding the given items in order.
// Capacity equals the number of items.
func Of[T any](items ...T) *Vector[T] {
	v := &Vector[T]{items: block.Alloc[T](len(items)), size: len(items)}
	copy(v.items.Data(), items)
	return v
}

// Len returns the number of logical elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.items.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Slice returns the logical elements as a mutable view into the owned
// storage. The view is invalidated by any operation that may reallocate.
func (v *Vector[T]) Slice() []T {
	return v.items.Data()[:v.size]
}

// Get returns element i without a range check against Len.
// Callers are trusted; i beyond the capacity panics.
func (v *Vector[T]) Get(i int) T {
	return v.items.Data()[i]
}

// Set stores value into slot i without a range check against Len.
func (v *Vector[T]) Set(i int, value T) {
	v.items.Data()[i] = value
}

// Ptr returns a pointer to slot i without a range check against Len.
// The pointer is invalidated by any operation that may reallocate.
func (v *Vector[T]) Ptr(i int) *T {
	return v.items.At(i)
}

// At returns element i, or ErrOutOfRange if i is not in [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.size)
	}

	return v.items.Data()[i], nil
}

// SetAt stores value into element i, or returns ErrOutOfRange if i is not
// in [0, Len). The vector is unchanged on error.
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.size)
	}

	v.items.Data()[i] = value

	return nil
}

// Clear sets the length to 0. Capacity and slot contents are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the length to n, zero-filling any newly exposed elements.
// Negative n is treated as 0. Growing beyond the capacity reallocates to
// max(n, 2*Cap()) and moves the existing elements; truncation never
// releases storage.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}

	switch {
	case n <= v.size:
		v.size = n
	case n <= v.Cap():
		var zero T
		data := v.items.Data()
		for i := v.size; i < n; i++ {
			data[i] = zero
		}
		v.size = n
	default:
		grown := block.Alloc[T](max(n, 2*v.Cap()))
		copy(grown.Data(), v.items.Data()[:v.size])
		v.items.Swap(&grown)
		v.size = n
	}
}

// Reserve grows the capacity to exactly n, keeping all elements and the
// length. No-op when n <= Cap().
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}

	grown := block.Alloc[T](n)
	copy(grown.Data(), v.items.Data()[:v.size])
	v.items.Swap(&grown)
}

// PushBack appends item, growing the storage as needed.
func (v *Vector[T]) PushBack(item T) {
	v.Resize(v.size + 1)
	v.items.Data()[v.size-1] = item
}

// PopBack removes the last element. No-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places item at index i, shifting the elements at and after i one
// slot toward the end, and returns i. Valid indices are [0, Len]; i == Len
// appends. Out-of-range indices panic.
func (v *Vector[T]) Insert(i int, item T) int {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: Insert index %d out of range [0, %d]", i, v.size))
	}

	// The index survives the reallocation that Resize may perform.
	v.Resize(v.size + 1)
	data := v.items.Data()
	copy(data[i+1:v.size], data[i:v.size-1])
	data[i] = item

	return i
}

// Erase removes the element at index i, shifting the elements after it one
// slot toward the front, and returns i, which now addresses the removed
// element's successor (or equals Len if the last element was removed).
// Valid indices are [0, Len); out-of-range indices panic.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: Erase index %d out of range [0, %d)", i, v.size))
	}

	data := v.items.Data()
	copy(data[i:v.size-1], data[i+1:v.size])
	v.size--

	return i
}

// Swap exchanges contents, length, and capacity with other in constant
// time. No elements are copied.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy with the same length and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{items: block.Alloc[T](v.Cap()), size: v.size}
	copy(c.items.Data(), v.items.Data()[:v.size])
	return c
}

// CopyFrom replaces the contents with a deep copy of src, adopting src's
// capacity. The replacement storage is fully built before it is swapped in,
// so a failure while copying leaves v unmodified. Self-copy is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}

	replacement := block.Alloc[T](src.Cap())
	copy(replacement.Data(), src.items.Data()[:src.size])
	v.items.Swap(&replacement)
	v.size = src.size
}

// MoveFrom takes over src's storage, length, and capacity, leaving src
// valid and empty. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}

	v.items = src.items.Move()
	v.size = src.size
	src.size = 0
}
