// Package block provides the exclusively-owned contiguous storage that
// backs the vector package. A Block hands out raw slot access without
// bounds policy of its own; the owning container decides which slots are
// logically live.
package block

// Block owns a contiguous run of slots. The slice length always equals
// the allocated capacity; there is no notion of a logical size here.
// The zero value is the empty block.
type Block[T any] struct {
	data []T
}

// Alloc returns a Block of n zero-valued slots.
// Non-positive n yields the empty block without allocating.
func Alloc[T any](n int) Block[T] {
	if n <= 0 {
		return Block[T]{}
	}
	return Block[T]{data: make([]T, n)}
}

// Data returns the owned slice, or nil for the empty block.
// Mutations through the slice are visible to the Block and vice versa.
func (b *Block[T]) Data() []T {
	return b.data
}

// Len returns the number of allocated slots.
func (b *Block[T]) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the block owns no storage.
func (b *Block[T]) IsEmpty() bool {
	return len(b.data) == 0
}

// At returns a pointer to slot i. Out-of-range indices panic.
func (b *Block[T]) At(i int) *T {
	return &b.data[i]
}

// Swap exchanges the owned storage of two blocks in constant time.
func (b *Block[T]) Swap(other *Block[T]) {
	b.data, other.data = other.data, b.data
}

// Move transfers ownership of the storage out of b, leaving b empty.
func (b *Block[T]) Move() Block[T] {
	moved := Block[T]{data: b.data}
	b.data = nil
	return moved
}

// Release drops the owned storage, leaving b empty.
func (b *Block[T]) Release() {
	b.data = nil
}
