// Package vector provides a generic dynamic array with explicit capacity
// management and amortized constant-time append.
//
// A Vector owns a contiguous block of slots and tracks how many of them are
// logically live. Growth doubles the capacity (never less than the requested
// length), so N sequential appends cost O(N) total. Capacity never shrinks;
// Clear and truncating Resize only move the logical length.
//
// # Usage
//
// Build a vector from a literal sequence or with options:
//
//	v := vector.Of(1, 2, 3)
//	w := vector.New(vector.WithCapacity[int](64)) // pre-allocated, length 0
//
//	v.PushBack(4)
//	for i, x := range v.All() {
//	    _ = i
//	    _ = x
//	}
//
// # Positions
//
// Insert and Erase address elements by integer index. Indices stay meaningful
// across reallocation, unlike raw pointers into the storage; code holding a
// *T from Ptr must not keep it across any growing operation.
//
// # Safety
//
// Checked access (At, SetAt) reports ErrOutOfRange and leaves the vector
// untouched. Unchecked access (Get, Set, Ptr) and out-of-range Insert/Erase
// indices are contract violations and panic. The container is not safe for
// concurrent mutation without external synchronization.
package vector
