// Package vec implements a generic dynamic array for Go.
//
// # Overview
//
// A Vector owns a contiguous block of element slots and tracks how many
// of the leading slots hold live values. It separates raw storage from
// element lifetime the way a manual allocator does: growth acquires a
// new block, clones the live elements into it, and only then swaps it
// in. Every mutating operation documents one of two safety levels:
//
//   - Strong: the operation either fully succeeds or leaves the vector
//     observably unchanged.
//   - Nothrow: the operation cannot fail.
//
// This is useful for:
//
//   - Amortized-O(1) append with a predictable growth policy
//   - Random access and bounded-cost positional insert/erase
//   - Element types whose copies can fail, with guaranteed rollback
//   - Code that must control exactly when reallocation happens
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // destroy elements, drop storage
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	fmt.Println(v.Len(), *v.At(0))
//
//	_ = v.Reserve(100)   // grow capacity up front
//	v.Clear()            // drop elements, keep capacity
//	_ = v.ShrinkToFit()  // give capacity back
//
// # Element Hooks
//
// Copying and finalizing elements are pluggable per instance:
//
//	v := vec.New(
//		vec.WithClone(func(r Resource) (Resource, error) { return r.Dup() }),
//		vec.WithDestroy(func(r *Resource) { r.Close() }),
//	)
//
// Every construct-in-slot goes through the clone hook; a clone failure
// triggers reverse-order destruction of whatever the operation had built
// before the error is returned. Relocation follows the hooks: with a
// clone hook the live elements are cloned into the new block and the
// old block's elements are then destroyed, so a destroy hook paired
// with a clone hook requires the clone to produce an independent
// value. Without a clone hook relocation moves the elements by plain
// assignment and the destroy hook is not invoked: each element is
// finalized exactly once, at Clear, Release, PopBack or Erase.
//
// # Growth Policy
//
// PushBack at capacity grows the block to 2*cap+1 slots, so capacity
// follows 0, 1, 3, 7, 15, ... and N appends cost O(N) total.
//
// # Undefined Behavior
//
// The accessors perform no redundant safety checks. Indexing outside
// [0, Len()), calling Front/Back/PopBack on an empty vector, or passing
// Insert/EraseRange positions outside the documented ranges violates
// the caller contract; the package may panic via the runtime or corrupt
// the element order, and makes no promise either way.
//
// # Invalidation
//
// Slice views, At/Front/Back pointers and iterators are invalidated by
// any operation that may reallocate (PushBack at capacity, Reserve,
// ShrinkToFit, Insert) and by the element shifts of Insert/Erase.
// Invalidation is documented, not detected at run time.
//
// # Thread Safety
//
// Vector is not goroutine-safe and makes no attempt to be. Concurrent
// mutation, or reads concurrent with a mutation, require external
// synchronization by the caller.
package vec
