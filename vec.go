// Package vec implements a generic dynamic array (growable contiguous
// container) with explicit strong/nothrow safety guarantees on every
// mutating operation.
package vec

// Vector is a resizable contiguous container with value semantics.
// It owns a block of cap slots of which the leading size hold live
// elements; the rest are dead (zeroed) storage. The zero value and
// New both produce an empty vector with no allocation.
//
// Not goroutine-safe. Callers needing concurrent access must
// synchronize externally.
type Vector[T any] struct {
	data    []T // backing block; len(data) is the capacity, nil when 0
	size    int // live prefix length; 0 <= size <= len(data)
	clone   CloneFunc[T]
	destroy DestroyFunc[T]
}

// CloneFunc copies an element during construction, relocation and Clone.
// It may fail; the failing operation rolls back per its guarantee level.
// A nil CloneFunc means plain assignment, which cannot fail.
type CloneFunc[T any] func(T) (T, error)

// DestroyFunc finalizes an element before its slot is released. Destroy
// hooks must not fail; ranges are always destroyed in reverse order.
type DestroyFunc[T any] func(*T)

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithClone sets the element copy hook. When a destroy hook is also set,
// the clone hook must produce an independent value: relocation clones
// live elements into the new block and then destroys the old block's.
// Without a clone hook relocation is a plain move and never invokes
// the destroy hook; destruction then happens exactly once per element,
// at Clear, Release, PopBack or Erase.
func WithClone[T any](fn CloneFunc[T]) Option[T] {
	return func(v *Vector[T]) { v.clone = fn }
}

// WithDestroy sets the element finalizer hook.
func WithDestroy[T any](fn DestroyFunc[T]) Option[T] {
	return func(v *Vector[T]) { v.destroy = fn }
}

// New creates an empty vector with no allocation. O(1), never fails.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns a pointer to the element at index i. No bounds check beyond
// what the runtime imposes; i outside [0, Len()) is a contract violation.
func (v *Vector[T]) At(i int) *T { return &v.data[i] }

// Front returns a pointer to the first element. Calling Front on an
// empty vector is a contract violation.
func (v *Vector[T]) Front() *T { return &v.data[0] }

// Back returns a pointer to the last element. Calling Back on an empty
// vector is a contract violation.
func (v *Vector[T]) Back() *T { return &v.data[v.size-1] }

// Slice returns the live elements as a contiguous view over the backing
// block. The view is invalidated by any operation that reallocates and
// by the element shifts of Insert/Erase; see the package documentation.
func (v *Vector[T]) Slice() []T { return v.data[:v.size:v.size] }

// Swap exchanges the contents (storage, size and hooks) of two vectors.
// O(1), never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
	v.clone, other.clone = other.clone, v.clone
	v.destroy, other.destroy = other.destroy, v.destroy
}

// Clone returns an independent copy of the vector, sized exactly to its
// element count. Each element is cloned in order; if any clone fails,
// the partially built elements are destroyed in reverse order, the new
// block is released and the error is returned with no other effect.
// Strong guarantee, O(n).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{clone: v.clone, destroy: v.destroy}
	if v.size == 0 {
		return out, nil
	}
	block, err := v.reallocate(v.size)
	if err != nil {
		return nil, err
	}
	out.data = block
	out.size = v.size
	return out, nil
}

// Take moves the contents out of v into a fresh vector, leaving v empty
// with no allocation. Hooks are carried to the new vector and retained
// on v. O(1), never fails.
func (v *Vector[T]) Take() *Vector[T] {
	out := &Vector[T]{
		data:    v.data,
		size:    v.size,
		clone:   v.clone,
		destroy: v.destroy,
	}
	v.data = nil
	v.size = 0
	return out
}

// CopyFrom replaces v's contents with a copy of other, via clone-then-
// swap: if cloning fails v is untouched, otherwise the swap installs the
// copy atomically. Self-assignment is a no-op. Strong guarantee, O(n).
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.Release()
	return nil
}

// MoveFrom exchanges v's contents with other's. Self-assignment is a
// no-op. O(1), never fails.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other)
}

// Release destroys all live elements in reverse order and drops the
// backing block. The vector remains usable as an empty vector. O(n),
// never fails.
func (v *Vector[T]) Release() {
	v.destroyRange(v.data[:v.size])
	v.data = nil
	v.size = 0
}
