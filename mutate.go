package vec

import "fmt"

// Reserve grows the backing block to at least n slots. If n exceeds the
// current capacity a block of exactly n slots is acquired, the live
// elements are cloned into it, and only then does it replace the old
// block; on any failure the vector is untouched. If n <= Cap() this is
// a no-op. Strong guarantee, O(n).
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	block, err := v.reallocate(n)
	if err != nil {
		return err
	}
	v.swapBlock(block)
	return nil
}

// ShrinkToFit reduces the capacity to exactly Len. An empty vector
// drops its block entirely; otherwise the live elements are relocated
// into an exact-size block with the same swap-in discipline as Reserve.
// Strong guarantee, O(n).
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == 0 {
		v.data = nil
		return nil
	}
	if v.size == len(v.data) {
		return nil
	}
	block, err := v.reallocate(v.size)
	if err != nil {
		return err
	}
	v.swapBlock(block)
	return nil
}

// Clear destroys all live elements in reverse order and resets Len to
// zero. Capacity and the backing block are retained. Never fails.
func (v *Vector[T]) Clear() {
	v.destroyRange(v.data[:v.size])
	v.size = 0
}

// PushBack appends a copy of x. With spare capacity the element is
// constructed directly in the next free slot; a clone failure there
// leaves the vector unchanged. At capacity the vector grows to
// 2*Cap()+1 slots: the live elements are cloned into the new block,
// then x is constructed in its tail slot, and only after both succeed
// does the new block replace the old one. Amortized O(1), strong
// guarantee.
func (v *Vector[T]) PushBack(x T) error {
	if v.size == len(v.data) {
		block, err := v.reallocate(len(v.data)*2 + 1)
		if err != nil {
			return err
		}
		if err := v.constructSlot(&block[v.size], x); err != nil {
			v.destroyRange(block[:v.size])
			return fmt.Errorf("vec: construct element %d: %w", v.size, err)
		}
		v.swapBlock(block)
	} else {
		if err := v.constructSlot(&v.data[v.size], x); err != nil {
			return fmt.Errorf("vec: construct element %d: %w", v.size, err)
		}
	}
	v.size++
	return nil
}

// PopBack destroys the last element and shrinks Len by one. Calling it
// on an empty vector is a contract violation. O(1), never fails.
func (v *Vector[T]) PopBack() {
	v.size--
	v.destroyRange(v.data[v.size : v.size+1])
}

// Insert places a copy of x at index i, shifting later elements right,
// and returns a pointer to the inserted element. The element is first
// appended (growing under PushBack's rules, strong with respect to that
// step) and then exchanged backward into position; the exchanges cannot
// fail. Valid i are [0, Len()]; i == Len() is equivalent to PushBack.
// O(n).
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	if err := v.PushBack(x); err != nil {
		return nil, err
	}
	for j := v.size - 1; j > i; j-- {
		v.data[j], v.data[j-1] = v.data[j-1], v.data[j]
	}
	return &v.data[i], nil
}

// Erase removes the element at index i and returns the index of the
// element that now occupies that position (or the new Len if i was the
// last element). O(n), never fails.
func (v *Vector[T]) Erase(i int) int {
	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last), shifting survivors
// left by pairwise exchange to close the gap, then destroys the
// trailing duplicate slots in reverse order. Returns first, the index
// now holding the element that followed the range (or the new Len when
// the range reached the end). first == last is a no-op. O(n), never
// fails.
func (v *Vector[T]) EraseRange(first, last int) int {
	f, l := first, last
	for l < v.size {
		v.data[f], v.data[l] = v.data[l], v.data[f]
		f++
		l++
	}
	v.destroyRange(v.data[f:v.size])
	v.size = f
	return first
}
