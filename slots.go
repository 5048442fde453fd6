package vec

import (
	"fmt"
	"math"
	"unsafe"
)

// MaxLen returns the largest slot count a Vector of T can allocate:
// the count whose total byte size still fits in int. Requests beyond
// it fail with ErrTooLarge.
func MaxLen[T any]() int {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return math.MaxInt
	}
	return math.MaxInt / elemSize
}

// allocSlots acquires a block of n dead slots.
func allocSlots[T any](n int) ([]T, error) {
	if n < 0 || n > MaxLen[T]() {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrTooLarge, n, unsafe.Sizeof(*new(T)))
	}
	return make([]T, n), nil
}

// constructSlot clones src through the clone hook and writes it into
// *dst. On a clone failure the slot is left untouched.
func (v *Vector[T]) constructSlot(dst *T, src T) error {
	if v.clone == nil {
		*dst = src
		return nil
	}
	elem, err := v.clone(src)
	if err != nil {
		return err
	}
	*dst = elem
	return nil
}

// constructRange clones src into the leading slots of dst, in order.
// On the i-th failure the i successfully built elements are destroyed
// in reverse order before the error is returned, so dst holds no live
// elements on failure.
func (v *Vector[T]) constructRange(dst, src []T) error {
	for i := range src {
		if err := v.constructSlot(&dst[i], src[i]); err != nil {
			v.destroyRange(dst[:i])
			return fmt.Errorf("vec: construct element %d: %w", i, err)
		}
	}
	return nil
}

// destroyRange finalizes every live element in s, last to first, and
// zeroes the slots so the collector can reclaim what they referenced.
func (v *Vector[T]) destroyRange(s []T) {
	var zero T
	for i := len(s) - 1; i >= 0; i-- {
		if v.destroy != nil {
			v.destroy(&s[i])
		}
		s[i] = zero
	}
}

// reallocate acquires a block of newCap slots and clones the live
// elements into it. On any single-element failure the partially built
// block is torn down (reverse order) and released, and the vector is
// untouched. newCap must be >= v.size.
func (v *Vector[T]) reallocate(newCap int) ([]T, error) {
	block, err := allocSlots[T](newCap)
	if err != nil {
		return nil, err
	}
	if err := v.constructRange(block, v.data[:v.size]); err != nil {
		return nil, err
	}
	return block, nil
}

// swapBlock installs a fully constructed block as the new backing
// storage and releases the old one. With a clone hook the relocated
// elements are independent copies, so the old block's elements are
// destroyed in reverse order; without one the relocation was a plain
// move, so the old slots are only zeroed: the values live on in the
// new block and must not be finalized. Never fails.
func (v *Vector[T]) swapBlock(block []T) {
	if v.clone == nil {
		clear(v.data[:v.size])
	} else {
		v.destroyRange(v.data[:v.size])
	}
	v.data = block
}
