package vec

import (
	"errors"
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // destroy elements, drop storage

	for i := 1; i <= 3; i++ {
		_ = v.PushBack(i * 10)
	}
	fmt.Println("len:", v.Len(), "cap:", v.Cap())
	fmt.Println("front:", *v.Front(), "back:", *v.Back())

	_, _ = v.Insert(1, 99)
	fmt.Println("after insert:", v.Slice())

	v.Erase(1)
	fmt.Println("after erase:", v.Slice())

	// Output:
	// len: 3 cap: 3
	// front: 10 back: 30
	// after insert: [10 99 20 30]
	// after erase: [10 20 30]
}

// ExampleVector_PushBack shows the 2*cap+1 growth trace
func ExampleVector_PushBack() {
	v := New[int]()

	for i := 0; i < 10; i++ {
		before := v.Cap()
		_ = v.PushBack(i)
		if v.Cap() != before {
			fmt.Println("grew to", v.Cap())
		}
	}

	// Output:
	// grew to 1
	// grew to 3
	// grew to 7
	// grew to 15
}

// ExampleWithDestroy shows reverse-order element finalization
func ExampleWithDestroy() {
	v := New(WithDestroy(func(s *string) {
		fmt.Println("closing", *s)
	}))

	_ = v.PushBack("first")
	_ = v.PushBack("second")
	v.Release()

	// Output:
	// closing second
	// closing first
}

// ExampleWithClone shows strong-guarantee rollback on a copy failure
func ExampleWithClone() {
	// Growth relocations clone elements too: the first push clones
	// once, the second clones twice (one relocation plus the new
	// element), so a budget of three is spent exactly at the third.
	budget := 3
	v := New(WithClone(func(n int) (int, error) {
		if budget == 0 {
			return 0, errors.New("out of copies")
		}
		budget--
		return n, nil
	}))

	fmt.Println(v.PushBack(1))
	fmt.Println(v.PushBack(2))
	err := v.PushBack(3)
	fmt.Println(err != nil, "len still", v.Len())

	// Output:
	// <nil>
	// <nil>
	// true len still 2
}

// ExampleVector_Metrics demonstrates storage accounting
func ExampleVector_Metrics() {
	v := New[int64]()
	for i := 0; i < 5; i++ {
		_ = v.PushBack(int64(i))
	}

	m := v.Metrics()
	fmt.Printf("live: %d bytes of %d\n", m.SizeInUse, m.CapacityBytes)
	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)

	// Output:
	// live: 40 bytes of 56
	// utilization: 71.43%
}
