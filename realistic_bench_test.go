package vec

import "testing"

// BenchmarkRealisticUsage tests access patterns the container is built for
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: append-heavy batch building with reuse via Clear
	b.Run("BatchBuild/Vector", func(b *testing.B) {
		v := New[int]()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				_ = v.PushBack(j)
			}
			v.Clear()
		}
	})

	b.Run("BatchBuild/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				s = append(s, j)
			}
			s = s[:0]
		}
	})

	// Test 2: random access over a warm container
	b.Run("RandomAccess/Vector", func(b *testing.B) {
		v := New[int]()
		for j := 0; j < 1024; j++ {
			_ = v.PushBack(j)
		}
		b.ResetTimer()

		sum := 0
		for i := 0; i < b.N; i++ {
			sum += *v.At(i & 1023)
		}
		_ = sum
	})

	b.Run("RandomAccess/Builtin", func(b *testing.B) {
		s := make([]int, 1024)
		for j := range s {
			s[j] = j
		}
		b.ResetTimer()

		sum := 0
		for i := 0; i < b.N; i++ {
			sum += s[i&1023]
		}
		_ = sum
	})

	// Test 3: pre-sized append, no growth on the hot path
	b.Run("Reserved/Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			_ = v.Reserve(256)
			for j := 0; j < 256; j++ {
				_ = v.PushBack(j)
			}
		}
	})

	b.Run("Reserved/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 256)
			for j := 0; j < 256; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

// BenchmarkIteration compares the iterator forms against the raw view
func BenchmarkIteration(b *testing.B) {
	v := New[int]()
	for j := 0; j < 4096; j++ {
		_ = v.PushBack(j)
	}

	b.Run("Slice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, x := range v.Slice() {
				sum += x
			}
			_ = sum
		}
	})

	b.Run("Values", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for x := range v.Values() {
				sum += x
			}
			_ = sum
		}
	})
}
