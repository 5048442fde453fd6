package vec

import "unsafe"

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	var zero T
	return v.size * int(unsafe.Sizeof(zero))
}

// CapacityBytes returns the total byte size of the backing block.
func (v *Vector[T]) CapacityBytes() int {
	var zero T
	return len(v.data) * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live slots to allocated slots
// (0.0 to 1.0). Returns 0.0 when no block is allocated.
func (v *Vector[T]) Utilization() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.data))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live element count
	Cap           int     // Allocated slot count
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Total byte size of the backing block
	Utilization   float64 // Ratio of live to allocated slots (0.0-1.0)
}
