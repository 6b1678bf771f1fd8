package wheelbuffer

// Storage is a fixed-length sequence of T that can be read and written by
// position. Its length defines the capacity of the WheelBuffer wrapping it and
// must not change while wrapped.
//
// Indices passed to Get and Set are always in [0, Len()).
type Storage[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
}

// Slice adapts a Go slice to Storage. Fixed arrays can be wrapped as
// Slice[T](arr[:]). The slice header is copied on wrap, so later appends to
// the caller's slice do not change the buffer's capacity.
type Slice[T any] []T

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) Get(i int) T { return s[i] }

func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Cleanable is an interface for types that require explicit cleanup when a
// Synced buffer drops them (either by overwrite or when Stop() is called).
type Cleanable interface {
	// Cleanup performs any necessary resource release.
	Cleanup()
}
