package wheelbuffer

import (
	"encoding/json"
	"iter"
	"math"
)

// WheelBuffer is a fixed-capacity circular buffer that overwrites its oldest
// entry when full. It has no read cursor: iterating never consumes entries,
// so the same history can be scanned any number of times.
//
// WheelBuffer is not safe for concurrent use. Pushing while another goroutine
// iterates is a data race; wrap the buffer in a Synced or guard it with a lock.
// Concurrent read-only iteration of an unchanging buffer is safe.
type WheelBuffer[T any, S Storage[T]] struct {
	store S
	// size is store.Len() captured at construction.
	size int
	// pos is the slot the next Push overwrites.
	pos int
	// total counts every Push since construction, saturating at MaxUint64.
	total uint64
}

// New wraps store in a WheelBuffer. Every slot of store must already hold a
// placeholder value; placeholders are never returned by iteration. The
// capacity is fixed as store.Len(). A zero-length store gives a buffer that
// is always empty and always full, on which Push does nothing.
//
//	wb := wheelbuffer.New[int](myStore)
func New[T any, S Storage[T]](store S) *WheelBuffer[T, S] {
	return &WheelBuffer[T, S]{
		store: store,
		size:  store.Len(),
	}
}

// NewSlice wraps buf, which may be a fixed array converted with arr[:].
func NewSlice[T any](buf []T) *WheelBuffer[T, Slice[T]] {
	return New[T](Slice[T](buf))
}

// Push stores v, overwriting the oldest entry once the buffer is full.
func (wb *WheelBuffer[T, S]) Push(v T) {
	if wb.size == 0 {
		return
	}
	wb.store.Set(wb.pos, v)
	wb.pos++
	if wb.pos == wb.size {
		wb.pos = 0
	}
	if wb.total != math.MaxUint64 {
		wb.total++
	}
}

// Capacity returns the number of slots in the backing store.
func (wb *WheelBuffer[T, S]) Capacity() int {
	return wb.size
}

// Len returns the number of pushed entries currently readable.
func (wb *WheelBuffer[T, S]) Len() int {
	if wb.total < uint64(wb.size) {
		return int(wb.total)
	}
	return wb.size
}

// Total returns how many times Push has stored a value, including values
// that have since been overwritten.
func (wb *WheelBuffer[T, S]) Total() uint64 {
	return wb.total
}

func (wb *WheelBuffer[T, S]) IsEmpty() bool {
	return wb.total == 0
}

// IsFull reports whether at least Capacity() values have been pushed.
// A zero-capacity buffer is always full.
func (wb *WheelBuffer[T, S]) IsFull() bool {
	return wb.total >= uint64(wb.size)
}

// window returns the physical slot of the oldest entry and the entry count.
func (wb *WheelBuffer[T, S]) window() (start, n int) {
	if wb.total < uint64(wb.size) {
		return 0, int(wb.total)
	}
	return wb.pos, wb.size
}

// slot maps the i-th entry of a window beginning at start to a store index.
func (wb *WheelBuffer[T, S]) slot(start, i int) int {
	j := start + i
	if j >= wb.size {
		j -= wb.size
	}
	return j
}

// All returns the current entries from oldest to newest. The window is fixed
// when All is called; the returned sequence can be ranged over repeatedly.
func (wb *WheelBuffer[T, S]) All() iter.Seq[T] {
	start, n := wb.window()
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(wb.store.Get(wb.slot(start, i))) {
				return
			}
		}
	}
}

// Backward returns the current entries from newest to oldest.
func (wb *WheelBuffer[T, S]) Backward() iter.Seq[T] {
	start, n := wb.window()
	return func(yield func(T) bool) {
		for i := n - 1; i >= 0; i-- {
			if !yield(wb.store.Get(wb.slot(start, i))) {
				return
			}
		}
	}
}

// Iter returns a cursor over the current entries from oldest to newest.
func (wb *WheelBuffer[T, S]) Iter() Iterator[T, S] {
	start, n := wb.window()
	return Iterator[T, S]{wb: wb, start: start, n: n}
}

// At returns the i-th entry in chronological order, where 0 is the oldest and
// Len()-1 the newest. It panics if i is out of range.
func (wb *WheelBuffer[T, S]) At(i int) T {
	start, n := wb.window()
	if i < 0 || i >= n {
		panic("wheelbuffer: index out of range")
	}
	return wb.store.Get(wb.slot(start, i))
}

// Oldest returns the oldest entry, or false if the buffer is empty.
func (wb *WheelBuffer[T, S]) Oldest() (T, bool) {
	if wb.Len() == 0 {
		var zero T
		return zero, false
	}
	return wb.At(0), true
}

// Newest returns the most recently pushed entry, or false if the buffer is empty.
func (wb *WheelBuffer[T, S]) Newest() (T, bool) {
	n := wb.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	return wb.At(n - 1), true
}

// AppendTo appends the entries from oldest to newest to dst.
func (wb *WheelBuffer[T, S]) AppendTo(dst []T) []T {
	for v := range wb.All() {
		dst = append(dst, v)
	}
	return dst
}

// Slice returns a copy of the entries from oldest to newest, or nil if the
// buffer is empty.
func (wb *WheelBuffer[T, S]) Slice() []T {
	n := wb.Len()
	if n == 0 {
		return nil
	}
	return wb.AppendTo(make([]T, 0, n))
}

// MarshalJSON encodes the entries as a JSON array, oldest first.
func (wb *WheelBuffer[T, S]) MarshalJSON() ([]byte, error) {
	out := wb.Slice()
	if out == nil {
		out = []T{}
	}
	return json.Marshal(out)
}
