package wheelbuffer

// Iterator walks a WheelBuffer's entries from oldest to newest without
// changing the buffer. It is a plain value: copying it forks the cursor.
type Iterator[T any, S Storage[T]] struct {
	wb    *WheelBuffer[T, S]
	start int
	n     int
	cur   int
}

// Next returns the next entry, or false once the window is exhausted.
func (it *Iterator[T, S]) Next() (T, bool) {
	if it.cur >= it.n {
		var zero T
		return zero, false
	}
	v := it.wb.store.Get(it.wb.slot(it.start, it.cur))
	it.cur++
	return v, true
}

// Nth skips n entries and returns the one after them. Skipping past the end
// exhausts the iterator.
func (it *Iterator[T, S]) Nth(n int) (T, bool) {
	if n > 0 {
		it.cur += min(n, it.n-it.cur)
	}
	return it.Next()
}

// Remaining returns the number of entries Next will still produce.
func (it *Iterator[T, S]) Remaining() int {
	return it.n - it.cur
}
