/*
Package wheelbuffer provides a generic, fixed-capacity circular buffer that can
be iterated any number of times.

A WheelBuffer overwrites its oldest entry once it is full. Unlike a classic
ring buffer it has no read cursor: reading never removes or advances
anything, so the same window of history can be scanned repeatedly.

The backing storage is supplied by the caller and is never reallocated, which
makes the buffer usable where allocation must be avoided. Any type
implementing Storage can back a buffer; Slice adapts plain slices and arrays.

Usage:

Wrap storage whose every slot already holds a placeholder value:

	var buf [8]rune
	wb := wheelbuffer.NewSlice(buf[:])

Push values. Once the buffer is full, each push evicts the oldest entry:

	for _, r := range "Hello World" {
		wb.Push(r)
	}

Iterate from oldest to newest. Placeholders are never returned:

	for r := range wb.All() {
		fmt.Print(string(r)) // "lo World"
	}

Custom Storage:

Any fixed-length container can back a buffer by implementing Storage:

	type ring3 struct{ a, b, c string }

	func (r *ring3) Len() int { return 3 }
	func (r *ring3) Get(i int) string { ... }
	func (r *ring3) Set(i int, v string) { ... }

	wb := wheelbuffer.New[string](&ring3{})

Concurrency:

WheelBuffer is not synchronized. Pushing while another goroutine iterates is
a data race. Synced wraps a buffer in a goroutine that serializes access to it,
and calls Cleanup() on Cleanable values when they are overwritten or when
Stop() is called:

	s := wheelbuffer.NewSynced[*Conn](wheelbuffer.Slice[*Conn](make([]*Conn, 16)))
	defer s.Stop()
	s.Push(c)
	s.Do(func(wb *wheelbuffer.WheelBuffer[*Conn, wheelbuffer.Slice[*Conn]]) {
		for c := range wb.All() {
			...
		}
	})
*/
package wheelbuffer
