package wheelbuffer

// doRequest is a private struct used to run a caller function inside the
// event loop and signal its completion.
type doRequest[T any, S Storage[T]] struct {
	fn   func(*WheelBuffer[T, S])
	done chan struct{}
}

// Synced is a WheelBuffer that may be shared between goroutines. A single
// background goroutine owns the buffer and channels serialize access to it.
//
// Values implementing Cleanable have Cleanup() called when they are
// overwritten and when Stop() is called. Placeholder values are never cleaned.
type Synced[T any, S Storage[T]] struct {
	wb *WheelBuffer[T, S]

	// Channels for thread-safe operations
	addChan chan T
	doChan  chan doRequest[T, S]
	done    chan struct{}
}

// NewSynced wraps store like New and starts the goroutine that serializes
// access to it. Call Stop when done with the buffer.
func NewSynced[T any, S Storage[T]](store S) *Synced[T, S] {
	s := &Synced[T, S]{
		wb:      New[T](store),
		addChan: make(chan T),
		doChan:  make(chan doRequest[T, S]),
		done:    make(chan struct{}),
	}

	go s.run()

	return s
}

// Push adds an item to the buffer. This operation is thread-safe.
func (s *Synced[T, S]) Push(item T) {
	s.addChan <- item
}

// Do runs fn with exclusive access to the underlying buffer. fn must not
// retain the buffer or call methods on s. Values pushed directly on the
// buffer inside fn skip Cleanup when evicted.
func (s *Synced[T, S]) Do(fn func(*WheelBuffer[T, S])) {
	req := doRequest[T, S]{fn: fn, done: make(chan struct{})}
	s.doChan <- req
	<-req.done
}

// Len returns the number of readable entries.
func (s *Synced[T, S]) Len() int {
	var n int
	s.Do(func(wb *WheelBuffer[T, S]) { n = wb.Len() })
	return n
}

// Slice returns a snapshot of the entries ordered from oldest to newest.
func (s *Synced[T, S]) Slice() []T {
	var items []T
	s.Do(func(wb *WheelBuffer[T, S]) { items = wb.Slice() })
	return items
}

// Stop shuts down the background goroutine and calls Cleanup() on the
// remaining entries that implement Cleanable. The Synced must not be used
// afterwards.
func (s *Synced[T, S]) Stop() {
	close(s.done)
}

// run is the core loop that serializes access to the buffer.
func (s *Synced[T, S]) run() {
	wb := s.wb
	for {
		select {
		case item := <-s.addChan:
			if wb.size > 0 && wb.IsFull() {
				// The slot at pos holds the oldest pushed value.
				cleanup(wb.store.Get(wb.pos))
			}
			wb.Push(item)

		case req := <-s.doChan:
			req.fn(wb)
			close(req.done)

		case <-s.done:
			for v := range wb.All() {
				cleanup(v)
			}
			return
		}
	}
}

func cleanup[T any](v T) {
	if c, ok := any(v).(Cleanable); ok {
		c.Cleanup()
	}
}
