package worm

// Ring is a fixed-capacity sequence that scrolls by dropping its oldest element
// whenever a new one is pushed. Indexing is logical: At(0) is the oldest element
// and At(Len()-1) the newest, regardless of where the physical head sits.
type Ring[T any] struct {
	buf  []T
	head int // physical index of the oldest element
}

// NewRing returns a ring of length n with every slot set to fill.
func NewRing[T any](n int, fill T) Ring[T] {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = fill
	}
	return Ring[T]{buf: buf}
}

// Len returns the fixed length of the ring.
func (r *Ring[T]) Len() int {
	return len(r.buf)
}

// At returns the i-th element counting from the oldest.
func (r *Ring[T]) At(i int) T {
	return r.buf[(r.head+i)%len(r.buf)]
}

// Last returns the newest element.
func (r *Ring[T]) Last() T {
	return r.At(len(r.buf) - 1)
}

// Push appends v as the newest element and drops the oldest one.
func (r *Ring[T]) Push(v T) {
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
}

// Values returns a copy of the elements ordered from oldest to newest.
func (r *Ring[T]) Values() []T {
	out := make([]T, len(r.buf))
	n := copy(out, r.buf[r.head:])
	copy(out[n:], r.buf[:r.head])
	return out
}
