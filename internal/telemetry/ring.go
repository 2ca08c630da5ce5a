package telemetry

// ringBuffer is a fixed-capacity FIFO buffer. Callers hold the lock.
type ringBuffer[T any] struct {
	buf      []T
	head     int
	size     int
	capacity int
}

func newRingBuffer[T any](capacity int) *ringBuffer[T] {
	if capacity <= 0 {
		capacity = recentQueryCapacity
	}
	return &ringBuffer[T]{
		buf:      make([]T, capacity),
		capacity: capacity,
	}
}

// add appends an item, evicting the oldest when full.
func (b *ringBuffer[T]) add(item T) {
	b.buf[b.head] = item
	b.head = (b.head + 1) % b.capacity
	if b.size < b.capacity {
		b.size++
	}
}

// items returns the contents in FIFO order, oldest first.
func (b *ringBuffer[T]) items() []T {
	out := make([]T, 0, b.size)
	start := b.head - b.size
	if start < 0 {
		start += b.capacity
	}
	for i := 0; i < b.size; i++ {
		out = append(out, b.buf[(start+i)%b.capacity])
	}
	return out
}
