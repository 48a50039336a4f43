package monitor

// DefaultHistorySize is the default number of samples to retain.
const DefaultHistorySize = 120

// History is a capacity-bounded, insertion-ordered sequence of samples
// backed by a fixed ring buffer. Insertion order is chronological order and
// eviction is strict FIFO. It is owned exclusively by the tick loop; there
// are no concurrent writers, so no locking is done here.
type History struct {
	data  []Sample
	head  int
	count int
	size  int
}

// NewHistory creates a history buffer with the given capacity.
// Non-positive capacities fall back to DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		data: make([]Sample, capacity),
		size: capacity,
	}
}

// Push appends a sample at the tail. Once the buffer is full the oldest
// sample is overwritten.
func (h *History) Push(s Sample) {
	h.data[h.head] = s
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Window returns the most recent min(n, Len()) samples in chronological
// order (oldest first). The returned slice is a copy; stored samples are
// never mutated.
func (h *History) Window(n int) []Sample {
	if n <= 0 || h.count == 0 {
		return nil
	}
	if n > h.count {
		n = h.count
	}

	result := make([]Sample, n)

	// head points at the next write position, so the newest sample lives
	// at head-1 and the window starts n positions before it.
	start := (h.head - n + h.size) % h.size
	for i := 0; i < n; i++ {
		result[i] = h.data[(start+i)%h.size]
	}
	return result
}

// All returns every retained sample in chronological order.
func (h *History) All() []Sample {
	return h.Window(h.count)
}

// RxWindow returns the download rates of the most recent n samples.
func (h *History) RxWindow(n int) []float64 {
	window := h.Window(n)
	rates := make([]float64, len(window))
	for i, s := range window {
		rates[i] = s.RxRate
	}
	return rates
}

// TxWindow returns the upload rates of the most recent n samples.
func (h *History) TxWindow(n int) []float64 {
	window := h.Window(n)
	rates := make([]float64, len(window))
	for i, s := range window {
		rates[i] = s.TxRate
	}
	return rates
}

// Len returns the number of retained samples. Always <= Capacity.
func (h *History) Len() int {
	return h.count
}

// Capacity returns the maximum number of retained samples.
func (h *History) Capacity() int {
	return h.size
}

// Clear drops all retained samples.
func (h *History) Clear() {
	h.head = 0
	h.count = 0
}
