package metrics

// Hot counts near-white pixels, i.e. stream heads after desaturation and
// glow, where every channel reaches the threshold.
type Hot struct {
	threshold uint8
	count     int
}

func NewHot(threshold uint8) *Hot {
	return &Hot{threshold: threshold}
}

func (h *Hot) Name() string {
	return "hot"
}

func (h *Hot) Observe(col, row int, r, g, b uint8) {
	if r >= h.threshold && g >= h.threshold && b >= h.threshold {
		h.count++
	}
}

func (h *Hot) Value() float64 {
	return float64(h.count)
}

func (h *Hot) Reset() {
	h.count = 0
}
