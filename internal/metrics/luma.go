package metrics

// Luma is the mean Rec. 601 luma of the frame in [0,1].
type Luma struct {
	sum     float64
	samples int
}

func NewLuma() *Luma {
	return &Luma{}
}

func (l *Luma) Name() string {
	return "luma"
}

func (l *Luma) Observe(col, row int, r, g, b uint8) {
	l.samples++
	l.sum += (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

func (l *Luma) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.sum / float64(l.samples)
}

func (l *Luma) Reset() {
	l.sum = 0
	l.samples = 0
}
