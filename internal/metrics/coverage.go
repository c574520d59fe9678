package metrics

// Coverage is the fraction of pixels that are not pure black.
type Coverage struct {
	lit     int
	samples int
}

func NewCoverage() *Coverage {
	return &Coverage{}
}

func (c *Coverage) Name() string {
	return "coverage"
}

func (c *Coverage) Observe(col, row int, r, g, b uint8) {
	c.samples++
	if r|g|b != 0 {
		c.lit++
	}
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.lit) / float64(c.samples)
}

func (c *Coverage) Reset() {
	c.lit = 0
	c.samples = 0
}
