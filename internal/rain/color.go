package rain

// HSV converts hue, saturation and value in [0,1] to 8-bit RGB using the
// six-sector formula. Hue is wrapped into [0,1); channels are truncated.
func HSV(h, s, v float64) (r, g, b uint8) {
	h = wrap(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var c [3]float64
	switch i % 6 {
	case 0:
		c = [3]float64{v, t, p}
	case 1:
		c = [3]float64{q, v, p}
	case 2:
		c = [3]float64{p, v, t}
	case 3:
		c = [3]float64{p, q, v}
	case 4:
		c = [3]float64{t, p, v}
	default:
		c = [3]float64{v, p, q}
	}
	return channel(c[0]), channel(c[1]), channel(c[2])
}

func channel(x float64) uint8 {
	n := int(x * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func addClamp(c uint8, glow int) uint8 {
	n := int(c) + glow
	if n > 255 {
		return 255
	}
	return uint8(n)
}
