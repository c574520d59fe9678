package rain

import (
	"math"
	"math/big"
	"sync"
)

const (
	// enough bits to reduce any finite float64 exactly modulo pi/2
	reducePrec = 1536
	seriesPrec = 256
)

var (
	piOnce    sync.Once
	halfPi    *big.Float
	twoOverPi *big.Float
)

func initPi() {
	prec := uint(reducePrec + 64)

	// Machin: pi = 16*atan(1/5) - 4*atan(1/239)
	a := arctanInv(5, prec)
	a.Mul(a, big.NewFloat(16))
	b := arctanInv(239, prec)
	b.Mul(b, big.NewFloat(4))
	pi := new(big.Float).SetPrec(prec).Sub(a, b)

	halfPi = new(big.Float).SetPrec(prec).Quo(pi, big.NewFloat(2))
	twoOverPi = new(big.Float).SetPrec(prec).Quo(big.NewFloat(2), pi)
}

func arctanInv(n int64, prec uint) *big.Float {
	eps := new(big.Float).SetMantExp(big.NewFloat(1), -int(prec)-8)

	x := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), new(big.Float).SetInt64(n))
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).Set(x)
	sum := new(big.Float).SetPrec(prec)
	q := new(big.Float).SetPrec(prec)

	for k := int64(0); ; k++ {
		q.Quo(term, new(big.Float).SetInt64(2*k+1))
		if q.Cmp(eps) < 0 {
			break
		}
		if k%2 == 0 {
			sum.Add(sum, q)
		} else {
			sum.Sub(sum, q)
		}
		term.Mul(term, x2)
	}
	return sum
}

// taylor sums the sine (odd) or cosine series of r at r's precision.
func taylor(r *big.Float, odd bool) *big.Float {
	prec := r.Prec()
	eps := new(big.Float).SetMantExp(big.NewFloat(1), -int(prec)-16)

	r2 := new(big.Float).SetPrec(prec).Mul(r, r)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	n := int64(0)
	if odd {
		term.Set(r)
		n = 1
	}

	sum := new(big.Float).SetPrec(prec)
	abs := new(big.Float).SetPrec(prec)
	for i := 0; ; i++ {
		if abs.Abs(term).Cmp(eps) < 0 {
			break
		}
		if i%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		term.Mul(term, r2)
		term.Quo(term, new(big.Float).SetInt64((n+1)*(n+2)))
		n += 2
	}
	return sum
}

// Sin returns sin(x) correctly rounded to float64. math.Sin can be one ulp
// off, and Hash scales that error into shifted stream heads.
func Sin(x float64) float64 {
	if x == 0 {
		return x
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	piOnce.Do(initPi)

	bx := new(big.Float).SetPrec(reducePrec).SetFloat64(x)

	t := new(big.Float).SetPrec(reducePrec).Mul(bx, twoOverPi)
	if t.Sign() < 0 {
		t.Sub(t, big.NewFloat(0.5))
	} else {
		t.Add(t, big.NewFloat(0.5))
	}
	k, _ := t.Int(nil)

	r := new(big.Float).SetPrec(reducePrec).SetInt(k)
	r.Mul(r, halfPi)
	r.Sub(bx, r)
	r.SetPrec(seriesPrec)

	var v *big.Float
	switch new(big.Int).And(k, big.NewInt(3)).Int64() {
	case 0:
		v = taylor(r, true)
	case 1:
		v = taylor(r, false)
	case 2:
		v = taylor(r, true)
		v.Neg(v)
	default:
		v = taylor(r, false)
		v.Neg(v)
	}

	f, _ := v.Float64()
	return f
}
