package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = math.Pow(x, float64(p))
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// Minmod returns the argument of smallest magnitude when all share a sign, else zero
func Minmod(a ...float64) (r float64) {
	if len(a) == 0 {
		return
	}
	r = a[0]
	for _, v := range a[1:] {
		switch {
		case r > 0 && v > 0:
			r = math.Min(r, v)
		case r < 0 && v < 0:
			r = math.Max(r, v)
		default:
			return 0
		}
	}
	return
}
