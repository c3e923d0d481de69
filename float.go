package riemann

import (
	"math"
	"strconv"
)

const (
	hypotThreshold    = 1e8  // below this, x² + y² cannot overflow
	logHypotThreshold = 3000 // below this, a² + b² is computed directly
)

// hypot returns sqrt(x² + y²), avoiding overflow for large operands.
func hypot(x, y float64) float64 {
	x = math.Abs(x)
	y = math.Abs(y)
	if x < y {
		x, y = y, x
	}
	if x < hypotThreshold {
		return math.Sqrt(x*x + y*y)
	}
	y /= x
	return x * math.Sqrt(1+y*y)
}

// logHypot returns log(sqrt(a² + b²)) without computing the square root
// and without overflowing the intermediate sum of squares.
func logHypot(a, b float64) float64 {
	absa := math.Abs(a)
	absb := math.Abs(b)
	switch {
	case a == 0:
		return math.Log(absb)
	case b == 0:
		return math.Log(absa)
	case absa < logHypotThreshold && absb < logHypotThreshold:
		return math.Log(a*a+b*b) * 0.5
	}
	a *= 0.5
	b *= 0.5
	return 0.5*math.Log(a*a+b*b) + math.Ln2
}

// cosm1 returns cos(x) - 1.
// For |x| <= π/4 it evaluates the Taylor series in Horner form, which avoids
// the cancellation of cos(x) - 1 near zero.
func cosm1(x float64) float64 {
	const b = math.Pi / 4
	if x < -b || x > b {
		return math.Cos(x) - 1
	}
	xx := x * x
	return xx * (xx*(xx*(xx*(xx*(xx*(xx*(xx/20922789888000-
		1.0/87178291200)+
		1.0/479001600)-
		1.0/3628800)+
		1.0/40320)-
		1.0/720)+
		1.0/24) -
		0.5)
}

// infRecip returns the components of 1/(a + bi) for a divisor whose squared
// magnitude underflowed to zero: every nonzero component becomes a signed
// infinity, zero components stay zero.
func infRecip(a, b float64) Complex {
	var re, im float64
	if a != 0 {
		re = math.Inf(sgn(a))
	}
	if b != 0 {
		im = math.Inf(-sgn(b))
	}
	return Complex{re: re, im: im}
}

// recip returns 1/(a + bi) for use by the reciprocal inverse functions.
func recip(a, b float64) Complex {
	d := a*a + b*b
	if d == 0 {
		return infRecip(a, b)
	}
	return Complex{re: a / d, im: -b / d}
}

func sgn(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

// isFinite reports whether x is neither an infinity nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// isIntegral reports whether x has no fractional part.
func isIntegral(x float64) bool {
	return isFinite(x) && x == math.Trunc(x)
}

// appendFloat appends the shortest decimal representation of a finite x
// that parses back to the same float64.
// Fixed notation is used when 1e-7 <= |x| < 1e21, and exponential notation
// otherwise, for example 1.5e-7 and 1e+21.
// Negative zero is rendered as 0.
func appendFloat(buf []byte, x float64) []byte {
	if x == 0 {
		return append(buf, '0')
	}
	if x < 0 {
		buf = append(buf, '-')
		x = -x
	}

	// Digits and exponent
	var tmp [32]byte
	s := strconv.AppendFloat(tmp[:0], x, 'e', -1, 64)
	digs := make([]byte, 0, 17)
	pos := 0
	for ; pos < len(s) && s[pos] != 'e'; pos++ {
		if s[pos] != '.' {
			digs = append(digs, s[pos])
		}
	}
	exp, _ := strconv.Atoi(string(s[pos+1:]))
	k := len(digs)
	n := exp + 1 // position of the decimal point relative to digs

	switch {
	case k <= n && n <= 21:
		// Integer
		buf = append(buf, digs...)
		for i := k; i < n; i++ {
			buf = append(buf, '0')
		}
	case 0 < n && n <= 21:
		// Decimal point inside the digits
		buf = append(buf, digs[:n]...)
		buf = append(buf, '.')
		buf = append(buf, digs[n:]...)
	case -6 < n && n <= 0:
		// Leading zeros
		buf = append(buf, '0', '.')
		for i := n; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digs...)
	default:
		// Exponential notation
		buf = append(buf, digs[0])
		if k > 1 {
			buf = append(buf, '.')
			buf = append(buf, digs[1:]...)
		}
		buf = append(buf, 'e')
		if n-1 >= 0 {
			buf = append(buf, '+')
		}
		buf = strconv.AppendInt(buf, int64(n-1), 10)
	}
	return buf
}
