package riemann

import "math"

// Sin returns the sine of z.
func (z Complex) Sin() Complex {
	// sin(a + bi) = sin(a)·cosh(b) + i·cos(a)·sinh(b)
	a, b := z.re, z.im
	return Complex{re: math.Sin(a) * math.Cosh(b), im: math.Cos(a) * math.Sinh(b)}
}

// Cos returns the cosine of z.
func (z Complex) Cos() Complex {
	// cos(a + bi) = cos(a)·cosh(b) - i·sin(a)·sinh(b)
	a, b := z.re, z.im
	return Complex{re: math.Cos(a) * math.Cosh(b), im: -math.Sin(a) * math.Sinh(b)}
}

// Tan returns the tangent of z.
func (z Complex) Tan() Complex {
	// tan(a + bi) = (sin(2a) + i·sinh(2b)) / (cos(2a) + cosh(2b))
	a, b := 2*z.re, 2*z.im
	d := math.Cos(a) + math.Cosh(b)
	return Complex{re: math.Sin(a) / d, im: math.Sinh(b) / d}
}

// Cot returns the cotangent of z.
func (z Complex) Cot() Complex {
	a, b := 2*z.re, 2*z.im
	d := math.Cos(a) - math.Cosh(b)
	return Complex{re: -math.Sin(a) / d, im: math.Sinh(b) / d}
}

// Sec returns the secant of z.
func (z Complex) Sec() Complex {
	a, b := z.re, z.im
	d := 0.5*math.Cosh(2*b) + 0.5*math.Cos(2*a)
	return Complex{re: math.Cos(a) * math.Cosh(b) / d, im: math.Sin(a) * math.Sinh(b) / d}
}

// Csc returns the cosecant of z.
func (z Complex) Csc() Complex {
	a, b := z.re, z.im
	d := 0.5*math.Cosh(2*b) - 0.5*math.Cos(2*a)
	return Complex{re: math.Sin(a) * math.Cosh(b) / d, im: -math.Cos(a) * math.Sinh(b) / d}
}

// Asin returns the principal arcsine of z.
func (z Complex) Asin() Complex {
	// asin(z) = -i·log(iz + sqrt(1 - z²))
	a, b := z.re, z.im
	t1 := Complex{re: b*b - a*a + 1, im: -2 * a * b}.Sqrt()
	t2 := Complex{re: t1.re - b, im: t1.im + a}.Log()
	return Complex{re: t2.im, im: -t2.re}
}

// Acos returns the principal arccosine of z.
func (z Complex) Acos() Complex {
	// acos(z) = π/2 - asin(z)
	a, b := z.re, z.im
	t1 := Complex{re: b*b - a*a + 1, im: -2 * a * b}.Sqrt()
	t2 := Complex{re: t1.re - b, im: t1.im + a}.Log()
	return Complex{re: math.Pi/2 - t2.im, im: t2.re}
}

// Atan returns the principal arctangent of z.
// The arctangent of i and -i is i∞ and -i∞ respectively.
func (z Complex) Atan() Complex {
	// atan(z) = i/2·log((i + z) / (i - z))
	a, b := z.re, z.im
	if a == 0 {
		switch b {
		case 1:
			return Complex{re: 0, im: math.Inf(1)}
		case -1:
			return Complex{re: 0, im: math.Inf(-1)}
		}
	}
	d := a*a + (1-b)*(1-b)
	t1 := Complex{re: (1 - b*b - a*a) / d, im: -2 * a / d}.Log()
	return Complex{re: -0.5 * t1.im, im: 0.5 * t1.re}
}

// Acot returns the principal arccotangent of z.
func (z Complex) Acot() Complex {
	// acot(z) = atan(1/z)
	if z.im == 0 {
		return Complex{re: math.Atan2(1, z.re), im: 0}
	}
	return recip(z.re, z.im).Atan()
}

// Asec returns the principal arcsecant of z.
func (z Complex) Asec() Complex {
	// asec(z) = acos(1/z)
	if z.IsZero() {
		return Complex{re: 0, im: math.Inf(1)}
	}
	return recip(z.re, z.im).Acos()
}

// Acsc returns the principal arccosecant of z.
func (z Complex) Acsc() Complex {
	// acsc(z) = asin(1/z)
	if z.IsZero() {
		return Complex{re: math.Pi / 2, im: math.Inf(1)}
	}
	return recip(z.re, z.im).Asin()
}

// Sinh returns the hyperbolic sine of z.
func (z Complex) Sinh() Complex {
	a, b := z.re, z.im
	return Complex{re: math.Sinh(a) * math.Cos(b), im: math.Cosh(a) * math.Sin(b)}
}

// Cosh returns the hyperbolic cosine of z.
func (z Complex) Cosh() Complex {
	a, b := z.re, z.im
	return Complex{re: math.Cosh(a) * math.Cos(b), im: math.Sinh(a) * math.Sin(b)}
}

// Tanh returns the hyperbolic tangent of z.
func (z Complex) Tanh() Complex {
	a, b := 2*z.re, 2*z.im
	d := math.Cosh(a) + math.Cos(b)
	return Complex{re: math.Sinh(a) / d, im: math.Sin(b) / d}
}

// Coth returns the hyperbolic cotangent of z.
func (z Complex) Coth() Complex {
	a, b := 2*z.re, 2*z.im
	d := math.Cosh(a) - math.Cos(b)
	return Complex{re: math.Sinh(a) / d, im: -math.Sin(b) / d}
}

// Csch returns the hyperbolic cosecant of z.
func (z Complex) Csch() Complex {
	a, b := z.re, z.im
	d := math.Cos(2*b) - math.Cosh(2*a)
	return Complex{re: -2 * math.Sinh(a) * math.Cos(b) / d, im: 2 * math.Cosh(a) * math.Sin(b) / d}
}

// Sech returns the hyperbolic secant of z.
func (z Complex) Sech() Complex {
	a, b := z.re, z.im
	d := math.Cos(2*b) + math.Cosh(2*a)
	return Complex{re: 2 * math.Cosh(a) * math.Cos(b) / d, im: -2 * math.Sinh(a) * math.Sin(b) / d}
}

// Asinh returns the principal inverse hyperbolic sine of z.
func (z Complex) Asinh() Complex {
	// asinh(z) = i·asin(-iz)
	w := Complex{re: z.im, im: -z.re}.Asin()
	return Complex{re: -w.im, im: w.re}
}

// Acosh returns the principal inverse hyperbolic cosine of z.
// The real part of the result is non-negative.
func (z Complex) Acosh() Complex {
	// acosh(z) = ±i·acos(z)
	w := z.Acos()
	if w.im <= 0 {
		return Complex{re: -w.im, im: w.re}
	}
	return Complex{re: w.im, im: -w.re}
}

// Atanh returns the principal inverse hyperbolic tangent of z.
func (z Complex) Atanh() Complex {
	// atanh(z) = log((1 + z) / (1 - z)) / 2
	a, b := z.re, z.im
	oneMinus := 1 - a
	onePlus := 1 + a
	d := oneMinus*oneMinus + b*b

	var x Complex
	if d != 0 {
		x = Complex{re: (onePlus*oneMinus - b*b) / d, im: (b*oneMinus + onePlus*b) / d}
	} else {
		// 1 - z underflowed to zero
		x = Complex{re: math.Inf(1), im: 0}
		if b != 0 {
			x.im = math.Inf(sgn(b))
		}
	}

	re := logHypot(x.re, x.im) / 2
	im := math.Atan2(x.im, x.re) / 2
	if a > 1 && b == 0 {
		im = -im
	}
	return Complex{re: re, im: im}
}

// Acoth returns the principal inverse hyperbolic cotangent of z.
func (z Complex) Acoth() Complex {
	// acoth(z) = atanh(1/z)
	if z.IsZero() {
		return Complex{re: 0, im: math.Pi / 2}
	}
	return recip(z.re, z.im).Atanh()
}

// Acsch returns the principal inverse hyperbolic cosecant of z.
func (z Complex) Acsch() Complex {
	// acsch(z) = asinh(1/z)
	a, b := z.re, z.im
	if b == 0 {
		if a == 0 {
			return Complex{re: math.Inf(1), im: 0}
		}
		return Complex{re: math.Asinh(1 / a), im: 0}
	}
	return recip(a, b).Asinh()
}

// Asech returns the principal inverse hyperbolic secant of z.
// The inverse hyperbolic secant of 0 is [Inf].
func (z Complex) Asech() Complex {
	// asech(z) = acosh(1/z)
	if z.IsZero() {
		return Inf
	}
	return recip(z.re, z.im).Acosh()
}
