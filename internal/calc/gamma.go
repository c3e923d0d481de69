package calc

import (
	"math"

	"github.com/govalues/riemann"
)

// lanczos holds the coefficients of the Lanczos approximation with g = 7 and n = 9.
var lanczos = [...]riemann.Complex{
	riemann.NewFromFloat64(0.99999999999980993),
	riemann.NewFromFloat64(676.5203681218851),
	riemann.NewFromFloat64(-1259.1392167224028),
	riemann.NewFromFloat64(771.32342877765313),
	riemann.NewFromFloat64(-176.61502916214059),
	riemann.NewFromFloat64(12.507343278686905),
	riemann.NewFromFloat64(-0.13857109526572012),
	riemann.NewFromFloat64(9.9843695780195716e-6),
	riemann.NewFromFloat64(1.5056327351493116e-7),
}

var (
	half    = riemann.NewFromFloat64(0.5)
	sqrt2Pi = riemann.NewFromFloat64(math.Sqrt(2 * math.Pi))
)

// Gamma returns the gamma function of z using the [Lanczos approximation].
// For Re(z) < 0.5 the reflection formula Γ(z)·Γ(1 - z) = π / sin(πz) is used.
// Gamma returns [riemann.Inf] at the poles 0, -1, -2, ...
//
// [Lanczos approximation]: https://en.wikipedia.org/wiki/Lanczos_approximation
func Gamma(z riemann.Complex) riemann.Complex {
	if z.Re() < 0.5 {
		if z.Im() == 0 && z.Re() == math.Trunc(z.Re()) {
			return riemann.Inf
		}
		s := riemann.Pi.Mul(z).Sin()
		return riemann.Pi.Quo(s.Mul(Gamma(riemann.One.Sub(z))))
	}

	z = z.Sub(riemann.One)
	x := lanczos[0]
	t := z.Add(riemann.NewFromFloat64(7.5))
	for i := 1; i < len(lanczos); i++ {
		x = x.Add(lanczos[i].Quo(z.Add(riemann.NewFromFloat64(float64(i)))))
	}
	return sqrt2Pi.Mul(t.Pow(z.Add(half))).Mul(t.Neg().Exp()).Mul(x)
}
