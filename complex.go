package riemann

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
)

// Complex type is a representation of a point on the extended complex plane.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A complex type is a struct with two parameters:
//
//   - Re: a float64 holding the real part.
//   - Im: a float64 holding the imaginary part.
//
// Values with an infinite component represent the single point at infinity,
// regardless of which component is infinite or of its sign.
// Values with a NaN component represent NaN.
type Complex struct {
	re float64 // the real part
	im float64 // the imaginary part
}

// Epsilon is the tolerance used by [Complex.Equal] and by [Complex.String]
// to snap components close to zero.
const Epsilon = 1e-15

var (
	Zero = Complex{re: 0, im: 0}                     // Zero represents 0.
	One  = Complex{re: 1, im: 0}                     // One represents 1.
	I    = Complex{re: 0, im: 1}                     // I represents the imaginary unit.
	Pi   = Complex{re: math.Pi, im: 0}               // Pi represents π.
	E    = Complex{re: math.E, im: 0}                // E represents e.
	Inf  = Complex{re: math.Inf(1), im: math.Inf(1)} // Inf represents the point at infinity.
	NaN  = Complex{re: math.NaN(), im: math.NaN()}   // NaN represents an undefined value.
)

var (
	// ErrInvalidParam is returned when an input cannot be normalized into
	// a complex number.
	ErrInvalidParam = errors.New("Invalid Param")
	errScanType     = errors.New("unsupported type")
)

// New returns a complex number equal to re + im·i.
// Infinite and NaN components are stored as given.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// NewFromFloat64 returns a complex number with real part f and imaginary part 0.
func NewFromFloat64(f float64) Complex {
	return Complex{re: f, im: 0}
}

// NewFromComplex128 converts a built-in complex128 value.
func NewFromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// NewFromPolar returns a complex number with magnitude abs and angle arg
// (in radians).
// If abs is not finite and arg is finite, the result is [Inf].
// If both are not finite, the result is NaN, since the cosine and sine of
// a non-finite angle are NaN.
func NewFromPolar(abs, arg float64) Complex {
	if !isFinite(abs) && isFinite(arg) {
		return Inf
	}
	return Complex{re: abs * math.Cos(arg), im: abs * math.Sin(arg)}
}

// Re returns the real part of z.
func (z Complex) Re() float64 {
	return z.re
}

// Im returns the imaginary part of z.
func (z Complex) Im() float64 {
	return z.im
}

// Complex128 returns z as a built-in complex128 value.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// Vector returns the real and imaginary parts of z.
func (z Complex) Vector() [2]float64 {
	return [2]float64{z.re, z.im}
}

// Float64 returns the real part of z.
// The second result is false if the imaginary part of z is not zero.
func (z Complex) Float64() (float64, bool) {
	if z.im == 0 {
		return z.re, true
	}
	return 0, false
}

// Clone returns a copy of z.
func (z Complex) Clone() Complex {
	return Complex{re: z.re, im: z.im}
}

// IsNaN returns true if any component of z is NaN.
func (z Complex) IsNaN() bool {
	return math.IsNaN(z.re) || math.IsNaN(z.im)
}

// IsZero returns true if z == 0.
// The sign of zero components is ignored.
func (z Complex) IsZero() bool {
	return z.re == 0 && z.im == 0
}

// IsFinite returns true if both components of z are finite.
func (z Complex) IsFinite() bool {
	return isFinite(z.re) && isFinite(z.im)
}

// IsInf returns true if z is the point at infinity, that is,
// z is neither finite nor NaN.
func (z Complex) IsInf() bool {
	return !z.IsFinite() && !z.IsNaN()
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a complex number.
// Components with an absolute value less than [Epsilon] are rendered as 0.
// The returned string has one of the following forms:
//
//	NaN
//	Infinity
//	-1.5
//	2i
//	-i
//	3 + 4i
//	1 - i
//
// Components are rendered with the shortest representation that parses back
// to the same float64, using exponential notation only for absolute values
// less than 1e-7 or greater than or equal to 1e21.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (z Complex) String() string {
	return string(z.append(make([]byte, 0, 48)))
}

func (z Complex) append(buf []byte) []byte {
	switch {
	case z.IsNaN():
		return append(buf, "NaN"...)
	case z.IsInf():
		return append(buf, "Infinity"...)
	}

	a, b := z.re, z.im
	if math.Abs(a) < Epsilon {
		a = 0
	}
	if math.Abs(b) < Epsilon {
		b = 0
	}

	// Real
	if b == 0 {
		return appendFloat(buf, a)
	}

	// Real part and sign
	if a != 0 {
		buf = appendFloat(buf, a)
		if b < 0 {
			b = -b
			buf = append(buf, " - "...)
		} else {
			buf = append(buf, " + "...)
		}
	} else if b < 0 {
		b = -b
		buf = append(buf, '-')
	}

	// Imaginary part
	if b != 1 {
		buf = appendFloat(buf, b)
	}
	return append(buf, 'i')
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (z *Complex) UnmarshalText(text []byte) error {
	var err error
	*z, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Complex.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (z Complex) MarshalText() ([]byte, error) {
	return z.append(make([]byte, 0, 48)), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte, float64, and int64 values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (z *Complex) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*z, err = Parse(value)
	case []byte:
		*z, err = Parse(string(value))
	case float64:
		*z = NewFromFloat64(value)
	case int64:
		*z = NewFromFloat64(float64(value))
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, Complex{}, errScanType)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// It returns the string form of z.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (z Complex) Value() (driver.Value, error) {
	return z.String(), nil
}

// NullComplex represents a complex number that can be null.
// Its zero value is null.
// NullComplex is not thread-safe.
type NullComplex struct {
	Complex Complex
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Complex.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullComplex) Scan(value any) error {
	if value == nil {
		n.Complex = Complex{}
		n.Valid = false
		return nil
	}
	err := n.Complex.Scan(value)
	if err != nil {
		n.Complex = Complex{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Complex.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullComplex) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Complex.Value()
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 3 + 4i
//	%q:    "3 + 4i"
//
// Width is supported with all verbs, and the '-' flag pads on the right.
// Precision is ignored.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (z Complex) Format(state fmt.State, verb rune) {
	body := z.append(make([]byte, 0, 48))

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + len(body) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		if state.Flag('-') {
			tspaces = w - width
		} else {
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(riemann.Complex="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Equal returns true if both components of z and w differ by no more
// than [Epsilon].
// Since ∞ - ∞ is NaN, [Inf] is not equal to itself.
func (z Complex) Equal(w Complex) bool {
	return math.Abs(w.re-z.re) <= Epsilon &&
		math.Abs(w.im-z.im) <= Epsilon
}

// Abs returns the magnitude of z.
func (z Complex) Abs() float64 {
	return hypot(z.re, z.im)
}

// Arg returns the angle of z in radians, in the range [-π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.im, z.re)
}

// Sign returns z divided by its magnitude.
// The sign of 0 is NaN.
func (z Complex) Sign() Complex {
	abs := hypot(z.re, z.im)
	return Complex{re: z.re / abs, im: z.im / abs}
}

// Neg returns z with opposite sign.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Inv returns the reciprocal 1 / z.
// The reciprocal of 0 is [Inf], and the reciprocal of [Inf] is 0.
func (z Complex) Inv() Complex {
	switch {
	case z.IsZero():
		return Inf
	case z.IsInf():
		return Zero
	}
	d := z.re*z.re + z.im*z.im
	return Complex{re: z.re / d, im: -z.im / d}
}

// Ceil returns z with both components rounded up to the specified number
// of digits after the decimal point.
// Negative places round to the left of the decimal point.
// Also see method [Complex.Floor].
func (z Complex) Ceil(places int) Complex {
	return z.roundWith(places, math.Ceil)
}

// Floor returns z with both components rounded down to the specified number
// of digits after the decimal point.
// Also see method [Complex.Ceil].
func (z Complex) Floor(places int) Complex {
	return z.roundWith(places, math.Floor)
}

// Round returns z with both components rounded to the specified number
// of digits after the decimal point.
// Halfway cases are rounded away from zero.
func (z Complex) Round(places int) Complex {
	return z.roundWith(places, math.Round)
}

func (z Complex) roundWith(places int, round func(float64) float64) Complex {
	p := math.Pow(10, float64(places))
	return Complex{re: round(z.re*p) / p, im: round(z.im*p) / p}
}

// Add returns the sum z + w.
// The sum of [Inf] and [Inf] is NaN, and the sum of [Inf] and
// any other number is [Inf].
func (z Complex) Add(w Complex) Complex {
	zinf, winf := z.IsInf(), w.IsInf()
	switch {
	case zinf && winf:
		return NaN
	case zinf || winf:
		return Inf
	}
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns the difference z - w.
// The difference of [Inf] and [Inf] is NaN, and the difference of [Inf] and
// any other number is [Inf].
func (z Complex) Sub(w Complex) Complex {
	zinf, winf := z.IsInf(), w.IsInf()
	switch {
	case zinf && winf:
		return NaN
	case zinf || winf:
		return Inf
	}
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns the product z * w.
// The product of [Inf] and 0 is NaN, and the product of [Inf] and
// any nonzero number, NaN included, is [Inf].
func (z Complex) Mul(w Complex) Complex {
	zinf, winf := z.IsInf(), w.IsInf()
	switch {
	case zinf && w.IsZero(), winf && z.IsZero():
		return NaN
	case zinf || winf:
		return Inf
	case z.im == 0 && w.im == 0:
		return Complex{re: z.re * w.re, im: 0}
	}
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Quo returns the quotient z / w.
//
//	0 / 0 = NaN
//	∞ / ∞ = NaN
//	z / 0 = ∞
//	∞ / w = ∞
//	0 / w = 0
//	z / ∞ = 0
//
// The rules are applied in this order, so NaN / 0 is [Inf]
// and 0 / NaN is 0.
//
// Finite quotients are computed with Smith's algorithm, which keeps
// intermediate ratios within [-1, 1].
func (z Complex) Quo(w Complex) Complex {
	zinf, winf := z.IsInf(), w.IsInf()
	zzero, wzero := z.IsZero(), w.IsZero()
	switch {
	case zzero && wzero, zinf && winf:
		return NaN
	case wzero || zinf:
		return Inf
	case zzero || winf:
		return Zero
	case w.im == 0:
		return Complex{re: z.re / w.re, im: z.im / w.re}
	}
	if math.Abs(w.re) < math.Abs(w.im) {
		x := w.re / w.im
		t := w.re*x + w.im
		return Complex{re: (z.re*x + z.im) / t, im: (z.im*x - z.re) / t}
	}
	x := w.im / w.re
	t := w.im*x + w.re
	return Complex{re: (z.re + z.im*x) / t, im: (z.im - z.re*x) / t}
}

// Pow returns z raised to the power of w, using the principal branch
// of the logarithm.
//
// Special cases are:
//
//	z^0 = 1
//	0^w = 0, if w is real and positive
//
// Real powers of positive real numbers and integer powers of imaginary
// numbers are computed exactly in real arithmetic.
func (z Complex) Pow(w Complex) Complex {
	if w.IsZero() {
		return One
	}

	// Real exponent
	if w.im == 0 {
		switch {
		case z.im == 0 && z.re > 0:
			return Complex{re: math.Pow(z.re, w.re), im: 0}
		case z.re == 0 && isIntegral(w.re):
			p := math.Pow(z.im, w.re)
			switch math.Mod(math.Mod(w.re, 4)+4, 4) {
			case 0:
				return Complex{re: p, im: 0}
			case 1:
				return Complex{re: 0, im: p}
			case 2:
				return Complex{re: -p, im: 0}
			case 3:
				return Complex{re: 0, im: -p}
			}
		}
	}

	if z.IsZero() && w.re > 0 {
		return Zero
	}

	// z^w = exp(w·log z)
	arg := math.Atan2(z.im, z.re)
	loh := logHypot(z.re, z.im)
	re := math.Exp(w.re*loh - w.im*arg)
	im := w.im*loh + w.re*arg
	return Complex{re: re * math.Cos(im), im: re * math.Sin(im)}
}

// Sqrt returns the principal square root of z.
// The real part of the result is non-negative.
func (z Complex) Sqrt() Complex {
	a, b := z.re, z.im

	// Real
	if b == 0 {
		if a >= 0 {
			return Complex{re: math.Sqrt(a), im: 0}
		}
		return Complex{re: 0, im: math.Sqrt(-a)}
	}

	// sqrt(2x) / 2 = sqrt(x / 2)
	r := hypot(a, b)
	re := math.Sqrt(0.5 * (r + math.Abs(a)))
	im := math.Abs(b) / (2 * re)
	if a < 0 {
		re, im = im, re
	}
	if b < 0 {
		im = -im
	}
	return Complex{re: re, im: im}
}

// Exp returns e raised to the power of z.
func (z Complex) Exp() Complex {
	er := math.Exp(z.re)
	if z.im == 0 {
		return Complex{re: er, im: 0}
	}
	return Complex{re: er * math.Cos(z.im), im: er * math.Sin(z.im)}
}

// Expm1 returns exp(z) - 1.
// It is more accurate than z.Exp().Sub(One) when z is close to 0.
func (z Complex) Expm1() Complex {
	// exp(a + bi) - 1 = expm1(a)·cos(b) + cosm1(b) + i·exp(a)·sin(b)
	a, b := z.re, z.im
	return Complex{
		re: math.Expm1(a)*math.Cos(b) + cosm1(b),
		im: math.Exp(a) * math.Sin(b),
	}
}

// Log returns the principal natural logarithm of z.
// The imaginary part of the result is in the range [-π, π].
func (z Complex) Log() Complex {
	a, b := z.re, z.im
	if b == 0 && a > 0 {
		return Complex{re: math.Log(a), im: 0}
	}
	return Complex{re: logHypot(a, b), im: math.Atan2(b, a)}
}
