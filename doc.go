/*
Package riemann implements immutable complex numbers on the extended
complex plane, also known as the [Riemann sphere].
The value space consists of all finite complex numbers, a single point
at infinity, and NaN.

# Representation

[Complex] is a struct with two float64 fields:

  - Re: the real part.
  - Im: the imaginary part.

The numerical value of a complex number is Re + Im·i.

A value is classified in the following order:

  - NaN, if any component is NaN.
    See [Complex.IsNaN].
  - Infinity, if any component is infinite and none is NaN.
    All such values represent the same point, regardless of which component
    is infinite and of its sign.
    See [Complex.IsInf].
  - Zero, if both components are 0.
    The sign of zero components is ignored.
    See [Complex.IsZero].
  - Finite and nonzero otherwise.

The package provides the following read-only values:
[Zero], [One], [I], [Pi], [E], [Inf], and [NaN].

# Conversions

The package provides methods for converting complex numbers:

  - from/to string:
    [Parse], [Complex.String], [Complex.Format].
  - from/to float64:
    [New], [NewFromFloat64], [NewFromPolar], [Complex.Re], [Complex.Im],
    [Complex.Abs], [Complex.Arg], [Complex.Float64], [Complex.Vector].
  - from/to complex128:
    [NewFromComplex128], [Complex.Complex128].
  - from any of the shapes [Real], [Cartesian], [Polar], [Vector], and [Text]:
    [From].

The textual notation is tolerant: "4 + 3i", "3i", "-i", "2.2e-1-3.2e-1i",
and "1_000i" are all valid.
Every string produced by [Complex.String] is accepted by [Parse].

# Operations

Each operation returns a new value and never modifies its receiver.

  - arithmetic:
    [Complex.Add], [Complex.Sub], [Complex.Mul], [Complex.Quo],
    [Complex.Inv], [Complex.Neg], [Complex.Conj], [Complex.Sign].
  - powers and logarithms:
    [Complex.Pow], [Complex.Sqrt], [Complex.Exp], [Complex.Expm1], [Complex.Log].
  - trigonometric functions:
    [Complex.Sin], [Complex.Cos], [Complex.Tan], [Complex.Cot],
    [Complex.Sec], [Complex.Csc], and their inverses [Complex.Asin],
    [Complex.Acos], [Complex.Atan], [Complex.Acot], [Complex.Asec], [Complex.Acsc].
  - hyperbolic functions:
    [Complex.Sinh], [Complex.Cosh], [Complex.Tanh], [Complex.Coth],
    [Complex.Csch], [Complex.Sech], and their inverses [Complex.Asinh],
    [Complex.Acosh], [Complex.Atanh], [Complex.Acoth], [Complex.Acsch], [Complex.Asech].
  - rounding:
    [Complex.Round], [Complex.Ceil], [Complex.Floor].

Multivalued functions return the principal branch.

Intermediate results are protected against overflow and cancellation:
magnitudes and logarithms of magnitudes are computed without squaring
large components, division uses Smith's algorithm, and [Complex.Expm1]
evaluates cos(x) - 1 with a Taylor series near zero.

# Infinity and NaN

Arithmetic follows the rules of the Riemann sphere:

	| Operation | Result |
	| --------- | ------ |
	| ∞ + ∞     | NaN    |
	| ∞ - ∞     | NaN    |
	| ∞ · 0     | NaN    |
	| 0 / 0     | NaN    |
	| ∞ / ∞     | NaN    |
	| z + ∞     | ∞      |
	| z · ∞     | ∞      |
	| z / 0     | ∞      |
	| z / ∞     | 0      |
	| 1 / 0     | ∞      |
	| 1 / ∞     | 0      |

The rules are applied in the order of the table, and a NaN operand counts
as neither 0 nor ∞.
So ∞ · NaN and NaN / 0 are ∞, and 0 / NaN is 0.
Otherwise NaN operands produce NaN.

# Comparison

[Complex.Equal] compares components with a tolerance of [Epsilon].
Since ∞ - ∞ is NaN, [Inf] is not equal to itself.

# Errors

All methods are panic-free and pure.
Degenerate results such as 0 / 0 or log(0) are not errors; they produce
[NaN] or [Inf].
The only error is [ErrInvalidParam], returned by [Parse] and [From]
when a string cannot be parsed.

[Riemann sphere]: https://en.wikipedia.org/wiki/Riemann_sphere
*/
package riemann
