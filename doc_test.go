package riemann_test

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/govalues/riemann"
)

func evaluate(input string) (riemann.Complex, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return riemann.Complex{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return riemann.Complex{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return riemann.Complex{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]riemann.Complex, error) {
	stack := make([]riemann.Complex, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "^":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []riemann.Complex, token string) ([]riemann.Complex, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result riemann.Complex
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result = left.Quo(right)
	case "^":
		result = left.Pow(right)
	}
	if result.IsNaN() {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": undefined result", left, token, right)
	}
	return append(stack, result), nil
}

func processOperand(stack []riemann.Complex, token string) ([]riemann.Complex, error) {
	z, err := riemann.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, z), nil
}

// This example implements a simple calculator that evaluates complex
// expressions written in prefix (or Polish) notation.
// Operands must not contain spaces, for example "1-i" or "3i".
func Example_prefixCalculator() {
	z, err := evaluate("* 2+i + 1-i 3i")
	if err != nil {
		panic(err)
	}
	fmt.Println(z)
	_, err = evaluate("/ 0 0")
	fmt.Println(err)
	// Output:
	// 5i
	// processing token "/": evaluating "0 / 0": undefined result
}

func escape(c riemann.Complex, limit int) int {
	z := riemann.Zero
	for n := 1; n <= limit; n++ {
		z = z.Mul(z).Add(c)
		if z.Abs() > 2 {
			return n
		}
	}
	return limit
}

// This example iterates z² + c starting from zero and reports the step at
// which the orbit leaves the disk of radius 2.
// Points of the Mandelbrot set never leave it.
func Example_mandelbrot() {
	for _, s := range []string{"1", "-1", "i", "1 + i", "-2"} {
		c := riemann.MustParse(s)
		fmt.Printf("%-6v %v\n", c, escape(c, 100))
	}
	// Output:
	// 1      3
	// -1     100
	// i      100
	// 1 + i  2
	// -2     100
}

// This example lists the fourth roots of unity.
func Example_rootsOfUnity() {
	n := 4
	for k := 0; k < n; k++ {
		z := riemann.NewFromPolar(1, 2*math.Pi*float64(k)/float64(n))
		fmt.Println(z.Round(6))
	}
	// Output:
	// 1
	// i
	// -1
	// -i
}

// This example evaluates Euler's identity.
func Example_eulerIdentity() {
	z := riemann.I.Mul(riemann.Pi).Exp()
	fmt.Println(z)
	fmt.Println(z.Add(riemann.One))
	// Output:
	// -1
	// 0
}

func ExampleNew() {
	fmt.Println(riemann.New(3, 4))
	fmt.Println(riemann.New(0, -1))
	fmt.Println(riemann.New(math.Inf(-1), 0))
	// Output:
	// 3 + 4i
	// -i
	// Infinity
}

func ExampleNewFromPolar() {
	fmt.Println(riemann.NewFromPolar(2, math.Pi/2).Round(12))
	fmt.Println(riemann.NewFromPolar(math.Inf(1), 1))
	fmt.Println(riemann.NewFromPolar(math.Inf(1), math.Inf(1)))
	// Output:
	// 2i
	// Infinity
	// NaN
}

func ExampleFrom() {
	fmt.Println(riemann.From(nil))
	fmt.Println(riemann.From(riemann.Real(2.5)))
	fmt.Println(riemann.From(riemann.Cartesian{Re: 1, Im: -1}))
	fmt.Println(riemann.From(riemann.Vector{9, 8}))
	fmt.Println(riemann.From(riemann.Text("4 + 3i")))
	// Output:
	// 0 <nil>
	// 2.5 <nil>
	// 1 - i <nil>
	// 9 + 8i <nil>
	// 4 + 3i <nil>
}

func ExampleParse() {
	fmt.Println(riemann.Parse("4 + 3i"))
	fmt.Println(riemann.Parse("- i4"))
	fmt.Println(riemann.Parse("2.2e-1-3.2e-1i"))
	fmt.Println(riemann.Parse("1_000_000i"))
	_, err := riemann.Parse("4 5i")
	fmt.Println(err)
	// Output:
	// 4 + 3i <nil>
	// -4i <nil>
	// 0.22 - 0.32i <nil>
	// 1000000i <nil>
	// unexpected number "5" at offset 2: Invalid Param
}

func ExampleMustParse() {
	fmt.Println(riemann.MustParse("-1.23i"))
	// Output: -1.23i
}

func ExampleComplex_String() {
	z := riemann.New(1.1999800719976027e-7, -2.000000239998681e-6)
	fmt.Println(z.String())
	// Output: 1.1999800719976027e-7 - 0.000002000000239998681i
}

func ExampleComplex_Float64() {
	fmt.Println(riemann.MustParse("2.5").Float64())
	fmt.Println(riemann.MustParse("2.5 + i").Float64())
	// Output:
	// 2.5 true
	// 0 false
}

type Value struct {
	Number riemann.Complex `json:"number"`
}

func ExampleComplex_UnmarshalText() {
	b := []byte(`{"number": "3 - 4i"}`)
	var v Value
	err := json.Unmarshal(b, &v)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: {3 - 4i}
}

func ExampleComplex_MarshalText() {
	z := riemann.MustParse("3 - 4i")
	v := Value{Number: z}
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"number":"3 - 4i"}
}

func ExampleComplex_Scan() {
	z := &riemann.Complex{}
	err := z.Scan("3 - 4i")
	if err != nil {
		panic(err)
	}
	fmt.Println(z)
	// Output: 3 - 4i
}

func ExampleComplex_Value() {
	z := riemann.MustParse("3 - 4i")
	s, err := z.Value()
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 3 - 4i
}

func ExampleComplex_Format() {
	z := riemann.MustParse("3 - 4i")
	fmt.Printf("%v\n", z)
	fmt.Printf("%q\n", z)
	fmt.Printf("[%10s]\n", z)
	fmt.Printf("[%-10s]\n", z)
	// Output:
	// 3 - 4i
	// "3 - 4i"
	// [    3 - 4i]
	// [3 - 4i    ]
}

func ExampleComplex_Add() {
	z := riemann.MustParse("4 + 3i")
	w := riemann.MustParse("-3 - 2i")
	fmt.Println(z.Add(w))
	fmt.Println(riemann.Inf.Add(riemann.Inf))
	// Output:
	// 1 + i
	// NaN
}

func ExampleComplex_Sub() {
	z := riemann.MustParse("3 + 4i")
	w := riemann.MustParse("2 - 5i")
	fmt.Println(z.Sub(w))
	// Output: 1 + 9i
}

func ExampleComplex_Mul() {
	z := riemann.MustParse("2 + 3i")
	w := riemann.MustParse("4 + 5i")
	fmt.Println(z.Mul(w))
	fmt.Println(riemann.Inf.Mul(riemann.Zero))
	// Output:
	// -7 + 22i
	// NaN
}

func ExampleComplex_Quo() {
	z := riemann.MustParse("4 + 2i")
	w := riemann.MustParse("1 + i")
	fmt.Println(z.Quo(w))
	fmt.Println(z.Quo(riemann.Zero))
	fmt.Println(z.Quo(riemann.Inf))
	fmt.Println(riemann.Zero.Quo(riemann.Zero))
	// Output:
	// 3 - i
	// Infinity
	// 0
	// NaN
}

func ExampleComplex_Pow() {
	fmt.Println(riemann.I.Pow(riemann.New(2, 0)))
	fmt.Println(riemann.New(2, 0).Pow(riemann.New(10, 0)))
	fmt.Println(riemann.New(4, 0).Pow(riemann.New(0.5, 0)))
	fmt.Println(riemann.Zero.Pow(riemann.Zero))
	// Output:
	// -1
	// 1024
	// 2
	// 1
}

func ExampleComplex_Sqrt() {
	fmt.Println(riemann.MustParse("-4").Sqrt())
	fmt.Println(riemann.MustParse("3 + 4i").Sqrt())
	fmt.Println(riemann.MustParse("-3 - 4i").Sqrt())
	// Output:
	// 2i
	// 2 + i
	// 1 - 2i
}

func ExampleComplex_Log() {
	fmt.Println(riemann.MustParse("-1").Log())
	fmt.Println(riemann.Zero.Log())
	// Output:
	// 3.141592653589793i
	// Infinity
}

func ExampleComplex_Sin() {
	z := riemann.MustParse("1 + 2i")
	fmt.Println(z.Sin().Round(6))
	// Output: 3.165779 + 1.959601i
}

func ExampleComplex_Abs() {
	fmt.Println(riemann.MustParse("3 + 4i").Abs())
	// Output: 5
}

func ExampleComplex_Arg() {
	fmt.Println(riemann.I.Arg())
	fmt.Println(riemann.MustParse("-1").Arg())
	// Output:
	// 1.5707963267948966
	// 3.141592653589793
}

func ExampleComplex_Inv() {
	fmt.Println(riemann.MustParse("1 + i").Inv())
	fmt.Println(riemann.Zero.Inv())
	fmt.Println(riemann.Inf.Inv())
	// Output:
	// 0.5 - 0.5i
	// Infinity
	// 0
}

func ExampleComplex_Conj() {
	fmt.Println(riemann.MustParse("3 + 4i").Conj())
	// Output: 3 - 4i
}

func ExampleComplex_Sign() {
	fmt.Println(riemann.MustParse("3 + 4i").Sign())
	fmt.Println(riemann.Zero.Sign())
	// Output:
	// 0.6 + 0.8i
	// NaN
}

func ExampleComplex_Round() {
	z := riemann.New(1.2345, -6.789)
	fmt.Println(z.Round(2))
	fmt.Println(z.Ceil(2))
	fmt.Println(z.Floor(2))
	// Output:
	// 1.23 - 6.79i
	// 1.24 - 6.78i
	// 1.23 - 6.79i
}

func ExampleComplex_Equal() {
	z := riemann.MustParse("2 + 3i")
	fmt.Println(z.Equal(riemann.New(2, 3+1e-16)))
	fmt.Println(z.Equal(riemann.MustParse("5i")))
	fmt.Println(riemann.Inf.Equal(riemann.Inf))
	// Output:
	// true
	// false
	// false
}

func ExampleComplex_IsInf() {
	fmt.Println(riemann.New(0, math.Inf(-1)).IsInf())
	fmt.Println(riemann.NaN.IsInf())
	fmt.Println(riemann.One.IsInf())
	// Output:
	// true
	// false
	// false
}
