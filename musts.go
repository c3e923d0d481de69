package riemann

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding complex numbers.
func MustParse(s string) Complex {
	z, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return z
}

// MustFrom is like [From] but panics if the input cannot be converted.
func MustFrom(in Input) Complex {
	z, err := From(in)
	if err != nil {
		panic(fmt.Sprintf("MustFrom(%v) failed: %v", in, err))
	}
	return z
}
