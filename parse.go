package riemann

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Input is one of the shapes accepted by [From]:
// [Complex], [Real], [Cartesian], [Polar], [Vector], and [Text].
// The set of shapes is closed.
type Input interface {
	normalize() (Complex, error)
}

// Real is a real number.
type Real float64

// Cartesian is a complex number given by its real and imaginary parts.
type Cartesian struct {
	Re, Im float64
}

// Polar is a complex number given by its magnitude and angle in radians.
// Also see [NewFromPolar].
type Polar struct {
	Abs, Arg float64
}

// Vector is a complex number given as a pair of real and imaginary parts.
type Vector [2]float64

// Text is a complex number in the textual notation accepted by [Parse].
type Text string

func (z Complex) normalize() (Complex, error)   { return z, nil }
func (r Real) normalize() (Complex, error)      { return NewFromFloat64(float64(r)), nil }
func (c Cartesian) normalize() (Complex, error) { return New(c.Re, c.Im), nil }
func (p Polar) normalize() (Complex, error)     { return NewFromPolar(p.Abs, p.Arg), nil }
func (v Vector) normalize() (Complex, error)    { return New(v[0], v[1]), nil }
func (t Text) normalize() (Complex, error)      { return Parse(string(t)) }

// From converts any of the accepted input shapes to a complex number.
// A nil input is converted to [Zero].
//
// From returns an error wrapping [ErrInvalidParam] only if a [Text] input
// cannot be parsed. Inputs with infinite or NaN components are not errors.
func From(in Input) (Complex, error) {
	if in == nil {
		return Zero, nil
	}
	return in.normalize()
}

// Parse converts a string to a complex number.
// The input string is a sum of real and imaginary terms, for example:
//
//	3
//	-2.5i
//	4 + 3i
//	i
//	- i4
//	2.2e-1-3.2e-1i
//	1_000_000i
//	+ 7 - i + 3i - + + + + 43
//
// The formal EBNF grammar for the supported format is as follows:
//
//	space   ::= ' ' | '\t' | '\n'
//	sign    ::= '+' | '-'
//	imag    ::= 'i' | 'I'
//	digits  ::= digit { digit }
//	decimal ::= digits ['.' [digits]] ['e' [sign] digits]
//	number  ::= decimal | '.' digits
//	term    ::= number [imag] | imag [decimal]
//	text    ::= [signs] term { signs term }
//	signs   ::= { space } sign { space | sign }
//
// Spaces are allowed around signs and at both ends of the input, but not
// between two terms.
// A number following the imaginary unit must start with a digit,
// so "i.5" is rejected while ".5i" and "i0.5" are accepted.
// An odd number of '-' signs before a term negates it.
// Underscores are removed before parsing and can be used as digit separators.
// The literal strings "NaN" and "Infinity", as produced by [Complex.String],
// are also accepted.
//
// Parse returns an error wrapping [ErrInvalidParam] if the string does not
// represent a valid complex number.
func Parse(s string) (Complex, error) {
	s = strings.ReplaceAll(s, "_", "")
	switch strings.Trim(s, " \t\n") {
	case "NaN":
		return NaN, nil
	case "Infinity":
		return Inf, nil
	}
	p := parser{tokens: tokenize(s)}
	return p.parse()
}

type tokenKind int

const (
	tokenSpace tokenKind = iota
	tokenPlus
	tokenMinus
	tokenNumber
	tokenImag
	tokenOther
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokenNumber {
		return fmt.Sprintf("number %q", t.text)
	}
	return fmt.Sprintf("%q", t.text)
}

// tokenize splits s into numbers and single-character tokens.
func tokenize(s string) []token {
	tokens := make([]token, 0, len(s))
	for pos := 0; pos < len(s); {
		if end := scanNumber(s, pos); end > pos {
			tokens = append(tokens, token{kind: tokenNumber, text: s[pos:end], pos: pos})
			pos = end
			continue
		}
		r, width := utf8.DecodeRuneInString(s[pos:])
		kind := tokenOther
		switch r {
		case ' ', '\t', '\n':
			kind = tokenSpace
		case '+':
			kind = tokenPlus
		case '-':
			kind = tokenMinus
		case 'i', 'I':
			kind = tokenImag
		}
		tokens = append(tokens, token{kind: kind, text: s[pos : pos+width], pos: pos})
		pos += width
	}
	return tokens
}

// scanNumber returns the end of the number starting at pos, or pos if there
// is no number at pos.
func scanNumber(s string, pos int) int {
	isDigit := func(i int) bool {
		return i < len(s) && s[i] >= '0' && s[i] <= '9'
	}

	// Fraction only
	if !isDigit(pos) {
		if pos < len(s) && s[pos] == '.' && isDigit(pos+1) {
			end := pos + 1
			for isDigit(end) {
				end++
			}
			return end
		}
		return pos
	}

	// Integer
	end := pos
	for isDigit(end) {
		end++
	}

	// Fraction
	if end < len(s) && s[end] == '.' {
		end++
		for isDigit(end) {
			end++
		}
	}

	// Exponential part
	if end < len(s) && s[end] == 'e' {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if isDigit(exp) {
			for isDigit(exp) {
				exp++
			}
			end = exp
		}
	}
	return end
}

type parseState int

const (
	stateSign parseState = iota // expecting signs or the next term
	stateCoef                   // after a number, which is real unless followed by an imaginary unit
	stateImag                   // after an imaginary unit, which may be followed by its coefficient
	stateTerm                   // after a complete term, expecting signs
	stateFail
)

type parser struct {
	tokens []token
	state  parseState
	neg    bool    // odd number of '-' signs before the current term
	coef   float64 // pending coefficient in stateCoef
	re, im float64
	err    error
}

func (p *parser) parse() (Complex, error) {
	p.state = stateSign // implicit leading '+'
	for i := 0; i < len(p.tokens) && p.state != stateFail; {
		if p.step(p.tokens[i]) {
			i++
		}
	}
	if p.state != stateFail {
		p.finish()
	}
	if p.state != stateTerm {
		if p.err == nil {
			p.err = fmt.Errorf("unexpected end of input: %w", ErrInvalidParam)
		}
		return Complex{}, p.err
	}
	return Complex{re: p.re, im: p.im}, nil
}

// step applies one transition and reports whether the token was consumed.
func (p *parser) step(tok token) bool {
	switch p.state {
	case stateSign, stateTerm:
		switch tok.kind {
		case tokenSpace:
		case tokenPlus:
			p.state = stateSign
		case tokenMinus:
			p.neg = !p.neg
			p.state = stateSign
		case tokenNumber:
			if p.state == stateTerm {
				p.fail(tok)
				break
			}
			p.coef = p.number(tok)
			if p.state != stateFail {
				p.state = stateCoef
			}
		case tokenImag:
			if p.state == stateTerm {
				p.fail(tok)
				break
			}
			p.state = stateImag
		default:
			p.fail(tok)
		}
		return true

	case stateCoef:
		if tok.kind == tokenImag {
			p.im += p.signed(p.coef)
			p.endTerm()
			return true
		}
		p.re += p.signed(p.coef)
		p.endTerm()
		return false

	case stateImag:
		if tok.kind == tokenNumber {
			if tok.text[0] == '.' {
				p.fail(tok)
				return true
			}
			coef := p.number(tok)
			if p.state != stateFail {
				p.im += p.signed(coef)
				p.endTerm()
			}
			return true
		}
		p.im += p.signed(1)
		p.endTerm()
		return false
	}
	return true
}

// finish completes a term that is pending at the end of the input.
func (p *parser) finish() {
	switch p.state {
	case stateCoef:
		p.re += p.signed(p.coef)
		p.endTerm()
	case stateImag:
		p.im += p.signed(1)
		p.endTerm()
	}
}

func (p *parser) endTerm() {
	p.neg = false
	p.state = stateTerm
}

func (p *parser) signed(x float64) float64 {
	if p.neg {
		return -x
	}
	return x
}

func (p *parser) number(tok token) float64 {
	f, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.state = stateFail
		p.err = fmt.Errorf("invalid %v at offset %v: %w", tok, tok.pos, ErrInvalidParam)
		return math.NaN()
	}
	return f
}

func (p *parser) fail(tok token) {
	p.state = stateFail
	p.err = fmt.Errorf("unexpected %v at offset %v: %w", tok, tok.pos, ErrInvalidParam)
}
