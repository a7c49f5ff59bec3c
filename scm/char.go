package scm

import (
	"cmp"
	"unicode/utf8"
)

// Char is a single Unicode codepoint.
// Chars are immediates: equality and ordering are by codepoint, and a Char can be used as a map key.
type Char rune

func NewChar(r rune) Char {
	return Char(r)
}

// CharFromString returns the first character of s.
func CharFromString(s string) (Char, error) {
	if s == "" {
		return 0, ErrInvalidArgument{Op: "make-char", Value: s, Msg: "empty string"}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r), nil
}

func (Char) isValue() {}

func (Char) Kind() Kind { return KindChar }

func (c Char) Codepoint() rune { return rune(c) }

// Compare returns -1, 0 or +1 as c is less than, equal to or greater than d.
func (c Char) Compare(d Char) int {
	return cmp.Compare(c, d)
}

func (c Char) String() string {
	return `#\` + string(rune(c))
}

func compareChars(op string, a, b Value, fn func(int) bool) (*Boolean, error) {
	ca, ok := a.(Char)
	if !ok {
		return nil, wrongKind(op, a, KindChar)
	}
	cb, ok := b.(Char)
	if !ok {
		return nil, wrongKind(op, b, KindChar)
	}
	return MakeBoolean(fn(ca.Compare(cb))), nil
}

func CharEq(a, b Value) (*Boolean, error) {
	return compareChars("char=?", a, b, func(c int) bool { return c == 0 })
}

func CharLess(a, b Value) (*Boolean, error) {
	return compareChars("char<?", a, b, func(c int) bool { return c < 0 })
}

func CharGreater(a, b Value) (*Boolean, error) {
	return compareChars("char>?", a, b, func(c int) bool { return c > 0 })
}

func CharLessEq(a, b Value) (*Boolean, error) {
	return compareChars("char<=?", a, b, func(c int) bool { return c <= 0 })
}

func CharGreaterEq(a, b Value) (*Boolean, error) {
	return compareChars("char>=?", a, b, func(c int) bool { return c >= 0 })
}

// CharToInteger returns the codepoint of a Char as an exact integer.
func CharToInteger(x Value) (*Number, error) {
	c, ok := x.(Char)
	if !ok {
		return nil, wrongKind("char->integer", x, KindChar)
	}
	return NewInteger(c.Codepoint()), nil
}

// IntegerToChar returns the Char for an exact integer codepoint.
func IntegerToChar(x Value) (Char, error) {
	n, ok := x.(*Number)
	if !ok {
		return 0, wrongKind("integer->char", x, KindNumber)
	}
	cp, ok := n.Int64()
	if !ok || !n.Exact() || cp < 0 || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
		return 0, ErrInvalidArgument{Op: "integer->char", Value: n, Msg: "not a valid codepoint"}
	}
	return Char(cp), nil
}
