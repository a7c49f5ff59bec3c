// package scmhost converts between Go values and Scheme values.
package scmhost

import (
	"cmp"
	"fmt"
	"unicode/utf8"

	"rubeme.org/rubeme/scm"
)

// Char is a host character.
// Go has no character type distinct from int32, so Char marks a value which should become a Scheme character
// rather than a number or a one character string.
// Chars compare by codepoint and can be used as map keys.
type Char struct {
	cp rune
}

// NewChar returns the first character of s.
func NewChar(s string) (Char, error) {
	if s == "" {
		return Char{}, scm.ErrInvalidArgument{Op: "host-char", Value: s, Msg: "empty string"}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char{cp: r}, nil
}

func CharOf(r rune) Char {
	return Char{cp: r}
}

func (c Char) Codepoint() rune {
	return c.cp
}

func (c Char) Compare(d Char) int {
	return cmp.Compare(c.cp, d.cp)
}

func (c Char) String() string {
	return string(c.cp)
}

// Symbol is a host name which should become an interned Scheme symbol.
type Symbol string

// Pair is a host cons cell.
// Pairs nest in the Cdr to form lists; a nil Cdr ends a list.
type Pair struct {
	Car, Cdr any
}

// ToSlice returns []any{Car, Cdr}, converting nested Pairs the same way.
func (p Pair) ToSlice() []any {
	conv := func(x any) any {
		switch x := x.(type) {
		case Pair:
			return x.ToSlice()
		case *Pair:
			if x != nil {
				return x.ToSlice()
			}
		}
		return x
	}
	return []any{conv(p.Car), conv(p.Cdr)}
}

func (p Pair) String() string {
	if p.Cdr == nil {
		return fmt.Sprintf("(%v)", p.Car)
	}
	return fmt.Sprintf("(%v . %v)", p.Car, p.Cdr)
}
