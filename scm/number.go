package scm

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"
)

// NumberRepr is the host representation a Number carries.
type NumberRepr uint8

const (
	ReprInteger NumberRepr = iota
	ReprRational
	ReprReal
	ReprComplex
)

func (r NumberRepr) String() string {
	switch r {
	case ReprInteger:
		return "integer"
	case ReprRational:
		return "rational"
	case ReprReal:
		return "real"
	case ReprComplex:
		return "complex"
	default:
		return fmt.Sprintf("NumberRepr(%d)", uint8(r))
	}
}

// Number is a member of the numeric tower.
// Its classification (integer?, rational?, real?, complex?) is computed from the representation.
// Numbers are immutable.
type Number struct {
	repr NumberRepr
	i    *big.Int
	q    *big.Rat
	f    float64
	c    complex128
}

func NewInteger[T constraints.Integer](x T) *Number {
	bi := new(big.Int)
	if x < 0 {
		bi.SetInt64(int64(x))
	} else {
		bi.SetUint64(uint64(x))
	}
	return &Number{repr: ReprInteger, i: bi}
}

// NewBigInt returns an integer Number holding a copy of x.
func NewBigInt(x *big.Int) *Number {
	return &Number{repr: ReprInteger, i: new(big.Int).Set(x)}
}

// NewRational returns the rational num/den.
// The fraction is kept in lowest terms; 4/2 is the rational 2/1, which is also an integer.
func NewRational(num, den int64) (*Number, error) {
	if den == 0 {
		return nil, ErrInvalidArgument{Op: "make-rational", Value: fmt.Sprintf("%d/%d", num, den), Msg: "zero denominator"}
	}
	return &Number{repr: ReprRational, q: big.NewRat(num, den)}, nil
}

// NewBigRat returns a rational Number holding a copy of x.
func NewBigRat(x *big.Rat) *Number {
	return &Number{repr: ReprRational, q: new(big.Rat).Set(x)}
}

func NewReal[T constraints.Float](x T) *Number {
	return &Number{repr: ReprReal, f: float64(x)}
}

func NewComplex(x complex128) *Number {
	return &Number{repr: ReprComplex, c: x}
}

// MakeNumber wraps a host numeric value.
// It accepts all the Go integer, float and complex kinds, *big.Int and *big.Rat.
// Anything else is an ErrInvalidArgument.
func MakeNumber(x any) (*Number, error) {
	switch x := x.(type) {
	case int:
		return NewInteger(x), nil
	case int8:
		return NewInteger(x), nil
	case int16:
		return NewInteger(x), nil
	case int32:
		return NewInteger(x), nil
	case int64:
		return NewInteger(x), nil
	case uint:
		return NewInteger(x), nil
	case uint8:
		return NewInteger(x), nil
	case uint16:
		return NewInteger(x), nil
	case uint32:
		return NewInteger(x), nil
	case uint64:
		return NewInteger(x), nil
	case float32:
		return NewReal(x), nil
	case float64:
		return NewReal(x), nil
	case complex64:
		return NewComplex(complex128(x)), nil
	case complex128:
		return NewComplex(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return NewBigInt(x), nil
	case *big.Rat:
		if x == nil {
			break
		}
		return NewBigRat(x), nil
	case *Number:
		if x == nil {
			break
		}
		return x, nil
	}
	return nil, ErrInvalidArgument{Op: "make-number", Value: x, Msg: fmt.Sprintf("unsupported numeric kind %T", x)}
}

func (*Number) isValue() {}

func (*Number) Kind() Kind { return KindNumber }

// Repr returns the representation the Number was built from.
func (n *Number) Repr() NumberRepr { return n.repr }

// Exact is true for integers and rationals.
func (n *Number) Exact() bool {
	return n.repr == ReprInteger || n.repr == ReprRational
}

// IsComplex is always true: every number is a complex number.
func (n *Number) IsComplex() bool { return true }

func (n *Number) IsReal() bool {
	if n.repr == ReprComplex {
		return imag(n.c) == 0
	}
	return true
}

// IsRational is true for exact numbers and for finite reals.
func (n *Number) IsRational() bool {
	switch n.repr {
	case ReprInteger, ReprRational:
		return true
	case ReprReal:
		return isFinite(n.f)
	default:
		return imag(n.c) == 0 && isFinite(real(n.c))
	}
}

func (n *Number) IsInteger() bool {
	switch n.repr {
	case ReprInteger:
		return true
	case ReprRational:
		return n.q.IsInt()
	case ReprReal:
		return isIntegral(n.f)
	default:
		return imag(n.c) == 0 && isIntegral(real(n.c))
	}
}

// Int64 returns the value as an int64 if the number is an integer that fits.
func (n *Number) Int64() (int64, bool) {
	switch n.repr {
	case ReprInteger:
		if n.i.IsInt64() {
			return n.i.Int64(), true
		}
	case ReprRational:
		if n.q.IsInt() && n.q.Num().IsInt64() {
			return n.q.Num().Int64(), true
		}
	case ReprReal:
		if isIntegral(n.f) && n.f >= math.MinInt64 && n.f < math.MaxInt64 {
			return int64(n.f), true
		}
	case ReprComplex:
		if imag(n.c) == 0 {
			return NewReal(real(n.c)).Int64()
		}
	}
	return 0, false
}

// Float64 returns the nearest float64 to the real part of the number.
func (n *Number) Float64() float64 {
	switch n.repr {
	case ReprInteger:
		f, _ := new(big.Float).SetInt(n.i).Float64()
		return f
	case ReprRational:
		f, _ := n.q.Float64()
		return f
	case ReprReal:
		return n.f
	default:
		return real(n.c)
	}
}

// BigInt returns a copy of the integer representation, or nil if the number is not exact and integral.
func (n *Number) BigInt() *big.Int {
	switch {
	case n.repr == ReprInteger:
		return new(big.Int).Set(n.i)
	case n.repr == ReprRational && n.q.IsInt():
		return new(big.Int).Set(n.q.Num())
	default:
		return nil
	}
}

// BigRat returns a copy of the exact value, or nil for inexact numbers.
func (n *Number) BigRat() *big.Rat {
	switch n.repr {
	case ReprInteger:
		return new(big.Rat).SetInt(n.i)
	case ReprRational:
		return new(big.Rat).Set(n.q)
	default:
		return nil
	}
}

// Complex128 returns the number as a complex128.
func (n *Number) Complex128() complex128 {
	if n.repr == ReprComplex {
		return n.c
	}
	return complex(n.Float64(), 0)
}

func (n *Number) String() string {
	switch n.repr {
	case ReprInteger:
		return n.i.String()
	case ReprRational:
		return n.q.String()
	case ReprReal:
		return formatReal(n.f)
	default:
		im := formatReal(imag(n.c))
		if im[0] != '+' && im[0] != '-' {
			im = "+" + im
		}
		return formatReal(real(n.c)) + im + "i"
	}
}

// eqvNumber is numeric equality restricted to numbers of the same exactness.
func eqvNumber(a, b *Number) bool {
	if a.Exact() != b.Exact() {
		return false
	}
	if a.Exact() {
		return a.BigRat().Cmp(b.BigRat()) == 0
	}
	return a.Complex128() == b.Complex128()
}

func formatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "+nan.0"
	case math.IsInf(f, 1):
		return "+inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' {
			return s
		}
	}
	return s + ".0"
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isIntegral(f float64) bool {
	return isFinite(f) && f == math.Trunc(f)
}

func numberPredicate(x Value, pred func(*Number) bool) *Boolean {
	n, ok := x.(*Number)
	return MakeBoolean(ok && pred(n))
}

func IsComplex(x Value) *Boolean  { return numberPredicate(x, (*Number).IsComplex) }
func IsReal(x Value) *Boolean     { return numberPredicate(x, (*Number).IsReal) }
func IsRational(x Value) *Boolean { return numberPredicate(x, (*Number).IsRational) }
func IsInteger(x Value) *Boolean  { return numberPredicate(x, (*Number).IsInteger) }

// IsExact reports whether x is an exact number.
func IsExact(x Value) *Boolean { return numberPredicate(x, (*Number).Exact) }
