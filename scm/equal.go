package scm

import (
	"encoding/binary"
	"math"

	"rubeme.org/rubeme"
)

// Eq is identity.
// Chars are immediates, so two Chars with the same codepoint are Eq.
func Eq(a, b Value) *Boolean {
	return MakeBoolean(a == b)
}

// Eqv is Eq, extended to numbers: two numbers are Eqv when they have the same exactness and are numerically equal.
func Eqv(a, b Value) *Boolean {
	return MakeBoolean(eqv(a, b))
}

func eqv(a, b Value) bool {
	if a == b {
		return true
	}
	an, ok := a.(*Number)
	if !ok {
		return false
	}
	bn, ok := b.(*Number)
	if !ok {
		return false
	}
	return eqvNumber(an, bn)
}

// Equal compares pairs, vectors and strings by content, recursively, and everything else with Eqv.
// Circular structures are compared coinductively: a pair of containers already being compared is assumed equal.
func Equal(a, b Value) *Boolean {
	return MakeBoolean(equal(a, b))
}

func equal(a, b Value) bool {
	type task struct{ a, b Value }
	seen := make(map[task]struct{})
	stack := []task{{a, b}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if eqv(t.a, t.b) {
			continue
		}
		switch x := t.a.(type) {
		case *String:
			y, ok := t.b.(*String)
			if !ok || string(x.rs) != string(y.rs) {
				return false
			}
		case *Pair:
			y, ok := t.b.(*Pair)
			if !ok {
				return false
			}
			if _, yes := seen[t]; yes {
				continue
			}
			seen[t] = struct{}{}
			stack = append(stack, task{x.cdr, y.cdr}, task{x.car, y.car})
		case *Vector:
			y, ok := t.b.(*Vector)
			if !ok || len(x.vs) != len(y.vs) {
				return false
			}
			if _, yes := seen[t]; yes {
				continue
			}
			seen[t] = struct{}{}
			for i := len(x.vs) - 1; i >= 0; i-- {
				stack = append(stack, task{x.vs[i], y.vs[i]})
			}
		default:
			return false
		}
	}
	return true
}

// fingerprintKey salts every fingerprint, so they are not confused with other hashes of the same bytes.
var fingerprintKey = rubeme.Hash(nil, []byte("rubeme.org/rubeme/scm.Value"))

// Fingerprint returns a 256 bit hash of the content of x.
// If Equal(a, b) then Fingerprint(a) == Fingerprint(b), for values without cycles.
// Fingerprint is appropriate for use in hash tables, but the fingerprint of a mutable value changes with it.
func Fingerprint(x Value) [32]byte {
	enc := encoder{active: make(map[Value]int)}
	enc.encode(x)
	return rubeme.Hash(&fingerprintKey, enc.buf)
}

const backRefTag = 0xff

type encoder struct {
	buf []byte
	// active maps the containers being encoded to their position on the current path.
	active map[Value]int
}

func (e *encoder) putTag(k Kind) {
	e.buf = append(e.buf, byte(k))
}

func (e *encoder) putUvarint(x uint64) {
	e.buf = binary.AppendUvarint(e.buf, x)
}

func (e *encoder) putString(s string) {
	e.putUvarint(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) putFloat(f float64) {
	if f == 0 {
		f = 0
	}
	e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(f))
}

// backRef writes a reference to x if it is already on the current path.
func (e *encoder) backRef(x Value) bool {
	if depth, yes := e.active[x]; yes {
		e.buf = append(e.buf, backRefTag)
		e.putUvarint(uint64(len(e.active) - depth))
		return true
	}
	return false
}

func (e *encoder) encode(x Value) {
	if x == nil {
		e.buf = append(e.buf, backRefTag-1)
		return
	}
	switch x := x.(type) {
	case *Boolean:
		e.putTag(KindBoolean)
		if x.Bool() {
			e.buf = append(e.buf, 1)
		} else {
			e.buf = append(e.buf, 0)
		}
	case *Symbol:
		e.putTag(KindSymbol)
		e.putString(x.name)
	case *Number:
		e.putTag(KindNumber)
		if x.Exact() {
			e.buf = append(e.buf, 'e')
			e.putString(x.BigRat().String())
		} else {
			e.buf = append(e.buf, 'i')
			c := x.Complex128()
			e.putFloat(real(c))
			e.putFloat(imag(c))
		}
	case Char:
		e.putTag(KindChar)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(x))
	case *String:
		e.putTag(KindString)
		e.putString(string(x.rs))
	case *Vector:
		if e.backRef(x) {
			return
		}
		e.active[x] = len(e.active)
		defer delete(e.active, x)
		e.putTag(KindVector)
		e.putUvarint(uint64(len(x.vs)))
		for _, y := range x.vs {
			e.encode(y)
		}
	case *Pair:
		e.encodeChain(x)
	case *Port:
		e.putTag(KindPort)
		e.putString(x.Name)
	case *Procedure:
		e.putTag(KindProcedure)
		e.putString(x.Name)
	default:
		e.putTag(x.Kind())
	}
}

// encodeChain encodes a cdr chain without recursing on the cdr.
func (e *encoder) encodeChain(x *Pair) {
	var entered []Value
	defer func() {
		for _, y := range entered {
			delete(e.active, y)
		}
	}()
	var tail Value = x
	for {
		p, ok := tail.(*Pair)
		if !ok {
			break
		}
		if e.backRef(p) {
			return
		}
		e.active[p] = len(e.active)
		entered = append(entered, p)
		e.putTag(KindPair)
		e.encode(p.car)
		tail = p.cdr
	}
	e.encode(tail)
}
