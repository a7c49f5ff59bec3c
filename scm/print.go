package scm

import (
	"strings"
)

// printer renders values to their display notation.
// It remembers the pairs and vectors it is inside of, and writes "..." instead of entering one twice,
// so circular structures print in finite space.
type printer struct {
	sb     strings.Builder
	active map[Value]struct{}
}

func newPrinter() *printer {
	return &printer{active: make(map[Value]struct{})}
}

func (p *printer) enter(x Value) bool {
	if _, yes := p.active[x]; yes {
		p.sb.WriteString("...")
		return false
	}
	p.active[x] = struct{}{}
	return true
}

func (p *printer) leave(x Value) {
	delete(p.active, x)
}

func (p *printer) write(x Value) {
	switch x := x.(type) {
	case *Pair:
		p.writePair(x)
	case *Vector:
		p.writeVector(x)
	default:
		p.sb.WriteString(Display(x))
	}
}

func (p *printer) writeVector(v *Vector) {
	if !p.enter(v) {
		return
	}
	defer p.leave(v)
	p.sb.WriteString("#(")
	for i, x := range v.vs {
		if i > 0 {
			p.sb.WriteString(" ")
		}
		p.write(x)
	}
	p.sb.WriteString(")")
}

func (p *printer) writePair(x *Pair) {
	if isProperList(x) {
		p.writeList(x)
	} else {
		p.writeDotted(x)
	}
}

// writeList writes a proper list as (a b c).
func (p *printer) writeList(x *Pair) {
	var entered []Value
	defer func() {
		for _, y := range entered {
			p.leave(y)
		}
	}()
	if !p.enter(x) {
		return
	}
	entered = append(entered, x)
	p.sb.WriteString("(")
	p.write(x.car)
	for y, _ := x.cdr.(*Pair); y != nil; y, _ = y.cdr.(*Pair) {
		p.sb.WriteString(" ")
		if !p.enter(y) {
			break
		}
		entered = append(entered, y)
		p.write(y.car)
	}
	p.sb.WriteString(")")
}

// writeDotted writes a chain that does not end in Empty as (a . (b . c)).
func (p *printer) writeDotted(x *Pair) {
	var entered []Value
	defer func() {
		for _, y := range entered {
			p.leave(y)
		}
	}()
	var tail Value = x
	closed := false
	for {
		y, ok := tail.(*Pair)
		if !ok {
			break
		}
		if !p.enter(y) {
			closed = true
			break
		}
		entered = append(entered, y)
		p.sb.WriteString("(")
		p.write(y.car)
		p.sb.WriteString(" . ")
		tail = y.cdr
	}
	if !closed {
		p.write(tail)
	}
	p.sb.WriteString(strings.Repeat(")", len(entered)))
}

func (p *printer) vector(v *Vector) string {
	p.writeVector(v)
	return p.sb.String()
}

func (p *printer) pair(x *Pair) string {
	p.writePair(x)
	return p.sb.String()
}

// Print renders x for people.
// Proper lists are rendered in list notation, at every level of nesting.
// Everything else uses its display notation.
func Print(x Value) string {
	if s, err := PrintList(x); err == nil {
		return s
	}
	return Display(x)
}

// PrintList renders a proper list as (a b c).
// Elements which are themselves proper lists are rendered the same way.
func PrintList(x Value) (string, error) {
	switch x := x.(type) {
	case *EmptyList:
		return x.String(), nil
	case *Pair:
		if !isProperList(x) {
			return "", ErrNotAProperList{Op: "print-list", Value: x}
		}
		p := newPrinter()
		p.writeList(x)
		return p.sb.String(), nil
	default:
		return "", ErrNotAProperList{Op: "print-list", Value: x}
	}
}
