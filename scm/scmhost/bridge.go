package scmhost

import (
	"fmt"
	"math/big"
	"reflect"

	"rubeme.org/rubeme/scm"
)

// ErrUnsupportedHostType is returned when a host value has no corresponding Scheme value.
type ErrUnsupportedHostType struct {
	Value any
}

func (e ErrUnsupportedHostType) Error() string {
	return fmt.Sprintf("unsupported host type %T: %v", e.Value, e.Value)
}

// Bridge converts host values to Scheme values.
// It interns Symbols in its SymbolTable.
type Bridge struct {
	symbols *scm.SymbolTable
}

// New returns a Bridge interning into symbols.
// If symbols is nil, the Bridge gets a table of its own.
func New(symbols *scm.SymbolTable) *Bridge {
	if symbols == nil {
		symbols = scm.NewSymbolTable()
	}
	return &Bridge{symbols: symbols}
}

func (b *Bridge) Symbols() *scm.SymbolTable {
	return b.symbols
}

// FromHost converts a host value to a Scheme value.
//
//	nil                     -> ()
//	bool                    -> #t, #f
//	integers, floats, complex numbers, *big.Int, *big.Rat -> number
//	Char                    -> character
//	string                  -> string
//	Symbol                  -> interned symbol
//	Pair, *Pair             -> pair
//	slices and arrays       -> vector
//	scm.Value               -> itself
//
// Anything else is an ErrUnsupportedHostType.
func (b *Bridge) FromHost(x any) (scm.Value, error) {
	switch x := x.(type) {
	case nil:
		return scm.Empty, nil
	case scm.Value:
		return x, nil
	case bool:
		return scm.MakeBoolean(x), nil
	case string:
		return scm.NewString(x), nil
	case Char:
		return scm.NewChar(x.cp), nil
	case Symbol:
		return b.symbols.Intern(string(x)), nil
	case Pair:
		return b.fromPair(&x)
	case *Pair:
		if x == nil {
			return scm.Empty, nil
		}
		return b.fromPair(x)
	case *big.Int:
		if x == nil {
			break
		}
		return scm.NewBigInt(x), nil
	case *big.Rat:
		if x == nil {
			break
		}
		return scm.NewBigRat(x), nil
	case []any:
		return b.fromSlice(len(x), func(i int) any { return x[i] })
	}
	return b.fromReflect(x)
}

// fromPair converts a chain of host Pairs, walking the Cdr iteratively.
func (b *Bridge) fromPair(p *Pair) (scm.Value, error) {
	var cars []scm.Value
	var tail any = *p
	for {
		var next *Pair
		switch x := tail.(type) {
		case Pair:
			next = &x
		case *Pair:
			next = x
		}
		if next == nil {
			break
		}
		car, err := b.FromHost(next.Car)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
		tail = next.Cdr
	}
	ret, err := b.FromHost(tail)
	if err != nil {
		return nil, err
	}
	for i := len(cars) - 1; i >= 0; i-- {
		ret = scm.Cons(cars[i], ret)
	}
	return ret, nil
}

func (b *Bridge) fromSlice(n int, get func(int) any) (scm.Value, error) {
	vals := make([]scm.Value, n)
	for i := range vals {
		v, err := b.FromHost(get(i))
		if err != nil {
			return nil, fmt.Errorf("converting element %d: %w", i, err)
		}
		vals[i] = v
	}
	return scm.NewVector(vals...), nil
}

// fromReflect handles the builtin kinds, including named types defined over them.
func (b *Bridge) fromReflect(x any) (scm.Value, error) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Bool:
		return scm.MakeBoolean(rv.Bool()), nil
	case reflect.String:
		return scm.NewString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scm.NewInteger(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return scm.NewInteger(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return scm.NewReal(rv.Float()), nil
	case reflect.Complex64, reflect.Complex128:
		return scm.NewComplex(rv.Complex()), nil
	case reflect.Slice, reflect.Array:
		return b.fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	default:
		return nil, ErrUnsupportedHostType{Value: x}
	}
}

// FromHostList converts each element of xs and returns them as a proper list.
func (b *Bridge) FromHostList(xs []any) (scm.Value, error) {
	vals := make([]scm.Value, len(xs))
	for i := range xs {
		v, err := b.FromHost(xs[i])
		if err != nil {
			return nil, fmt.Errorf("converting element %d: %w", i, err)
		}
		vals[i] = v
	}
	return scm.MakeList(vals...), nil
}

// ToHost converts a Scheme value to the host value it carries.
//
//	(), undef, ports, procedures -> nil
//	#t, #f     -> bool
//	number     -> int64 if it is an exact integer that fits, else *big.Int, *big.Rat, float64 or complex128
//	character  -> Char
//	string     -> string
//	symbol     -> Symbol
//	pair       -> Pair
//	vector     -> []any
//
// Circular structures cannot be converted.
func ToHost(x scm.Value) (any, error) {
	c := converter{active: make(map[scm.Value]struct{})}
	return c.toHost(x)
}

type converter struct {
	active map[scm.Value]struct{}
}

func (c *converter) enter(x scm.Value) error {
	if _, yes := c.active[x]; yes {
		return scm.ErrInvalidArgument{Op: "to-host", Value: scm.Display(x), Msg: "circular structure"}
	}
	c.active[x] = struct{}{}
	return nil
}

func (c *converter) toHost(x scm.Value) (any, error) {
	switch x := x.(type) {
	case nil, *scm.EmptyList, *scm.Undefined, *scm.Port, *scm.Procedure:
		return nil, nil
	case *scm.Boolean:
		return x.Bool(), nil
	case *scm.Symbol:
		return Symbol(x.Name()), nil
	case *scm.Number:
		return numberToHost(x), nil
	case scm.Char:
		return CharOf(x.Codepoint()), nil
	case *scm.String:
		return x.String(), nil
	case *scm.Vector:
		if err := c.enter(x); err != nil {
			return nil, err
		}
		defer delete(c.active, x)
		elems := x.Elems()
		ret := make([]any, len(elems))
		for i := range elems {
			y, err := c.toHost(elems[i])
			if err != nil {
				return nil, err
			}
			ret[i] = y
		}
		return ret, nil
	case *scm.Pair:
		return c.pairToHost(x)
	default:
		return nil, scm.ErrInvalidArgument{Op: "to-host", Value: x, Msg: "unknown variant"}
	}
}

// pairToHost converts a cdr chain iteratively, building nested Pairs from the end.
func (c *converter) pairToHost(x *scm.Pair) (any, error) {
	var chain []*scm.Pair
	defer func() {
		for _, p := range chain {
			delete(c.active, p)
		}
	}()
	var tail scm.Value = x
	for {
		p, ok := tail.(*scm.Pair)
		if !ok {
			break
		}
		if err := c.enter(p); err != nil {
			return nil, err
		}
		chain = append(chain, p)
		tail = p.Cdr()
	}
	ret, err := c.toHost(tail)
	if err != nil {
		return nil, err
	}
	for i := len(chain) - 1; i >= 0; i-- {
		car, err := c.toHost(chain[i].Car())
		if err != nil {
			return nil, err
		}
		ret = Pair{Car: car, Cdr: ret}
	}
	return ret, nil
}

func numberToHost(n *scm.Number) any {
	switch n.Repr() {
	case scm.ReprInteger:
		if i, ok := n.Int64(); ok {
			return i
		}
		return n.BigInt()
	case scm.ReprRational:
		return n.BigRat()
	case scm.ReprReal:
		return n.Float64()
	default:
		return n.Complex128()
	}
}
