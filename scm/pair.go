package scm

// Pair is a cons cell: two mutable slots, car and cdr.
// Pairs may be shared between structures; mutating a shared Pair is visible through every reference to it.
type Pair struct {
	car, cdr Value
}

// Cons always allocates a new Pair.
// Neither slot may be nil.
func Cons(car, cdr Value) *Pair {
	if car == nil || cdr == nil {
		panic("Cons: nil Value")
	}
	return &Pair{car: car, cdr: cdr}
}

func (*Pair) isValue() {}

func (*Pair) Kind() Kind { return KindPair }

func (p *Pair) Car() Value { return p.car }

func (p *Pair) Cdr() Value { return p.cdr }

// SetCar replaces the car, and returns Undef.
// x must not be nil.
func (p *Pair) SetCar(x Value) Value {
	if x == nil {
		panic("Pair.SetCar: nil Value")
	}
	p.car = x
	return Undef
}

// SetCdr replaces the cdr, and returns Undef.
// x must not be nil.
func (p *Pair) SetCdr(x Value) Value {
	if x == nil {
		panic("Pair.SetCdr: nil Value")
	}
	p.cdr = x
	return Undef
}

// String renders a proper list as (a b c) and anything else as (car . cdr),
// applying the same rule to nested pairs.
func (p *Pair) String() string {
	return newPrinter().pair(p)
}

func asPair(op string, x Value) (*Pair, error) {
	p, ok := x.(*Pair)
	if !ok {
		return nil, wrongKind(op, x, KindPair)
	}
	return p, nil
}

func Car(x Value) (Value, error) {
	p, err := asPair("car", x)
	if err != nil {
		return nil, err
	}
	return p.car, nil
}

func Cdr(x Value) (Value, error) {
	p, err := asPair("cdr", x)
	if err != nil {
		return nil, err
	}
	return p.cdr, nil
}

func SetCar(x, y Value) (Value, error) {
	p, err := asPair("set-car!", x)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, ErrInvalidArgument{Op: "set-car!", Value: y, Msg: "nil value"}
	}
	return p.SetCar(y), nil
}

func SetCdr(x, y Value) (Value, error) {
	p, err := asPair("set-cdr!", x)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, ErrInvalidArgument{Op: "set-cdr!", Value: y, Msg: "nil value"}
	}
	return p.SetCdr(y), nil
}

// cxr follows path from right to left, 'a' for car and 'd' for cdr.
func cxr(op, path string, x Value) (Value, error) {
	for i := len(path) - 1; i >= 0; i-- {
		p, err := asPair(op, x)
		if err != nil {
			return nil, err
		}
		if path[i] == 'a' {
			x = p.car
		} else {
			x = p.cdr
		}
	}
	return x, nil
}

func Caar(x Value) (Value, error) { return cxr("caar", "aa", x) }
func Cadr(x Value) (Value, error) { return cxr("cadr", "ad", x) }
func Cdar(x Value) (Value, error) { return cxr("cdar", "da", x) }
func Cddr(x Value) (Value, error) { return cxr("cddr", "dd", x) }

// IsProperList returns True if x is Empty, or a chain of Pairs ending in Empty.
// Circular chains are not proper lists.
func IsProperList(x Value) *Boolean {
	switch x := x.(type) {
	case *EmptyList:
		return True
	case *Pair:
		return MakeBoolean(isProperList(x))
	default:
		return False
	}
}

// isProperList walks the cdr chain with two cursors, one twice as fast,
// so that a cycle is detected in a bounded number of steps.
func isProperList(x *Pair) bool {
	var slow, fast Value = x, x
	for {
		fp, ok := fast.(*Pair)
		if !ok {
			return fast == Value(Empty)
		}
		fast = fp.cdr
		fp, ok = fast.(*Pair)
		if !ok {
			return fast == Value(Empty)
		}
		fast = fp.cdr
		slow = slow.(*Pair).cdr
		if fast == slow {
			return false
		}
	}
}
