package scm

// Vector is a fixed length sequence of mutable slots.
type Vector struct {
	vs []Value
}

// MakeVector returns a Vector of length n with every slot set to fill.
// A nil fill means False.
func MakeVector(n int, fill Value) (*Vector, error) {
	if n < 0 {
		return nil, ErrInvalidArgument{Op: "make-vector", Value: n, Msg: "negative length"}
	}
	if fill == nil {
		fill = False
	}
	vs := make([]Value, n)
	for i := range vs {
		vs[i] = fill
	}
	return &Vector{vs: vs}, nil
}

// NewVector returns a Vector holding vals.
// The slice is copied. No element may be nil.
func NewVector(vals ...Value) *Vector {
	vs := make([]Value, len(vals))
	for i, x := range vals {
		if x == nil {
			panic("NewVector: nil Value")
		}
		vs[i] = x
	}
	return &Vector{vs: vs}
}

func (*Vector) isValue() {}

func (*Vector) Kind() Kind { return KindVector }

func (v *Vector) Len() int { return len(v.vs) }

func (v *Vector) Ref(k int) (Value, error) {
	if err := checkIndex("vector-ref", k, len(v.vs)); err != nil {
		return nil, err
	}
	return v.vs[k], nil
}

// Set replaces the slot at k, and returns Undef.
func (v *Vector) Set(k int, x Value) (Value, error) {
	if err := checkIndex("vector-set!", k, len(v.vs)); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, ErrInvalidArgument{Op: "vector-set!", Value: x, Msg: "nil value"}
	}
	v.vs[k] = x
	return Undef, nil
}

// Elems returns a copy of the slots.
func (v *Vector) Elems() []Value {
	return append([]Value(nil), v.vs...)
}

func (v *Vector) String() string {
	return newPrinter().vector(v)
}

func asVector(op string, x Value) (*Vector, error) {
	v, ok := x.(*Vector)
	if !ok {
		return nil, wrongKind(op, x, KindVector)
	}
	return v, nil
}

func VectorLength(x Value) (*Number, error) {
	v, err := asVector("vector-length", x)
	if err != nil {
		return nil, err
	}
	return NewInteger(v.Len()), nil
}

func VectorRef(x Value, k int) (Value, error) {
	v, err := asVector("vector-ref", x)
	if err != nil {
		return nil, err
	}
	return v.Ref(k)
}

func VectorSet(x Value, k int, y Value) (Value, error) {
	v, err := asVector("vector-set!", x)
	if err != nil {
		return nil, err
	}
	return v.Set(k, y)
}

// VectorToList returns a fresh proper list of the elements of a Vector.
func VectorToList(x Value) (Value, error) {
	v, err := asVector("vector->list", x)
	if err != nil {
		return nil, err
	}
	return MakeList(v.vs...), nil
}

