package scm

import (
	"go.brendoncarroll.net/exp/slices2"
)

// MakeList returns a proper list of vals, in order.
// With no arguments it returns Empty.
func MakeList(vals ...Value) Value {
	var ret Value = Empty
	for i := len(vals) - 1; i >= 0; i-- {
		ret = Cons(vals[i], ret)
	}
	return ret
}

// IsNull reports whether x is the empty list.
func IsNull(x Value) bool {
	return x == Value(Empty)
}

// ToSlice returns the elements of a proper list.
func ToSlice(list Value) ([]Value, error) {
	return toSlice("list->slice", list)
}

func toSlice(op string, list Value) ([]Value, error) {
	if !IsProperList(list).Bool() {
		return nil, ErrNotAProperList{Op: op, Value: list}
	}
	var ret []Value
	for x := list; x != Value(Empty); {
		p := x.(*Pair)
		ret = append(ret, p.car)
		x = p.cdr
	}
	return ret, nil
}

// Length returns the number of Pairs in a proper list.
func Length(list Value) (int, error) {
	if !IsProperList(list).Bool() {
		return 0, ErrNotAProperList{Op: "length", Value: list}
	}
	n := 0
	for x := list; x != Value(Empty); x = x.(*Pair).cdr {
		n++
	}
	return n, nil
}

// LengthNumber is Length with the result as an exact integer.
func LengthNumber(list Value) (*Number, error) {
	n, err := Length(list)
	if err != nil {
		return nil, err
	}
	return NewInteger(n), nil
}

// Append returns a new list of the elements of a followed by b.
// b is not copied, it becomes the tail of the result, and may be any value.
// If a is Empty, b is returned unchanged.
func Append(a, b Value) (Value, error) {
	elems, err := toSlice("append", a)
	if err != nil {
		return nil, err
	}
	ret := b
	for i := len(elems) - 1; i >= 0; i-- {
		ret = Cons(elems[i], ret)
	}
	return ret, nil
}

// Reverse returns a new proper list with the elements of list in the opposite order.
func Reverse(list Value) (Value, error) {
	if !IsProperList(list).Bool() {
		return nil, ErrNotAProperList{Op: "reverse", Value: list}
	}
	var ret Value = Empty
	for x := list; x != Value(Empty); x = x.(*Pair).cdr {
		ret = Cons(x.(*Pair).car, ret)
	}
	return ret, nil
}

// ListRef returns the element at index k of a proper list.
func ListRef(list Value, k int) (Value, error) {
	n, err := Length(list)
	if err != nil {
		return nil, ErrNotAProperList{Op: "list-ref", Value: list}
	}
	if err := checkIndex("list-ref", k, n); err != nil {
		return nil, err
	}
	x := list.(*Pair)
	for ; k > 0; k-- {
		x = x.cdr.(*Pair)
	}
	return x.car, nil
}

// Map applies fn to each element of a proper list, in order, and returns the results as a slice.
// Use MakeList to turn the results back into a list.
func Map[T any](list Value, fn func(Value) T) ([]T, error) {
	elems, err := toSlice("map", list)
	if err != nil {
		return nil, err
	}
	return slices2.Map(elems, fn), nil
}
