package scm

import "fmt"

// ErrInvalidArgument is returned when an operation is given a value of the wrong variant,
// or a value it cannot accept.
type ErrInvalidArgument struct {
	Op    string
	Value any
	Msg   string
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("%s: invalid argument %v: %s", e.Op, e.Value, e.Msg)
}

// ErrIndexOutOfRange is returned when an index falls outside [0, Len).
type ErrIndexOutOfRange struct {
	Op    string
	Index int
	Len   int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// ErrNotAProperList is returned by list operations given a dotted, circular or non-list chain.
type ErrNotAProperList struct {
	Op    string
	Value Value
}

func (e ErrNotAProperList) Error() string {
	return fmt.Sprintf("%s: proper list required, got %v", e.Op, describe(e.Value))
}

func wrongKind(op string, x Value, want Kind) ErrInvalidArgument {
	have := "nil"
	if x != nil {
		have = x.Kind().String()
	}
	return ErrInvalidArgument{Op: op, Value: describe(x), Msg: fmt.Sprintf("want %v, have %v", want, have)}
}

func checkIndex(op string, k, l int) error {
	if k < 0 || k >= l {
		return ErrIndexOutOfRange{Op: op, Index: k, Len: l}
	}
	return nil
}

func describe(x Value) string {
	return Display(x)
}
