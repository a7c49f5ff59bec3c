package scm

// String is a mutable sequence of characters.
type String struct {
	rs []rune
}

func NewString(s string) *String {
	return &String{rs: []rune(s)}
}

// MakeString returns a String of n copies of fill.
func MakeString(n int, fill Char) (*String, error) {
	if n < 0 {
		return nil, ErrInvalidArgument{Op: "make-string", Value: n, Msg: "negative length"}
	}
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = rune(fill)
	}
	return &String{rs: rs}, nil
}

func (*String) isValue() {}

func (*String) Kind() Kind { return KindString }

func (s *String) Len() int { return len(s.rs) }

func (s *String) Ref(k int) (Char, error) {
	if err := checkIndex("string-ref", k, len(s.rs)); err != nil {
		return 0, err
	}
	return Char(s.rs[k]), nil
}

// Set replaces the character at k, and returns Undef.
func (s *String) Set(k int, c Char) (Value, error) {
	if err := checkIndex("string-set!", k, len(s.rs)); err != nil {
		return nil, err
	}
	s.rs[k] = rune(c)
	return Undef, nil
}

// String returns the literal text, without quoting.
func (s *String) String() string {
	return string(s.rs)
}

func asString(op string, x Value) (*String, error) {
	s, ok := x.(*String)
	if !ok {
		return nil, wrongKind(op, x, KindString)
	}
	return s, nil
}

func StringLength(x Value) (*Number, error) {
	s, err := asString("string-length", x)
	if err != nil {
		return nil, err
	}
	return NewInteger(s.Len()), nil
}

func StringRef(x Value, k int) (Char, error) {
	s, err := asString("string-ref", x)
	if err != nil {
		return 0, err
	}
	return s.Ref(k)
}

func StringSet(x Value, k int, c Value) (Value, error) {
	s, err := asString("string-set!", x)
	if err != nil {
		return nil, err
	}
	ch, ok := c.(Char)
	if !ok {
		return nil, wrongKind("string-set!", c, KindChar)
	}
	return s.Set(k, ch)
}
