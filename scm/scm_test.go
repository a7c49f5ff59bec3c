package scm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testValues returns one value of each variant, in Kind order.
func testValues() []Value {
	st := NewSymbolTable()
	return []Value{
		True,
		st.Intern("abc"),
		NewInteger(1),
		NewChar('a'),
		NewString("hello"),
		NewVector(NewInteger(1), NewInteger(2)),
		Cons(NewInteger(1), NewInteger(2)),
		Empty,
		Undef,
		NewPort("stdin"),
		NewProcedure("car"),
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()
	vals := testValues()
	for i, v := range vals {
		require.Equal(t, Kind(i), v.Kind(), "%v", v)
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()
	preds := map[Kind]func(Value) *Boolean{
		KindBoolean:   IsBoolean,
		KindSymbol:    IsSymbol,
		KindNumber:    IsNumber,
		KindChar:      IsChar,
		KindString:    IsString,
		KindVector:    IsVector,
		KindPair:      IsPair,
		KindPort:      IsPort,
		KindProcedure: IsProcedure,
	}
	for _, v := range testValues() {
		for k, pred := range preds {
			// predicates return the canonical instances
			if v.Kind() == k {
				assert.Same(t, True, pred(v), "%v %v", k, v)
			} else {
				assert.Same(t, False, pred(v), "%v %v", k, v)
			}
		}
	}
	assert.Same(t, False, IsPair(nil))
}

func TestSingletons(t *testing.T) {
	t.Parallel()
	require.Same(t, True, MakeBoolean(true))
	require.Same(t, False, MakeBoolean(false))
	require.Same(t, Empty, MakeList())
	require.NotEqual(t, Value(Empty), Value(Undef))

	p := Cons(Empty, Empty)
	require.Same(t, Undef, p.SetCar(True))
	require.Same(t, Undef, p.SetCdr(Empty))
}

func TestTruthy(t *testing.T) {
	t.Parallel()
	for _, v := range testValues() {
		require.True(t, Truthy(v), "%v", v)
	}
	require.True(t, Truthy(Empty))
	require.False(t, Truthy(False))
	require.False(t, False.Bool())
	require.True(t, True.Bool())
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	st := NewSymbolTable()
	type testCase struct {
		I Value
		O string
	}
	tcs := []testCase{
		{I: True, O: "#t"},
		{I: False, O: "#f"},
		{I: st.Intern("lambda"), O: "lambda"},
		{I: NewInteger(-42), O: "-42"},
		{I: NewChar('a'), O: `#\a`},
		{I: NewChar('あ'), O: `#\あ`},
		{I: NewString("hello world"), O: "hello world"},
		{I: NewVector(NewInteger(1), NewString("a"), Empty), O: "#(1 a ())"},
		{I: NewVector(), O: "#()"},
		{I: Empty, O: "()"},
		{I: Undef, O: "#<undef>"},
		{I: NewPort("stdout"), O: "#<port stdout>"},
		{I: NewProcedure(""), O: "#<procedure>"},
		{I: Cons(NewInteger(1), Empty), O: "(1)"},
		{I: Cons(NewInteger(1), NewInteger(2)), O: "(1 . 2)"},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, tc.O, Display(tc.I))
		})
	}
}

func TestVector(t *testing.T) {
	t.Parallel()
	v, err := MakeVector(3, MakeBoolean(false))
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	for i := 0; i < v.Len(); i++ {
		x, err := v.Ref(i)
		require.NoError(t, err)
		require.Same(t, False, x)
	}

	out, err := VectorSet(v, 1, NewInteger(9))
	require.NoError(t, err)
	require.Same(t, Undef, out)
	x, err := VectorRef(v, 1)
	require.NoError(t, err)
	require.Equal(t, "9", Display(x))

	var rangeErr ErrIndexOutOfRange
	_, err = VectorRef(v, 3)
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, 3, rangeErr.Index)
	_, err = VectorRef(v, -1)
	require.ErrorAs(t, err, &rangeErr)

	// a failed write does not touch the vector
	_, err = VectorSet(v, 3, True)
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "#(#f 9 #f)", Display(v))

	var argErr ErrInvalidArgument
	_, err = VectorRef(NewString("abc"), 0)
	require.ErrorAs(t, err, &argErr)
	_, err = MakeVector(-1, nil)
	require.ErrorAs(t, err, &argErr)

	dflt, err := MakeVector(2, nil)
	require.NoError(t, err)
	require.Equal(t, "#(#f #f)", Display(dflt))

	n, err := VectorLength(v)
	require.NoError(t, err)
	require.Equal(t, "3", n.String())

	l, err := VectorToList(v)
	require.NoError(t, err)
	require.Equal(t, "(#f 9 #f)", Print(l))
}

func TestVectorSelfReference(t *testing.T) {
	t.Parallel()
	v := NewVector(NewInteger(1), Empty)
	_, err := v.Set(1, v)
	require.NoError(t, err)
	require.Equal(t, "#(1 ...)", Display(v))
}

func TestString(t *testing.T) {
	t.Parallel()
	s := NewString("héllo")
	require.Equal(t, 5, s.Len())
	c, err := StringRef(s, 1)
	require.NoError(t, err)
	require.Equal(t, NewChar('é'), c)

	out, err := StringSet(s, 0, NewChar('j'))
	require.NoError(t, err)
	require.Same(t, Undef, out)
	require.Equal(t, "jéllo", Display(s))

	var rangeErr ErrIndexOutOfRange
	_, err = StringRef(s, 5)
	require.ErrorAs(t, err, &rangeErr)
	_, err = StringSet(s, -1, NewChar('x'))
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "jéllo", Display(s))

	var argErr ErrInvalidArgument
	_, err = StringSet(s, 0, NewInteger(1))
	require.ErrorAs(t, err, &argErr)
	_, err = StringLength(NewInteger(1))
	require.ErrorAs(t, err, &argErr)

	n, err := StringLength(s)
	require.NoError(t, err)
	require.Equal(t, "5", n.String())

	s2, err := MakeString(3, NewChar('z'))
	require.NoError(t, err)
	require.Equal(t, "zzz", s2.String())
}
