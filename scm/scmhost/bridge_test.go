package scmhost

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"rubeme.org/rubeme/scm"
)

type myInt int

type myString string

func TestFromHost(t *testing.T) {
	t.Parallel()
	type testCase struct {
		I any
		O string
	}
	tcs := []testCase{
		{I: nil, O: "()"},
		{I: true, O: "#t"},
		{I: false, O: "#f"},
		{I: 5, O: "5"},
		{I: int8(-3), O: "-3"},
		{I: uint64(math.MaxUint64), O: "18446744073709551615"},
		{I: myInt(7), O: "7"},
		{I: 1.5, O: "1.5"},
		{I: float32(2), O: "2.0"},
		{I: complex(1, 2), O: "1.0+2.0i"},
		{I: big.NewInt(12), O: "12"},
		{I: big.NewRat(1, 3), O: "1/3"},
		{I: "abc", O: "abc"},
		{I: myString("def"), O: "def"},
		{I: CharOf('a'), O: `#\a`},
		{I: Symbol("foo"), O: "foo"},
		{I: Pair{1, 2}, O: "(1 . 2)"},
		{I: Pair{1, Pair{2, nil}}, O: "(1 2)"},
		{I: &Pair{1, &Pair{2, 3}}, O: "(1 . (2 . 3))"},
		{I: (*Pair)(nil), O: "()"},
		{I: Pair{Pair{1, nil}, nil}, O: "((1))"},
		{I: []any{1, "a", nil}, O: "#(1 a ())"},
		{I: []int{1, 2}, O: "#(1 2)"},
		{I: [2]bool{true, false}, O: "#(#t #f)"},
		{I: []any{}, O: "#()"},
		{I: scm.True, O: "#t"},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b := New(nil)
			out, err := b.FromHost(tc.I)
			require.NoError(t, err)
			require.Equal(t, tc.O, scm.Display(out))
		})
	}
}

func TestFromHostKinds(t *testing.T) {
	t.Parallel()
	b := New(nil)
	for _, tc := range []struct {
		I    any
		Kind scm.Kind
	}{
		{I: nil, Kind: scm.KindEmptyList},
		{I: false, Kind: scm.KindBoolean},
		{I: 'a', Kind: scm.KindNumber}, // a bare rune is an int32
		{I: CharOf('a'), Kind: scm.KindChar},
		{I: "a", Kind: scm.KindString},
		{I: Symbol("a"), Kind: scm.KindSymbol},
		{I: []string{"a"}, Kind: scm.KindVector},
		{I: Pair{1, nil}, Kind: scm.KindPair},
	} {
		out, err := b.FromHost(tc.I)
		require.NoError(t, err)
		require.Equal(t, tc.Kind, out.Kind(), "%#v", tc.I)
	}
}

func TestFromHostIdentity(t *testing.T) {
	t.Parallel()
	b := New(nil)
	out, err := b.FromHost(nil)
	require.NoError(t, err)
	require.Same(t, scm.Empty, out)
	out, err = b.FromHost(true)
	require.NoError(t, err)
	require.Same(t, scm.True, out)

	p := scm.Cons(scm.NewInteger(1), scm.Empty)
	out, err = b.FromHost(p)
	require.NoError(t, err)
	require.Same(t, p, out)

	// symbols are interned in the bridge's table
	sym, err := b.FromHost(Symbol("foo"))
	require.NoError(t, err)
	require.Same(t, b.Symbols().Intern("foo"), sym)
	sym2, err := b.FromHost(Symbol("foo"))
	require.NoError(t, err)
	require.Same(t, sym, sym2)

	// bridges can share a table
	st := scm.NewSymbolTable()
	sym3, err := New(st).FromHost(Symbol("bar"))
	require.NoError(t, err)
	sym4, err := New(st).FromHost(Symbol("bar"))
	require.NoError(t, err)
	require.Same(t, sym3, sym4)
}

func TestFromHostUnsupported(t *testing.T) {
	t.Parallel()
	b := New(nil)
	for _, x := range []any{
		map[string]int{},
		struct{}{},
		make(chan int),
		uintptr(1),
		func() {},
		(*big.Int)(nil),
		[]any{1, struct{}{}},
		Pair{1, map[int]int{}},
	} {
		var typeErr ErrUnsupportedHostType
		_, err := b.FromHost(x)
		require.ErrorAs(t, err, &typeErr, "%#v", x)
	}
}

func TestFromHostList(t *testing.T) {
	t.Parallel()
	b := New(nil)
	out, err := b.FromHostList([]any{1, "a", nil, []any{true}})
	require.NoError(t, err)
	require.Equal(t, "(1 a () #(#t))", scm.Display(out))

	out, err = b.FromHostList(nil)
	require.NoError(t, err)
	require.Same(t, scm.Empty, out)

	var typeErr ErrUnsupportedHostType
	_, err = b.FromHostList([]any{1, struct{}{}})
	require.ErrorAs(t, err, &typeErr)
}

func TestLongHostList(t *testing.T) {
	t.Parallel()
	const n = 100_000
	var x any
	for i := n - 1; i >= 0; i-- {
		x = Pair{i, x}
	}
	b := New(nil)
	l, err := b.FromHost(x)
	require.NoError(t, err)
	length, err := scm.Length(l)
	require.NoError(t, err)
	require.Equal(t, n, length)

	y, err := ToHost(l)
	require.NoError(t, err)
	require.Equal(t, int64(0), y.(Pair).Car)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	tcs := []any{
		nil,
		true,
		false,
		int64(5),
		int64(math.MinInt64),
		1.5,
		complex(1, -2),
		"abc",
		CharOf('x'),
		Symbol("sym"),
		Pair{int64(1), int64(2)},
		Pair{int64(1), Pair{int64(2), nil}},
		Pair{Pair{"a", nil}, Pair{[]any{true}, nil}},
		[]any{int64(1), "a", []any{}},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b := New(nil)
			x, err := b.FromHost(tc)
			require.NoError(t, err)
			y, err := ToHost(x)
			require.NoError(t, err)
			require.Equal(t, tc, y)
		})
	}
}

func TestToHostNumbers(t *testing.T) {
	t.Parallel()
	big1 := new(big.Int).Lsh(big.NewInt(1), 100)
	y, err := ToHost(scm.NewBigInt(big1))
	require.NoError(t, err)
	require.Equal(t, 0, big1.Cmp(y.(*big.Int)))

	q, err := scm.NewRational(1, 3)
	require.NoError(t, err)
	y, err = ToHost(q)
	require.NoError(t, err)
	require.Equal(t, 0, big.NewRat(1, 3).Cmp(y.(*big.Rat)))

	y, err = ToHost(scm.NewReal(2.0))
	require.NoError(t, err)
	require.Equal(t, 2.0, y)
}

func TestToHostSpecial(t *testing.T) {
	t.Parallel()
	for _, x := range []scm.Value{scm.Empty, scm.Undef, scm.NewPort("stdin"), scm.NewProcedure("car")} {
		y, err := ToHost(x)
		require.NoError(t, err)
		require.Nil(t, y)
	}
}

func TestToHostCircular(t *testing.T) {
	t.Parallel()
	var argErr scm.ErrInvalidArgument

	p := scm.Cons(scm.NewInteger(1), scm.Empty)
	p.SetCdr(p)
	_, err := ToHost(p)
	require.ErrorAs(t, err, &argErr)

	q := scm.Cons(scm.NewInteger(1), scm.Empty)
	q.SetCar(q)
	_, err = ToHost(q)
	require.ErrorAs(t, err, &argErr)

	v := scm.NewVector(scm.Empty)
	_, err = v.Set(0, v)
	require.NoError(t, err)
	_, err = ToHost(v)
	require.ErrorAs(t, err, &argErr)

	// sharing without a cycle is fine
	tail := scm.MakeList(scm.NewInteger(1))
	y, err := ToHost(scm.NewVector(tail, tail))
	require.NoError(t, err)
	require.Equal(t, []any{Pair{int64(1), nil}, Pair{int64(1), nil}}, y)
}
