package scmhost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"rubeme.org/rubeme/scm"
)

// DecodeJSON parses a JSON document into Scheme values.
//
//	null    -> ()
//	bool    -> #t, #f
//	number  -> exact integer if it has no fraction or exponent, else real
//	string  -> string
//	array   -> vector
//	object  -> association list ((key . value) ...) with symbol keys, sorted by key
//
// An empty object decodes to (), the same as null.
// A number beyond the range of a float64 is an ErrInvalidArgument.
func (b *Bridge) DecodeJSON(ctx context.Context, data []byte) (scm.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode json: trailing data after offset %d", dec.InputOffset())
	}
	return b.fromJSON(ctx, x)
}

func (b *Bridge) fromJSON(ctx context.Context, x any) (scm.Value, error) {
	switch x := x.(type) {
	case nil:
		return scm.Empty, nil
	case bool:
		return scm.MakeBoolean(x), nil
	case string:
		return scm.NewString(x), nil
	case json.Number:
		return jsonNumber(ctx, x)
	case []any:
		vals := make([]scm.Value, len(x))
		for i := range x {
			v, err := b.fromJSON(ctx, x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return scm.NewVector(vals...), nil
	case map[string]any:
		keys := maps.Keys(x)
		slices.Sort(keys)
		entries := make([]scm.Value, len(keys))
		for i, k := range keys {
			v, err := b.fromJSON(ctx, x[k])
			if err != nil {
				return nil, err
			}
			entries[i] = scm.Cons(b.symbols.Intern(k), v)
		}
		return scm.MakeList(entries...), nil
	default:
		return nil, ErrUnsupportedHostType{Value: x}
	}
}

func jsonNumber(ctx context.Context, x json.Number) (scm.Value, error) {
	s := x.String()
	if i, ok := new(big.Int).SetString(s, 10); ok {
		if i.IsInt64() {
			return scm.NewInteger(i.Int64()), nil
		}
		return scm.NewBigInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if isRangeErr(err) {
		return nil, scm.ErrInvalidArgument{Op: "decode-json", Value: s, Msg: "number out of float range"}
	}
	if err != nil {
		return nil, fmt.Errorf("decode json number %q: %w", s, err)
	}
	if exact, ok := new(big.Rat).SetString(s); ok && new(big.Rat).SetFloat64(f).Cmp(exact) != 0 {
		logctx.Debug(ctx, "json number rounded to nearest float", zap.String("number", s), zap.Float64("float", f))
	}
	return scm.NewReal(f), nil
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// EncodeJSON renders a Scheme value as JSON.
// It is the inverse of DecodeJSON: vectors become arrays, association lists with symbol keys become objects,
// and other proper lists become arrays.
// Characters and symbols become strings.
// Values with no JSON form, like procedures, dotted pairs, inexact non-finite numbers and non-integer rationals,
// are an ErrInvalidArgument, and so are circular structures.
func EncodeJSON(x scm.Value) ([]byte, error) {
	enc := jsonEncoder{active: make(map[scm.Value]struct{})}
	y, err := enc.toJSON(x)
	if err != nil {
		return nil, err
	}
	return json.Marshal(y)
}

// jsonEncoder tracks the containers on the current path.
type jsonEncoder struct {
	active map[scm.Value]struct{}
}

func (e *jsonEncoder) enter(x scm.Value) error {
	if _, yes := e.active[x]; yes {
		return noJSON(x, "circular structure")
	}
	e.active[x] = struct{}{}
	return nil
}

func (e *jsonEncoder) toJSON(x scm.Value) (any, error) {
	switch x := x.(type) {
	case *scm.EmptyList:
		return nil, nil
	case *scm.Boolean:
		return x.Bool(), nil
	case *scm.Number:
		return numberToJSON(x)
	case scm.Char:
		return string(x.Codepoint()), nil
	case *scm.Symbol:
		return x.Name(), nil
	case *scm.String:
		return x.String(), nil
	case *scm.Vector:
		if err := e.enter(x); err != nil {
			return nil, err
		}
		defer delete(e.active, x)
		return e.elemsToJSON(x.Elems())
	case *scm.Pair:
		return e.listToJSON(x)
	default:
		return nil, noJSON(x, "no json form")
	}
}

func (e *jsonEncoder) listToJSON(x *scm.Pair) (any, error) {
	elems, err := scm.ToSlice(x)
	if err != nil {
		return nil, noJSON(x, "dotted or circular list")
	}
	// every pair of the spine is on the path while the elements are encoded
	var spine []scm.Value
	defer func() {
		for _, p := range spine {
			delete(e.active, p)
		}
	}()
	for tail := scm.Value(x); tail != scm.Value(scm.Empty); tail = tail.(*scm.Pair).Cdr() {
		if err := e.enter(tail); err != nil {
			return nil, err
		}
		spine = append(spine, tail)
	}
	if !isAlist(elems) {
		return e.elemsToJSON(elems)
	}
	obj := make(map[string]any, len(elems))
	for _, el := range elems {
		p := el.(*scm.Pair)
		if err := e.enter(p); err != nil {
			return nil, err
		}
		v, err := e.toJSON(p.Cdr())
		delete(e.active, p)
		if err != nil {
			return nil, err
		}
		obj[p.Car().(*scm.Symbol).Name()] = v
	}
	return obj, nil
}

func (e *jsonEncoder) elemsToJSON(elems []scm.Value) ([]any, error) {
	ret := make([]any, len(elems))
	for i := range elems {
		y, err := e.toJSON(elems[i])
		if err != nil {
			return nil, err
		}
		ret[i] = y
	}
	return ret, nil
}

func isAlist(elems []scm.Value) bool {
	for _, e := range elems {
		p, ok := e.(*scm.Pair)
		if !ok {
			return false
		}
		if _, ok := p.Car().(*scm.Symbol); !ok {
			return false
		}
	}
	return len(elems) > 0
}

func numberToJSON(n *scm.Number) (any, error) {
	if n.Exact() {
		if bi := n.BigInt(); bi != nil {
			return json.Number(bi.String()), nil
		}
		return nil, noJSON(n, "non-integer rational")
	}
	if !n.IsReal() {
		return nil, noJSON(n, "complex number")
	}
	f := n.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, noJSON(n, "non-finite number")
	}
	return f, nil
}

func noJSON(x scm.Value, msg string) error {
	return scm.ErrInvalidArgument{Op: "encode-json", Value: scm.Display(x), Msg: msg}
}
