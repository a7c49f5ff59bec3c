// package scm implements the runtime values of a Scheme-like language.
//
// Every value is one of a closed set of variants, tagged by Kind.
// The canonical constants True, False, Empty and Undef are allocated once and
// compared by identity; nothing in this package allocates a second copy of them.
package scm

import "fmt"

// Value is the common interface implemented by all Scheme values.
// It serves as a Sum type; the unexported method keeps the set of variants closed.
type Value interface {
	// Kind returns the variant tag of the value.
	Kind() Kind
	// String returns the display notation of the value.
	String() string

	isValue()
}

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindSymbol
	KindNumber
	KindChar
	KindString
	KindVector
	KindPair
	KindEmptyList
	KindUndef
	KindPort
	KindProcedure
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindSymbol:
		return "symbol"
	case KindNumber:
		return "number"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindPair:
		return "pair"
	case KindEmptyList:
		return "empty-list"
	case KindUndef:
		return "undef"
	case KindPort:
		return "port"
	case KindProcedure:
		return "procedure"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func isKind(x Value, k Kind) *Boolean {
	return MakeBoolean(x != nil && x.Kind() == k)
}

func IsBoolean(x Value) *Boolean   { return isKind(x, KindBoolean) }
func IsSymbol(x Value) *Boolean    { return isKind(x, KindSymbol) }
func IsNumber(x Value) *Boolean    { return isKind(x, KindNumber) }
func IsChar(x Value) *Boolean      { return isKind(x, KindChar) }
func IsString(x Value) *Boolean    { return isKind(x, KindString) }
func IsVector(x Value) *Boolean    { return isKind(x, KindVector) }
func IsPair(x Value) *Boolean      { return isKind(x, KindPair) }
func IsPort(x Value) *Boolean      { return isKind(x, KindPort) }
func IsProcedure(x Value) *Boolean { return isKind(x, KindProcedure) }

// Truthy reports whether x counts as true to an evaluator.
// Everything except False is true, including the empty list.
func Truthy(x Value) bool {
	return x != Value(False)
}

// Display returns the display notation of x.
func Display(x Value) string {
	if x == nil {
		return "<nil>"
	}
	return x.String()
}
