package scm

// Boolean is either True or False.
// Do not construct Booleans directly; use MakeBoolean, True or False.
type Boolean struct {
	b bool
}

var (
	// False is the only value that is false to an evaluator.
	False = &Boolean{b: false}
	True  = &Boolean{b: true}
)

// MakeBoolean returns the canonical Boolean for b.
func MakeBoolean(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

func (*Boolean) isValue() {}

func (*Boolean) Kind() Kind {
	return KindBoolean
}

// Bool returns the Go bool for the Boolean.
func (b *Boolean) Bool() bool {
	return b == True
}

func (b *Boolean) String() string {
	if b.Bool() {
		return "#t"
	}
	return "#f"
}
