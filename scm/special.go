package scm

// EmptyList is the type of Empty, which terminates every proper list.
type EmptyList struct {
	_ byte
}

// Empty is the empty list.  It is true to an evaluator.
var Empty = &EmptyList{}

func (*EmptyList) isValue() {}

func (*EmptyList) Kind() Kind { return KindEmptyList }

func (*EmptyList) String() string { return "()" }

// Undefined is the type of Undef.
type Undefined struct {
	_ byte
}

// Undef is returned by operations which have no useful result, like the mutators.
var Undef = &Undefined{}

func (*Undefined) isValue() {}

func (*Undefined) Kind() Kind { return KindUndef }

func (*Undefined) String() string { return "#<undef>" }

// Port is a placeholder for I/O ports.
type Port struct {
	Name string
}

func NewPort(name string) *Port {
	return &Port{Name: name}
}

func (*Port) isValue() {}

func (*Port) Kind() Kind { return KindPort }

func (p *Port) String() string {
	if p.Name == "" {
		return "#<port>"
	}
	return "#<port " + p.Name + ">"
}

// Procedure is a placeholder for callable values.
type Procedure struct {
	Name string
}

func NewProcedure(name string) *Procedure {
	return &Procedure{Name: name}
}

func (*Procedure) isValue() {}

func (*Procedure) Kind() Kind { return KindProcedure }

func (p *Procedure) String() string {
	if p.Name == "" {
		return "#<procedure>"
	}
	return "#<procedure " + p.Name + ">"
}
