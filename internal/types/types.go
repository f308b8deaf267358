package types

// Type is the closed set of Mica types. The parser builds these from type
// syntax and the checker reuses them unmodified; equality is structural.
type Type interface {
	isType()
	String() string
}

// Primitive is one of the five built-in scalar types.
type Primitive int

const (
	Int Primitive = iota
	Float
	Bool
	Char
	Void
)

var primitiveNames = [...]string{"int", "float", "bool", "char", "void"}

func (p Primitive) isType() {}

func (p Primitive) String() string { return primitiveNames[p] }

// Pointer is a pointer to an element type.
type Pointer struct {
	Elem Type
}

func (Pointer) isType() {}

func (p Pointer) String() string { return "*" + p.Elem.String() }

// Struct is a reference to a named struct definition. Field layout lives in
// the checker's struct table, not here.
type Struct struct {
	Name string
}

func (Struct) isType() {}

func (s Struct) String() string { return "struct " + s.Name }

// Equal reports structural type equality.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Primitive:
		bt, ok := b.(Primitive)
		return ok && at == bt
	case Pointer:
		bt, ok := b.(Pointer)
		return ok && Equal(at.Elem, bt.Elem)
	case Struct:
		bt, ok := b.(Struct)
		return ok && at.Name == bt.Name
	}
	return false
}

// IsPointer reports whether t is a pointer type.
func IsPointer(t Type) bool {
	_, ok := t.(Pointer)
	return ok
}

// IsNumeric reports whether t participates in arithmetic: int, float, char,
// or any pointer type.
func IsNumeric(t Type) bool {
	switch tt := t.(type) {
	case Primitive:
		return tt == Int || tt == Float || tt == Char
	case Pointer:
		return true
	}
	return false
}

// PointerTo wraps t in a pointer type.
func PointerTo(t Type) Pointer { return Pointer{Elem: t} }

// CharPointer is the type of string literals and printf's format argument.
func CharPointer() Pointer { return Pointer{Elem: Char} }

// VoidPointer is the type of the null literal and malloc's result.
func VoidPointer() Pointer { return Pointer{Elem: Void} }
