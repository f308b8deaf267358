package ast

import "mica/internal/types"

// BinOp is the closed set of binary operators.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mult
	Div
	BitAnd
	BitOr
	And
	Or
	Pow
	Eq
	Neq
	Lt
	Leq
	Gt
	Geq
)

var binOpNames = [...]string{
	"+", "-", "*", "/", "&", "|", "&&", "||", "^",
	"==", "!=", "<", "<=", ">", ">=",
}

func (op BinOp) String() string { return binOpNames[op] }

// IsRelational reports whether op compares its operands and yields bool.
func (op BinOp) IsRelational() bool { return op >= Eq }

// UnOp is the closed set of prefix operators. Address-of and dereference are
// separate node shapes, not UnaryExpr operators.
type UnOp int

const (
	Neg UnOp = iota
	Not
)

var unOpNames = [...]string{"-", "!"}

func (op UnOp) String() string { return unOpNames[op] }

// IntLit is an integer literal like "42".
type IntLit struct {
	Pos    Position
	EndPos Position
	Value  int64
}

// FloatLit is a floating-point literal like "4.2".
type FloatLit struct {
	Pos    Position
	EndPos Position
	Value  float64
}

// BoolLit is "true" or "false".
type BoolLit struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// CharLit is a character literal like "'a'".
type CharLit struct {
	Pos    Position
	EndPos Position
	Value  rune
}

// StringLit is a string literal; its type is *char.
type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// NullLit is the "null" literal.
type NullLit struct {
	Pos    Position
	EndPos Position
}

// NoExpr stands in where the grammar allows an omitted expression, such as a
// bare "return;" or an empty for-loop slot.
type NoExpr struct {
	Pos    Position
	EndPos Position
}

// IdentExpr references a variable by name.
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     BinOp
	Left   Expr
	Right  Expr
}

type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     UnOp
	Value  Expr
}

// CallExpr calls a function by name. Mica functions are not values, so the
// callee is always a bare name.
type CallExpr struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []Expr
}

// CastExpr is an explicit conversion like "(int *) p".
type CastExpr struct {
	Pos    Position
	EndPos Position
	Target types.Type
	Value  Expr
}

// AddrExpr takes the address of an lvalue: "&x".
type AddrExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// DerefExpr dereferences a pointer: "*p".
type DerefExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// FieldAccessExpr accesses a struct field: "pt.x". Field is an arbitrary
// expression so the checker can reject non-identifier accesses.
type FieldAccessExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Field  Expr
}

// AssignExpr assigns Value to the lvalue Target and yields the stored value.
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Value  Expr
}

// SizeofExpr is "sizeof(type)".
type SizeofExpr struct {
	Pos    Position
	EndPos Position
	Target types.Type
}

func (*IntLit) isExpr()          {}
func (*FloatLit) isExpr()        {}
func (*BoolLit) isExpr()         {}
func (*CharLit) isExpr()         {}
func (*StringLit) isExpr()       {}
func (*NullLit) isExpr()         {}
func (*NoExpr) isExpr()          {}
func (*IdentExpr) isExpr()       {}
func (*BinaryExpr) isExpr()      {}
func (*UnaryExpr) isExpr()       {}
func (*CallExpr) isExpr()        {}
func (*CastExpr) isExpr()        {}
func (*AddrExpr) isExpr()        {}
func (*DerefExpr) isExpr()       {}
func (*FieldAccessExpr) isExpr() {}
func (*AssignExpr) isExpr()      {}
func (*SizeofExpr) isExpr()      {}
