// Package sast defines the typed, structurally reduced tree the checker
// produces: every expression carries its verified type, struct field
// accesses are resolved to offsets, and the only surviving statement shapes
// are expression, block, return, if, and do-while. The code generator lowers
// this tree directly; it never sees while, for, or an unresolved name.
package sast

import (
	"mica/internal/ast"
	"mica/internal/types"
)

// Expr pairs a verified result type with the shape that produced it. The
// type is always the checked type of the shape, never the source annotation.
type Expr struct {
	Type  types.Type
	Shape Shape
}

// Shape is the closed set of typed expression forms.
type Shape interface {
	isShape()
	String() string
}

type IntLit struct{ Value int64 }

type FloatLit struct{ Value float64 }

type BoolLit struct{ Value bool }

type CharLit struct{ Value rune }

type StringLit struct{ Value string }

// NullLit is the checked null literal. It only ever appears wrapped in a
// synthesized cast to a concrete type.
type NullLit struct{}

// NoExpr is the checked no-op placeholder; its type is void.
type NoExpr struct{}

type Binop struct {
	Op    ast.BinOp
	Left  Expr
	Right Expr
}

type Unop struct {
	Op    ast.UnOp
	Value Expr
}

type Call struct {
	Name string
	Args []Expr
}

// Cast is an explicit conversion, either written in the source or
// synthesized for a null literal meeting a concrete pointer type.
type Cast struct {
	Target types.Type
	Value  Expr
}

// LVal reads the value stored at an lvalue.
type LVal struct {
	LV LValue
}

// Assign stores Value at Target and yields the stored value.
type Assign struct {
	Target LValue
	Value  Expr
}

// AddrOf yields a pointer to an lvalue's location.
type AddrOf struct {
	LV LValue
}

type Sizeof struct {
	Target types.Type
}

func (IntLit) isShape()    {}
func (FloatLit) isShape()  {}
func (BoolLit) isShape()   {}
func (CharLit) isShape()   {}
func (StringLit) isShape() {}
func (NullLit) isShape()   {}
func (NoExpr) isShape()    {}
func (Binop) isShape()     {}
func (Unop) isShape()      {}
func (Call) isShape()      {}
func (Cast) isShape()      {}
func (LVal) isShape()      {}
func (Assign) isShape()    {}
func (AddrOf) isShape()    {}
func (Sizeof) isShape()    {}

// LValue is the closed set of addressable forms.
type LValue interface {
	isLValue()
	String() string
}

// Ident names a resolved variable.
type Ident struct {
	Name string
}

// Deref addresses the cell a pointer expression points at.
type Deref struct {
	Value Expr
}

// Field addresses a struct field by its position in the owning struct's
// field list. Name-to-offset resolution happens exactly once, during
// checking; the code generator only ever sees the offset.
type Field struct {
	Base   LValue
	Offset int
}

func (Ident) isLValue() {}
func (Deref) isLValue() {}
func (Field) isLValue() {}

// Stmt is the closed set of reduced statement forms.
type Stmt interface {
	isStmt()
	String() string
}

type ExprStmt struct {
	X Expr
}

type Block struct {
	Stmts []Stmt
}

type Return struct {
	Value Expr
}

// If always carries both branches; an absent source else-branch becomes an
// empty block.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// DoWhile executes Body, then repeats while Cond holds. It is the single
// loop construct of the reduced tree; while and for desugar into it.
type DoWhile struct {
	Cond Expr
	Body Stmt
}

func (*ExprStmt) isStmt() {}
func (*Block) isStmt()    {}
func (*Return) isStmt()   {}
func (*If) isStmt()       {}
func (*DoWhile) isStmt()  {}

// Bind is a checked (type, name) declaration.
type Bind struct {
	Type types.Type
	Name string
}

// StructDef is a checked struct layout; field order equals declaration
// order, which field offsets index into.
type StructDef struct {
	Name   string
	Fields []Bind
}

// Function is the checked function artifact.
type Function struct {
	Return  types.Type
	Name    string
	Formals []Bind
	Locals  []Bind
	Body    *Block
}

// Program is the output artifact of a successful analysis. It supersedes
// the input tree entirely; function order matches declaration order.
type Program struct {
	Structs   []*StructDef
	Globals   []Bind
	Functions []*Function
}
