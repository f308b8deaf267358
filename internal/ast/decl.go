package ast

import "mica/internal/types"

// Program is the untyped tree the parser hands to the checker: struct
// declarations, global variable bindings, and function declarations, each in
// source order.
type Program struct {
	Pos       Position
	EndPos    Position
	Structs   []*StructDecl
	Globals   []*Bind
	Functions []*Function
}

// Bind is a (type, name) declaration. The same shape serves globals, formal
// parameters, function locals, and struct fields.
type Bind struct {
	Pos    Position
	EndPos Position
	Type   types.Type
	Name   string
}

// StructDecl declares a named struct and its fields in source order.
// Example: "struct point { int x; int y; };"
type StructDecl struct {
	Pos    Position
	EndPos Position
	Name   string
	Fields []*Bind
}

// Function declares a function. Locals are declared at the top of the body,
// before any statement; the parser enforces that ordering.
// Example: "int add(int a, int b) { return a + b; }"
type Function struct {
	Pos     Position
	EndPos  Position
	Return  types.Type
	Name    string
	Formals []*Bind
	Locals  []*Bind
	Body    []Stmt
}
