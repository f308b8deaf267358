package ast

// Position tracks location information for diagnostics and tooling.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Top-level constructs
	PROGRAM
	STRUCT_DECL
	BIND
	FUNCTION

	// Statements
	EXPR_STMT
	BLOCK_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	RETURN_STMT

	// Expressions
	INT_LIT
	FLOAT_LIT
	BOOL_LIT
	CHAR_LIT
	STRING_LIT
	NULL_LIT
	NO_EXPR
	IDENT_EXPR
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	CAST_EXPR
	ADDR_EXPR
	DEREF_EXPR
	FIELD_ACCESS_EXPR
	ASSIGN_EXPR
	SIZEOF_EXPR
)

// Expr is implemented by every expression node.
type Expr interface {
	Node
	isExpr()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	isStmt()
}
