package ast

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	Pos    Position
	EndPos Position
	X      Expr
}

// BlockStmt is a braced statement sequence.
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// IfStmt is "if (cond) then else alt". Else may be nil; the checker
// normalizes an absent branch to an empty block.
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt
}

// WhileStmt is "while (cond) body". It does not survive checking; the
// checker desugars it into an if over a do-while.
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

// ForStmt is "for (init; cond; post) body". Omitted slots hold NoExpr.
// Like while, it is desugared away during checking.
type ForStmt struct {
	Pos    Position
	EndPos Position
	Init   Expr
	Cond   Expr
	Post   Expr
	Body   Stmt
}

// ReturnStmt is "return expr;" or "return;"; a bare return carries NoExpr.
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

func (*ExprStmt) isStmt()   {}
func (*BlockStmt) isStmt()  {}
func (*IfStmt) isStmt()     {}
func (*WhileStmt) isStmt()  {}
func (*ForStmt) isStmt()    {}
func (*ReturnStmt) isStmt() {}
