package semantic

import (
	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/sast"
	"mica/internal/types"
)

// checkStmt converts one untyped statement into reduced form. ret is the
// enclosing function's declared return type, needed to check returns.
func (c *Checker) checkStmt(s ast.Stmt, ret types.Type) (sast.Stmt, *errors.CompilerError) {
	switch x := s.(type) {
	case *ast.ExprStmt:
		checked, err := c.checkExpr(x.X)
		if err != nil {
			return nil, err
		}
		return &sast.ExprStmt{X: checked}, nil

	case *ast.ReturnStmt:
		checked, err := c.checkExpr(x.Value)
		if err != nil {
			return nil, err
		}
		if !types.Equal(checked.Type, ret) {
			return nil, errors.TypeMismatch([]string{ret.String()}, checked.Type.String(), x.Pos)
		}
		return &sast.Return{Value: checked}, nil

	case *ast.IfStmt:
		cond, err := c.checkCond(x.Cond)
		if err != nil {
			return nil, err
		}
		then, err := c.checkStmt(x.Then, ret)
		if err != nil {
			return nil, err
		}
		alt := sast.Stmt(&sast.Block{})
		if x.Else != nil {
			alt, err = c.checkStmt(x.Else, ret)
			if err != nil {
				return nil, err
			}
		}
		return &sast.If{Cond: cond, Then: then, Else: alt}, nil

	case *ast.WhileStmt:
		// while (cond) body becomes if (cond) { do body while (cond) }
		// else {}, so downstream lowering only ever emits one loop shape.
		cond, err := c.checkCond(x.Cond)
		if err != nil {
			return nil, err
		}
		body, err := c.checkStmt(x.Body, ret)
		if err != nil {
			return nil, err
		}
		return &sast.If{
			Cond: cond,
			Then: &sast.Block{Stmts: []sast.Stmt{&sast.DoWhile{Cond: cond, Body: body}}},
			Else: &sast.Block{},
		}, nil

	case *ast.ForStmt:
		// for (init; cond; post) body becomes a block running init once and
		// then the while-desugaring with post appended to each iteration.
		init, err := c.checkExpr(x.Init)
		if err != nil {
			return nil, err
		}
		cond, err := c.checkCond(x.Cond)
		if err != nil {
			return nil, err
		}
		post, err := c.checkExpr(x.Post)
		if err != nil {
			return nil, err
		}
		body, err := c.checkStmt(x.Body, ret)
		if err != nil {
			return nil, err
		}
		loop := &sast.DoWhile{
			Cond: cond,
			Body: &sast.Block{Stmts: []sast.Stmt{body, &sast.ExprStmt{X: post}}},
		}
		return &sast.Block{Stmts: []sast.Stmt{
			&sast.ExprStmt{X: init},
			&sast.If{
				Cond: cond,
				Then: &sast.Block{Stmts: []sast.Stmt{loop}},
				Else: &sast.Block{},
			},
		}}, nil

	case *ast.BlockStmt:
		stmts, err := c.checkStmtList(x.Stmts, ret)
		if err != nil {
			return nil, err
		}
		return &sast.Block{Stmts: stmts}, nil
	}
	panic("checkStmt: unhandled statement shape")
}

// checkStmtList flattens and checks a block's statement sequence. Nested
// source blocks are spliced into their parent rather than preserved, and a
// return may only be the final statement of the flattened sequence.
func (c *Checker) checkStmtList(stmts []ast.Stmt, ret types.Type) ([]sast.Stmt, *errors.CompilerError) {
	if len(stmts) == 0 {
		return nil, nil
	}
	head, rest := stmts[0], stmts[1:]

	switch x := head.(type) {
	case *ast.ReturnStmt:
		if len(rest) > 0 {
			return nil, errors.DeadCode(rest[0].NodePos())
		}
		checked, err := c.checkStmt(x, ret)
		if err != nil {
			return nil, err
		}
		return []sast.Stmt{checked}, nil

	case *ast.BlockStmt:
		merged := make([]ast.Stmt, 0, len(x.Stmts)+len(rest))
		merged = append(merged, x.Stmts...)
		merged = append(merged, rest...)
		return c.checkStmtList(merged, ret)
	}

	checked, err := c.checkStmt(head, ret)
	if err != nil {
		return nil, err
	}
	tail, err := c.checkStmtList(rest, ret)
	if err != nil {
		return nil, err
	}
	return append([]sast.Stmt{checked}, tail...), nil
}

// checkCond checks a loop or branch condition, which must be bool.
func (c *Checker) checkCond(e ast.Expr) (sast.Expr, *errors.CompilerError) {
	checked, err := c.checkExpr(e)
	if err != nil {
		return sast.Expr{}, err
	}
	if !types.Equal(checked.Type, types.Bool) {
		return sast.Expr{}, errors.TypeMismatch([]string{"bool"}, checked.Type.String(), e.NodePos())
	}
	return checked, nil
}
