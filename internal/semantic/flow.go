package semantic

import (
	"mica/internal/sast"
)

// Return-completeness analysis over a function's reduced body. The body is
// abstracted into a minimal graph of three shapes: an empty continuation, a
// sequential step tagged with whether it is a return, and a branch from an
// if/else. The analysis is deliberately conservative: a do-while is assumed
// not to guarantee a return through repetition, so only the first pass of
// its body counts, and a branch must prove both arms even when a condition
// is a literal true.

type flowGraph interface {
	isFlow()
}

// flowEmpty is the continuation past the last statement: no return reached.
type flowEmpty struct{}

// flowStep is one sequential statement; returns marks a return statement.
type flowStep struct {
	returns bool
	next    flowGraph
}

// flowBranch is an if/else; each arm already includes the statements that
// follow the if.
type flowBranch struct {
	left  flowGraph
	right flowGraph
}

func (flowEmpty) isFlow()  {}
func (flowStep) isFlow()   {}
func (flowBranch) isFlow() {}

// guaranteesReturn reports whether every path through the body ends in a
// return statement.
func guaranteesReturn(body *sast.Block) bool {
	return validFlow(buildFlow(body.Stmts))
}

func buildFlow(stmts []sast.Stmt) flowGraph {
	if len(stmts) == 0 {
		return flowEmpty{}
	}
	head, rest := stmts[0], stmts[1:]

	switch s := head.(type) {
	case *sast.Return:
		return flowStep{returns: true, next: buildFlow(rest)}
	case *sast.If:
		return flowBranch{
			left:  buildFlow(concatStmts(branchStmts(s.Then), rest)),
			right: buildFlow(concatStmts(branchStmts(s.Else), rest)),
		}
	case *sast.DoWhile:
		// The body runs at least once, so its returns count; the loop is
		// never assumed to reach a return through further iterations.
		return flowStep{returns: false, next: buildFlow(concatStmts(branchStmts(s.Body), rest))}
	case *sast.Block:
		return buildFlow(concatStmts(s.Stmts, rest))
	default:
		return flowStep{returns: false, next: buildFlow(rest)}
	}
}

func validFlow(f flowGraph) bool {
	switch g := f.(type) {
	case flowEmpty:
		return false
	case flowStep:
		// A reached return terminates the path; anything spliced behind it
		// by branch construction is unreachable on this path.
		if g.returns {
			return true
		}
		return validFlow(g.next)
	case flowBranch:
		return validFlow(g.left) && validFlow(g.right)
	}
	return false
}

func branchStmts(s sast.Stmt) []sast.Stmt {
	if b, ok := s.(*sast.Block); ok {
		return b.Stmts
	}
	return []sast.Stmt{s}
}

func concatStmts(a, b []sast.Stmt) []sast.Stmt {
	out := make([]sast.Stmt, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
