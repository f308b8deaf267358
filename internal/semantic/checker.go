// Package semantic implements the type-checking and control-flow-validation
// stage of the Mica compiler. It consumes the parser's untyped tree and
// either rejects it with a single precise diagnostic or produces the fully
// typed, reduced tree of package sast.
//
// The analysis is one synchronous pass with no I/O: struct layouts are
// registered first, then global bindings, then every function in
// declaration order. Each function's signature is registered before its own
// body is checked, so direct recursion works; a call to a function declared
// later in the file does not.
package semantic

import (
	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/sast"
	"mica/internal/types"
)

// Checker drives one analysis run over one program. It owns the symbol
// environment exclusively; runs never share state.
type Checker struct {
	env *Env
}

func NewChecker() *Checker {
	return &Checker{env: NewEnv()}
}

// Check is the convenience entry point: one fresh checker, one run.
func Check(prog *ast.Program) (*sast.Program, *errors.CompilerError) {
	return NewChecker().Check(prog)
}

// Check analyzes a whole program. The first error encountered anywhere
// aborts the run; the artifact is produced only on total success and
// supersedes the input tree entirely.
func (c *Checker) Check(prog *ast.Program) (*sast.Program, *errors.CompilerError) {
	out := &sast.Program{}

	for _, decl := range prog.Structs {
		def, err := c.env.RegisterStruct(decl)
		if err != nil {
			return nil, err
		}
		out.Structs = append(out.Structs, def)
	}

	for _, g := range prog.Globals {
		if err := c.env.Bind(GlobalBind, g); err != nil {
			return nil, err
		}
		out.Globals = append(out.Globals, sast.Bind{Type: g.Type, Name: g.Name})
	}

	hasMain := false
	for _, fn := range prog.Functions {
		checked, err := c.checkFunction(fn)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, checked)
		if fn.Name == "main" {
			hasMain = true
		}
	}
	if !hasMain {
		return nil, errors.MissingEntryPoint(prog.Pos)
	}
	return out, nil
}

// checkFunction checks one function declaration and produces the checked
// artifact. The signature goes into the function table before the body is
// checked so the function may call itself.
func (c *Checker) checkFunction(fn *ast.Function) (*sast.Function, *errors.CompilerError) {
	sig := &FuncSig{Return: fn.Return, Name: fn.Name}
	for _, p := range fn.Formals {
		sig.Formals = append(sig.Formals, sast.Bind{Type: p.Type, Name: p.Name})
	}
	if err := c.env.RegisterFunc(sig, fn.Pos); err != nil {
		return nil, err
	}

	restore := c.env.PushScope()
	defer restore()

	for _, p := range fn.Formals {
		if err := c.env.Bind(FormalBind, p); err != nil {
			return nil, err
		}
	}
	locals := make([]sast.Bind, 0, len(fn.Locals))
	for _, l := range fn.Locals {
		if err := c.env.Bind(LocalBind, l); err != nil {
			return nil, err
		}
		locals = append(locals, sast.Bind{Type: l.Type, Name: l.Name})
	}

	stmts, err := c.checkStmtList(fn.Body, fn.Return)
	if err != nil {
		return nil, err
	}
	body := &sast.Block{Stmts: stmts}

	if !types.Equal(fn.Return, types.Void) && !guaranteesReturn(body) {
		return nil, errors.TypeMismatch([]string{fn.Return.String()}, "void", fn.Pos)
	}

	return &sast.Function{
		Return:  fn.Return,
		Name:    fn.Name,
		Formals: sig.Formals,
		Locals:  locals,
		Body:    body,
	}, nil
}
