package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renderings reconstruct source-like text, mainly for debugging and
// test failure output. They make no attempt to preserve original formatting.

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Structs {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	for _, g := range p.Globals {
		b.WriteString(g.String())
		b.WriteString(";\n")
	}
	for _, f := range p.Functions {
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (b *Bind) String() string {
	return b.Type.String() + " " + b.Name
}

func (s *StructDecl) String() string {
	var b strings.Builder
	b.WriteString("struct " + s.Name + " {\n")
	for _, f := range s.Fields {
		b.WriteString("    " + f.String() + ";\n")
	}
	b.WriteString("};")
	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString(f.Return.String() + " " + f.Name + "(")
	for i, p := range f.Formals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") {\n")
	for _, l := range f.Locals {
		b.WriteString("    " + l.String() + ";\n")
	}
	for _, s := range f.Body {
		b.WriteString(indent(s.String()) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

func (s *ExprStmt) String() string { return s.X.String() + ";" }

func (s *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, inner := range s.Stmts {
		b.WriteString(indent(inner.String()) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (s *IfStmt) String() string {
	out := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

func (s *WhileStmt) String() string {
	return "while (" + s.Cond.String() + ") " + s.Body.String()
}

func (s *ForStmt) String() string {
	return fmt.Sprintf("for (%s; %s; %s) %s", s.Init, s.Cond, s.Post, s.Body)
}

func (s *ReturnStmt) String() string {
	if _, bare := s.Value.(*NoExpr); bare {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

func (e *IntLit) String() string    { return strconv.FormatInt(e.Value, 10) }
func (e *FloatLit) String() string  { return strconv.FormatFloat(e.Value, 'g', -1, 64) }
func (e *BoolLit) String() string   { return strconv.FormatBool(e.Value) }
func (e *CharLit) String() string   { return "'" + string(e.Value) + "'" }
func (e *StringLit) String() string { return strconv.Quote(e.Value) }
func (e *NullLit) String() string   { return "null" }
func (e *NoExpr) String() string    { return "" }
func (e *IdentExpr) String() string { return e.Name }

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

func (e *UnaryExpr) String() string {
	return e.Op.String() + e.Value.String()
}

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

func (e *CastExpr) String() string {
	return "(" + e.Target.String() + ") " + e.Value.String()
}

func (e *AddrExpr) String() string  { return "&" + e.Value.String() }
func (e *DerefExpr) String() string { return "*" + e.Value.String() }

func (e *FieldAccessExpr) String() string {
	return e.Target.String() + "." + e.Field.String()
}

func (e *AssignExpr) String() string {
	return e.Target.String() + " = " + e.Value.String()
}

func (e *SizeofExpr) String() string {
	return "sizeof(" + e.Target.String() + ")"
}
