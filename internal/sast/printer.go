package sast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renderings of the reduced tree. The output is close to source
// syntax but shows the checker's work: synthesized casts appear explicitly
// and field accesses print their resolved offsets.

func (e Expr) String() string {
	return e.Shape.String()
}

func (l IntLit) String() string    { return strconv.FormatInt(l.Value, 10) }
func (l FloatLit) String() string  { return strconv.FormatFloat(l.Value, 'g', -1, 64) }
func (l BoolLit) String() string   { return strconv.FormatBool(l.Value) }
func (l CharLit) String() string   { return "'" + string(l.Value) + "'" }
func (l StringLit) String() string { return strconv.Quote(l.Value) }
func (NullLit) String() string     { return "null" }
func (NoExpr) String() string      { return "" }

func (b Binop) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (u Unop) String() string {
	return u.Op.String() + u.Value.String()
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

func (c Cast) String() string {
	return "(" + c.Target.String() + ") " + c.Value.String()
}

func (l LVal) String() string   { return l.LV.String() }
func (a AddrOf) String() string { return "&" + a.LV.String() }

func (a Assign) String() string {
	return a.Target.String() + " = " + a.Value.String()
}

func (s Sizeof) String() string {
	return "sizeof(" + s.Target.String() + ")"
}

func (i Ident) String() string { return i.Name }
func (d Deref) String() string { return "*" + d.Value.String() }

func (f Field) String() string {
	return fmt.Sprintf("%s.[%d]", f.Base, f.Offset)
}

func (s *ExprStmt) String() string { return s.X.String() + ";" }

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, inner := range b.Stmts {
		sb.WriteString(indent(inner.String()) + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (r *Return) String() string {
	if _, bare := r.Value.Shape.(NoExpr); bare {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

func (i *If) String() string {
	return "if (" + i.Cond.String() + ") " + i.Then.String() + " else " + i.Else.String()
}

func (d *DoWhile) String() string {
	return "do " + d.Body.String() + " while (" + d.Cond.String() + ");"
}

func (b Bind) String() string {
	return b.Type.String() + " " + b.Name
}

func (s *StructDef) String() string {
	var sb strings.Builder
	sb.WriteString("struct " + s.Name + " {\n")
	for _, f := range s.Fields {
		sb.WriteString("    " + f.String() + ";\n")
	}
	sb.WriteString("};")
	return sb.String()
}

func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString(f.Return.String() + " " + f.Name + "(")
	for i, p := range f.Formals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") {\n")
	for _, l := range f.Locals {
		sb.WriteString("    " + l.String() + ";\n")
	}
	for _, s := range f.Body.Stmts {
		sb.WriteString(indent(s.String()) + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Structs {
		sb.WriteString(s.String() + "\n")
	}
	for _, g := range p.Globals {
		sb.WriteString(g.String() + ";\n")
	}
	for _, f := range p.Functions {
		sb.WriteString(f.String() + "\n")
	}
	return sb.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
