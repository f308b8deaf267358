package semantic

import (
	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/sast"
	"mica/internal/types"
)

// checkExpr converts one untyped expression into a typed one, enforcing all
// typing rules. The returned Expr's type is the verified result type of its
// shape.
func (c *Checker) checkExpr(e ast.Expr) (sast.Expr, *errors.CompilerError) {
	switch x := e.(type) {
	case *ast.IntLit:
		return sast.Expr{Type: types.Int, Shape: sast.IntLit{Value: x.Value}}, nil
	case *ast.FloatLit:
		return sast.Expr{Type: types.Float, Shape: sast.FloatLit{Value: x.Value}}, nil
	case *ast.BoolLit:
		return sast.Expr{Type: types.Bool, Shape: sast.BoolLit{Value: x.Value}}, nil
	case *ast.CharLit:
		return sast.Expr{Type: types.Char, Shape: sast.CharLit{Value: x.Value}}, nil
	case *ast.StringLit:
		return sast.Expr{Type: types.CharPointer(), Shape: sast.StringLit{Value: x.Value}}, nil
	case *ast.NullLit:
		return sast.Expr{Type: types.VoidPointer(), Shape: sast.NullLit{}}, nil
	case *ast.NoExpr:
		return sast.Expr{Type: types.Void, Shape: sast.NoExpr{}}, nil
	case *ast.SizeofExpr:
		return sast.Expr{Type: types.Int, Shape: sast.Sizeof{Target: x.Target}}, nil
	case *ast.IdentExpr:
		return c.checkIdent(x)
	case *ast.BinaryExpr:
		return c.checkBinary(x)
	case *ast.UnaryExpr:
		return c.checkUnary(x)
	case *ast.AddrExpr:
		return c.checkAddr(x)
	case *ast.DerefExpr:
		return c.checkDeref(x)
	case *ast.CallExpr:
		return c.checkCall(x)
	case *ast.CastExpr:
		return c.checkCast(x)
	case *ast.FieldAccessExpr:
		return c.checkFieldAccess(x)
	case *ast.AssignExpr:
		return c.checkAssign(x)
	}
	panic("checkExpr: unhandled expression shape")
}

func (c *Checker) checkIdent(x *ast.IdentExpr) (sast.Expr, *errors.CompilerError) {
	t, ok := c.env.Lookup(x.Name)
	if !ok {
		return sast.Expr{}, errors.UndefinedVariable(x.Name, x.Pos)
	}
	return sast.Expr{Type: t, Shape: sast.LVal{LV: sast.Ident{Name: x.Name}}}, nil
}

func (c *Checker) checkBinary(x *ast.BinaryExpr) (sast.Expr, *errors.CompilerError) {
	left, err := c.checkExpr(x.Left)
	if err != nil {
		return sast.Expr{}, err
	}
	right, err := c.checkExpr(x.Right)
	if err != nil {
		return sast.Expr{}, err
	}

	// Comparing against the null literal is the one place the checker helps
	// out: the null side is rewritten into an explicit cast to the other
	// side's type and the whole comparison re-checked. The cast node ends up
	// in the typed tree; nothing is coerced silently.
	if x.Op.IsRelational() {
		if _, isNull := x.Left.(*ast.NullLit); isNull {
			return c.checkExpr(&ast.BinaryExpr{
				Pos:    x.Pos,
				EndPos: x.EndPos,
				Op:     x.Op,
				Left:   castTo(right.Type, x.Left),
				Right:  x.Right,
			})
		}
		if _, isNull := x.Right.(*ast.NullLit); isNull {
			return c.checkExpr(&ast.BinaryExpr{
				Pos:    x.Pos,
				EndPos: x.EndPos,
				Op:     x.Op,
				Left:   x.Left,
				Right:  castTo(left.Type, x.Right),
			})
		}
	}

	shape := sast.Binop{Op: x.Op, Left: left, Right: right}

	switch x.Op {
	case ast.Add:
		t, ok := addResult(left.Type, right.Type)
		if !ok {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{"*void", "int", "float"}, pairString(left.Type, right.Type), x.Pos)
		}
		return sast.Expr{Type: t, Shape: shape}, nil

	case ast.Sub:
		if lp, lok := left.Type.(types.Pointer); lok {
			if rp, rok := right.Type.(types.Pointer); rok {
				if !types.Equal(lp.Elem, rp.Elem) {
					return sast.Expr{}, errors.TypeMismatch(
						[]string{lp.String()}, rp.String(), x.Pos)
				}
				return sast.Expr{Type: types.Int, Shape: shape}, nil
			}
		}
		t, ok := addResult(left.Type, right.Type)
		if !ok {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{"*void", "int", "float"}, pairString(left.Type, right.Type), x.Pos)
		}
		return sast.Expr{Type: t, Shape: shape}, nil

	case ast.Mult, ast.Div, ast.BitAnd, ast.BitOr:
		if !types.Equal(left.Type, right.Type) {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{left.Type.String()}, right.Type.String(), x.Pos)
		}
		if !types.IsNumeric(left.Type) {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{"int", "float", "char", "a pointer type"}, left.Type.String(), x.Pos)
		}
		return sast.Expr{Type: left.Type, Shape: shape}, nil

	case ast.And, ast.Or:
		if !types.Equal(left.Type, types.Bool) {
			return sast.Expr{}, errors.TypeMismatch([]string{"bool"}, left.Type.String(), x.Pos)
		}
		if !types.Equal(right.Type, types.Bool) {
			return sast.Expr{}, errors.TypeMismatch([]string{"bool"}, right.Type.String(), x.Pos)
		}
		return sast.Expr{Type: types.Bool, Shape: shape}, nil

	case ast.Pow:
		switch {
		case types.Equal(left.Type, types.Float) && types.Equal(right.Type, types.Float):
			return sast.Expr{Type: types.Float, Shape: shape}, nil
		case types.Equal(left.Type, types.Float) && types.Equal(right.Type, types.Int):
			return sast.Expr{Type: types.Float, Shape: shape}, nil
		case types.Equal(left.Type, types.Int) && types.Equal(right.Type, types.Int):
			return sast.Expr{Type: types.Int, Shape: shape}, nil
		}
		return sast.Expr{}, errors.TypeMismatch(
			[]string{"float", "int"}, pairString(left.Type, right.Type), x.Pos)

	case ast.Eq, ast.Neq, ast.Lt, ast.Leq, ast.Gt, ast.Geq:
		if !types.Equal(left.Type, right.Type) {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{left.Type.String()}, right.Type.String(), x.Pos)
		}
		if !types.IsNumeric(left.Type) {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{"int", "float", "char", "a pointer type"}, left.Type.String(), x.Pos)
		}
		return sast.Expr{Type: types.Bool, Shape: shape}, nil
	}
	panic("checkBinary: unhandled operator")
}

// addResult gives the result type of pointer-aware addition: int+int,
// float+float, pointer+int, and int+pointer.
func addResult(l, r types.Type) (types.Type, bool) {
	switch {
	case types.Equal(l, types.Int) && types.Equal(r, types.Int):
		return types.Int, true
	case types.Equal(l, types.Float) && types.Equal(r, types.Float):
		return types.Float, true
	}
	if lp, ok := l.(types.Pointer); ok && types.Equal(r, types.Int) {
		return lp, true
	}
	if rp, ok := r.(types.Pointer); ok && types.Equal(l, types.Int) {
		return rp, true
	}
	return nil, false
}

func pairString(l, r types.Type) string {
	return l.String() + " and " + r.String()
}

// castTo wraps an expression in a synthesized explicit cast node.
func castTo(target types.Type, value ast.Expr) *ast.CastExpr {
	return &ast.CastExpr{
		Pos:    value.NodePos(),
		EndPos: value.NodeEndPos(),
		Target: target,
		Value:  value,
	}
}

func (c *Checker) checkUnary(x *ast.UnaryExpr) (sast.Expr, *errors.CompilerError) {
	value, err := c.checkExpr(x.Value)
	if err != nil {
		return sast.Expr{}, err
	}
	switch x.Op {
	case ast.Neg:
		if !types.IsNumeric(value.Type) {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{"int", "float", "char"}, value.Type.String(), x.Pos)
		}
	case ast.Not:
		if !types.Equal(value.Type, types.Bool) {
			return sast.Expr{}, errors.TypeMismatch([]string{"bool"}, value.Type.String(), x.Pos)
		}
	}
	return sast.Expr{Type: value.Type, Shape: sast.Unop{Op: x.Op, Value: value}}, nil
}

func (c *Checker) checkAddr(x *ast.AddrExpr) (sast.Expr, *errors.CompilerError) {
	value, err := c.checkExpr(x.Value)
	if err != nil {
		return sast.Expr{}, err
	}
	lv, ok := value.Shape.(sast.LVal)
	if !ok {
		return sast.Expr{}, errors.AddressOfNonLvalue(x.Pos)
	}
	return sast.Expr{Type: types.PointerTo(value.Type), Shape: sast.AddrOf{LV: lv.LV}}, nil
}

func (c *Checker) checkDeref(x *ast.DerefExpr) (sast.Expr, *errors.CompilerError) {
	value, err := c.checkExpr(x.Value)
	if err != nil {
		return sast.Expr{}, err
	}
	pt, ok := value.Type.(types.Pointer)
	if !ok {
		return sast.Expr{}, errors.TypeMismatch(
			[]string{"*void", "*int", "*float"}, value.Type.String(), x.Pos)
	}
	return sast.Expr{Type: pt.Elem, Shape: sast.LVal{LV: sast.Deref{Value: value}}}, nil
}

func (c *Checker) checkCall(x *ast.CallExpr) (sast.Expr, *errors.CompilerError) {
	sig, ok := c.env.Func(x.Name)
	if !ok {
		return sast.Expr{}, errors.UndefinedFunction(x.Name, x.Pos)
	}

	args := make([]sast.Expr, len(x.Args))
	for i, arg := range x.Args {
		checked, err := c.checkExpr(arg)
		if err != nil {
			return sast.Expr{}, err
		}
		args[i] = checked
	}

	if sig.Variadic {
		// printf takes any arguments after the format string; only the
		// format argument's type is checked.
		if len(args) == 0 {
			return sast.Expr{}, errors.ArgumentCount(x.Name, 1, 0, x.Pos)
		}
		if !types.Equal(args[0].Type, types.CharPointer()) {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{types.CharPointer().String()}, args[0].Type.String(), x.Args[0].NodePos())
		}
		return sast.Expr{Type: sig.Return, Shape: sast.Call{Name: x.Name, Args: args}}, nil
	}

	if len(args) != len(sig.Formals) {
		return sast.Expr{}, errors.ArgumentCount(x.Name, len(sig.Formals), len(args), x.Pos)
	}
	for i, arg := range args {
		if !types.Equal(arg.Type, sig.Formals[i].Type) {
			return sast.Expr{}, errors.TypeMismatch(
				[]string{sig.Formals[i].Type.String()}, arg.Type.String(), x.Args[i].NodePos())
		}
	}
	return sast.Expr{Type: sig.Return, Shape: sast.Call{Name: x.Name, Args: args}}, nil
}

func (c *Checker) checkCast(x *ast.CastExpr) (sast.Expr, *errors.CompilerError) {
	value, err := c.checkExpr(x.Value)
	if err != nil {
		return sast.Expr{}, err
	}
	if !legalCast(value.Type, x.Target) {
		return sast.Expr{}, errors.IllegalCast(value.Type.String(), x.Target.String(), x.Pos)
	}
	return sast.Expr{Type: x.Target, Shape: sast.Cast{Target: x.Target, Value: value}}, nil
}

// legalCast reports whether an explicit cast from one type to another is
// permitted: pointer to pointer, pointer to int, int to pointer, and int to
// float. Nothing else converts, explicitly or otherwise.
func legalCast(from, to types.Type) bool {
	switch {
	case types.IsPointer(from) && types.IsPointer(to):
		return true
	case types.IsPointer(from) && types.Equal(to, types.Int):
		return true
	case types.Equal(from, types.Int) && types.IsPointer(to):
		return true
	case types.Equal(from, types.Int) && types.Equal(to, types.Float):
		return true
	}
	return false
}

func (c *Checker) checkFieldAccess(x *ast.FieldAccessExpr) (sast.Expr, *errors.CompilerError) {
	field, ok := x.Field.(*ast.IdentExpr)
	if !ok {
		return sast.Expr{}, errors.NonIdentifierField(x.Field.NodePos())
	}

	base, err := c.checkExpr(x.Target)
	if err != nil {
		return sast.Expr{}, err
	}
	lv, ok := base.Shape.(sast.LVal)
	if !ok {
		return sast.Expr{}, errors.NonLvalueBase(x.Target.NodePos())
	}

	st, ok := base.Type.(types.Struct)
	if !ok {
		return sast.Expr{}, errors.TypeMismatch([]string{"a struct"}, base.Type.String(), x.Pos)
	}
	def, ok := c.env.Struct(st.Name)
	if !ok {
		return sast.Expr{}, errors.TypeMismatch([]string{"a struct"}, base.Type.String(), x.Pos)
	}

	for offset, f := range def.Fields {
		if f.Name == field.Name {
			return sast.Expr{
				Type:  f.Type,
				Shape: sast.LVal{LV: sast.Field{Base: lv.LV, Offset: offset}},
			}, nil
		}
	}
	return sast.Expr{}, errors.UnknownField(st.Name, field.Name, field.Pos)
}

func (c *Checker) checkAssign(x *ast.AssignExpr) (sast.Expr, *errors.CompilerError) {
	target, err := c.checkExpr(x.Target)
	if err != nil {
		return sast.Expr{}, err
	}
	lv, ok := target.Shape.(sast.LVal)
	if !ok {
		return sast.Expr{}, errors.AssignToNonLvalue(x.Target.NodePos())
	}

	// Assigning the null literal borrows the target's type through a
	// synthesized explicit cast, then the assignment is re-checked.
	if _, isNull := x.Value.(*ast.NullLit); isNull {
		return c.checkExpr(&ast.AssignExpr{
			Pos:    x.Pos,
			EndPos: x.EndPos,
			Target: x.Target,
			Value:  castTo(target.Type, x.Value),
		})
	}

	value, err := c.checkExpr(x.Value)
	if err != nil {
		return sast.Expr{}, err
	}
	if !types.Equal(target.Type, value.Type) {
		return sast.Expr{}, errors.TypeMismatch(
			[]string{target.Type.String()}, value.Type.String(), x.Pos)
	}
	return sast.Expr{Type: target.Type, Shape: sast.Assign{Target: lv.LV, Value: value}}, nil
}
