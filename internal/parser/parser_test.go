package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/ast"
	"mica/internal/types"
)

func parseClean(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, parseErrors, scanErrors := ParseSource("test.mc", source)
	require.Empty(t, scanErrors, "Should have no scan errors")
	require.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, program)
	return program
}

func TestParseTopLevelDeclarations(t *testing.T) {
	source := `
struct Point {
    int x;
    int y;
};

int counter;
struct Point origin;

void reset() {
}`

	program := parseClean(t, source)

	require.Len(t, program.Structs, 1)
	assert.Equal(t, "Point", program.Structs[0].Name)
	require.Len(t, program.Structs[0].Fields, 2)

	require.Len(t, program.Globals, 2)
	assert.Equal(t, "counter", program.Globals[0].Name)
	assert.True(t, types.Equal(types.Struct{Name: "Point"}, program.Globals[1].Type))

	require.Len(t, program.Functions, 1)
	assert.Equal(t, "reset", program.Functions[0].Name)
	assert.True(t, types.Equal(types.Void, program.Functions[0].Return))
}

func TestParsePointerTypes(t *testing.T) {
	source := `
int **grid;

float *scale(float *f) {
    return f;
}`

	program := parseClean(t, source)

	assert.True(t, types.Equal(types.PointerTo(types.PointerTo(types.Int)), program.Globals[0].Type))

	fn := program.Functions[0]
	assert.True(t, types.Equal(types.PointerTo(types.Float), fn.Return))
	require.Len(t, fn.Formals, 1)
	assert.True(t, types.Equal(types.PointerTo(types.Float), fn.Formals[0].Type))
}

func TestParseLocalsBeforeStatements(t *testing.T) {
	source := `
int main() {
    int a;
    float b;
    struct Point p;
    a = 1;
    return a;
}`

	program := parseClean(t, source)

	fn := program.Functions[0]
	require.Len(t, fn.Locals, 3)
	assert.Equal(t, "a", fn.Locals[0].Name)
	assert.Equal(t, "p", fn.Locals[2].Name)
	assert.Len(t, fn.Body, 2)
}

func TestParsePrecedence(t *testing.T) {
	program := parseClean(t, `
int main() {
    return 1 + 2 * 3;
}`)

	ret := program.Functions[0].Body[0].(*ast.ReturnStmt)
	add, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Op)

	mult, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok, "multiplication binds tighter than addition")
	assert.Equal(t, ast.Mult, mult.Op)
}

func TestParsePowerRightAssociative(t *testing.T) {
	program := parseClean(t, `
int main() {
    return 2 ^ 3 ^ 4;
}`)

	ret := program.Functions[0].Body[0].(*ast.ReturnStmt)
	outer, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, outer.Op)

	_, leftIsLit := outer.Left.(*ast.IntLit)
	assert.True(t, leftIsLit, "2 ^ (3 ^ 4), not (2 ^ 3) ^ 4")
	inner, ok := outer.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, inner.Op)
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	program := parseClean(t, `
int main() {
    int a;
    int b;
    a = b = 1;
    return a;
}`)

	stmt := program.Functions[0].Body[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.AssignExpr)
	require.True(t, ok)

	_, ok = outer.Value.(*ast.AssignExpr)
	assert.True(t, ok, "a = (b = 1)")
}

func TestParseCastVersusGrouping(t *testing.T) {
	program := parseClean(t, `
int main() {
    int *p;
    int n;
    n = (int) p;
    n = (n);
    return n;
}`)

	body := program.Functions[0].Body

	cast := body[0].(*ast.ExprStmt).X.(*ast.AssignExpr)
	_, ok := cast.Value.(*ast.CastExpr)
	assert.True(t, ok, "a parenthesized type starts a cast")

	grouped := body[1].(*ast.ExprStmt).X.(*ast.AssignExpr)
	_, ok = grouped.Value.(*ast.IdentExpr)
	assert.True(t, ok, "grouping parentheses leave no node behind")
}

func TestParseCastBindsPrefix(t *testing.T) {
	program := parseClean(t, `
int main() {
    float f;
    f = (float) 1 + 2.0;
    return 0;
}`)

	stmt := program.Functions[0].Body[0].(*ast.ExprStmt)
	assign := stmt.X.(*ast.AssignExpr)

	add, ok := assign.Value.(*ast.BinaryExpr)
	require.True(t, ok, "the cast applies to 1, not to the whole sum")
	_, ok = add.Left.(*ast.CastExpr)
	assert.True(t, ok)
}

func TestParseUnaryAndAddress(t *testing.T) {
	program := parseClean(t, `
int main() {
    int n;
    int *p;
    p = &n;
    n = -*p;
    return !true;
}`)

	body := program.Functions[0].Body

	addr := body[0].(*ast.ExprStmt).X.(*ast.AssignExpr)
	_, ok := addr.Value.(*ast.AddrExpr)
	assert.True(t, ok)

	neg := body[1].(*ast.ExprStmt).X.(*ast.AssignExpr)
	unary, ok := neg.Value.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Neg, unary.Op)
	_, ok = unary.Value.(*ast.DerefExpr)
	assert.True(t, ok, "negation wraps the dereference")
}

func TestParseFieldAccessChain(t *testing.T) {
	program := parseClean(t, `
int main() {
    struct Outer o;
    return o.inner.v;
}`)

	ret := program.Functions[0].Body[0].(*ast.ReturnStmt)
	outer, ok := ret.Value.(*ast.FieldAccessExpr)
	require.True(t, ok)

	field, ok := outer.Field.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "v", field.Name)

	inner, ok := outer.Target.(*ast.FieldAccessExpr)
	require.True(t, ok, "field access associates left")
	innerField := inner.Field.(*ast.IdentExpr)
	assert.Equal(t, "inner", innerField.Name)
}

func TestParseCallArguments(t *testing.T) {
	program := parseClean(t, `
int main() {
    printf("%d %f\n", 1 + 2, 3.5);
    return 0;
}`)

	stmt := program.Functions[0].Body[0].(*ast.ExprStmt)
	call, ok := stmt.X.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "printf", call.Name)
	require.Len(t, call.Args, 3)

	str, ok := call.Args[0].(*ast.StringLit)
	require.True(t, ok)
	assert.Equal(t, "%d %f\n", str.Value, "escapes resolve during parsing")
}

func TestParseControlFlow(t *testing.T) {
	program := parseClean(t, `
int main() {
    int i;
    if (i < 1) i = 1; else i = 2;
    while (i < 10) i = i + 1;
    for (i = 0; i < 3; i = i + 1) printbig(i);
    return i;
}`)

	body := program.Functions[0].Body
	require.Len(t, body, 4)

	ifStmt, ok := body[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Else)

	_, ok = body[1].(*ast.WhileStmt)
	assert.True(t, ok)

	forStmt, ok := body[2].(*ast.ForStmt)
	require.True(t, ok)
	_, ok = forStmt.Init.(*ast.AssignExpr)
	assert.True(t, ok)
}

func TestParseEmptyForClauses(t *testing.T) {
	program := parseClean(t, `
int main() {
    for (;;) printbig(1);
    return 0;
}`)

	forStmt := program.Functions[0].Body[0].(*ast.ForStmt)
	_, ok := forStmt.Init.(*ast.NoExpr)
	assert.True(t, ok)
	_, ok = forStmt.Cond.(*ast.NoExpr)
	assert.True(t, ok)
	_, ok = forStmt.Post.(*ast.NoExpr)
	assert.True(t, ok)
}

func TestParseBareReturn(t *testing.T) {
	program := parseClean(t, `
void stop() {
    return;
}`)

	ret := program.Functions[0].Body[0].(*ast.ReturnStmt)
	_, ok := ret.Value.(*ast.NoExpr)
	assert.True(t, ok, "an omitted return value becomes a placeholder")
}

func TestParseSizeof(t *testing.T) {
	program := parseClean(t, `
int main() {
    return sizeof(struct Point);
}`)

	ret := program.Functions[0].Body[0].(*ast.ReturnStmt)
	sz, ok := ret.Value.(*ast.SizeofExpr)
	require.True(t, ok)
	assert.True(t, types.Equal(types.Struct{Name: "Point"}, sz.Target))
}

func TestParseErrorReported(t *testing.T) {
	_, parseErrors, scanErrors := ParseSource("test.mc", `
int main() {
    return 1 +;
}`)

	assert.Empty(t, scanErrors)
	assert.NotEmpty(t, parseErrors)
}

func TestParseErrorPositionHasFile(t *testing.T) {
	program := parseClean(t, `
int main() {
    return 0;
}`)

	assert.Equal(t, "test.mc", program.Functions[0].Pos.Filename)
}

func TestParserAlwaysTerminates(t *testing.T) {
	// Garbage input must produce errors, never an infinite loop.
	_, parseErrors, _ := ParseSource("test.mc", "} ) ; else + 42")
	assert.NotEmpty(t, parseErrors)
}
