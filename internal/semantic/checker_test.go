package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/parser"
	"mica/internal/sast"
)

// parseSource parses a test program and fails the test on any scan or parse
// error, so checker tests only ever see clean input.
func parseSource(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, parseErrors, scanErrors := parser.ParseSource("test.mc", source)
	require.Empty(t, scanErrors, "Should have no scan errors")
	require.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, program, "Program should be parsed")
	return program
}

func checkSource(t *testing.T, source string) (*sast.Program, *errors.CompilerError) {
	t.Helper()
	return Check(parseSource(t, source))
}

func TestWellTypedProgram(t *testing.T) {
	source := `
struct Point {
    int x;
    int y;
};

int origin;

int area(int w, int h) {
    return w * h;
}

int main() {
    struct Point p;
    int total;
    p.x = 3;
    p.y = 4;
    total = area(p.x, p.y) + origin;
    return total;
}`

	checked, err := checkSource(t, source)
	require.Nil(t, err, "Should have no semantic errors")
	require.NotNil(t, checked)

	assert.Len(t, checked.Structs, 1)
	assert.Len(t, checked.Globals, 1)
	require.Len(t, checked.Functions, 2)

	// Function order follows declaration order.
	assert.Equal(t, "area", checked.Functions[0].Name)
	assert.Equal(t, "main", checked.Functions[1].Name)
}

func TestMissingEntryPoint(t *testing.T) {
	source := `
int helper() {
    return 1;
}`

	checked, err := checkSource(t, source)
	assert.Nil(t, checked)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorMissingEntryPoint, err.Code)
}

func TestFunctionRedeclaration(t *testing.T) {
	source := `
int twice(int n) {
    return n + n;
}

int twice(int n) {
    return 2 * n;
}

int main() {
    return twice(4);
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorRedeclaration, err.Code)
	assert.Contains(t, err.Message, "twice")
}

func TestBuiltinNameCollision(t *testing.T) {
	source := `
void free(int n) {
}

int main() {
    return 0;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorRedeclaration, err.Code)
	assert.Contains(t, err.Message, "free")
}

func TestCallBeforeDeclarationFails(t *testing.T) {
	source := `
int main() {
    return helper();
}

int helper() {
    return 1;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUndefinedSymbol, err.Code)
	assert.Contains(t, err.Message, "helper")
}

func TestDirectRecursion(t *testing.T) {
	source := `
int fact(int n) {
    if (n < 2) {
        return 1;
    } else {
        return n * fact(n - 1);
    }
}

int main() {
    return fact(5);
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err, "Self-calls resolve against the function's own signature")
}

func TestBuiltinsAvailable(t *testing.T) {
	source := `
int main() {
    int *p;
    printf("value: %d\n", 42, 1.5);
    printbig(7);
    p = (int *) malloc(4);
    free((void *) p);
    return 0;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err, "Built-in functions need no declaration")
}

func TestVoidGlobalRejected(t *testing.T) {
	source := `
void nothing;

int main() {
    return 0;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorIllegalBinding, err.Code)
	assert.Contains(t, err.Message, "void")
}

func TestDuplicateGlobalRejected(t *testing.T) {
	source := `
int count;
float count;

int main() {
    return 0;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorIllegalBinding, err.Code)
	assert.Contains(t, err.Message, "duplicate")
}

func TestDuplicateFormalRejected(t *testing.T) {
	source := `
int add(int n, int n) {
    return n;
}

int main() {
    return add(1, 2);
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorIllegalBinding, err.Code)
}

func TestStructVoidFieldRejected(t *testing.T) {
	source := `
struct Broken {
    void gap;
};

int main() {
    return 0;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorIllegalBinding, err.Code)
}

func TestStructDuplicateFieldRejected(t *testing.T) {
	source := `
struct Broken {
    int x;
    float x;
};

int main() {
    return 0;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorIllegalBinding, err.Code)
	assert.Contains(t, err.Message, "duplicate")
}

func TestLocalShadowsFormal(t *testing.T) {
	source := `
float describe(int x) {
    float x;
    x = 1.5;
    return x;
}

int main() {
    float f;
    f = describe(3);
    return 0;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err, "A local may shadow a formal of the same name")
}

func TestFormalShadowsGlobal(t *testing.T) {
	source := `
int x;

float get(float x) {
    return x;
}

int main() {
    float f;
    f = get(1.5);
    return 0;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err, "A formal may shadow a global of the same name")
}

func TestScopeDoesNotLeakBetweenFunctions(t *testing.T) {
	source := `
int first() {
    int secret;
    secret = 1;
    return secret;
}

int main() {
    return secret;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUndefinedSymbol, err.Code)
	assert.Contains(t, err.Message, "secret")
}

func TestUndefinedVariable(t *testing.T) {
	source := `
int main() {
    return missing;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUndefinedSymbol, err.Code)
	assert.Contains(t, err.Message, "missing")
}

func TestNonVoidFunctionMustReturn(t *testing.T) {
	source := `
int main() {
    int x;
    x = 1;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
}

func TestVoidFunctionNeedsNoReturn(t *testing.T) {
	source := `
void report(int n) {
    printbig(n);
}

int main() {
    report(3);
    return 0;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestCheckerRunsAreIndependent(t *testing.T) {
	source := `
int main() {
    return 0;
}`

	program := parseSource(t, source)

	first, err1 := Check(program)
	second, err2 := Check(program)

	assert.Nil(t, err1)
	assert.Nil(t, err2)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.String(), second.String())
}
