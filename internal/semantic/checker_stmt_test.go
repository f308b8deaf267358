package semantic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/errors"
	"mica/internal/sast"
)

func TestWhileDesugarsToIfDoWhile(t *testing.T) {
	source := `
int main() {
    int i;
    i = 0;
    while (i < 10) {
        i = i + 1;
    }
    return i;
}`

	checked, err := checkSource(t, source)
	require.Nil(t, err)

	main := checked.Functions[0]
	require.Len(t, main.Body.Stmts, 3)

	guarded, ok := main.Body.Stmts[1].(*sast.If)
	require.True(t, ok, "while should check as a guarded do-while")

	thenBlock, ok := guarded.Then.(*sast.Block)
	require.True(t, ok)
	require.Len(t, thenBlock.Stmts, 1)

	loop, ok := thenBlock.Stmts[0].(*sast.DoWhile)
	require.True(t, ok)
	assert.Equal(t, guarded.Cond.String(), loop.Cond.String(), "guard and loop share the condition")

	elseBlock, ok := guarded.Else.(*sast.Block)
	require.True(t, ok)
	assert.Empty(t, elseBlock.Stmts)

	assert.Contains(t, checked.String(), "do {", "the loop renders in do-while form")
}

func TestForDesugarsToInitGuardedLoop(t *testing.T) {
	source := `
int main() {
    int i;
    int sum;
    sum = 0;
    for (i = 0; i < 5; i = i + 1) {
        sum = sum + i;
    }
    return sum;
}`

	checked, err := checkSource(t, source)
	require.Nil(t, err)

	main := checked.Functions[0]
	require.Len(t, main.Body.Stmts, 3)

	wrapper, ok := main.Body.Stmts[1].(*sast.Block)
	require.True(t, ok, "for should check as an init statement plus guarded loop")
	require.Len(t, wrapper.Stmts, 2)

	_, ok = wrapper.Stmts[0].(*sast.ExprStmt)
	assert.True(t, ok, "the initializer runs once before the guard")

	guarded, ok := wrapper.Stmts[1].(*sast.If)
	require.True(t, ok)

	thenBlock := guarded.Then.(*sast.Block)
	loop, ok := thenBlock.Stmts[0].(*sast.DoWhile)
	require.True(t, ok)

	loopBody, ok := loop.Body.(*sast.Block)
	require.True(t, ok)
	require.Len(t, loopBody.Stmts, 2)
	_, ok = loopBody.Stmts[1].(*sast.ExprStmt)
	assert.True(t, ok, "the post expression runs at the end of each iteration")
}

func TestNestedBlocksAreFlattened(t *testing.T) {
	source := `
int main() {
    int x;
    x = 1;
    {
        x = 2;
        {
            x = 3;
        }
    }
    x = 4;
    return x;
}`

	checked, err := checkSource(t, source)
	require.Nil(t, err)

	main := checked.Functions[0]
	require.Len(t, main.Body.Stmts, 5, "nested braces splice into the enclosing sequence")
	for _, s := range main.Body.Stmts[:4] {
		_, ok := s.(*sast.ExprStmt)
		assert.True(t, ok)
	}
	_, ok := main.Body.Stmts[4].(*sast.Return)
	assert.True(t, ok)
}

func TestFlatteningIsIdempotent(t *testing.T) {
	flat := `
int main() {
    int x;
    x = 1;
    x = 2;
    return x;
}`
	nested := `
int main() {
    int x;
    { x = 1; }
    { { x = 2; } }
    return x;
}`

	flatChecked, err := checkSource(t, flat)
	require.Nil(t, err)
	nestedChecked, err := checkSource(t, nested)
	require.Nil(t, err)

	assert.Equal(t, flatChecked.String(), nestedChecked.String())
}

func TestStatementAfterReturnRejected(t *testing.T) {
	source := `
int main() {
    int x;
    return 1;
    x = 2;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorDeadCode, err.Code)
}

func TestReturnInNestedBlockStillTerminates(t *testing.T) {
	source := `
int main() {
    int x;
    {
        return 1;
    }
    x = 2;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorDeadCode, err.Code, "flattening exposes the statement after the return")
}

func TestDeadCodePositionPointsAtFirstUnreachable(t *testing.T) {
	source := `
int main() {
    int x;
    return 1;
    x = 2;
    x = 3;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorDeadCode, err.Code)
	assert.Equal(t, 5, err.Position.Line)
}

func TestConditionMustBeBool(t *testing.T) {
	source := `
int main() {
    if (1) {
        return 1;
    }
    return 0;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "bool")
}

func TestWhileConditionMustBeBool(t *testing.T) {
	source := `
int main() {
    while (1) {
        printbig(1);
    }
    return 0;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
}

func TestReturnValueMustMatchDeclaredType(t *testing.T) {
	source := `
int main() {
    return 1.5;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "int")
}

func TestBareReturnInNonVoidRejected(t *testing.T) {
	source := `
int main() {
    return;
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
}

func TestBareReturnInVoidFunction(t *testing.T) {
	source := `
void stop() {
    return;
}

int main() {
    stop();
    return 0;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestIfWithoutElseGetsEmptyElse(t *testing.T) {
	source := `
int main() {
    int x;
    x = 0;
    if (x < 1) {
        x = 1;
    }
    return x;
}`

	checked, err := checkSource(t, source)
	require.Nil(t, err)

	main := checked.Functions[0]
	ifStmt, ok := main.Body.Stmts[1].(*sast.If)
	require.True(t, ok)

	elseBlock, ok := ifStmt.Else.(*sast.Block)
	require.True(t, ok, "a missing else becomes an empty block")
	assert.Empty(t, elseBlock.Stmts)
}

func TestCheckedTreeRendersWithoutSourceLoops(t *testing.T) {
	source := `
int main() {
    int i;
    for (i = 0; i < 3; i = i + 1) {
        printbig(i);
    }
    return 0;
}`

	checked, err := checkSource(t, source)
	require.Nil(t, err)

	rendered := checked.String()
	assert.False(t, strings.Contains(rendered, "for ("), "for loops do not survive checking")
	assert.Contains(t, rendered, "do")
}
