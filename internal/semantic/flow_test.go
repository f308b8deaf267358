package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/errors"
)

func TestBothBranchesReturning(t *testing.T) {
	source := `
int sign(int n) {
    if (n < 0) {
        return -1;
    } else {
        return 1;
    }
}

int main() {
    return sign(-5);
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestIfWithoutElseDoesNotGuaranteeReturn(t *testing.T) {
	source := `
int main() {
    int n;
    n = 1;
    if (n < 2) {
        return 1;
    }
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
}

func TestLiteralTrueConditionStillNeedsElse(t *testing.T) {
	source := `
int main() {
    if (true) {
        return 1;
    }
}`

	// The analysis never evaluates conditions, so even a branch that always
	// runs does not count without a returning else.
	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
}

func TestReturnAfterBothBranchesReturn(t *testing.T) {
	source := `
int main() {
    int n;
    n = 3;
    if (n < 0) {
        return -1;
    } else {
        return 1;
    }
    n = 4;
}`

	// The statement after the if sits behind two returning arms. It is not
	// directly behind a return in its own block, so it passes the dead-code
	// check, and the flow analysis still proves every path returns.
	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestLoopReturnDoesNotCoverSkippedPath(t *testing.T) {
	source := `
int main() {
    int n;
    n = 0;
    while (n < 10) {
        return n;
    }
}`

	// The loop may run zero times, so its body returning proves nothing
	// about the path that skips it.
	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
}

func TestLoopReturnWithTrailingReturn(t *testing.T) {
	source := `
int main() {
    int n;
    n = 0;
    while (n < 10) {
        return n;
    }
    return 0;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestTrailingReturnSuffices(t *testing.T) {
	source := `
int main() {
    int n;
    n = 1;
    if (n < 2) {
        n = 2;
    } else {
        n = 3;
    }
    return n;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestEmptyNonVoidBodyRejected(t *testing.T) {
	source := `
int main() {
}`

	_, err := checkSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
}

func TestNestedBranchesAllReturning(t *testing.T) {
	source := `
int classify(int n) {
    if (n < 0) {
        if (n < -100) {
            return -2;
        } else {
            return -1;
        }
    } else {
        return 1;
    }
}

int main() {
    return classify(7);
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestVoidFunctionSkipsFlowCheck(t *testing.T) {
	source := `
void maybeLog(int n) {
    if (n < 0) {
        return;
    }
    printbig(n);
}

int main() {
    maybeLog(1);
    return 0;
}`

	_, err := checkSource(t, source)
	assert.Nil(t, err)
}

func TestGuaranteesReturnDirect(t *testing.T) {
	source := `
int main() {
    int n;
    n = 1;
    if (n < 0) {
        return 0;
    } else {
        return 1;
    }
}`

	checked, err := checkSource(t, source)
	require.Nil(t, err)
	assert.True(t, guaranteesReturn(checked.Functions[0].Body))
}
