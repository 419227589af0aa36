package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLexFlags(t *testing.T) {
	t.Helper()
	oldPos, oldType, oldErrors, oldEval := lexShowPos, lexShowType, lexOnlyErrors, lexEvalExpr
	lexShowPos, lexShowType, lexOnlyErrors, lexEvalExpr = false, false, false, ""
	t.Cleanup(func() {
		lexShowPos, lexShowType, lexOnlyErrors, lexEvalExpr = oldPos, oldType, oldErrors, oldEval
	})
}

func TestLexScriptPrintsTokens(t *testing.T) {
	resetLexFlags(t)
	lexEvalExpr = "(+ 1 2)"

	out := captureStdout(t, func() {
		err := lexScript(lexCmd, nil)
		require.NoError(t, err)
	})
	assert.Contains(t, out, "EOF")
}

func TestLexScriptOnlyErrorsReportsIllegalTokenCount(t *testing.T) {
	resetLexFlags(t)
	lexEvalExpr = "]"
	lexOnlyErrors = true

	err := lexScript(lexCmd, nil)
	assert.Error(t, err)
}
