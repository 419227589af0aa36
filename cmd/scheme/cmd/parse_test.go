package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetParseFlags(t *testing.T) {
	t.Helper()
	oldEval, oldDotted := parseEvalExpr, parseDotted
	parseEvalExpr, parseDotted = "", true
	t.Cleanup(func() {
		parseEvalExpr, parseDotted = oldEval, oldDotted
	})
}

func TestRunParsePrintsDatumTree(t *testing.T) {
	resetParseFlags(t)
	parseEvalExpr = "(+ 1 2)"

	out := captureStdout(t, func() {
		err := runParse(parseCmd, nil)
		require.NoError(t, err)
	})
	assert.Contains(t, out, "pair")
	assert.Contains(t, out, "number: 1")
}

func TestRunParseReportsMalformedInput(t *testing.T) {
	resetParseFlags(t)
	parseEvalExpr = "(+ 1"
	err := runParse(parseCmd, nil)
	assert.Error(t, err)
}
