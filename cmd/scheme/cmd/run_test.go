package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it, mirroring how these commands print directly
// to os.Stdout rather than through cobra's configurable writer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func resetRunFlags(t *testing.T) {
	t.Helper()
	oldEval, oldDump, oldTrace, oldDotted, oldFragile := runEvalExpr, runDumpAST, runTrace, runDotted, runFragile
	runEvalExpr, runDumpAST, runTrace, runDotted, runFragile = "", false, false, true, false
	t.Cleanup(func() {
		runEvalExpr, runDumpAST, runTrace, runDotted, runFragile = oldEval, oldDump, oldTrace, oldDotted, oldFragile
	})
}

func TestRunScriptEvaluatesInlineExpression(t *testing.T) {
	resetRunFlags(t)
	runEvalExpr = "(display (+ 1 2))"

	out := captureStdout(t, func() {
		err := runScript(runCmd, nil)
		require.NoError(t, err)
	})
	assert.Equal(t, "3", out)
}

func TestRunScriptReadsFromFile(t *testing.T) {
	resetRunFlags(t)
	dir := t.TempDir()
	path := dir + "/prog.scm"
	require.NoError(t, os.WriteFile(path, []byte(`(display "hi")`), 0o644))

	out := captureStdout(t, func() {
		err := runScript(runCmd, []string{path})
		require.NoError(t, err)
	})
	assert.Equal(t, "hi", out)
}

func TestRunScriptReportsParseError(t *testing.T) {
	resetRunFlags(t)
	runEvalExpr = "(+ 1"
	err := runScript(runCmd, nil)
	assert.Error(t, err)
}

func TestRunScriptReportsEvaluationError(t *testing.T) {
	resetRunFlags(t)
	runEvalExpr = "(car 5)"
	err := runScript(runCmd, nil)
	assert.Error(t, err)
}

func TestRunScriptDumpsASTWhenRequested(t *testing.T) {
	resetRunFlags(t)
	runEvalExpr = "(+ 1 2)"
	runDumpAST = true

	out := captureStdout(t, func() {
		err := runScript(runCmd, nil)
		require.NoError(t, err)
	})
	assert.Contains(t, out, "AST:")
	assert.Contains(t, out, "pair")
}
