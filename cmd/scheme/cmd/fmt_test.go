package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFmtFlags(t *testing.T) {
	t.Helper()
	oldWrite, oldList, oldDiff, oldStyle, oldDotted := fmtWrite, fmtList, fmtDiff, fmtStyle, fmtDotted
	fmtWrite, fmtList, fmtDiff, fmtStyle, fmtDotted = false, false, false, "detailed", true
	t.Cleanup(func() {
		fmtWrite, fmtList, fmtDiff, fmtStyle, fmtDotted = oldWrite, oldList, oldDiff, oldStyle, oldDotted
	})
}

func TestRunFmtRewritesFileInPlaceWithWriteFlag(t *testing.T) {
	resetFmtFlags(t)
	fmtWrite = true
	fmtStyle = "compact"

	dir := t.TempDir()
	path := dir + "/prog.scm"
	require.NoError(t, os.WriteFile(path, []byte("(+    1    2)"), 0o644))

	err := runFmt(fmtCmd, []string{path})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)\n", string(got))
}

func TestRunFmtListsOnlyChangedFiles(t *testing.T) {
	resetFmtFlags(t)
	fmtList = true
	fmtStyle = "compact"

	dir := t.TempDir()
	changed := dir + "/changed.scm"
	unchanged := dir + "/unchanged.scm"
	require.NoError(t, os.WriteFile(changed, []byte("(+   1 2)"), 0o644))
	require.NoError(t, os.WriteFile(unchanged, []byte("(+ 1 2)\n"), 0o644))

	out := captureStdout(t, func() {
		err := runFmt(fmtCmd, []string{changed, unchanged})
		require.NoError(t, err)
	})
	assert.Contains(t, out, "changed.scm")
	assert.NotContains(t, out, "unchanged.scm")
}

func TestRunFmtRejectsConflictingFlags(t *testing.T) {
	resetFmtFlags(t)
	fmtWrite = true
	fmtList = true
	err := runFmt(fmtCmd, nil)
	assert.Error(t, err)
}

func TestRunFmtRejectsUnknownStyle(t *testing.T) {
	resetFmtFlags(t)
	fmtStyle = "bogus"
	err := runFmt(fmtCmd, []string{"whatever.scm"})
	assert.Error(t, err)
}
