package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommandPrintsVersionFields(t *testing.T) {
	out := captureStdout(t, func() {
		versionCmd.Run(versionCmd, nil)
	})
	assert.Contains(t, out, "scheme version")
	assert.Contains(t, out, "Git Commit:")
	assert.Contains(t, out, "Build Date:")
}
