package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsMissingStaticRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir")

	var stdout bytes.Buffer
	err := run([]string{"--root", missing}, &stdout)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "static root not found")
	assert.Contains(t, err.Error(), missing)

	// Fails before serving: no banner, nothing bound.
	assert.Empty(t, stdout.String())
}

func TestRunRejectsStaticRootThatIsAFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(root, []byte("plain file"), 0o644))

	var stdout bytes.Buffer
	err := run([]string{"--root", root}, &stdout)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "static root not found")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"--port", "70000"}, &stdout)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
	assert.Empty(t, stdout.String())
}
