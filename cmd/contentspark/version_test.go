package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalBuildTime := buildTime
	t.Cleanup(func() {
		version = originalVersion
		buildTime = originalBuildTime
	})

	version = "1.2.3"
	buildTime = "2025-10-03T12:00:00Z"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "2025-10-03T12:00:00Z")
}
