package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersion(t *testing.T) {
	gotVersion, gotRevision := buildVersion()
	assert.NotEmpty(t, gotVersion)
	assert.NotEmpty(t, gotRevision)
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, nil))

	output := buf.String()
	assert.Contains(t, output, "colx "+version)
	assert.Contains(t, output, "revision: "+revision)
	assert.Contains(t, output, runtime.Version())
	assert.Contains(t, output, runtime.GOOS+"/"+runtime.GOARCH)
}
