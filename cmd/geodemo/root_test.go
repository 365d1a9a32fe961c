package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RunsDemo(t *testing.T) {
	t.Setenv("LVGEO_LOG_LEVEL", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Circumference of all unity shapes: 10.2832\nCircumference of the empty scene: 0\n", out.String())
	assert.Contains(t, errOut.String(), "Caught exception: A circle must have a radius of at least 0.")
	assert.NotContains(t, errOut.String(), "Fatal:")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
