package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPSDecomposeEpoch(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"gps", "--scale", "TAI", "--days", "0", "--secs", "0"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "week=1042 secs=518381\n", buf.String())
}

func TestGPSComposeRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"gps", "--weeks", "1042", "--secs", "518381", "--to", "TAI"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "0/0\n", buf.String())
}

func TestGPSComposeDefaultsToGPSScale(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"gps", "--weeks", "0", "--secs", "0"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "-7300/0\n", buf.String())
}

func TestGPSDecomposeUnknownScale(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"gps", "--scale", "LORAN"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scale")
}
