package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "chrono", cmd.Use)
	assert.Contains(t, cmd.Long, "leap-second")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"convert", "round", "mjd", "jd", "gps", "scales"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	precFlag := cmd.PersistentFlags().Lookup("prec")
	require.NotNil(t, precFlag)
	assert.Equal(t, "9", precFlag.DefValue)
}

func TestPrecisionOutOfRange(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"scales", "--prec", "99"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid precision")
}

func TestScaleByNameCaseInsensitive(t *testing.T) {
	s, err := scaleByName("utc")
	require.NoError(t, err)
	assert.Equal(t, "UTC", s.Name())
}

func TestScaleByNameUnknown(t *testing.T) {
	_, err := scaleByName("TDB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scale")
	assert.Contains(t, err.Error(), "GPS, TAI, TT, UTC")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParseTimestampRejectsMalformedSeconds(t *testing.T) {
	_, err := parseTimestamp(0, "12:34")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --secs")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
