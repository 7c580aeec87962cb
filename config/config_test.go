package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	c, err := Parse([]string{"-c", "capture.bin"})
	require.NoError(t, err)
	require.Equal(t, byte('A'), c.Designator)
	require.Equal(t, 0, c.Verbose)
	require.Equal(t, 7, c.FFTaps)
	require.True(t, c.Dashboard)
}

func TestParseRejectsMissingCapturePath(t *testing.T) {
	_, err := Parse([]string{})
	require.Error(t, err)
}

func TestParseRejectsBadDesignator(t *testing.T) {
	_, err := Parse([]string{"-c", "capture.bin", "-d", "Z"})
	require.Error(t, err)
}

func TestParseClampsVerboseRange(t *testing.T) {
	c, err := Parse([]string{"-c", "capture.bin", "-v", "99"})
	require.NoError(t, err)
	require.Equal(t, 6, c.Verbose)
}

func TestParseAcceptsDesignatorB(t *testing.T) {
	c, err := Parse([]string{"-c", "capture.bin", "-d", "B"})
	require.NoError(t, err)
	require.Equal(t, byte('B'), c.Designator)
}
