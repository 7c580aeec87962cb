package ais

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goais/hdlc"
	"goais/verbosity"
)

func TestDecodeType1ExtractsMMSIAndPosition(t *testing.T) {
	sextets := hdlc.Unarmor("13u?etPv2;0n?nNKJr?KHqQ20<0<")

	d := NewDecoder('A', verbosity.FromLevel(0), Point{Lon: 21.5593, Lat: 63.1587})
	msg, err := d.Decode(sextets)
	require.NoError(t, err)

	require.Equal(t, 1, msg.Type)
	require.Equal(t, uint32(265547250), msg.MMSI)
	require.NotNil(t, msg.Position)
}

func TestDecodeUnknownReportTypeErrorsAtDefaultVerbosity(t *testing.T) {
	d := NewDecoder('A', verbosity.FromLevel(0), Point{Lon: 0, Lat: 0})
	_, err := d.Decode([]byte{28, 0, 0, 0, 0, 0, 0})
	require.Error(t, err)
}

func TestDecodeUnknownReportTypeDecodesAnywayAtDebug3(t *testing.T) {
	d := NewDecoder('A', verbosity.FromLevel(3), Point{Lon: 0, Lat: 0})
	msg, err := d.Decode([]byte{28, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 28, msg.Type)
}

func TestNewDecoderSubstitutesDefaultObserverWhenOutOfRange(t *testing.T) {
	d := NewDecoder('A', verbosity.FromLevel(0), Point{Lon: 999, Lat: 999})
	require.InDelta(t, 21.5593, d.Observer.Lon, 1e-9)
	require.InDelta(t, 63.1587, d.Observer.Lat, 1e-9)
}

func TestNewDecoderKeepsValidObserver(t *testing.T) {
	d := NewDecoder('A', verbosity.FromLevel(0), Point{Lon: 10, Lat: 50})
	require.InDelta(t, 10.0, d.Observer.Lon, 1e-9)
	require.InDelta(t, 50.0, d.Observer.Lat, 1e-9)
}

func TestSizeOKRejectsMismatchAtDefaultVerbosity(t *testing.T) {
	d := NewDecoder('A', verbosity.FromLevel(0), Point{Lon: 0, Lat: 0})
	require.False(t, d.sizeOK(10, 168))
	require.True(t, d.sizeOK(28, 168))
}

func TestSizeOKAllowsMismatchAtDebug3(t *testing.T) {
	d := NewDecoder('A', verbosity.FromLevel(3), Point{Lon: 0, Lat: 0})
	require.True(t, d.sizeOK(10, 168))
}

func TestChannelNameAndFreq(t *testing.T) {
	require.Equal(t, "87B", channelName('A'))
	require.Equal(t, "161.975", channelFreq('A'))
	require.Equal(t, "88B", channelName('B'))
	require.Equal(t, "162.025", channelFreq('B'))
}
