package ais

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceOneDegreeOfLatitude(t *testing.T) {
	from := Point{Lon: 0, Lat: 0}
	to := Point{Lon: 0, Lat: 1}

	require.InDelta(t, 110574.389, Distance(from, to), 1.0)
}

func TestBearingDueNorthAlongMeridian(t *testing.T) {
	from := Point{Lon: 0, Lat: 0}
	to := Point{Lon: 0, Lat: 1}

	require.InDelta(t, 0.0, Bearing(from, to), 0.001)
}

func TestDistanceAndBearingOfCoincidentPointsAreZero(t *testing.T) {
	p := Point{Lon: 10, Lat: 50}
	require.Zero(t, Distance(p, p))
	require.Zero(t, Bearing(p, p))
}
