package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"goais/ais"
)

func TestUpdateCreatesVesselOnFirstSighting(t *testing.T) {
	r := NewRegistry(time.Minute)
	msg := &ais.Message{MMSI: 265547250, Type: 1, ShipName: "EXAMPLE"}

	v := r.Update(msg)
	require.NotNil(t, v)
	require.Equal(t, uint32(265547250), v.MMSI)
	require.Equal(t, "EXAMPLE", v.Name)
	require.Equal(t, int64(1), v.Messages)
}

func TestUpdateRefreshesExistingVesselFields(t *testing.T) {
	r := NewRegistry(time.Minute)
	r.Update(&ais.Message{MMSI: 1, Type: 5, ShipName: "FIRST"})
	v := r.Update(&ais.Message{MMSI: 1, Type: 1, ShipName: ""})

	require.Equal(t, "FIRST", v.Name, "a blank field on a later message must not clobber a previously known one")
	require.Equal(t, int64(2), v.Messages)
}

func TestUpdateIgnoresZeroMMSI(t *testing.T) {
	r := NewRegistry(time.Minute)
	require.Nil(t, r.Update(&ais.Message{MMSI: 0}))
	require.Equal(t, 0, r.Count())
}

func TestLookupMissingVessel(t *testing.T) {
	r := NewRegistry(time.Minute)
	_, ok := r.Lookup(999)
	require.False(t, ok)
}

func TestSnapshotSortedByMMSI(t *testing.T) {
	r := NewRegistry(time.Minute)
	r.Update(&ais.Message{MMSI: 300})
	r.Update(&ais.Message{MMSI: 100})
	r.Update(&ais.Message{MMSI: 200})

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	require.Equal(t, uint32(100), snap[0].MMSI)
	require.Equal(t, uint32(200), snap[1].MMSI)
	require.Equal(t, uint32(300), snap[2].MMSI)
}
