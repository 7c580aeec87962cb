// Package fleet tracks the most recently decoded state of every vessel
// seen on either VHF channel, keyed by MMSI, with an expiring entry per
// vessel instead of a persistent database.
package fleet

import (
	"fmt"
	"sort"
	"time"

	cache "github.com/patrickmn/go-cache"

	"goais/ais"
)

// DefaultTTL is how long a vessel stays in the registry without a
// fresh report before it is evicted.
const DefaultTTL = 10 * time.Minute

// Vessel is the rolling summary of everything decoded about one MMSI.
type Vessel struct {
	MMSI       uint32
	Name       string
	CallSign   string
	ShipType   string
	Position   *ais.Point
	Distance   *float64
	BearingDeg *float64
	Course     *float64
	Heading    *int
	Speed      *float64
	NavStatus  string
	Destination string
	Messages   int64
	LastType   int
	LastSeen   time.Time
}

// Registry is a concurrency-safe, TTL-expiring table of Vessel records.
// It mirrors the teacher's TTL-tracked station table, but keyed by MMSI
// and backed by go-cache rather than a hand-rolled map-plus-mutex, since
// every entry here already needs its own independent expiry.
type Registry struct {
	c   *cache.Cache
	ttl time.Duration
}

// NewRegistry returns a Registry whose entries expire after ttl (or
// DefaultTTL if ttl <= 0), swept every ttl/2.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		c:   cache.New(ttl, ttl/2),
		ttl: ttl,
	}
}

// Update folds a decoded message into the registry, creating the
// vessel's entry on first sighting and refreshing its TTL on every
// subsequent one.
func (r *Registry) Update(msg *ais.Message) *Vessel {
	if msg == nil || msg.MMSI == 0 {
		return nil
	}

	key := vesselKey(msg.MMSI)
	var v *Vessel
	if existing, ok := r.c.Get(key); ok {
		v = existing.(*Vessel)
	} else {
		v = &Vessel{MMSI: msg.MMSI}
	}

	v.Messages++
	v.LastType = msg.Type
	v.LastSeen = time.Now()

	if msg.ShipName != "" {
		v.Name = msg.ShipName
	}
	if msg.CallSign != "" {
		v.CallSign = msg.CallSign
	}
	if msg.ShipTypeText != "" {
		v.ShipType = msg.ShipTypeText
	}
	if msg.Position != nil {
		v.Position = msg.Position
		v.Distance = msg.Distance
		v.BearingDeg = msg.BearingDeg
	}
	if msg.CourseOverGround != nil {
		v.Course = msg.CourseOverGround
	}
	if msg.TrueHeading != nil {
		v.Heading = msg.TrueHeading
	}
	if msg.SpeedOverGround != nil {
		v.Speed = msg.SpeedOverGround
	}
	if msg.HasNavStatus {
		v.NavStatus = navStatusText(msg)
	}
	if msg.Destination != "" {
		v.Destination = msg.Destination
	}

	r.c.Set(key, v, r.ttl)
	return v
}

func navStatusText(msg *ais.Message) string {
	return fmt.Sprintf("status %d", msg.NavStatus)
}

func vesselKey(mmsi uint32) string {
	return fmt.Sprintf("mmsi:%d", mmsi)
}

// Lookup returns the vessel tracked under mmsi, if any.
func (r *Registry) Lookup(mmsi uint32) (*Vessel, bool) {
	v, ok := r.c.Get(vesselKey(mmsi))
	if !ok {
		return nil, false
	}
	return v.(*Vessel), true
}

// Count returns the number of vessels currently tracked.
func (r *Registry) Count() int {
	return r.c.ItemCount()
}

// Snapshot returns every tracked vessel, sorted by MMSI, for rendering
// by the dashboard.
func (r *Registry) Snapshot() []*Vessel {
	items := r.c.Items()
	out := make([]*Vessel, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(*Vessel))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MMSI < out[j].MMSI })
	return out
}
