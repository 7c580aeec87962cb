// Package ais decodes the armored 6-bit payload of a validated AIS
// HDLC frame into both a typed Message and a human-readable rendering,
// dispatching on the message type (1-27) per ITU-R M.1371.
package ais

import (
	"fmt"
	"strings"

	"goais/verbosity"
)

// Message is a flat record carrying every field any AIS message type
// can populate; only the fields relevant to Type are set. This
// mirrors how a single typed record is built up across many possible
// downlink formats in systems that dispatch on a type code embedded
// in the first few bits of a report.
type Message struct {
	Type       int
	Repeat     int
	MMSI       uint32
	Designator byte
	CRCOK      bool

	NavStatus     int
	HasNavStatus  bool
	RateOfTurn    *float64
	RateOfTurnMax bool // true if value was the "more than 5deg/30s" sentinel (+/-127)

	SpeedOverGround *float64
	SpeedAtLimit    bool

	Position     *Point
	Distance     *float64
	BearingDeg   *float64
	CourseOverGround *float64
	TrueHeading  *int
	Timestamp    int
	RAIM         bool
	HasRAIM      bool
	ManeuverText string

	EPFD     int
	EPFDText string
	HasEPFD  bool

	UTCYear, UTCMonth, UTCDay, UTCHour, UTCMinute, UTCSecond int

	AISVersion  int
	IMO         uint32
	CallSign    string
	ShipName    string
	ShipType    int
	ShipTypeText string
	HasShipType bool
	ToBow, ToStern, ToPort, ToStarboard int
	Draught     float64
	Destination string
	ETAMonth, ETADay, ETAHour, ETAMinute int

	Altitude        *int
	AltitudeAtLimit bool

	StationInfoText string

	AidType     int
	AidTypeText string
	HasAidType  bool
	OffPosition bool
	VirtualAid  bool

	PartNumber     int
	VendorID       string
	MothershipMMSI uint32

	GNSSCurrent bool

	Text string // full human-readable rendering
}

// Decoder decodes armored AIS payloads relative to a fixed observer
// position, at the configured verbosity level.
type Decoder struct {
	Designator byte
	Verbose    verbosity.Mask
	Observer   Point
}

// NewDecoder returns a Decoder. An out-of-range observer coordinate is
// replaced by the default reference station position (Vaasa, Finland)
// used by the reference decoder when no observer is configured. (0,0)
// is itself a valid — if unlikely — position and can't serve as a
// sentinel; out-of-range coordinates are the sentinel instead, matching
// the source's own lon<-180||lon>180 check.
func NewDecoder(designator byte, verbose verbosity.Mask, observer Point) *Decoder {
	if observer.Lon < -180 || observer.Lon > 180 {
		observer.Lon = 21.5593
	}
	if observer.Lat < -90 || observer.Lat > 90 {
		observer.Lat = 63.1587
	}
	return &Decoder{Designator: designator, Verbose: verbose, Observer: observer}
}

// Decode interprets an armored sextet payload (as produced by
// hdlc.Unarmor) and returns the typed Message, whose Text field holds
// its human-readable rendering.
func (d *Decoder) Decode(sextets []byte) (*Message, error) {
	if len(sextets) == 0 {
		return nil, fmt.Errorf("ais: empty payload")
	}

	reportType := int(ValueAt(sextets, 0, 6))
	if reportType == 0 || reportType > 27 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return nil, fmt.Errorf("ais: unsupported report type %d", reportType)
		}
	}

	msg := &Message{
		Type:       reportType,
		Repeat:     int(ValueAt(sextets, 6, 2)),
		MMSI:       uint32(ValueAt(sextets, 8, 30)),
		Designator: d.Designator,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "AIS VHF maritime channel %s (%s MHz)\n", channelName(d.Designator), channelFreq(d.Designator))
	fmt.Fprintf(&b, "Mobile Marine Service Identifier: %d\n", msg.MMSI)
	if name, ok := messageTypeText[reportType]; ok {
		b.WriteString(name + "\n")
	} else {
		fmt.Fprintf(&b, "Unknown AIS report type %d\n", reportType)
	}

	switch reportType {
	case 1, 2, 3:
		d.decodePosition123(sextets, msg, &b)
	case 4:
		d.decodeBaseStation(sextets, msg, &b)
	case 5:
		d.decodeStaticAndVoyage(sextets, msg, &b)
	case 6:
		fmt.Fprintf(&b, "Destination MMSI: %d\n", ValueAt(sextets, 40, 30))
	case 7:
		// acknowledgement carries only sequence/MMSI references, already rendered above
	case 8:
		fmt.Fprintf(&b, "Binary data length: %d bits\n", len(sextets)*6-40)
	case 9:
		d.decodeSARAircraft(sextets, msg, &b)
	case 10, 11:
		d.decodeUTCInquiry(sextets, &b)
	case 12, 13:
		d.decodeAddrAckSafety(sextets, &b)
	case 14:
		d.decodeSafetyBroadcast(sextets, &b)
	case 15:
		d.decodeInterrogation(sextets, &b)
	case 16:
		d.decodeAssignmentMode(sextets, &b)
	case 17:
		d.decodeDGNSS(sextets, msg, &b)
	case 18, 19:
		d.decodeClassBPosition(sextets, msg, &b, reportType == 19)
	case 20:
		fmt.Fprintf(&b, "Reservation data length: %d bits\n", len(sextets)*6-40)
	case 21:
		d.decodeAidToNavigation(sextets, msg, &b)
	case 22:
		fmt.Fprintf(&b, "Channel management data length: %d bits\n", len(sextets)*6-40)
	case 23:
		fmt.Fprintf(&b, "Group assignment data length: %d bits\n", len(sextets)*6-40)
	case 24:
		d.decodeStaticDataReport(sextets, msg, &b)
	case 25:
		fmt.Fprintf(&b, "Binary message length: %d bits\n", len(sextets)*6-40)
	case 26:
		fmt.Fprintf(&b, "Binary message with comm state length: %d bits\n", len(sextets)*6-40)
	case 27:
		d.decodeLongRange(sextets, msg, &b)
	}

	msg.Text = b.String()
	return msg, nil
}

func channelName(d byte) string {
	if d == 'A' {
		return "87B"
	}
	return "88B"
}

func channelFreq(d byte) string {
	if d == 'A' {
		return "161.975"
	}
	return "162.025"
}

// sizeOK reports whether a message's declared bit length (len6*6)
// matches want, honoring the Debug3 "decode anyway" escape
// hatch the reference decoder uses for malformed frames.
func (d *Decoder) sizeOK(len6, want int) bool {
	if len6*6 == want {
		return true
	}
	return d.Verbose.Has(verbosity.Debug3)
}
