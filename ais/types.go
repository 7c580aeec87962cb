package ais

import (
	"fmt"
	"strings"

	"goais/verbosity"
)

// speedOverGround reads a 10-bit SOG field at bitPos. For ship
// reports (ship=true) the raw units are tenths of a knot and 1022
// means "102.2 knots or more"; for others the raw value is already in
// whole units. 1023 means not available and leaves msg.SpeedOverGround nil.
func speedOverGround(ais []byte, bitPos int, ship bool) (speed *float64, atLimit bool) {
	v := int(ValueAt(ais, bitPos, 10))
	if v == 1023 {
		return nil, false
	}
	s := float64(v)
	if ship {
		s /= 10.0
	}
	return &s, v == 1022
}

// courseOverGround reads a 12-bit COG field at bitPos in tenths of a
// degree; 3600 means not available.
func courseOverGround(ais []byte, bitPos int) *float64 {
	v := ValueAt(ais, bitPos, 12)
	if v == 3600 {
		return nil
	}
	c := float64(v) / 10.0
	return &c
}

// position reads the 28-bit lon / 27-bit lat pair at bitPos, scaled by
// 1/600000 per M.1371, validates the WGS-84 range, and returns nil if
// out of range (unless the decoder is configured to decode anyway).
func (d *Decoder) position(ais []byte, bitPos int) *Point {
	lonRaw := SignedValueAt(ais, bitPos, 28)
	latRaw := SignedValueAt(ais, bitPos+28, 27)
	lon := float64(lonRaw) / 600000.0
	lat := float64(latRaw) / 600000.0

	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return nil
		}
	}
	return &Point{Lon: lon, Lat: lat}
}

// positionFixType reads a 4-bit EPFD code at bitPos.
func positionFixType(ais []byte, bitPos int) (code int, text string, ok bool) {
	code = int(ValueAt(ais, bitPos, 4) & 0x0f)
	text, ok = epfdText[code]
	return
}

// shipDimension reads the four-field (bow/stern/port/starboard)
// dimension block starting at bitPos (9+9+6+6 = 30 bits).
func shipDimension(ais []byte, bitPos int) (bow, stern, port, starboard int) {
	bow = int(ValueAt(ais, bitPos, 9))
	stern = int(ValueAt(ais, bitPos+9, 9))
	port = int(ValueAt(ais, bitPos+18, 6))
	starboard = int(ValueAt(ais, bitPos+24, 6))
	return
}

func (d *Decoder) writePosition(ais []byte, bitPos int, msg *Message, b *strings.Builder, objType string) {
	p := d.position(ais, bitPos)
	if p == nil {
		return
	}
	msg.Position = p

	lod, lom, los := toDMS(p.Lon)
	ew := byte('E')
	if p.Lon < 0 {
		ew = 'W'
	}
	fmt.Fprintf(b, "Longitude: %c %d° %d' %.3f\" (%.6f°)\n", ew, lod, lom, los, p.Lon)

	lad, lam, las := toDMS(p.Lat)
	ns := byte('N')
	if p.Lat < 0 {
		ns = 'S'
	}
	fmt.Fprintf(b, "Latitude : %c %d° %d' %.3f\" (%.6f°)\n", ns, lad, lam, las, p.Lat)

	dist := Distance(d.Observer, *p)
	bearing := Bearing(d.Observer, *p)
	msg.Distance = &dist
	msg.BearingDeg = &bearing

	unit := "m"
	shown := dist
	decimals := 0
	if dist > 10000 {
		shown = dist / 1000.0
		unit = "km"
		decimals = 3
	}
	fmt.Fprintf(b, "Distance %.3f M (%.*f %s) and bearing %.1f° to %s\n",
		dist/1851.85, decimals, shown, unit, bearing, objType)
}

func writeRAIM(ais []byte, bitPos int, msg *Message, b *strings.Builder) {
	v := ValueAt(ais, bitPos, 1)
	msg.HasRAIM = true
	msg.RAIM = v != 0
	if v == 0 {
		b.WriteString("Receiver Autonomous Integrity Monitoring: RAIM not in use\n")
	} else {
		b.WriteString("Receiver Autonomous Integrity Monitoring: RAIM in use\n")
	}
}

func writeNavStatus(ais []byte, bitPos int, msg *Message, b *strings.Builder) {
	v := int(ValueAt(ais, bitPos, 4))
	text, ok := navigationStatusText[v]
	if !ok {
		return
	}
	msg.HasNavStatus = true
	msg.NavStatus = v
	fmt.Fprintf(b, "Navigation Status: %s\n", text)
}

func writeShipType(ais []byte, bitPos int, msg *Message, b *strings.Builder) {
	v := int(ValueAt(ais, bitPos, 8))
	text, ok := shipTypeText(v)
	if !ok {
		return
	}
	msg.HasShipType = true
	msg.ShipType = v
	msg.ShipTypeText = text
	fmt.Fprintf(b, "Ship Type: %s\n", text)
}

// decodePosition123 decodes message types 1, 2, 3 (168-bit Class A
// position reports).
func (d *Decoder) decodePosition123(ais []byte, msg *Message, b *strings.Builder) {
	if !d.sizeOK(len(ais), 168) {
		return
	}

	writeNavStatus(ais, 38, msg, b)

	rot := SignedValueAt(ais, 42, 8)
	switch {
	case rot == 127:
		msg.RateOfTurnMax = true
		b.WriteString("Rate of Turn: Right at more than 5° per 30 second\n")
	case rot == -127:
		msg.RateOfTurnMax = true
		b.WriteString("Rate of Turn: Left at more than 5° per 30 second\n")
	case rot != 0:
		deg := (float64(rot) / 4.733) * (float64(rot) / 4.733)
		msg.RateOfTurn = &deg
		dir := "Left"
		if rot > 0 {
			dir = "Right"
		}
		fmt.Fprintf(b, "Rate of Turn: %s at %.3f°/min\n", dir, deg)
	}

	sog, atLimit := speedOverGround(ais, 50, true)
	msg.SpeedOverGround, msg.SpeedAtLimit = sog, atLimit
	writeSpeed(b, sog, atLimit, true)

	d.writePosition(ais, 61, msg, b, "vessel")
	msg.CourseOverGround = courseOverGround(ais, 116)
	writeCourse(b, msg.CourseOverGround)

	heading := int(ValueAt(ais, 128, 9))
	if heading < 360 {
		msg.TrueHeading = &heading
		fmt.Fprintf(b, "True Heading: %d°\n", heading)
	}

	msg.Timestamp = int(ValueAt(ais, 137, 6))
	fmt.Fprintf(b, "Time Stamp: %d seconds\n", msg.Timestamp)

	switch ValueAt(ais, 143, 2) {
	case 1:
		msg.ManeuverText = "No special maneuver"
		b.WriteString("Maneuver Indicator: No special maneuver\n")
	case 2:
		msg.ManeuverText = "Special maneuver (such as regional passing arrangement)"
		b.WriteString("Maneuver Indicator: Special maneuver (such as regional passing arrangement)\n")
	}

	writeRAIM(ais, 148, msg, b)
}

func writeSpeed(b *strings.Builder, sog *float64, atLimit, ship bool) {
	if sog == nil {
		return
	}
	unit := "knots"
	if atLimit {
		unit = "or more"
	}
	if ship {
		fmt.Fprintf(b, "Speed Over Ground: %.1f %s\n", *sog, unit)
	} else {
		fmt.Fprintf(b, "Speed Over Ground: %.0f %s\n", *sog, unit)
	}
}

func writeCourse(b *strings.Builder, cog *float64) {
	if cog == nil {
		return
	}
	fmt.Fprintf(b, "Course Over Ground: %.1f°\n", *cog)
}

// decodeBaseStation decodes message type 4 (base station report),
// 168-bit.
func (d *Decoder) decodeBaseStation(ais []byte, msg *Message, b *strings.Builder) {
	if !d.sizeOK(len(ais), 168) {
		return
	}

	if code, text, ok := positionFixType(ais, 134); ok {
		msg.HasEPFD, msg.EPFD, msg.EPFDText = true, code, text
		fmt.Fprintf(b, "Station Electronic Position Fixing Device: %s\n", text)
	}

	msg.UTCYear = int(ValueAt(ais, 38, 14))
	msg.UTCMonth = int(ValueAt(ais, 52, 4))
	msg.UTCDay = int(ValueAt(ais, 56, 5))
	msg.UTCHour = int(ValueAt(ais, 61, 5))
	msg.UTCMinute = int(ValueAt(ais, 66, 6))
	msg.UTCSecond = int(ValueAt(ais, 72, 6))
	fmt.Fprintf(b, "%04d-%02d-%02d %02d:%02d:%02d UTC\n",
		msg.UTCYear, msg.UTCMonth, msg.UTCDay, msg.UTCHour, msg.UTCMinute, msg.UTCSecond)

	d.writePosition(ais, 79, msg, b, "station")
}

// decodeUTCInquiry decodes message types 10 and 11 (UTC and date
// inquiry), a 72-bit message carrying only a destination MMSI.
func (d *Decoder) decodeUTCInquiry(ais []byte, b *strings.Builder) {
	if !d.sizeOK(len(ais), 72) {
		return
	}
	fmt.Fprintf(b, "Destination MMSI: %d\n", ValueAt(ais, 40, 30))
}

// decodeStaticAndVoyage decodes message type 5 (420-bit static and
// voyage related data).
func (d *Decoder) decodeStaticAndVoyage(ais []byte, msg *Message, b *strings.Builder) {
	if !d.sizeOK(len(ais), 420) {
		return
	}

	msg.AISVersion = int(ValueAt(ais, 38, 2))
	fmt.Fprintf(b, "AIS version: %d\n", msg.AISVersion)

	msg.IMO = uint32(ValueAt(ais, 40, 30))
	fmt.Fprintf(b, "IMO Number: %d\n", msg.IMO)

	msg.CallSign = Text(ais, 70, 7)
	fmt.Fprintf(b, "Call Sign: %s\n", msg.CallSign)

	msg.ShipName = Text(ais, 112, 20)
	fmt.Fprintf(b, "Ship Name: %s\n", msg.ShipName)
	writeShipType(ais, 232, msg, b)
	msg.ToBow, msg.ToStern, msg.ToPort, msg.ToStarboard = shipDimension(ais, 240)
	writeDimensions(b, msg)

	msg.Draught = float64(ValueAt(ais, 294, 8)) / 10.0
	fmt.Fprintf(b, "Draught: %.1f m\n", msg.Draught)

	if code, text, ok := positionFixType(ais, 270); ok {
		msg.HasEPFD, msg.EPFD, msg.EPFDText = true, code, text
		fmt.Fprintf(b, "Station Electronic Position Fixing Device: %s\n", text)
	}

	msg.Destination = Text(ais, 302, 20)
	fmt.Fprintf(b, "Destination: %s\n", msg.Destination)

	msg.ETAMonth = int(ValueAt(ais, 274, 4))
	if msg.ETAMonth != 0 {
		msg.ETADay = int(ValueAt(ais, 278, 5))
		msg.ETAHour = int(ValueAt(ais, 283, 5))
		msg.ETAMinute = int(ValueAt(ais, 288, 6))
		fmt.Fprintf(b, "Estimated Time of Arrival %02d-%02d %02d:%02d UTC\n",
			msg.ETAMonth, msg.ETADay, msg.ETAHour, msg.ETAMinute)
	}
}

func writeDimensions(b *strings.Builder, msg *Message) {
	writeDim := func(label string, v int) {
		if v == 0 {
			return
		}
		suffix := ""
		if v == 511 || v == 63 {
			suffix = " or greater"
		}
		fmt.Fprintf(b, "Dimension to %s: %d m%s\n", label, v, suffix)
	}
	writeDim("Bow", msg.ToBow)
	writeDim("Stern", msg.ToStern)
	writeDim("Port", msg.ToPort)
	writeDim("Starboard", msg.ToStarboard)
}

// decodeSARAircraft decodes message type 9 (168-bit SAR aircraft
// position report).
func (d *Decoder) decodeSARAircraft(ais []byte, msg *Message, b *strings.Builder) {
	if !d.sizeOK(len(ais), 168) {
		return
	}

	alt := int(ValueAt(ais, 38, 12))
	if alt != 4095 {
		msg.Altitude = &alt
		b.WriteString(fmt.Sprintf("Altitude: %d m\n", alt))
	} else {
		msg.AltitudeAtLimit = true
		b.WriteString("Altitude: 4095 m or higher\n")
	}

	sog, atLimit := speedOverGround(ais, 50, false)
	msg.SpeedOverGround, msg.SpeedAtLimit = sog, atLimit
	writeSpeed(b, sog, atLimit, false)

	d.writePosition(ais, 61, msg, b, "aircraft")
	msg.CourseOverGround = courseOverGround(ais, 116)
	writeCourse(b, msg.CourseOverGround)
}

// decodeClassBPosition decodes message types 18 and 19 (Class B
// position reports, 168 bits standard, 312 extended).
func (d *Decoder) decodeClassBPosition(ais []byte, msg *Message, b *strings.Builder, extended bool) {
	want := 168
	if extended {
		want = 312
	}
	if !d.sizeOK(len(ais), want) {
		return
	}

	sog, atLimit := speedOverGround(ais, 46, true)
	msg.SpeedOverGround, msg.SpeedAtLimit = sog, atLimit
	writeSpeed(b, sog, atLimit, true)

	d.writePosition(ais, 57, msg, b, "vessel")
	msg.CourseOverGround = courseOverGround(ais, 112)
	writeCourse(b, msg.CourseOverGround)

	heading := int(ValueAt(ais, 124, 9))
	if heading < 360 {
		msg.TrueHeading = &heading
		fmt.Fprintf(b, "True Heading: %d°\n", heading)
	}

	msg.Timestamp = int(ValueAt(ais, 133, 6))
	fmt.Fprintf(b, "Time Stamp: %d UTC seconds\n", msg.Timestamp)

	if extended {
		writeRAIM(ais, 305, msg, b)
		mode := "Station operating in autonomous and continuous mode"
		if ValueAt(ais, 307, 1) != 0 {
			mode = "Station operating in assigned mode"
		}
		msg.StationInfoText = mode
		fmt.Fprintf(b, "Station Mode: %s\n", mode)
	} else {
		carrierSenseUnit := "Class B SOTDMA"
		if ValueAt(ais, 141, 1) != 0 {
			carrierSenseUnit = "Class B Carrier Sense"
		}
		fmt.Fprintf(b, "Carrier Sense Unit: %s\n", carrierSenseUnit)

		display := "No display available. Not capable of displaying Message 12 and 14"
		if ValueAt(ais, 142, 1) != 0 {
			display = "Equipped with integrated display displaying Message 12 and 14"
		}
		fmt.Fprintf(b, "Display: %s\n", display)

		dsc := "Not equipped"
		if ValueAt(ais, 143, 1) != 0 {
			dsc = "Equipped with DSC function (dedicated or time-shared)"
		}
		fmt.Fprintf(b, "VHF Digital Selective Calling: %s\n", dsc)

		band := "Capable of operating over the upper 525 kHz band of the marine band"
		if ValueAt(ais, 144, 1) != 0 {
			band = "Capable of operating over the whole marine band"
		}
		fmt.Fprintf(b, "VHF Band capability: %s\n", band)

		msg22 := "No frequency management via Message 22, operating on AIS1, AIS2 only"
		if ValueAt(ais, 145, 1) != 0 {
			msg22 = "Frequency management via Message 22"
		}
		fmt.Fprintf(b, "Message 22 capability: %s\n", msg22)

		mode := "Station operating in autonomous and continuous mode"
		if ValueAt(ais, 146, 1) != 0 {
			mode = "Station operating in assigned mode"
		}
		msg.StationInfoText = mode
		fmt.Fprintf(b, "Station Mode: %s\n", mode)

		writeRAIM(ais, 147, msg, b)
	}
}

// decodeAidToNavigation decodes message type 21.
func (d *Decoder) decodeAidToNavigation(ais []byte, msg *Message, b *strings.Builder) {
	if len(ais) < 45 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}

	aidType := int(ValueAt(ais, 38, 5))
	if text, ok := aidTypeText[aidType]; ok {
		msg.HasAidType, msg.AidType, msg.AidTypeText = true, aidType, text
		fmt.Fprintf(b, "Navigation Aid Type: %s\n", text)
	}

	msg.ShipName = Text(ais, 43, 20)
	fmt.Fprintf(b, "Ship Name: %s\n", msg.ShipName)

	d.writePosition(ais, 164, msg, b, "vessel")
	msg.ToBow, msg.ToStern, msg.ToPort, msg.ToStarboard = shipDimension(ais, 219)
	writeDimensions(b, msg)

	if code, text, ok := positionFixType(ais, 249); ok {
		msg.HasEPFD, msg.EPFD, msg.EPFDText = true, code, text
		fmt.Fprintf(b, "Station Electronic Position Fixing Device: %s\n", text)
	}

	if sec := int(ValueAt(ais, 253, 6)); sec < 60 {
		fmt.Fprintf(b, "UTC Second: %d\n", sec)
		msg.OffPosition = ValueAt(ais, 259, 1) != 0
		if msg.OffPosition {
			b.WriteString("Off-Position Indicator: Off position\n")
		} else {
			b.WriteString("Off-Position Indicator: On position\n")
		}
	}

	writeRAIM(ais, 268, msg, b)

	msg.VirtualAid = ValueAt(ais, 269, 1) != 0
	if msg.VirtualAid {
		b.WriteString("Virtual Aid to Navigation: Virtual Aid to Navigation simulated by nearby AIS station\n")
	} else {
		b.WriteString("Virtual Aid to Navigation: Real Aid to Navigation at indicated position\n")
	}
}

// decodeStaticDataReport decodes message type 24 (Class A/B static
// data report, two-part message). The original decoder's size check
// here was a tautology (len != 26 || len != 28, always true); this
// decoder uses the corrected check (both conditions must hold).
func (d *Decoder) decodeStaticDataReport(ais []byte, msg *Message, b *strings.Builder) {
	if len(ais) != 26 && len(ais) != 28 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}

	part := int(ValueAt(ais, 38, 2)) & 0x01
	msg.PartNumber = part

	if part == 0 {
		msg.ShipName = Text(ais, 40, 20)
		fmt.Fprintf(b, "Ship Name: %s\n", msg.ShipName)
		return
	}

	writeShipType(ais, 40, msg, b)
	msg.VendorID = Text(ais, 48, 7)
	fmt.Fprintf(b, "Vendor ID: %s\n", msg.VendorID)
	msg.CallSign = Text(ais, 90, 7)
	fmt.Fprintf(b, "Call Sign: %s\n", msg.CallSign)
	msg.ToBow, msg.ToStern, msg.ToPort, msg.ToStarboard = shipDimension(ais, 132)
	writeDimensions(b, msg)

	msg.MothershipMMSI = uint32(ValueAt(ais, 132, 30))
	fmt.Fprintf(b, "Mothership MMSI: %d\n", msg.MothershipMMSI)
}

// decodeLongRange decodes message type 27 (96-bit long-range position
// report). The original decoder's speed line dropped its %d argument
// (always printing garbage); this version prints the actual value.
func (d *Decoder) decodeLongRange(ais []byte, msg *Message, b *strings.Builder) {
	if !d.sizeOK(len(ais), 96) {
		return
	}

	writeRAIM(ais, 39, msg, b)
	writeNavStatus(ais, 40, msg, b)

	// type 27 uses reduced-resolution position fields (18-bit lon,
	// 17-bit lat, 1/10-minute units) rather than the 28/27-bit
	// fields the standard position report uses.
	d.writeReducedPosition(ais, 44, msg, b)

	v := int(ValueAt(ais, 79, 6))
	if v < 63 {
		sog := float64(v)
		msg.SpeedOverGround = &sog
		fmt.Fprintf(b, "Speed Over Ground: %d knots\n", v)
	}

	msg.CourseOverGround = courseOverGround18(ais, 85)
	writeCourse(b, msg.CourseOverGround)

	msg.GNSSCurrent = ValueAt(ais, 94, 1) == 0
	if msg.GNSSCurrent {
		b.WriteString("GNSS Position status: Current GNSS position\n")
	} else {
		b.WriteString("GNSS Position status: Not GNSS position\n")
	}
}

// courseOverGround18 reads type 27's narrower 9-bit course field
// (whole degrees, 511 = not available).
func courseOverGround18(ais []byte, bitPos int) *float64 {
	v := ValueAt(ais, bitPos, 9)
	if v == 511 {
		return nil
	}
	c := float64(v)
	return &c
}

// writeReducedPosition decodes type 27's 18-bit lon / 17-bit lat
// fields, in 1/10-minute units divided by 600 for degrees (M.1371
// DGNSS/long-range scaling), not the 1/10000-minute fields (divided
// by 600000) the standard position reports use.
func (d *Decoder) writeReducedPosition(ais []byte, bitPos int, msg *Message, b *strings.Builder) {
	lonRaw := SignedValueAt(ais, bitPos, 18)
	latRaw := SignedValueAt(ais, bitPos+18, 17)
	lon := float64(lonRaw) / 600.0
	lat := float64(latRaw) / 600.0

	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}

	p := Point{Lon: lon, Lat: lat}
	msg.Position = &p

	dist := Distance(d.Observer, p)
	bearing := Bearing(d.Observer, p)
	msg.Distance = &dist
	msg.BearingDeg = &bearing

	fmt.Fprintf(b, "Longitude: %.6f°\n", lon)
	fmt.Fprintf(b, "Latitude : %.6f°\n", lat)
	fmt.Fprintf(b, "Distance %.3f M and bearing %.1f° to vessel\n", dist/1851.85, bearing)
}

// decodeDGNSS decodes message type 17 (DGNSS binary broadcast
// message). The original decoder passed this message's 18-bit
// lon/17-bit lat fields straight to the standard 28/27-bit position
// printer, producing nonsense; this version applies the M.1371
// DGNSS scaling (1/10-minute units, divided by 600) instead.
func (d *Decoder) decodeDGNSS(ais []byte, msg *Message, b *strings.Builder) {
	if len(ais) < 13 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}

	d.writeReducedPosition(ais, 40, msg, b)

	b.WriteString("DGNSS correction data (hex):\n")
	len6 := len(ais) - 13
	for i := 0; i < len6; i++ {
		if i > 0 {
			if i%16 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(b, "%02X", ValueAt(ais, 80+i*6, 6))
	}
	b.WriteByte('\n')
}

func (d *Decoder) decodeAddrAckSafety(ais []byte, b *strings.Builder) {
	if len(ais) <= 12 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}
	fmt.Fprintf(b, "Sequence Number: %d\n", ValueAt(ais, 38, 2))
	fmt.Fprintf(b, "Destination MMSI: %d\n", ValueAt(ais, 40, 30))
	fmt.Fprintf(b, "Message: %s\n", Text(ais, 72, len(ais)-20))
}

func (d *Decoder) decodeSafetyBroadcast(ais []byte, b *strings.Builder) {
	if len(ais) < 7 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}
	fmt.Fprintf(b, "Message: %s\n", Text(ais, 40, len(ais)-7))
}

func (d *Decoder) decodeInterrogation(ais []byte, b *strings.Builder) {
	if len(ais) < 14 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}
	fmt.Fprintf(b, "Interrogated MMSI: %d\n", ValueAt(ais, 40, 30))
	fmt.Fprintf(b, "First message type: %d\n", ValueAt(ais, 70, 6))
	fmt.Fprintf(b, "First slot offset: %d\n", ValueAt(ais, 76, 12))
	fmt.Fprintf(b, "Second message type: %d\n", ValueAt(ais, 90, 6))
	fmt.Fprintf(b, "Second slot offset: %d\n", ValueAt(ais, 96, 12))
	fmt.Fprintf(b, "Interrogated MMSI: %d\n", ValueAt(ais, 110, 30))
	fmt.Fprintf(b, "First message type: %d\n", ValueAt(ais, 140, 6))
	fmt.Fprintf(b, "First slot offset: %d\n", ValueAt(ais, 146, 12))
}

func (d *Decoder) decodeAssignmentMode(ais []byte, b *strings.Builder) {
	if len(ais) != 16 && len(ais) != 24 {
		if !d.Verbose.Has(verbosity.Debug3) {
			return
		}
	}
	fmt.Fprintf(b, "Destination A MMSI: %d\n", ValueAt(ais, 40, 30))
	fmt.Fprintf(b, "Offset A: %d\n", ValueAt(ais, 70, 12))
	fmt.Fprintf(b, "Increment A: %d\n", ValueAt(ais, 82, 10))
	if len(ais) == 24 {
		fmt.Fprintf(b, "Destination B MMSI: %d\n", ValueAt(ais, 92, 30))
		fmt.Fprintf(b, "Offset B: %d\n", ValueAt(ais, 122, 12))
		fmt.Fprintf(b, "Increment B: %d\n", ValueAt(ais, 134, 10))
	}
}
