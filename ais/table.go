package ais

import "fmt"

// navigationStatusText is the type 1/2/3/27 navigation status table.
var navigationStatusText = map[int]string{
	0: "Under way using engine",
	1: "At anchor",
	2: "Not under command",
	3: "Restricted manoeuverability",
	4: "Constrained by her draught",
	5: "Moored",
	6: "Aground",
	7: "Engaged in Fishing",
	8: "Under way sailing",
}

// epfdText is the type 4/5/21 electronic position fixing device table.
var epfdText = map[int]string{
	1: "GPS",
	2: "GLONASS",
	3: "Combined GPS/GLONASS",
	4: "Loran-C",
	5: "Chayka",
	6: "Integrated navigation system",
	7: "Surveyed",
	8: "Galileo",
}

// aidTypeText is the type 21 aid-to-navigation type table.
var aidTypeText = map[int]string{
	0:  "Not specified",
	1:  "Reference point",
	2:  "Radar transponder marking a navigation hazard",
	3:  "Fixed structure off shore, such as oil platforms, wind farms, rigs, etc",
	5:  "Light, without sectors",
	6:  "Light, with sectors",
	7:  "Leading Light Front",
	8:  "Leading Light Rear",
	9:  "Beacon, Cardinal North",
	10: "Beacon, Cardinal East",
	11: "Beacon, Cardinal South",
	12: "Beacon, Cardinal West",
	13: "Beacon, Port hand",
	14: "Beacon, Starboard hand",
	15: "Beacon, Preferred Channel port hand",
	16: "Beacon, Preferred Channel starboard hand",
	17: "Beacon, Isolated danger",
	18: "Beacon, Safe water",
	19: "Beacon, Special mark",
	20: "Cardinal Mark North",
	21: "Cardinal Mark East",
	22: "Cardinal Mark South",
	23: "Cardinal Mark West",
	24: "Port hand Mark",
	25: "Starboard hand Mark",
	26: "Preferred Channel Port hand",
	27: "Preferred Channel Starboard hand",
	28: "Isolated danger",
	29: "Safe Water",
	30: "Special Mark",
	31: "Light Vessel / LANBY / Rigs",
}

// messageTypeText names every AIS message type 1-27.
var messageTypeText = map[int]string{
	1:  "Position Report Class A",
	2:  "Position Report Class A (Assigned schedule)",
	3:  "Position Report Class A (Response to interrogation)",
	4:  "Base Station Report",
	5:  "Static and Voyage Related Data",
	6:  "Binary Addressed Message",
	7:  "Binary Acknowledge",
	8:  "Binary Broadcast Message",
	9:  "Standard SAR Aircraft Position Report",
	10: "UTC and Date Inquiry",
	11: "UTC and Date Response",
	12: "Addressed Safety Related Message",
	13: "Safety Related Acknowledgement",
	14: "Safety Related Broadcast Message",
	15: "Interrogation",
	16: "Assignment Mode Command",
	17: "DGNSS Binary Broadcast Message",
	18: "Standard Class B Carrier Sense Position Report",
	19: "Extended Class B Carrier Sense Equipment Position Report",
	20: "Data Link Management",
	21: "Aid-to-Navigation Report",
	22: "Channel Management",
	23: "Group Assignment Command",
	24: "Static Data Report",
	25: "Single Slot Binary Message",
	26: "Multiple Slot Binary Message With Communications State",
	27: "Position Report For Long-Range Applications",
}

// shipTypeText renders the type 5/24 ship-and-cargo-type code, which
// is a table of singletons plus four ranges of hazardous-cargo
// categories (letters A-D encoded as offsets from the range's top code).
func shipTypeText(v int) (string, bool) {
	switch {
	case v == 20:
		return "Wing in ground (WIG)", true
	case v >= 21 && v <= 24:
		return fmt.Sprintf("Wing in ground (WIG). Hazardous category %c (%d)", hazardLetter(v, 24), v), true
	case v == 30:
		return "Fishing", true
	case v == 31:
		return "Towing", true
	case v == 32:
		return "Towing: length exceeds 200m or breadth exceeds 25m", true
	case v == 33:
		return "Dredging or underwater ops", true
	case v == 34:
		return "Diving ops", true
	case v == 35:
		return "Military ops", true
	case v == 36:
		return "Sailing", true
	case v == 37:
		return "Pleasure Craft", true
	case v == 40:
		return "High speed craft (HSC)", true
	case v >= 41 && v <= 44:
		return fmt.Sprintf("High speed craft (HSC). Hazardous category %c (%d)", hazardLetter(v, 44), v), true
	case v == 49:
		return "High speed craft (HSC)", true
	case v == 50:
		return "Pilot vessel", true
	case v == 51:
		return "Search and Rescue vessel", true
	case v == 52:
		return "Tug", true
	case v == 53:
		return "Port Tender (vessel anchored off shore)", true
	case v == 54:
		return "Anti-pollution equipment", true
	case v == 55:
		return "Law Enforcement", true
	case v == 58:
		return "Medical Transport", true
	case v == 59:
		return "Noncombatant ship according to RR Resolution No. 18", true
	case v == 60:
		return "Passenger", true
	case v >= 61 && v <= 64:
		return fmt.Sprintf("Passenger. Hazardous category %c (%d)", hazardLetter(v, 64), v), true
	case v == 69:
		return "Passenger", true
	case v == 70:
		return "Cargo", true
	case v >= 71 && v <= 74:
		return fmt.Sprintf("Cargo. Hazardous category %c (%d)", hazardLetter(v, 74), v), true
	case v == 79:
		return "Cargo", true
	case v == 80:
		return "Tanker", true
	case v >= 81 && v <= 84:
		return fmt.Sprintf("Tanker. Hazardous category %c (%d)", hazardLetter(v, 84), v), true
	case v == 89:
		return "Tanker", true
	case v == 90:
		return "Other Type", true
	case v >= 91 && v <= 94:
		return fmt.Sprintf("Other Type. Hazardous category %c (%d)", hazardLetter(v, 94), v), true
	case v == 99:
		return "Other Type", true
	default:
		return "", false
	}
}

// hazardLetter computes the hazardous-cargo category letter (A-D) for
// a code v within a 4-wide range topping out at top.
func hazardLetter(v, top int) byte {
	return byte(68 - (top - v))
}
