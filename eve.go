package mapcore

// eventRecord is one rectangle/direction-mask entry from the event table
// (spec §6 "Event table", GLOSSARY "EVE").
type eventRecord struct {
	ID      uint16
	XLeft   uint16
	YTop    uint16
	XRight  uint16
	YBot    uint16
	DirMask uint8
}

const eventRecordSize = 12

// eveSentinel terminates the event table: a record whose id is 0xFFFF.
const eveSentinel = 0xFFFF

// parseEVE decodes the event/location table: 12-byte records, terminated
// by a record with id == 0xFFFF. A table that runs off the end of data
// without a sentinel simply stops at the last complete record; this is
// treated as a malformed-asset case (spec §7), not a parse error.
func parseEVE(data []byte) []eventRecord {
	var records []eventRecord
	for off := 0; off+2 <= len(data); off += eventRecordSize {
		id := le16(data, off)
		if id == eveSentinel {
			break
		}
		if off+eventRecordSize > len(data) {
			break
		}
		records = append(records, eventRecord{
			ID:      id,
			XLeft:   le16(data, off+2),
			YTop:    le16(data, off+4),
			XRight:  le16(data, off+6),
			YBot:    le16(data, off+8),
			DirMask: data[off+10],
		})
	}
	return records
}
