package mapcore

import "testing"

func buildEVERecord(id, xLeft, yTop, xRight, yBot uint16, dirMask uint8) []byte {
	rec := make([]byte, eventRecordSize)
	put16 := func(off int, v uint16) { rec[off], rec[off+1] = byte(v), byte(v>>8) }
	put16(0, id)
	put16(2, xLeft)
	put16(4, yTop)
	put16(6, xRight)
	put16(8, yBot)
	rec[10] = dirMask
	return rec
}

func TestParseEVEStopsAtSentinel(t *testing.T) {
	var data []byte
	data = append(data, buildEVERecord(1, 0, 0, 10, 10, 0xFF)...)
	data = append(data, buildEVERecord(2, 10, 10, 20, 20, 0x0F)...)
	data = append(data, buildEVERecord(eveSentinel, 0, 0, 0, 0, 0)...)
	// trailing garbage past the sentinel must be ignored.
	data = append(data, buildEVERecord(3, 0, 0, 0, 0, 0)...)

	records := parseEVE(data)
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].ID != 1 || records[1].ID != 2 {
		t.Errorf("record ids = %d,%d, want 1,2", records[0].ID, records[1].ID)
	}
}

func TestParseEVEMissingSentinelStopsAtLastCompleteRecord(t *testing.T) {
	data := buildEVERecord(1, 0, 0, 10, 10, 0xFF)
	data = append(data, 0x05, 0x00) // two trailing bytes: not a complete record

	records := parseEVE(data)
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
}

func TestParseEVEEmpty(t *testing.T) {
	if records := parseEVE(nil); len(records) != 0 {
		t.Errorf("parseEVE(nil) = %v, want empty", records)
	}
}
