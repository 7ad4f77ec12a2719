package mapcore

import "fmt"

// mapTile is one cell of the static map grid (spec §3 "Map grid").
type mapTile struct {
	BG       uint16
	FG       uint16
	Collides bool
}

// parseMPX decodes an MPX blob (spec §6 "MPX binary layout"): u16 cols, u16
// rows, then cols*rows row-major 5-byte records {u16 bg, u16 fg, u8
// collides != 0}.
func parseMPX(data []byte) (cols, rows int, tiles []mapTile, err error) {
	if len(data) < 4 {
		return 0, 0, nil, fmt.Errorf("mapcore: mpx blob too short for header (%d bytes)", len(data))
	}
	cols = int(le16(data, 0))
	rows = int(le16(data, 2))
	if cols*rows > MaxMapTiles {
		return cols, rows, nil, &FatalError{Op: "load_tilemap", Msg: fmt.Sprintf("too many tiles in mpx: %dx%d", cols, rows)}
	}
	need := 4 + cols*rows*5
	if len(data) < need {
		return 0, 0, nil, fmt.Errorf("mapcore: mpx blob too short for %dx%d grid (need %d, have %d)", cols, rows, need, len(data))
	}
	tiles = make([]mapTile, cols*rows)
	for i := 0; i < cols*rows; i++ {
		off := 4 + i*5
		tiles[i] = mapTile{
			BG:       le16(data, off),
			FG:       le16(data, off+2),
			Collides: data[off+4] != 0,
		}
	}
	return cols, rows, tiles, nil
}

// le16 reads a little-endian u16 at off. Like the original's unchecked
// le_get16 it does no bounds checking of its own: an off past the end of
// data panics, and not every caller checks the length first.
func le16(data []byte, off int) uint16 {
	return uint16(data[off]) | uint16(data[off+1])<<8
}

// le32 reads a little-endian u32 at off.
func le32(data []byte, off int) uint32 {
	return uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16 | uint32(data[off+3])<<24
}

// screenData mirrors the 44-byte VM-exposed struct map_data (spec §4.2):
// mpx_ptr at 0, screen_tx at 4, screen_ty at 8, cols at 12, rows at 16,
// two unknown u32s, screen_tw at 28, screen_th at 32, cam_off_tx at 36,
// cam_off_ty at 40.
type screenData struct {
	ScreenTX, ScreenTY int
	ScreenTW, ScreenTH int
	CamOffTX, CamOffTY int
}

func parseScreenData(data []byte) screenData {
	var s screenData
	if len(data) < 44 {
		return s
	}
	s.ScreenTX = int(le32(data, 4))
	s.ScreenTY = int(le32(data, 8))
	s.ScreenTW = int(le32(data, 28))
	s.ScreenTH = int(le32(data, 32))
	s.CamOffTX = int(le32(data, 36))
	s.CamOffTY = int(le32(data, 40))
	return s
}
