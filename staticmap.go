package mapcore

import "log"

// screenWindow is the visible tile-window state (spec §3 "Screen/camera").
type screenWindow struct {
	TX, TY int
	TW, TH int
}

// LoadTilemap reads the mpx blob named mpxAsset, replacing the static map
// grid and resetting screen/camera and location state (spec §4.2). It
// returns a *FatalError if the grid exceeds MaxMapTiles (spec §3
// invariant, §7 "too many tiles").
func (m *Map) LoadTilemap(mpxAsset string, screenInfo []byte) error {
	asset, ok := m.loader.Load(mpxAsset)
	if !ok {
		log.Printf("mapcore: failed to load tilemap %q", mpxAsset)
		return nil
	}

	sd := parseScreenData(screenInfo)
	m.screen = screenWindow{TX: sd.ScreenTX, TY: sd.ScreenTY, TW: sd.ScreenTW, TH: sd.ScreenTH}
	m.camOffTX, m.camOffTY = sd.CamOffTX, sd.CamOffTY

	cols, rows, tiles, err := parseMPX(asset.Data)
	if err != nil {
		return err
	}
	m.cols, m.rows = cols, rows
	m.tileData = tiles

	m.locationMode = LocationDisabled
	m.getLocationEnabled = false
	m.prevLocation = NoLocation

	m.pathCells = make([]pathCell, cols*rows)

	return nil
}

// LoadEvents parses the named archive entry as an event/location table
// (spec §6 "Event table").
func (m *Map) LoadEvents(eveAsset string) {
	asset, ok := m.loader.Load(eveAsset)
	if !ok {
		log.Printf("mapcore: failed to load events %q", eveAsset)
		return
	}
	m.events = parseEVE(asset.Data)
}
