package mapcore

import "log"

// LocationMode is one of the four location-query re-arm modes (spec §3,
// §4.8, original_source/include/map.h enum map_location_mode).
type LocationMode int

const (
	LocationDisabled LocationMode = iota
	LocationEnabled
	LocationOneshot
	LocationNoRepeat
)

// SetLocationMode sets the location-query mode, re-arming or disabling it
// and clearing the NO_REPEAT suppression memory (spec §4.8).
func (m *Map) SetLocationMode(mode LocationMode) {
	m.locationMode = mode
	m.getLocationEnabled = mode != LocationDisabled
	m.prevLocation = NoLocation
}

func (m *Map) getPlayer() *Sprite {
	for i := range m.sprites {
		if m.sprites[i].State&SpritePlayer != 0 {
			return &m.sprites[i]
		}
	}
	return nil
}

// getSpriteLocation scans the event table for the first record whose
// rectangle overlaps sp's footprint and whose dir_mask permits sp's
// current facing (spec §4.8).
func (m *Map) getSpriteLocation(sp *Sprite) uint16 {
	for _, rec := range m.events {
		if sp.X+(sp.W-1) < int(rec.XLeft) || sp.X > int(rec.XRight) {
			continue
		}
		if sp.Y+sp.H <= int(rec.YTop) || sp.Y >= int(rec.YBot) {
			continue
		}
		if rec.DirMask&(1<<sp.Direction()) == 0 {
			continue
		}
		return rec.ID
	}
	return NoLocation
}

// GetLocation evaluates the location query for the player sprite, applying
// the current re-arm mode, and writes its result into the VM result
// register (spec §4.8).
func (m *Map) GetLocation() uint16 {
	if !m.getLocationEnabled {
		m.resultRegister = NoLocation
		return NoLocation
	}

	sp := m.getPlayer()
	if sp == nil {
		log.Printf("mapcore: no player sprite?")
		m.resultRegister = NoLocation
		return NoLocation
	}

	loc := m.getSpriteLocation(sp)
	switch m.locationMode {
	case LocationOneshot:
		m.getLocationEnabled = false
	case LocationNoRepeat:
		if loc == m.prevLocation {
			loc = NoLocation
		} else {
			m.prevLocation = loc
		}
	}
	m.resultRegister = loc
	return loc
}
