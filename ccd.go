package mapcore

// CCD binary layout (spec §6). The original format documentation is
// incomplete about the exact sprite/spawn record layout (ccd_load_sprite
// and ccd_load_spawn are defined in a header not carried into this port);
// the layout below is this implementation's resolution of that gap,
// recorded in DESIGN.md. Offsets 2 (script table) and 6 (sprite tile
// table) are exactly as observed in map_load_sprite_scripts/place_sprite.
const (
	ccdHeaderSize       = 8
	ccdScriptTableOff   = 2
	ccdSpawnTableOff    = 4
	ccdSpriteTilesOff   = 6
	ccdSpriteRecordSize = 14
	ccdSpawnRecordSize  = 8

	// spriteStateSentinel in a sprite record's state byte marks the end
	// of the sprite list (map.c: "if (sp.state == 0xff) break").
	spriteStateSentinel = 0xFF
)

// ccdSpriteRecord is one decoded, not-yet-script-bound sprite record.
type ccdSpriteRecord struct {
	X, Y        uint16
	W, H        uint8
	No          uint8
	State       uint8
	ScriptIndex uint16
	Frame       uint8
}

// decodeCCDSprite reads sprite record i from ccd. ok is false once the
// state-sentinel record is reached or the data runs out.
func decodeCCDSprite(ccd []byte, i int) (rec ccdSpriteRecord, ok bool) {
	off := ccdHeaderSize + i*ccdSpriteRecordSize
	if off+ccdSpriteRecordSize > len(ccd) {
		return rec, false
	}
	state := ccd[off+6]
	if state == spriteStateSentinel {
		return rec, false
	}
	rec = ccdSpriteRecord{
		X:           le16(ccd, off),
		Y:           le16(ccd, off+2),
		W:           ccd[off+4] >> 4,
		H:           ccd[off+4] & 0xF,
		No:          ccd[off+5],
		State:       state,
		ScriptIndex: le16(ccd, off+7),
		Frame:       ccd[off+9],
	}
	return rec, true
}

// ccdSpawnRecord is one spawn-point record, read by spawn_sprite to
// relocate a sprite and the screen window in one step (SPEC_FULL
// "SUPPLEMENTED FEATURES").
type ccdSpawnRecord struct {
	ScreenX, ScreenY uint16
	SpriteX, SpriteY uint16
}

func decodeCCDSpawn(ccd []byte, spawnNo int) (ccdSpawnRecord, bool) {
	tableOff := int(le16(ccd, ccdSpawnTableOff))
	off := tableOff + spawnNo*ccdSpawnRecordSize
	if off+ccdSpawnRecordSize > len(ccd) {
		return ccdSpawnRecord{}, false
	}
	return ccdSpawnRecord{
		ScreenX: le16(ccd, off),
		ScreenY: le16(ccd, off+2),
		SpriteX: le16(ccd, off+4),
		SpriteY: le16(ccd, off+6),
	}, true
}

// scriptTableEntry returns the script bytecode offset for scriptIndex, per
// the script table at ccdScriptTableOff (spec §6).
func scriptTableEntry(ccd []byte, scriptIndex uint16) uint16 {
	tableOff := int(le16(ccd, ccdScriptTableOff))
	return le16(ccd, tableOff+int(scriptIndex)*2)
}
