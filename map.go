package mapcore

import "log"

// Verbose gates trace-level logging of map operations (mirrors the
// original's MAP_LOG macro, and the teacher's globalDebug switch).
var Verbose bool

func trace(format string, args ...any) {
	if Verbose {
		log.Printf("mapcore: "+format, args...)
	}
}

// Map is the single owned aggregate for one map session: static grid,
// sprite list, screen/camera state, path state, and location state (spec
// §3, Design Notes §9 "encapsulate this as a single owned struct ... no
// singletons"). All operations are methods on *Map; nothing here is
// package-level mutable state except the Verbose logging switch.
type Map struct {
	cfg Config

	loader AssetLoader
	input  InputSource
	gfx    GraphicsBackend

	viewportSurface  SurfaceID
	statusBarSurface SurfaceID

	bitmaps bitmapStore

	cols, rows int
	tileData   []mapTile

	screen             screenWindow
	camOffTX, camOffTY int

	tiles [MaxScreenRows][MaxScreenCols]screenTile

	sprites []Sprite
	ccd     []byte
	events  []eventRecord

	posHistory    [posHistorySize]spritePos
	posHistoryPtr int

	locationMode       LocationMode
	getLocationEnabled bool
	prevLocation       uint16

	pathActive      bool
	pathCells       []pathCell
	frontier        []Vec2
	path            []Vec2
	pathPtr         int
	pathSavedSprite int
	pathSavedState  uint8
	pathSavedCmd    uint8
	pathSavedReps   uint8
	pathCancelFlag  bool

	resultRegister  uint16
	playerDirection Direction

	frameTimer frameTimer
	Camera     Camera
}

// NewMap constructs a Map bound to the given host collaborators (spec §6
// "External interfaces"). viewport and statusBar identify the surfaces
// DrawTiles composites into and restores from.
func NewMap(cfg Config, loader AssetLoader, input InputSource, gfx GraphicsBackend, viewport, statusBar SurfaceID) *Map {
	return &Map{
		cfg:              cfg.withDefaults(),
		loader:           loader,
		input:            input,
		gfx:              gfx,
		viewportSurface:  viewport,
		statusBarSurface: statusBar,
		prevLocation:     NoLocation,
	}
}

// SetPathCancelFlag sets the "allow cancel during pathing" flag (spec §6
// var4[4067]).
func (m *Map) SetPathCancelFlag(v bool) {
	m.pathCancelFlag = v
}

// ResultRegister returns the last value written to the VM's general-
// purpose result register (spec §6 var16[18]).
func (m *Map) ResultRegister() uint16 {
	return m.resultRegister
}

// PlayerDirection returns the last published player facing (spec §6
// var16[3]).
func (m *Map) PlayerDirection() Direction {
	return m.playerDirection
}

func (m *Map) checkSpriteNo(no int) bool {
	if no < 0 || no >= len(m.sprites) {
		log.Printf("mapcore: invalid sprite index: %d", no)
		return false
	}
	return true
}

func (m *Map) getSprite(no int) *Sprite {
	if !m.checkSpriteNo(no) {
		return nil
	}
	return &m.sprites[no]
}

// LoadBitmap loads a tile-sheet page from the named archive entry (spec
// §4.1, SPEC_FULL "SUPPLEMENTED FEATURES").
func (m *Map) LoadBitmap(name string, col, row, which int) {
	trace("load_bitmap(%q,%d,%d,%d)", name, col, row, which)
	m.bitmaps.LoadBitmap(m.loader, name, col, row, which)
}

// LoadPalette loads a 256-entry BGR555 palette from the named archive
// entry (spec §4.1, SPEC_FULL "SUPPLEMENTED FEATURES").
func (m *Map) LoadPalette(name string, which int) {
	trace("load_palette(%q,%d)", name, which)
	m.bitmaps.LoadPalette(m.loader, name, which)
}

// LoadSpriteScripts replaces the sprite list with fresh records decoded
// from the named CCD archive entry (spec §4.2 Lifecycle, Design Notes §9
// "clear-and-refill, never retained across loads").
func (m *Map) LoadSpriteScripts(ccdAsset string) {
	trace("load_sprite_scripts()")
	asset, ok := m.loader.Load(ccdAsset)
	if !ok {
		log.Printf("mapcore: failed to load sprite scripts %q", ccdAsset)
		return
	}
	m.ccd = asset.Data

	m.sprites = m.sprites[:0]
	for i := 0; ; i++ {
		rec, ok := decodeCCDSprite(m.ccd, i)
		if !ok {
			break
		}
		sp := Sprite{
			X: int(rec.X), Y: int(rec.Y),
			W: int(rec.W), H: int(rec.H),
			Frame: rec.Frame,
			State: rec.State,
			No:    rec.No,
		}
		sp.ScriptIndex = rec.ScriptIndex
		sp.ScriptPtr = int(scriptTableEntry(m.ccd, sp.ScriptIndex))
		sp.ScriptCmd = m.ccd[sp.ScriptPtr] >> 4
		sp.ScriptRepetitions = m.ccd[sp.ScriptPtr]&0xF + 1
		sp.ScriptPtr++
		m.sprites = append(m.sprites, sp)
	}
}

// SetSpriteScript reconfigures spNo's active script by index, recomputing
// its script cursor from the script table (spec §4.5, SPEC_FULL
// "SUPPLEMENTED FEATURES").
func (m *Map) SetSpriteScript(spNo, scriptNo int) {
	sp := m.getSprite(spNo)
	if sp == nil {
		return
	}
	sp.ScriptIndex = uint16(scriptNo)
	sp.ScriptPtr = int(scriptTableEntry(m.ccd, sp.ScriptIndex))
	sp.ScriptCmd = m.ccd[sp.ScriptPtr] >> 4
	sp.ScriptRepetitions = m.ccd[sp.ScriptPtr]&0xF + 1
	sp.ScriptPtr++
}

// SetSpriteState overwrites spNo's state bitmask directly (SPEC_FULL
// "SUPPLEMENTED FEATURES").
func (m *Map) SetSpriteState(spNo int, state uint8) {
	sp := m.getSprite(spNo)
	if sp == nil {
		return
	}
	sp.State = state
}

// SetSpriteAnim forces spNo's animation direction nibble, resetting its
// phase to 0 (SPEC_FULL "SUPPLEMENTED FEATURES").
func (m *Map) SetSpriteAnim(spNo int, animNo uint8) {
	sp := m.getSprite(spNo)
	if sp == nil {
		return
	}
	sp.Frame = animNo << 4
}

// SpawnSprite relocates spNo and the screen window in one step, from a CCD
// spawn record, resetting its animation frame and seeding the shared
// position-history ring so an immediate rewind doesn't return stale
// history from a previous room (spec §4.4 "Position history", SPEC_FULL
// "SUPPLEMENTED FEATURES"). The screen-window clamp uses >= rather than >
// at the far edge, reproducing the original's documented off-by-one
// (spec §9 open question, REDESIGN FLAGS: preserve as-is).
func (m *Map) SpawnSprite(spawnNo, spNo int, animNo uint8) {
	sp := m.getSprite(spNo)
	if sp == nil {
		return
	}
	spawn, ok := decodeCCDSpawn(m.ccd, spawnNo)
	if !ok {
		log.Printf("mapcore: invalid spawn index: %d", spawnNo)
		return
	}

	screenTX := int(spawn.ScreenX)
	screenTY := int(spawn.ScreenY)
	if screenTX+m.screen.TW >= m.cols {
		screenTX = m.cols - m.screen.TW
	}
	if screenTY+m.screen.TH >= m.rows {
		screenTY = m.rows - m.screen.TH
	}
	m.screen.TX, m.screen.TY = screenTX, screenTY

	sp.X, sp.Y = int(spawn.SpriteX), int(spawn.SpriteY)
	sp.Frame = animNo << 4

	for i := range m.posHistory {
		m.posHistory[i] = spritePos{X: sp.X, Y: sp.Y, Frame: sp.Frame}
	}
	m.posHistoryPtr = 0
}
