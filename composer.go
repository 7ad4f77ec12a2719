package mapcore

// screenTile is one cell of the on-screen tile matrix (spec §3 "On-screen
// tile matrix"). Rebuilt from scratch every frame.
type screenTile struct {
	BG, FG  uint16
	SP, SP2 uint16
	FGCha   bool
}

// LoadTiles copies the live screen.tw x screen.th window of the static
// grid into the screen matrix, with no sprites placed yet (spec §4.2
// "load_tiles").
func (m *Map) LoadTiles() {
	for row := 0; row < m.screen.TH; row++ {
		for col := 0; col < m.screen.TW; col++ {
			i := (row+m.screen.TY)*m.cols + m.screen.TX + col
			t := m.tileData[i]
			m.tiles[row][col] = screenTile{
				BG:  t.BG,
				FG:  t.FG,
				SP:  NoTile,
				SP2: NoTile,
			}
		}
	}
}

// placeSprite writes sp's current animation frame's tiles into the screen
// matrix (spec §4.3 "place_sprites"). tileOff selects the w*h block of
// tile indices for the sprite's current (anim, phase) pair out of its
// sprite sheet.
func (m *Map) placeSprite(sp *Sprite) {
	tileOff := int(sp.No)*bytesPerSheet + int(sp.Frame>>4)*bytesPerAnim + int(sp.Frame&0xF)*bytesPerFrame
	spriteTilesBase := int(le16(m.ccd, ccdSpriteTilesOff))
	spTiles := m.ccd[spriteTilesBase+tileOff:]

	offTX := sp.X - m.screen.TX
	offTY := sp.Y - m.screen.TY
	spT := 0
	for row := 0; row < sp.H && offTY+row < m.screen.TH; row++ {
		for col := 0; col < sp.W && offTX+col < m.screen.TW; col, spT = col+1, spT+1 {
			tileNo := le16(spTiles, spT*2)
			ctx := offTX + col
			cty := offTY + row
			cell := &m.tiles[cty][ctx]
			if sp.State&SpriteNonChara != 0 {
				cell.FG = tileNo
				cell.FGCha = true
				continue
			}
			if cell.SP == NoTile {
				cell.SP = tileNo
				continue
			}
			if cell.SP2 == NoTile {
				// The tiebreak compares against sprite 0's y specifically,
				// not the other occupant's (spec §3 invariant, §9 open
				// question — preserved exactly).
				if m.sprites[0].Y < sp.Y {
					cell.SP2 = tileNo
				} else {
					cell.SP2 = cell.SP
					cell.SP = tileNo
				}
			}
		}
	}
}

// PlaceSprites places every enabled sprite's tiles into the screen matrix
// (spec §4.3 "place_sprites").
func (m *Map) PlaceSprites() {
	for i := range m.sprites {
		if m.sprites[i].State&SpriteEnabled != 0 {
			m.placeSprite(&m.sprites[i])
		}
	}
}

// drawTile composites one screen cell's layers onto the framebuffer
// surface (spec §4.3 "draw_tiles" inner loop).
func (m *Map) drawTile(t *screenTile, x, y int) {
	if t.BG != NoTile {
		blitTile(m.gfx, m.viewportSurface, x, y, m.bitmaps.bmpMap[:], &m.bitmaps.palMap, int(t.BG), mapBitmapWidth, mapBitmapHeight)
	}
	if t.SP != NoTile {
		blitTileMasked(m.gfx, m.viewportSurface, x, y, m.bitmaps.bmpCha[:], &m.bitmaps.palCha, int(t.SP), chaBitmapWidth, chaBitmapHeight)
		if t.SP2 != NoTile {
			blitTileMasked(m.gfx, m.viewportSurface, x, y, m.bitmaps.bmpCha[:], &m.bitmaps.palCha, int(t.SP2), chaBitmapWidth, chaBitmapHeight)
		}
	}
	if t.FG != NoTile {
		if t.FGCha {
			blitTileMasked(m.gfx, m.viewportSurface, x, y, m.bitmaps.bmpCha[:], &m.bitmaps.palCha, int(t.FG), chaBitmapWidth, chaBitmapHeight)
		} else {
			blitTileMasked(m.gfx, m.viewportSurface, x, y, m.bitmaps.bmpMap[:], &m.bitmaps.palMap, int(t.FG), mapBitmapWidth, mapBitmapHeight)
		}
	}
}

// statusBarWidth/Height and statusBarSrcRow describe the status-bar strip
// restored onto the bottom of the viewport at the end of DrawTiles (spec
// §4.3: "copy the 640x32 status bar strip from an auxiliary surface over
// the bottom of the viewport").
const (
	statusBarWidth  = 640
	statusBarHeight = 32
	statusBarSrcRow = 106
	statusBarDstRow = 448
)

// DrawTiles blits the live screen window to the viewport surface, restores
// the status-bar strip, marks the surface dirty, and paces the frame
// (spec §4.3).
func (m *Map) DrawTiles() {
	for row := 0; row < m.screen.TH; row++ {
		for col := 0; col < m.screen.TW; col++ {
			m.drawTile(&m.tiles[row][col], col*TileSize, row*TileSize)
		}
	}

	m.gfx.Copy(m.statusBarSurface, 0, statusBarSrcRow, statusBarWidth, statusBarHeight, m.viewportSurface, 0, statusBarDstRow)
	m.gfx.Dirty(m.viewportSurface)

	frameTime := m.cfg.FrameTimeMS
	if m.input.Down(ButtonShift) {
		frameTime /= m.cfg.FastFrameDivisor
	}
	m.frameTimer.Tick(frameTime)
}
