package mapcore

// newTestMap builds a cols x rows grid with every tile non-colliding, ready
// for motion/pathing tests without going through LoadTilemap's byte parser.
func newTestMap(cols, rows int) *Map {
	m := NewMap(Config{}, memLoader{}, &Playback{held: make(map[InputButton]bool)}, nullGraphics{}, 0, 1)
	m.cols, m.rows = cols, rows
	m.tileData = make([]mapTile, cols*rows)
	m.screen = screenWindow{TX: 0, TY: 0, TW: cols, TH: rows}
	m.pathCells = make([]pathCell, cols*rows)
	return m
}

func (m *Map) setCollides(x, y int, collides bool) {
	m.tileData[y*m.cols+x].Collides = collides
}

func (m *Map) addSprite(x, y int, state uint8) *Sprite {
	m.sprites = append(m.sprites, Sprite{X: x, Y: y, W: 3, H: 3, State: state})
	return &m.sprites[len(m.sprites)-1]
}
