package mapcore

import "log"

// pathCell is one path-search tile's A* bookkeeping (spec §3 "Path
// state"). The original carries a fixed 480x640 array for cache reasons;
// this implementation heap-allocates one slice sized to the loaded map's
// cols*rows exactly (Design Notes §9 permits heap-allocating once and
// resetting with a single fill, which LoadTilemap's allocation +
// resetPathCells do).
type pathCell struct {
	Pred          Vec2
	GScore        uint16
	FScore        uint16
	NotInFrontier bool
}

const (
	pathGFInit = 0xFFFF
	pathFInit  = 0x7FFF
)

// resetPathCells fills the path-cell grid back to its "unvisited" state
// before each search (spec §9 "a single memset to 0xFF").
func (m *Map) resetPathCells() {
	for i := range m.pathCells {
		m.pathCells[i] = pathCell{GScore: pathGFInit, FScore: pathFInit, NotInFrontier: true}
	}
}

func (m *Map) pathCellAt(p Vec2) *pathCell {
	return &m.pathCells[p.Y*m.cols+p.X]
}

// hDistance is the taxicab heuristic (spec §4.7).
func hDistance(from, to Vec2) int {
	return absInt(to.X-from.X) + absInt(to.Y-from.Y)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// spritePosValid reports whether (x,y) is walkable for a 3-wide-2-tall
// footprint: none of the six cells (x..x+2, y+1..y+2) collide (spec §4.7).
func (m *Map) spritePosValid(x, y int) bool {
	for dy := 1; dy <= 2; dy++ {
		for dx := 0; dx <= 2; dx++ {
			if m.tileData[(y+dy)*m.cols+(x+dx)].Collides {
				return false
			}
		}
	}
	return true
}

// getNeighbor returns the walkable neighbor of pos in the given direction,
// if any (spec §4.7 "Neighbours"). Direction indices follow the package's
// Direction constants (Up=0 .. DownRight=7).
func (m *Map) getNeighbor(pos Vec2, dir Direction) (Vec2, bool) {
	switch dir {
	case DirUp:
		if pos.Y == 0 || !m.spritePosValid(pos.X, pos.Y-1) {
			return Vec2{}, false
		}
		return Vec2{pos.X, pos.Y - 1}, true
	case DirDown:
		if pos.Y >= m.rows-1 || !m.spritePosValid(pos.X, pos.Y+1) {
			return Vec2{}, false
		}
		return Vec2{pos.X, pos.Y + 1}, true
	case DirLeft:
		if pos.X == 0 || !m.spritePosValid(pos.X-1, pos.Y) {
			return Vec2{}, false
		}
		return Vec2{pos.X - 1, pos.Y}, true
	case DirRight:
		if pos.X >= m.cols-1 || !m.spritePosValid(pos.X+1, pos.Y) {
			return Vec2{}, false
		}
		return Vec2{pos.X + 1, pos.Y}, true
	case DirUpLeft:
		if pos.X == 0 || pos.Y == 0 || !m.spritePosValid(pos.X-1, pos.Y-1) {
			return Vec2{}, false
		}
		return Vec2{pos.X - 1, pos.Y - 1}, true
	case DirUpRight:
		if pos.X >= m.cols-1 || pos.Y == 0 || !m.spritePosValid(pos.X+1, pos.Y-1) {
			return Vec2{}, false
		}
		return Vec2{pos.X + 1, pos.Y - 1}, true
	case DirDownLeft:
		if pos.X == 0 || pos.Y >= m.rows-1 || !m.spritePosValid(pos.X-1, pos.Y+1) {
			return Vec2{}, false
		}
		return Vec2{pos.X - 1, pos.Y + 1}, true
	case DirDownRight:
		if pos.X >= m.cols-1 || pos.Y >= m.rows-1 || !m.spritePosValid(pos.X+1, pos.Y+1) {
			return Vec2{}, false
		}
		return Vec2{pos.X + 1, pos.Y + 1}, true
	}
	return Vec2{}, false
}

// --- binary-heap frontier ---
//
// A contiguous array with swim/sink, per Design Notes §9: no general
// priority-queue type with decrease-key is used. Duplicates are resolved
// by a not_in_frontier bit plus push-on-improve; popped stale entries are
// cheap to detect and skip.

func (m *Map) frontierLess(a, b int) bool {
	return m.pathCellAt(m.frontier[a]).FScore < m.pathCellAt(m.frontier[b]).FScore
}

func (m *Map) frontierMin(a, b int) int {
	n := len(m.frontier)
	if a >= n {
		a = -1
	}
	if b >= n {
		b = -1
	}
	if a == -1 {
		return b
	}
	if b == -1 {
		return a
	}
	if m.frontierLess(a, b) {
		return a
	}
	return b
}

func (m *Map) frontierSink(node int) {
	lChild := node*2 + 1
	rChild := node*2 + 2
	minI := m.frontierMin(node, m.frontierMin(lChild, rChild))
	if minI != node {
		m.frontier[minI], m.frontier[node] = m.frontier[node], m.frontier[minI]
		m.frontierSink(minI)
	}
}

func (m *Map) frontierPop() Vec2 {
	r := m.frontier[0]
	last := len(m.frontier) - 1
	m.frontier[0] = m.frontier[last]
	m.frontier = m.frontier[:last]
	if len(m.frontier) > 0 {
		m.frontierSink(0)
	}
	return r
}

func (m *Map) frontierSwim(node int) {
	if node == 0 {
		return
	}
	parent := (node - 1) / 2
	if m.frontierLess(node, parent) {
		m.frontier[parent], m.frontier[node] = m.frontier[node], m.frontier[parent]
		m.frontierSwim(parent)
	}
}

func (m *Map) frontierPush(pos Vec2) {
	m.frontier = append(m.frontier, pos)
	m.frontierSwim(len(m.frontier) - 1)
}

// neighborEdgeCost assigns cost 1 to the first three directions and 2 to
// the rest. MAP_RIGHT is direction index 3, so this gives it diagonal
// cost — preserved exactly per spec §4.7 / §9 open question, not
// corrected.
func neighborEdgeCost(dir Direction) uint16 {
	if dir < 3 {
		return 1
	}
	return 2
}

// PathSprite runs A* from spNo's current position to (tx,ty) and, on
// success, installs path-following as the sprite's transient script state
// (spec §4.7). Failures (invalid target, empty frontier) are logged and
// leave the sprite's state unchanged (spec §7 "Pathing failures").
func (m *Map) PathSprite(spNo, tx, ty int) {
	sp := m.getSprite(spNo)
	if sp == nil {
		return
	}

	if tx+2 >= m.cols || ty < 1 || ty+1 >= m.rows || m.tileData[ty*m.cols+tx].Collides {
		log.Printf("mapcore: invalid pathing target: (%d,%d)", tx, ty)
		return
	}
	ty-- // feet-to-center convention

	if !m.spritePosValid(tx, ty) {
		log.Printf("mapcore: invalid pathing target (collides): (%d,%d)", tx, ty)
		return
	}

	start := Vec2{sp.X, sp.Y}
	goal := Vec2{tx, ty}
	if start == goal {
		return
	}

	m.resetPathCells()
	m.pathCellAt(start).GScore = 0
	m.pathCellAt(start).FScore = uint16(hDistance(start, goal))

	m.frontier = m.frontier[:0]
	m.frontier = append(m.frontier, start)
	m.pathCellAt(start).NotInFrontier = false

	for {
		if len(m.frontier) == 0 {
			log.Printf("mapcore: pathing failed")
			return
		}
		cur := m.frontierPop()
		m.pathCellAt(cur).NotInFrontier = true
		if cur == goal {
			break
		}

		for dir := Direction(0); dir < 8; dir++ {
			neighborPos, ok := m.getNeighbor(cur, dir)
			if !ok {
				continue
			}
			neighbor := m.pathCellAt(neighborPos)
			g := m.pathCellAt(cur).GScore + neighborEdgeCost(dir)
			if g < neighbor.GScore {
				neighbor.Pred = cur
				neighbor.GScore = g
				neighbor.FScore = g + uint16(hDistance(neighborPos, goal))
				if neighbor.NotInFrontier {
					m.frontierPush(neighborPos)
					neighbor.NotInFrontier = false
				}
			}
		}
	}

	// reconstruct path, goal-first
	m.path = m.path[:0]
	cur := goal
	for {
		m.path = append(m.path, cur)
		cur = m.pathCellAt(cur).Pred
		if cur == start {
			break
		}
	}
	m.pathPtr = len(m.path)

	m.pathActive = true
	m.pathSavedSprite = spNo
	m.pathSavedState = sp.State
	m.pathSavedCmd = sp.ScriptCmd
	m.pathSavedReps = sp.ScriptRepetitions
	sp.State = (sp.State & SpriteCamera) | SpritePlayer | SpriteEnabled
	sp.ScriptCmd = scriptCmdPath
	sp.ScriptRepetitions = 0xFF
}

// stepPathSprite executes one A*-following tick (script command 13), per
// spec §4.7 "Per-frame step".
func (m *Map) stepPathSprite(sp *Sprite) {
	if m.pathPtr == 0 {
		m.StopPathing()
		return
	}
	if m.input.Down(ButtonCancel) && m.pathCancelFlag {
		m.resultRegister = 1
		m.StopPathing()
		return
	}

	m.pathPtr--
	next := m.path[m.pathPtr]

	switch {
	case next.Y < sp.Y && next.X < sp.X:
		m.MoveUpLeft(sp, true)
	case next.Y < sp.Y && next.X > sp.X:
		m.MoveUpRight(sp, true)
	case next.Y < sp.Y:
		m.MoveUp(sp, true)
	case next.Y > sp.Y && next.X < sp.X:
		m.MoveDownLeft(sp, true)
	case next.Y > sp.Y && next.X > sp.X:
		m.MoveDownRight(sp, true)
	case next.Y > sp.Y:
		m.MoveDown(sp, true)
	case next.X < sp.X:
		m.MoveLeft(sp, true)
	case next.X > sp.X:
		m.MoveRight(sp, true)
	}

	if sp.X != next.X || sp.Y != next.Y {
		log.Printf("mapcore: pathed to wrong tile?")
		sp.X, sp.Y = next.X, next.Y
	}
	m.playerDirection = sp.Direction()
	m.pushPosHistory(sp)
}

// StopPathing clears path state and restores the sprite's pre-path
// (state, script_cmd, script_repetitions) snapshot (spec §4.7 "Stop").
func (m *Map) StopPathing() {
	if !m.pathActive {
		return
	}
	m.pathActive = false
	sp := &m.sprites[m.pathSavedSprite]
	sp.State = m.pathSavedState
	sp.ScriptCmd = m.pathSavedCmd
	sp.ScriptRepetitions = m.pathSavedReps
	if m.locationMode != LocationDisabled {
		m.getLocationEnabled = true
	}
}

// GetPathing reports whether path-following is currently active
// (SPEC_FULL "SUPPLEMENTED FEATURES").
func (m *Map) GetPathing() bool {
	return m.pathActive
}
