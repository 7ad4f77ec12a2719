package mapcore

// Keyboard-direction bitmask values (spec §4.6, map.c enum SP_INPUT_*).
const (
	inputUp    = 1
	inputDown  = 2
	inputLeft  = 4
	inputRight = 8
)

// inputCancelMap is the sentinel returned when "cancel" is held with no
// direction key: the caller should exit the map (spec §4.6).
const inputCancelMap uint16 = 0xFFFE

// inputInvalid is returned for a direction combination with no mapping
// (e.g. UP+DOWN).
const inputInvalid uint16 = 0xFFFF

// keyboardInputs ORs the currently-held direction keys into the SP_INPUT_*
// bitmask, or returns inputCancelMap if cancel is held with nothing else
// (spec §4.6).
func (m *Map) keyboardInputs() uint16 {
	var inputs uint16
	if m.input.Down(ButtonUp) {
		inputs |= inputUp
	}
	if m.input.Down(ButtonDown) {
		inputs |= inputDown
	}
	if m.input.Down(ButtonLeft) {
		inputs |= inputLeft
	}
	if m.input.Down(ButtonRight) {
		inputs |= inputRight
	}
	if m.input.Down(ButtonCancel) && inputs == 0 {
		return inputCancelMap
	}
	return inputs
}

// mouseInputs computes a direction bitmask from the cursor position
// relative to the player's pixel box (spec §4.6): the box is
// (sp.x-screen.tx)*16 .. +48 in x and ((sp.y+1)-screen.ty)*16 .. +32 in y.
func (m *Map) mouseInputs(sp *Sprite) uint16 {
	curX, curY := m.input.CursorPos()

	spX := (sp.X - m.screen.TX) * TileSize
	spY := ((sp.Y + 1) - m.screen.TY) * TileSize

	var inputs uint16
	if curY < spY {
		inputs |= inputUp
	}
	if curY > spY+32 {
		inputs |= inputDown
	}
	if curX < spX {
		inputs |= inputLeft
	}
	if curX > spX+48 {
		inputs |= inputRight
	}
	return inputs
}

// doHandleInput dispatches an SP_INPUT_* bitmask to the appropriate 4- or
// 8-way mover, pushing position history on a successful move (spec §4.6).
func (m *Map) doHandleInput(sp *Sprite, inputs uint16) uint16 {
	tx, ty := sp.X, sp.Y

	switch inputs {
	case inputUp:
		m.MoveUp(sp, true)
	case inputDown:
		m.MoveDown(sp, true)
	case inputLeft:
		m.MoveLeft(sp, true)
	case inputRight:
		m.MoveRight(sp, true)
	case inputUp | inputLeft:
		m.MoveUpLeft(sp, true)
	case inputUp | inputRight:
		m.MoveUpRight(sp, true)
	case inputDown | inputLeft:
		m.MoveDownLeft(sp, true)
	case inputDown | inputRight:
		m.MoveDownRight(sp, true)
	case inputCancelMap:
		return inputCancelMap
	default:
		return inputInvalid
	}

	if sp.X != tx || sp.Y != ty {
		m.pushPosHistory(sp)
	}
	return 0
}

// handleInput is script command 14: read input (mouse-relative while
// "activate" is held, else keyboard) and move sp accordingly (spec §4.6).
func (m *Map) handleInput(sp *Sprite) uint16 {
	var inputs uint16
	if m.input.Down(ButtonActivate) {
		inputs = m.mouseInputs(sp)
	} else {
		inputs = m.keyboardInputs()
	}
	return m.doHandleInput(sp, inputs)
}
