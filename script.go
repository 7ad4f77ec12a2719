package mapcore

import "fmt"

// Script commands (spec §4.5). Command 0 is a no-op that also signals
// "loop to the start of this script_index" at the fetch stage; 13 and 14
// are handled by the pathfinder and input mapper respectively.
const (
	scriptCmdNoop      = 0
	scriptCmdMoveUp    = 2
	scriptCmdMoveDown  = 3
	scriptCmdMoveLeft  = 4
	scriptCmdMoveRight = 5
	scriptCmdRewind    = 6
	scriptCmdPath      = 13
	scriptCmdInput     = 14
)

// execResultExecuted is the "something ran this tick" return code
// propagated to the VM result register (spec §4.5: "return 0xFFFF to
// signal executed").
const execResultExecuted uint16 = 0xFFFF

// fetchNextCommand loads sp's next script byte if its repetition counter
// has run out, advancing the cursor and looping back to the script's
// entry point on a 0 byte (spec §4.5, §6 "Script bytecode").
func (m *Map) fetchNextCommand(sp *Sprite) {
	if sp.ScriptRepetitions != 0 {
		return
	}
	b := m.ccd[sp.ScriptPtr]
	if b == 0 {
		sp.ScriptPtr = int(scriptTableEntry(m.ccd, sp.ScriptIndex))
		b = m.ccd[sp.ScriptPtr]
	}
	sp.ScriptPtr++
	sp.ScriptCmd = b >> 4
	sp.ScriptRepetitions = b & 0xF
}

// execSprite runs one tick of sp's script, applies the repetition/location
// bookkeeping, and returns execResultExecuted when the dispatch result's
// low byte is 0, 0 when it is 0xFF, and the raw dispatch result otherwise
// (spec §4.5).
func (m *Map) execSprite(sp *Sprite) uint16 {
	m.fetchNextCommand(sp)

	var r uint16
	switch sp.ScriptCmd {
	case scriptCmdNoop:
		return 0
	case scriptCmdMoveUp:
		m.MoveUp(sp, true)
	case scriptCmdMoveDown:
		m.MoveDown(sp, true)
	case scriptCmdMoveLeft:
		m.MoveLeft(sp, true)
	case scriptCmdMoveRight:
		m.MoveRight(sp, true)
	case scriptCmdRewind:
		m.rewindPos(sp, int(sp.ScriptRepetitions))
	case scriptCmdPath:
		m.stepPathSprite(sp)
	case scriptCmdInput:
		r = m.handleInput(sp)
	default:
		panic(&FatalError{
			Op:  "exec_sprite",
			Msg: fmt.Sprintf("unimplemented sprite script command %d (script_index=%d script_ptr=%d script_repetitions=%d)", sp.ScriptCmd, sp.ScriptIndex, sp.ScriptPtr, sp.ScriptRepetitions),
		})
	}

	if r&0xFF == 0 {
		if sp.ScriptRepetitions != 0xFF {
			sp.ScriptRepetitions--
		}
		if m.locationMode == LocationOneshot && sp.State&SpritePlayer != 0 {
			m.getLocationEnabled = true
		}
		return execResultExecuted
	}
	if r&0xFF == 0xFF {
		return 0
	}
	return r
}

// execSpritesTick runs one script tick for every sprite whose state is
// non-zero, in vector order, and returns the player sprite's (index 0)
// result (spec §4.5, §5 "Ordering"). An unimplemented script command
// aborts the tick and is reported to the caller as a *FatalError (spec §7:
// no exception crosses the public boundary except this one, which is
// modeled explicitly rather than as a Go panic).
func (m *Map) execSpritesTick() (result uint16, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			fe, ok := rec.(*FatalError)
			if !ok {
				panic(rec)
			}
			err = fe
		}
	}()
	r := uint16(0xFFFF)
	for i := range m.sprites {
		sp := &m.sprites[i]
		if sp.State == 0 {
			continue
		}
		v := m.execSprite(sp)
		if sp.State&SpritePlayer != 0 && i == 0 {
			r = v
		}
	}
	return r, nil
}

// ExecSprites advances every sprite's script by one tick and writes the
// player's result into the VM result register, without rebuilding the
// screen matrix (SPEC_FULL "SUPPLEMENTED FEATURES": exec_sprites without
// redraw).
func (m *Map) ExecSprites() error {
	r, err := m.execSpritesTick()
	if err != nil {
		return err
	}
	m.resultRegister = r
	return nil
}

// ExecSpritesAndRedraw advances every sprite's script by one tick and, if
// the tick's result is nonzero, rebuilds the screen matrix, places sprites,
// and redraws before publishing the player's direction and result (spec
// §4.5 data flow, §2 "Data flow per frame"). The result defaults to 0xFFFF,
// so a tick in which no sprite ran still redraws.
func (m *Map) ExecSpritesAndRedraw() error {
	r, err := m.execSpritesTick()
	if err != nil {
		return err
	}
	if r != 0 && len(m.sprites) > 0 {
		m.LoadTiles()
		m.PlaceSprites()
		m.DrawTiles()
		m.playerDirection = m.sprites[0].Direction()
	}
	m.resultRegister = r
	return nil
}
