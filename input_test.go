package mapcore

import "testing"

type fakeInput struct {
	down map[InputButton]bool
	curX int
	curY int
}

func (f *fakeInput) Down(b InputButton) bool { return f.down[b] }
func (f *fakeInput) CursorPos() (int, int)   { return f.curX, f.curY }

func TestKeyboardInputsCancelWithNoDirection(t *testing.T) {
	m := newTestMap(20, 20)
	in := &fakeInput{down: map[InputButton]bool{ButtonCancel: true}}
	m.input = in

	if got := m.keyboardInputs(); got != inputCancelMap {
		t.Errorf("keyboardInputs() = %#x, want inputCancelMap", got)
	}
}

func TestKeyboardInputsCombinesDirections(t *testing.T) {
	m := newTestMap(20, 20)
	in := &fakeInput{down: map[InputButton]bool{ButtonUp: true, ButtonLeft: true}}
	m.input = in

	if got := m.keyboardInputs(); got != inputUp|inputLeft {
		t.Errorf("keyboardInputs() = %#x, want up|left", got)
	}
}

func TestHandleInputInvalidCombination(t *testing.T) {
	m := newTestMap(20, 20)
	in := &fakeInput{down: map[InputButton]bool{ButtonUp: true, ButtonDown: true}}
	m.input = in
	sp := m.addSprite(10, 10, SpriteEnabled)

	if got := m.handleInput(sp); got != inputInvalid {
		t.Errorf("handleInput() = %#x, want inputInvalid", got)
	}
}

func TestMouseInputDirectsTowardCursor(t *testing.T) {
	m := newTestMap(20, 20)
	m.screen = screenWindow{TX: 0, TY: 0, TW: 20, TH: 20}
	sp := m.addSprite(10, 10, SpriteEnabled)

	// player pixel box: x in [160,208], y in [176,208]
	in := &fakeInput{down: map[InputButton]bool{ButtonActivate: true}, curX: 300, curY: 300}
	m.input = in

	m.handleInput(sp)
	if sp.X <= 10 {
		t.Errorf("sprite.x = %d, want to have moved right toward cursor", sp.X)
	}
}
