package mapcore

import "testing"

func TestLoadPlaybackScriptParsesFrames(t *testing.T) {
	p, err := LoadPlaybackScript([]byte(`{"frames":[{"buttons":["up","left"]},{"buttons":["cancel"]}]}`))
	if err != nil {
		t.Fatalf("LoadPlaybackScript: %v", err)
	}
	if len(p.frames) != 2 {
		t.Fatalf("len(frames) = %d, want 2", len(p.frames))
	}
}

func TestLoadPlaybackScriptRejectsEmpty(t *testing.T) {
	if _, err := LoadPlaybackScript([]byte(`{"frames":[]}`)); err == nil {
		t.Error("expected an error for a script with no frames")
	}
}

func TestLoadPlaybackScriptRejectsInvalidJSON(t *testing.T) {
	if _, err := LoadPlaybackScript([]byte(`not json`)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestPlaybackAdvanceSequencesFramesAndWaits(t *testing.T) {
	p, err := LoadPlaybackScript([]byte(`{"frames":[
		{"buttons":["up"],"waitTicks":2},
		{"buttons":["right"]}
	]}`))
	if err != nil {
		t.Fatalf("LoadPlaybackScript: %v", err)
	}

	p.Advance() // frame 0: up, then wait 2 ticks
	if !p.Down(ButtonUp) {
		t.Fatal("expected ButtonUp held after first Advance")
	}

	p.Advance() // consumes one wait tick; state unchanged
	if !p.Down(ButtonUp) {
		t.Error("expected ButtonUp still held during a wait tick")
	}
	p.Advance() // consumes the second wait tick

	p.Advance() // frame 1: right
	if p.Down(ButtonUp) {
		t.Error("expected ButtonUp released once frame 1 applies")
	}
	if !p.Down(ButtonRight) {
		t.Error("expected ButtonRight held after frame 1")
	}

	if !p.Done() {
		t.Error("expected Done() once all frames are consumed")
	}
}

func TestPlaybackCursorPos(t *testing.T) {
	p, err := LoadPlaybackScript([]byte(`{"frames":[{"cursorX":42,"cursorY":7}]}`))
	if err != nil {
		t.Fatalf("LoadPlaybackScript: %v", err)
	}
	p.Advance()
	x, y := p.CursorPos()
	if x != 42 || y != 7 {
		t.Errorf("CursorPos() = (%d,%d), want (42,7)", x, y)
	}
}

// TestPlaybackDrivesMapMovement exercises a Map end-to-end through the
// Playback InputSource, as a host driving a scripted scenario would.
func TestPlaybackDrivesMapMovement(t *testing.T) {
	p, err := LoadPlaybackScript([]byte(`{"frames":[{"buttons":["right"]}]}`))
	if err != nil {
		t.Fatalf("LoadPlaybackScript: %v", err)
	}

	m := newTestMap(20, 20)
	m.screen = screenWindow{TX: 0, TY: 0, TW: 20, TH: 20}
	m.input = p
	sp := m.addSprite(10, 10, SpritePlayer|SpriteEnabled)

	p.Advance()
	m.handleInput(sp)

	if sp.X != 11 || sp.Y != 10 {
		t.Errorf("sprite pos = (%d,%d), want (11,10)", sp.X, sp.Y)
	}
}
