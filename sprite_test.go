package mapcore

import "testing"

// TestMoveSpriteCardinal is seed scenario 1 (spec §8): the player crosses
// into the camera's cam_off line but shouldn't have crossed past it yet.
func TestMoveSpriteCardinal(t *testing.T) {
	m := newTestMap(10, 10)
	m.screen = screenWindow{TX: 0, TY: 3, TW: 5, TH: 5}
	m.camOffTX, m.camOffTY = 2, 2
	m.addSprite(4, 4, SpritePlayer|SpriteCamera|SpriteEnabled|SpriteCollides)

	m.MoveSprite(0, DirDown)

	sp := &m.sprites[0]
	if sp.X != 4 || sp.Y != 5 {
		t.Errorf("sprite pos = (%d,%d), want (4,5)", sp.X, sp.Y)
	}
	if sp.Direction() != DirDown {
		t.Errorf("direction = %d, want %d", sp.Direction(), DirDown)
	}
	if sp.Frame&0xF != 1 {
		t.Errorf("phase = %d, want 1", sp.Frame&0xF)
	}
	if m.screen.TY != 3 {
		t.Errorf("screen.ty = %d, want unchanged at 3", m.screen.TY)
	}
}

// TestMoveSpriteCornerSlide is seed scenario 2: the up-probe is the 3-wide
// row at the sprite's own y (x, y, 3, 1); when its middle cell is solid but
// both perpendicular (left/right) probes are clear, the engine slides left
// (MoveUp checks the left fallback before the right one).
func TestMoveSpriteCornerSlide(t *testing.T) {
	m := newTestMap(10, 10)
	m.screen = screenWindow{TX: 0, TY: 0, TW: 10, TH: 10}
	m.setCollides(5, 4, true) // middle of the up-probe row (4,5,6 at row 4)
	m.addSprite(4, 4, SpritePlayer|SpriteEnabled|SpriteCollides)

	m.MoveSprite(0, DirUp)

	sp := &m.sprites[0]
	if sp.X != 3 || sp.Y != 4 {
		t.Errorf("sprite pos = (%d,%d), want (3,4)", sp.X, sp.Y)
	}
	if sp.Direction() != DirUp {
		t.Errorf("direction = %d, want %d", sp.Direction(), DirUp)
	}
}

// TestAnimationFrameCycling is seed scenario 6: the phase nibble visits
// 1..11 repeatedly, never 0 after the first move.
func TestAnimationFrameCycling(t *testing.T) {
	m := newTestMap(40, 40)
	m.screen = screenWindow{TX: 0, TY: 0, TW: 40, TH: 40}
	m.addSprite(20, 20, SpritePlayer|SpriteEnabled)

	sp := &m.sprites[0]
	for i := 0; i < 24; i++ {
		m.MoveSprite(0, DirRight)
		want := uint8(i%11) + 1
		if sp.Frame&0xF != want {
			t.Fatalf("iteration %d: phase = %d, want %d", i, sp.Frame&0xF, want)
		}
		if sp.Direction() != DirRight {
			t.Fatalf("iteration %d: direction changed to %d", i, sp.Direction())
		}
	}
}

// TestCanMoveAtMapEdgeTreatsOffMapAsSolid: probing a direction off the map
// edge reports every probe cell solid, so the corner-slide fallback is
// attempted but also finds solid cells and the move is fully blocked.
func TestCanMoveAtMapEdgeTreatsOffMapAsSolid(t *testing.T) {
	m := newTestMap(10, 10)
	m.screen = screenWindow{TX: 0, TY: 0, TW: 10, TH: 10}
	m.addSprite(4, 0, SpritePlayer|SpriteEnabled|SpriteCollides)

	r := m.MoveUp(&m.sprites[0], true)
	if r != moveBlocked {
		t.Fatalf("expected fully blocked at map edge, got %d", r)
	}
	if m.sprites[0].Y != 0 {
		t.Errorf("sprite.y = %d, want unchanged at 0 (already at top edge)", m.sprites[0].Y)
	}
}

// TestRewindPos checks the round-trip property from spec §8:
// rewind_sprite_pos(sp,0) restores the previous pushed state.
func TestRewindPos(t *testing.T) {
	m := newTestMap(20, 20)
	m.screen = screenWindow{TX: 0, TY: 0, TW: 20, TH: 20}
	m.addSprite(10, 10, SpriteEnabled)

	sp := &m.sprites[0]
	m.pushPosHistory(sp)
	sp.X, sp.Y = 11, 10

	m.RewindSpritePos(0, 0)

	if sp.X != 10 || sp.Y != 10 {
		t.Errorf("rewound pos = (%d,%d), want (10,10)", sp.X, sp.Y)
	}
}
