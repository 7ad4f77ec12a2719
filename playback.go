package mapcore

import (
	"encoding/json"
	"fmt"
)

// playbackFrame is one frame's worth of scripted input (spec §8 "End-to-end
// scenarios" are expressed as fixed input sequences against a known map).
type playbackFrame struct {
	Buttons   []string `json:"buttons,omitempty"`
	CursorX   int      `json:"cursorX,omitempty"`
	CursorY   int      `json:"cursorY,omitempty"`
	WaitTicks int      `json:"waitTicks,omitempty"`
}

type playbackScript struct {
	Frames []playbackFrame `json:"frames"`
}

var playbackButtonNames = map[string]InputButton{
	"up":       ButtonUp,
	"down":     ButtonDown,
	"left":     ButtonLeft,
	"right":    ButtonRight,
	"activate": ButtonActivate,
	"cancel":   ButtonCancel,
	"shift":    ButtonShift,
}

// Playback is a scripted InputSource that replays a fixed sequence of
// button/cursor states, one per Advance call, for deterministic exercise
// of a Map without a real backend (SPEC_FULL "AMBIENT STACK": test
// tooling, grounded on the teacher's TestRunner/testStep JSON harness).
type Playback struct {
	frames []playbackFrame
	cursor int
	wait   int

	held map[InputButton]bool
	curX int
	curY int
}

// LoadPlaybackScript parses a JSON frame sequence into a Playback.
func LoadPlaybackScript(jsonData []byte) (*Playback, error) {
	var script playbackScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("mapcore: parse playback script: %w", err)
	}
	if len(script.Frames) == 0 {
		return nil, fmt.Errorf("mapcore: parse playback script: no frames")
	}
	return &Playback{frames: script.Frames, held: make(map[InputButton]bool)}, nil
}

// Done reports whether every scripted frame has been consumed.
func (p *Playback) Done() bool {
	return p.cursor >= len(p.frames)
}

// Advance applies the next scripted frame's button/cursor state. Call once
// per simulated tick before invoking Map.ExecSpritesAndRedraw.
func (p *Playback) Advance() {
	if p.wait > 0 {
		p.wait--
		return
	}
	if p.Done() {
		return
	}
	f := p.frames[p.cursor]
	p.cursor++

	for k := range p.held {
		delete(p.held, k)
	}
	for _, name := range f.Buttons {
		if btn, ok := playbackButtonNames[name]; ok {
			p.held[btn] = true
		}
	}
	p.curX, p.curY = f.CursorX, f.CursorY
	p.wait = f.WaitTicks
}

// Down implements InputSource.
func (p *Playback) Down(button InputButton) bool {
	return p.held[button]
}

// CursorPos implements InputSource.
func (p *Playback) CursorPos() (x, y int) {
	return p.curX, p.curY
}

// memLoader is a minimal AssetLoader over an in-memory map, used by tests
// and by Playback-driven scenario harnesses that don't need a real backend.
type memLoader map[string][]byte

func (l memLoader) Load(name string) (Asset, bool) {
	data, ok := l[name]
	if !ok {
		return Asset{}, false
	}
	return Asset{Name: name, Data: data}, true
}

// nullGraphics discards every draw call: a GraphicsBackend for tests and
// headless playback that only care about Map's logical state.
type nullGraphics struct{}

func (nullGraphics) WritePixel(SurfaceID, int, int, [3]byte)                 {}
func (nullGraphics) Copy(SurfaceID, int, int, int, int, SurfaceID, int, int) {}
func (nullGraphics) Dirty(SurfaceID)                                         {}
