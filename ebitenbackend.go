package mapcore

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenBackend implements AssetLoader, InputSource, and GraphicsBackend
// on top of Ebitengine (SPEC_FULL "DOMAIN STACK": the teacher's rendering
// dependency, reused here as the concrete host a VM wires into Map
// instead of a scene graph).
type EbitenBackend struct {
	assets map[string][]byte

	surfaces map[SurfaceID]*ebiten.Image

	keyMap map[InputButton][]ebiten.Key
}

// NewEbitenBackend constructs a backend with no surfaces registered yet;
// call DefineSurface for each SurfaceID a Map will draw into or copy from.
func NewEbitenBackend(assets map[string][]byte) *EbitenBackend {
	return &EbitenBackend{
		assets:   assets,
		surfaces: make(map[SurfaceID]*ebiten.Image),
		keyMap: map[InputButton][]ebiten.Key{
			ButtonUp:       {ebiten.KeyUp, ebiten.KeyW},
			ButtonDown:     {ebiten.KeyDown, ebiten.KeyS},
			ButtonLeft:     {ebiten.KeyLeft, ebiten.KeyA},
			ButtonRight:    {ebiten.KeyRight, ebiten.KeyD},
			ButtonActivate: {ebiten.KeySpace, ebiten.KeyEnter},
			ButtonCancel:   {ebiten.KeyEscape},
			ButtonShift:    {ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		},
	}
}

// DefineSurface allocates a w x h drawing surface under id.
func (b *EbitenBackend) DefineSurface(id SurfaceID, w, h int) {
	b.surfaces[id] = ebiten.NewImage(w, h)
}

// Surface returns the backing ebiten.Image for id, for a host's own Draw
// call (e.g. drawing the viewport surface to the screen each frame).
func (b *EbitenBackend) Surface(id SurfaceID) *ebiten.Image {
	return b.surfaces[id]
}

// Load implements AssetLoader over an in-memory archive map (a host loads
// the game's data files into this map once at startup).
func (b *EbitenBackend) Load(name string) (Asset, bool) {
	data, ok := b.assets[name]
	if !ok {
		return Asset{}, false
	}
	return Asset{Name: name, Data: data}, true
}

// Down implements InputSource by polling ebiten's key state for any key
// bound to button.
func (b *EbitenBackend) Down(button InputButton) bool {
	for _, k := range b.keyMap[button] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// CursorPos implements InputSource.
func (b *EbitenBackend) CursorPos() (x, y int) {
	return ebiten.CursorPosition()
}

// WritePixel implements GraphicsBackend by setting one pixel directly on
// the destination surface's backing image.
func (b *EbitenBackend) WritePixel(surface SurfaceID, x, y int, rgb [3]byte) {
	img := b.surfaces[surface]
	if img == nil {
		return
	}
	img.Set(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF})
}

// Copy implements GraphicsBackend via ebiten's sub-image + DrawImage,
// matching the status-bar restore blit (composer.go DrawTiles).
func (b *EbitenBackend) Copy(src SurfaceID, sx, sy, w, h int, dst SurfaceID, dx, dy int) {
	srcImg := b.surfaces[src]
	dstImg := b.surfaces[dst]
	if srcImg == nil || dstImg == nil {
		return
	}
	region := srcImg.SubImage(image.Rect(sx, sy, sx+w, sy+h)).(*ebiten.Image)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(dx-sx), float64(dy-sy))
	dstImg.DrawImage(region, opts)
}

// Dirty is a no-op under Ebitengine: every surface is presented via the
// host's own Draw method each frame, so there is no separate dirty flag
// to set (spec §6 "GraphicsBackend.Dirty" is honored trivially here).
func (b *EbitenBackend) Dirty(surface SurfaceID) {}
