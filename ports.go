package mapcore

// This file defines the collaborators a Map is driven by and borrows from.
// mapcore never reaches out to a window, a filesystem, or a VM directly;
// a host wires concrete implementations of these interfaces in (see
// ebitenbackend.go for an Ebitengine-backed one).

// Asset is a named archive entry's raw bytes, as returned by an AssetLoader.
type Asset struct {
	Name string
	Data []byte
}

// AssetLoader fetches raw bytes for a named archive entry — palettes,
// bitmap pages, mpx/ccd/eve blobs. A missing entry is not an error: Load
// returns ok=false and the caller logs a warning and continues with
// whatever was already loaded (spec §7, "malformed asset").
type AssetLoader interface {
	Load(name string) (asset Asset, ok bool)
}

// InputButton is one of the level-triggered buttons the input mapper polls.
type InputButton int

const (
	ButtonUp InputButton = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonActivate
	ButtonCancel
	ButtonShift
)

// InputSource exposes level-triggered button state and the cursor position
// in logical (pre-scale) coordinates, mirroring the VM's input backend
// contract (spec §6).
type InputSource interface {
	Down(button InputButton) bool
	CursorPos() (x, y int)
}

// SurfaceID names one of the framebuffers a GraphicsBackend can draw into
// or copy from. A Map uses two: the map viewport and the status-bar strip.
// Concrete values are assigned by the host.
type SurfaceID int

// GraphicsBackend is a writable 24-bit indexed-then-expanded framebuffer
// service: surfaces support a direct pixel write for tile blits, a
// rectangle-to-rectangle copy (used for the status bar strip), and a dirty
// marker the host uses to know a surface needs presenting (spec §6).
type GraphicsBackend interface {
	// WritePixel stores an RGB triple at (x, y) on the given surface. The
	// tile blits do not clip (x, y) to the surface bounds, so a backend may
	// receive out-of-bounds coordinates.
	WritePixel(surface SurfaceID, x, y int, rgb [3]byte)
	// Copy blits a w×h rectangle from (sx,sy) on src to (dx,dy) on dst.
	Copy(src SurfaceID, sx, sy, w, h int, dst SurfaceID, dx, dy int)
	// Dirty marks a surface as needing to be presented.
	Dirty(surface SurfaceID)
}

// DecodeBGR555 converts a 16-bit BGR555 color (5 bits each of blue, green,
// red; MSB unused) to 24-bit RGB, per spec §4.1 / GLOSSARY.
func DecodeBGR555(v uint16) [3]byte {
	b := (v >> 10) & 0x1F
	g := (v >> 5) & 0x1F
	r := v & 0x1F
	return [3]byte{
		byte(r<<3 | r>>2),
		byte(g<<3 | g>>2),
		byte(b<<3 | b>>2),
	}
}

// CursorFrame is one animation frame of an OS-cursor resource: a 1-bit AND
// mask, packed pixel data, and a hotspot. Modeled only so a host can satisfy
// CursorProvider; mapcore neither parses nor renders cursors (spec §1,
// "cursor/window/popup-menu and executable-resource parser" are out of
// scope external collaborators).
type CursorFrame struct {
	Mask []byte
	Data []byte
	HotX int
	HotY int
}

// CursorProvider loads OS cursor animation frames from an executable
// resource. Entirely out of scope for mapcore's own logic (spec §9,
// "Cursor/PE parsing"); present only so a host's menu/cursor subsystem has
// a documented seam next to the rest of the external interfaces.
type CursorProvider interface {
	Load(exePath string) ([]CursorFrame, error)
}
