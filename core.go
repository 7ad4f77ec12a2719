// Package mapcore implements the map subsystem of a 2D tile-based adventure
// game runtime: a deterministic per-frame sprite state machine, an A*
// pathfinder over an 8-connected grid, a tile compositor that layers
// background/sprite/foreground planes with masked blits, a camera that
// follows the player, and a bytecode-driven sprite-script interpreter.
//
// mapcore does not own a window or a VM. It is driven by a host: the host
// loads archives through an AssetLoader, polls an InputSource, owns a
// GraphicsBackend to draw into, and calls the Map's public operations
// (LoadTilemap, ExecSpritesAndRedraw, MoveSprite, PathSprite, ...) in place
// of the original bytecode VM's map.* instructions. See ports.go for the
// exact collaborator interfaces, and ebitenbackend.go for an Ebitengine
// implementation of them.
package mapcore

// Vec2 is an integer tile-space 2D vector, used for the pathfinder's
// positions (search frontier, predecessors, reconstructed path).
type Vec2 struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in tile coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Direction is one of the eight compass directions used by motion,
// scripts, and the pathfinder. Values match the original bytecode's
// direction encoding exactly (see Design Notes / GLOSSARY "Frame byte").
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// IsDiagonal reports whether d is one of the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	return d >= DirUpLeft
}
