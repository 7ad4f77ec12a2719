package mapcore

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera smooths the pixel-space presentation of a screen-window jump
// (spec §4.4 "Camera follow" only moves screen.tx/ty by whole tiles per
// frame; a spawn_sprite relocation is an instant cut in the original).
// Adapted from the teacher's scrollAnim/Camera.ScrollTo: a host may call
// ScrollTo to pan the viewport smoothly across a teleport instead of
// cutting, without ever touching the integer screen.tx/ty the collision
// and pathing code reads (SPEC_FULL "DOMAIN STACK").
type Camera struct {
	offsetX, offsetY float32
	tweenX, tweenY   *gween.Tween
}

// PixelOffset returns the camera's current sub-tile pixel offset, to be
// added to (col*16, row*16) by a host's renderer. It is always (0,0) once
// any active tween completes.
func (c *Camera) PixelOffset() (x, y float32) {
	return c.offsetX, c.offsetY
}

// ScrollTo animates the camera's presentation offset from (fromDX, fromDY)
// back to zero over duration seconds, after a host has already cut
// screen.tx/ty to the new window — producing a smooth pan across the cut
// rather than a hard jump. Pass duration <= 0 for an instant cut (the
// default, matching the original).
func (c *Camera) ScrollTo(fromDX, fromDY float32, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.offsetX, c.offsetY = 0, 0
		c.tweenX, c.tweenY = nil, nil
		return
	}
	c.offsetX, c.offsetY = fromDX, fromDY
	c.tweenX = gween.New(fromDX, 0, duration, easeFn)
	c.tweenY = gween.New(fromDY, 0, duration, easeFn)
}

// Transform returns the affine translation a renderer should apply to
// tile-grid pixel coordinates to get final screen pixel coordinates,
// folding in the current scroll offset (see matrix.go).
func (c *Camera) Transform() affine {
	return translateAffine(float64(c.offsetX), float64(c.offsetY))
}

// TileToScreen converts a (col, row) screen-matrix cell to pixel
// coordinates, applying the camera's current scroll offset.
func (c *Camera) TileToScreen(col, row int) (x, y float64) {
	return transformPoint(c.Transform(), float64(col*TileSize), float64(row*TileSize))
}

// Update advances any active scroll tween by dt seconds. Called once per
// presented frame by a host; mapcore's own frame pacing (frametimer.go)
// does not call this, since it paces logic ticks, not render frames.
func (c *Camera) Update(dt float32) {
	if c.tweenX != nil {
		v, done := c.tweenX.Update(dt)
		c.offsetX = v
		if done {
			c.tweenX = nil
		}
	}
	if c.tweenY != nil {
		v, done := c.tweenY.Update(dt)
		c.offsetY = v
		if done {
			c.tweenY = nil
		}
	}
}
