package mapcore

import "time"

// frameTimer caps the sprite-script update rate to a fixed millisecond
// budget per frame (spec §4.9 "Frame timer", §5 "draw_tiles ends with a
// busy-ish sleep ... this is the only place the map thread voluntarily
// yields").
type frameTimer struct {
	lastTick time.Time
}

// Tick blocks until at least frameMS has elapsed since the previous Tick
// call, then records the new reference point.
func (t *frameTimer) Tick(frameMS int) {
	now := time.Now()
	if t.lastTick.IsZero() {
		t.lastTick = now
		return
	}
	deadline := t.lastTick.Add(time.Duration(frameMS) * time.Millisecond)
	if now.Before(deadline) {
		time.Sleep(deadline.Sub(now))
		now = deadline
	}
	t.lastTick = now
}
