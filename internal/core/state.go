package core

// Viewport tuning. Pan and zoom move in fixed per-event increments, and the
// scale never drops below MinScale so the projection cannot degenerate.
const (
	MinScale = 0.1
	PanStep  = 0.01
	ZoomStep = 0.1
)

// Viewport is the pan/zoom state applied when the board is drawn. Offsets
// are in normalized grid units (the whole board spans 0..1 on each axis).
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// NewViewport returns a viewport showing the whole board, unpanned.
func NewViewport() Viewport {
	return Viewport{Scale: 1}
}

// Pan translates the view. Panning is unbounded; the presenter fills
// anything past the board with the border color.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Zoom adjusts the scale by delta and re-clamps it to MinScale. Larger
// scales magnify the board.
func (v *Viewport) Zoom(delta float64) {
	v.Scale += delta
	if v.Scale < MinScale {
		v.Scale = MinScale
	}
}

// Project maps a normalized screen coordinate to a normalized board
// coordinate: magnification about the screen center, then the pan offset.
// inside is false when the sample falls off the board, in which case the
// border color applies. The present shader computes the same mapping on the
// GPU; this is the reference the tests pin down.
func (v Viewport) Project(sx, sy float64) (gx, gy float64, inside bool) {
	gx = (sx-0.5)/v.Scale + 0.5 + v.OffsetX
	gy = (sy-0.5)/v.Scale + 0.5 + v.OffsetY
	inside = gx >= 0 && gx < 1 && gy >= 0 && gy < 1
	return gx, gy, inside
}

// RunState tracks whether the simulation advances on its own, plus a
// one-shot single-step request.
type RunState struct {
	Running    bool
	stepQueued bool
}

// Toggle flips between running and paused.
func (r *RunState) Toggle() {
	r.Running = !r.Running
}

// QueueStep records a single-step request, consumed by the next ShouldStep.
func (r *RunState) QueueStep() {
	r.stepQueued = true
}

// ShouldStep reports whether one generation should run this frame, where
// due is the fixed-step clock's verdict. A queued single-step request is
// consumed here exactly once. While running it coalesces into the regular
// cadence instead of double-stepping; while paused it forces one step
// regardless of the clock.
func (r *RunState) ShouldStep(due bool) bool {
	queued := r.stepQueued
	r.stepQueued = false
	if r.Running {
		return due
	}
	return queued
}
