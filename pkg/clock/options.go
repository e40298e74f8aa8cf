package clock

// RenderOptions is the cosmetic configuration of a clock face. It is set
// by the host and read-only to the renderer during a render pass.
type RenderOptions struct {
	// Antialiasing requests smooth-edge rendering from the canvas.
	// Cosmetic only; geometry is unaffected.
	Antialiasing bool

	// DrawSecondHand controls whether the second hand is drawn at all.
	DrawSecondHand bool

	// SweepSecond selects sub-second smooth motion for the second hand
	// instead of a discrete per-second jump.
	SweepSecond bool

	// AllowEllipticalClock lets the face stretch to the full canvas
	// aspect ratio. When false the face is forced circular using the
	// smaller canvas dimension.
	AllowEllipticalClock bool
}

// DefaultRenderOptions returns the options a freshly created face uses:
// antialiased, circular, with a sweeping second hand.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Antialiasing:   true,
		DrawSecondHand: true,
		SweepSecond:    true,
	}
}
