package clock

import (
	"time"

	"github.com/sjamesr/goclock/pkg/graphics"
)

const (
	// strokeWidth is the line width shared by the face outline and hands.
	strokeWidth = 2

	// faceDashLength is the on/off length of the dashed face outline.
	faceDashLength = 6

	// tickDistance is the fraction of the face radius at which tick
	// marks are centered.
	tickDistance = 13.0 / 14

	// hourHandLength is the hour hand length as a fraction of the face
	// radius. Minute and second hands use the full radius.
	hourHandLength = 5.0 / 7

	// hourTickScale and minuteTickScale size the filled tick ellipses
	// relative to the face radii.
	hourTickScale   = 1.0 / 30
	minuteTickScale = 1.0 / 60

	// labelOffset is how far above center the time label sits, as a
	// fraction of the vertical radius.
	labelOffset = 0.1

	// labelLayout is the fixed full-style label format. Localized
	// formatting is out of scope; this mirrors the English full style.
	labelLayout = "Monday, 2 January 2006 3:04:05 PM MST"
)

// ClockFace renders an analog clock face onto a graphics.Canvas.
//
// A new face starts running (unpaused), displaying the current system time
// in the local zone. The host drives it with a periodic Tick and a Render
// per frame; see the package documentation for the threading contract.
type ClockFace struct {
	time    DisplayTime
	options RenderOptions
	paused  bool

	// OnRepaint, when set, is invoked whenever the displayed state
	// changes and the host should schedule a redraw.
	OnRepaint func()
}

// NewClockFace creates a running clock face showing the current time in
// the system local zone with default render options.
func NewClockFace() *ClockFace {
	return &ClockFace{
		time:    Now(time.Local),
		options: DefaultRenderOptions(),
	}
}

// Time returns the currently displayed time.
func (f *ClockFace) Time() DisplayTime {
	return f.time
}

// SetTime replaces the displayed time unconditionally and schedules a
// redraw. An unpaused face will overwrite it on the next tick, so callers
// scrubbing to an arbitrary time almost always want SetPaused(true) first
// (or ScrubTo, which does both).
func (f *ClockFace) SetTime(t DisplayTime) {
	f.time = t
	f.repaint()
}

// SetTimeZone re-expresses the displayed time in the given zone. The
// absolute instant is preserved; only the hour/minute/second fields as
// displayed change.
func (f *ClockFace) SetTimeZone(zone *time.Location) {
	f.time = f.time.In(zone)
	f.repaint()
}

// Options returns the current render options.
func (f *ClockFace) Options() RenderOptions {
	return f.options
}

// SetOptions replaces the render options and schedules a redraw.
func (f *ClockFace) SetOptions(options RenderOptions) {
	f.options = options
	f.repaint()
}

// SetPaused toggles whether periodic ticks are applied. Pausing freezes
// the last displayed time; unpausing resumes at the next tick.
func (f *ClockFace) SetPaused(paused bool) {
	f.paused = paused
}

// IsPaused reports whether the tick feed is currently ignored.
func (f *ClockFace) IsPaused() bool {
	return f.paused
}

// Tick feeds the current wall-clock time into the face. While paused the
// tick is ignored and the retained time is reused for every render. The
// instant is displayed in the face's current zone.
func (f *ClockFace) Tick(now time.Time) {
	if f.paused {
		return
	}
	f.time = DisplayTimeOf(now.In(f.time.Zone()))
	f.repaint()
}

// ScrubTo pauses the face and displays the given second of the day
// (0-86400) counted from midnight of the current day in the current zone.
// This backs the host's time-of-day slider.
func (f *ClockFace) ScrubTo(secondOfDay int) {
	f.SetPaused(true)
	f.SetTime(f.time.AtSecondOfDay(secondOfDay))
}

func (f *ClockFace) repaint() {
	if f.OnRepaint != nil {
		f.OnRepaint()
	}
}

// Render paints one frame onto the canvas. Geometry is established once
// up front and shared by every drawing step; no step recomputes it. A
// canvas with no area is a degenerate render that draws nothing.
func (f *ClockFace) Render(canvas graphics.Canvas) {
	geom := FaceGeometryFor(canvas.Size(), f.options.AllowEllipticalClock)
	if geom.IsDegenerate() {
		return
	}

	canvas.SetAntialias(f.options.Antialiasing)

	f.drawFace(canvas, geom)
	f.drawTicks(canvas, geom)
	f.drawHourHand(canvas, geom)
	f.drawMinuteHand(canvas, geom)
	if f.options.DrawSecondHand {
		f.drawSecondHand(canvas, geom)
	}
	f.drawLabel(canvas, geom)
}

// drawFace strokes the dashed ellipse outlining the face.
func (f *ClockFace) drawFace(canvas graphics.Canvas, geom FaceGeometry) {
	paint := graphics.DefaultPaint()
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = strokeWidth
	paint.StrokeCap = graphics.CapRound
	paint.StrokeJoin = graphics.JoinRound
	paint.Dash = &graphics.DashPattern{Intervals: []float64{faceDashLength, faceDashLength}}
	canvas.DrawOval(geom.Center, geom.RadiusX, geom.RadiusY, paint)
}

// drawTicks fills 12 hour ticks at 30 degree intervals and 48 minute
// ticks at 6 degree intervals, skipping the positions shared with hour
// ticks.
func (f *ClockFace) drawTicks(canvas graphics.Canvas, geom FaceGeometry) {
	paint := graphics.DefaultPaint()

	for hour := 0; hour < 12; hour++ {
		center := geom.pointAt(-30*float64(hour), tickDistance)
		canvas.DrawOval(center, geom.RadiusX*hourTickScale, geom.RadiusY*hourTickScale, paint)
	}

	for minute := 0; minute < 60; minute++ {
		if minute%5 == 0 {
			continue
		}
		center := geom.pointAt(-6*float64(minute), tickDistance)
		canvas.DrawOval(center, geom.RadiusX*minuteTickScale, geom.RadiusY*minuteTickScale, paint)
	}
}

func (f *ClockFace) drawHourHand(canvas graphics.Canvas, geom FaceGeometry) {
	f.drawHand(canvas, geom, hourHandAngle(f.time), hourHandLength, graphics.ColorBlack)
}

func (f *ClockFace) drawMinuteHand(canvas graphics.Canvas, geom FaceGeometry) {
	f.drawHand(canvas, geom, minuteHandAngle(f.time), 1, graphics.ColorBlack)
}

func (f *ClockFace) drawSecondHand(canvas graphics.Canvas, geom FaceGeometry) {
	angle := secondHandAngle(f.time, f.options.SweepSecond)
	f.drawHand(canvas, geom, angle, 1, graphics.ColorRed)
}

// drawHand strokes a straight hand from center along the given angle.
func (f *ClockFace) drawHand(canvas graphics.Canvas, geom FaceGeometry, angleDegrees, length float64, color graphics.Color) {
	paint := graphics.DefaultPaint()
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = strokeWidth
	paint.Color = color
	canvas.DrawLine(geom.Center, geom.pointAt(angleDegrees, length), paint)
}

// drawLabel renders the formatted time centered horizontally and slightly
// above center.
func (f *ClockFace) drawLabel(canvas graphics.Canvas, geom FaceGeometry) {
	layout := graphics.LayoutText(f.time.Format(labelLayout), graphics.TextStyle{Color: graphics.ColorBlack})
	position := graphics.Offset{
		X: geom.Center.X - layout.Size.Width/2,
		Y: geom.Center.Y - labelOffset*geom.RadiusY - layout.Size.Height/2,
	}
	canvas.DrawText(layout, position)
}
