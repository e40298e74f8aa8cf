package clocktest

import (
	"fmt"
	"math"

	"github.com/sjamesr/goclock/pkg/graphics"
)

// DisplayOp represents a recorded canvas drawing operation.
type DisplayOp struct {
	Op     string
	Params map[string]any
}

// Recorder implements graphics.Canvas and records every call as a
// DisplayOp for assertions. It performs no drawing.
type Recorder struct {
	Ops  []DisplayOp
	size graphics.Size
}

// NewRecorder creates a recorder reporting the given canvas size.
func NewRecorder(size graphics.Size) *Recorder {
	return &Recorder{size: size}
}

// Count returns how many recorded operations have the given op name.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, recorded := range r.Ops {
		if recorded.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded operations with the given op name, in order.
func (r *Recorder) Filter(op string) []DisplayOp {
	var ops []DisplayOp
	for _, recorded := range r.Ops {
		if recorded.Op == op {
			ops = append(ops, recorded)
		}
	}
	return ops
}

// Reset discards all recorded operations, keeping the size.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) append(op string, kvs ...any) {
	var params map[string]any
	if len(kvs) > 0 {
		params = make(map[string]any, len(kvs)/2)
		for i := 0; i+1 < len(kvs); i += 2 {
			params[kvs[i].(string)] = kvs[i+1]
		}
	}
	r.Ops = append(r.Ops, DisplayOp{Op: op, Params: params})
}

func (r *Recorder) Save() {
	r.append("save")
}

func (r *Recorder) Restore() {
	r.append("restore")
}

func (r *Recorder) Translate(dx, dy float64) {
	r.append("translate", "dx", round2(dx), "dy", round2(dy))
}

func (r *Recorder) Scale(sx, sy float64) {
	r.append("scale", "sx", round2(sx), "sy", round2(sy))
}

func (r *Recorder) Rotate(radians float64) {
	r.append("rotate", "radians", round2(radians))
}

func (r *Recorder) SetAntialias(enabled bool) {
	r.append("setAntialias", "enabled", enabled)
}

func (r *Recorder) Clear(color graphics.Color) {
	r.append("clear", "color", serializeColor(color))
}

func (r *Recorder) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	r.append("drawLine",
		"x1", round2(start.X), "y1", round2(start.Y),
		"x2", round2(end.X), "y2", round2(end.Y),
		"color", serializeColor(paint.Color),
		"strokeWidth", round2(paint.StrokeWidth),
	)
}

func (r *Recorder) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	r.append("drawCircle",
		"cx", round2(center.X), "cy", round2(center.Y),
		"radius", round2(radius),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String(),
	)
}

func (r *Recorder) DrawOval(center graphics.Offset, radiusX, radiusY float64, paint graphics.Paint) {
	r.append("drawOval",
		"cx", round2(center.X), "cy", round2(center.Y),
		"rx", round2(radiusX), "ry", round2(radiusY),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String(),
		"dashed", paint.Dash != nil,
	)
}

func (r *Recorder) DrawPath(_ *graphics.Path, paint graphics.Paint) {
	r.append("drawPath", "color", serializeColor(paint.Color))
}

func (r *Recorder) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	r.append("drawText",
		"x", round2(position.X), "y", round2(position.Y),
		"text", layout.Text,
	)
}

func (r *Recorder) Size() graphics.Size {
	return r.size
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
