package graphics

import "fmt"

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, and Close, then draw them
// with Canvas.DrawPath.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// kappa is the control-point distance for approximating a quarter circle
// with a single cubic bezier: (4/3) * tan(pi/8).
const kappa = 0.5522847498307936

// NewEllipsePath builds a closed ellipse from four cubic bezier segments,
// starting at the rightmost point and winding clockwise in canvas
// coordinates (y grows downward).
func NewEllipsePath(center Offset, radiusX, radiusY float64) *Path {
	cx, cy := center.X, center.Y
	ox := radiusX * kappa
	oy := radiusY * kappa

	p := NewPath()
	p.MoveTo(cx+radiusX, cy)
	p.CubicTo(cx+radiusX, cy+oy, cx+ox, cy+radiusY, cx, cy+radiusY)
	p.CubicTo(cx-ox, cy+radiusY, cx-radiusX, cy+oy, cx-radiusX, cy)
	p.CubicTo(cx-radiusX, cy-oy, cx-ox, cy-radiusY, cx, cy-radiusY)
	p.CubicTo(cx+ox, cy-radiusY, cx+radiusX, cy-oy, cx+radiusX, cy)
	p.Close()
	return p
}
