package raster

import (
	"math"

	"github.com/sjamesr/goclock/pkg/graphics"
)

// point is a device-space coordinate.
type point struct {
	x, y float64
}

// matrix is a 2x3 affine transform:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type matrix struct {
	a, b, c, d, e, f float64
}

func identity() matrix {
	return matrix{a: 1, d: 1}
}

func translation(dx, dy float64) matrix {
	return matrix{a: 1, d: 1, e: dx, f: dy}
}

func scaling(sx, sy float64) matrix {
	return matrix{a: sx, d: sy}
}

func rotation(radians float64) matrix {
	sin, cos := math.Sincos(radians)
	return matrix{a: cos, b: sin, c: -sin, d: cos}
}

// concat returns the transform that applies n first, then m.
func (m matrix) concat(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (m matrix) apply(x, y float64) point {
	return point{
		x: m.a*x + m.c*y + m.e,
		y: m.b*x + m.d*y + m.f,
	}
}

func (m matrix) applyOffset(o graphics.Offset) point {
	return m.apply(o.X, o.Y)
}

// scaleFactor is the average length scaling of the transform, used to
// carry stroke widths and dash lengths into device space.
func (m matrix) scaleFactor() float64 {
	det := math.Abs(m.a*m.d - m.b*m.c)
	return math.Sqrt(det)
}
