package clock

import (
	"math"

	"github.com/sjamesr/goclock/pkg/graphics"
)

// FaceGeometry is the per-render frame of reference for a clock face: a
// center point and the two semi-axis lengths of the face ellipse. Equal
// radii yield a circular face. It is derived from the canvas size at the
// start of every render and never persisted.
type FaceGeometry struct {
	Center  graphics.Offset
	RadiusX float64
	RadiusY float64
}

// FaceGeometryFor computes the geometry for a canvas of the given size.
// With allowElliptical the two radii track the canvas aspect ratio
// independently; otherwise both collapse to half the smaller dimension.
func FaceGeometryFor(size graphics.Size, allowElliptical bool) FaceGeometry {
	center := size.Center()
	if allowElliptical {
		return FaceGeometry{
			Center:  center,
			RadiusX: size.Width / 2,
			RadiusY: size.Height / 2,
		}
	}
	radius := min(size.Width, size.Height) / 2
	return FaceGeometry{
		Center:  center,
		RadiusX: radius,
		RadiusY: radius,
	}
}

// IsDegenerate reports whether the face has no visible area. A degenerate
// face renders nothing rather than erroring.
func (g FaceGeometry) IsDegenerate() bool {
	return g.RadiusX <= 0 || g.RadiusY <= 0
}

// pointAt returns the point at the given angle (degrees, 0 = +x axis,
// counterclockwise positive) and the given fraction of the face radii.
// Canvas y grows downward while the angle convention assumes y grows
// upward, hence the sign flip on the y term.
func (g FaceGeometry) pointAt(angleDegrees, fraction float64) graphics.Offset {
	radians := angleDegrees * radiansPerDegree
	return graphics.Offset{
		X: g.Center.X + fraction*g.RadiusX*math.Cos(radians),
		Y: g.Center.Y - fraction*g.RadiusY*math.Sin(radians),
	}
}
