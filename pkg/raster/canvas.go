// Package raster is a software Canvas backend that renders into an
// image.RGBA using the golang.org/x/image/vector rasterizer. It exists so
// the clock face can be exercised end to end — down to pixels — without a
// native toolkit: the headless CLI and the pixel-level tests both draw
// through it.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/sjamesr/goclock/pkg/graphics"
)

// Canvas renders drawing commands into an RGBA image.
//
// It implements graphics.Canvas with an affine transform stack. When the
// antialias hint is off, coverage is thresholded to hard edges instead of
// blended.
type Canvas struct {
	dst    *image.RGBA
	width  int
	height int
	state  state
	stack  []state
}

type state struct {
	tf        matrix
	antialias bool
}

// NewCanvas creates a transparent canvas of the given pixel size with
// antialiasing enabled.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		dst:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		state:  state{tf: identity(), antialias: true},
	}
}

// Image returns the backing image. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.state.tf = c.state.tf.concat(translation(dx, dy))
}

func (c *Canvas) Scale(sx, sy float64) {
	c.state.tf = c.state.tf.concat(scaling(sx, sy))
}

func (c *Canvas) Rotate(radians float64) {
	c.state.tf = c.state.tf.concat(rotation(radians))
}

func (c *Canvas) SetAntialias(enabled bool) {
	c.state.antialias = enabled
}

func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(toNRGBA(col, 1)), image.Point{}, draw.Src)
}

func (c *Canvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	pts := []point{
		c.state.tf.applyOffset(start),
		c.state.tf.applyOffset(end),
	}
	c.fill(strokePolyline(pts, c.strokeWidth(paint), paint.StrokeCap, false), paint)
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.DrawOval(center, radius, radius, paint)
}

func (c *Canvas) DrawOval(center graphics.Offset, radiusX, radiusY float64, paint graphics.Paint) {
	outline := c.flattenEllipse(center, radiusX, radiusY)
	if len(outline) < 3 {
		return
	}
	if paint.Style == graphics.PaintStyleFill {
		c.fill([][]point{outline}, paint)
		return
	}
	c.strokeOutline(outline, true, paint)
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	subpaths := flattenPath(path, c.state.tf)
	if paint.Style == graphics.PaintStyleFill {
		c.fill(subpaths, paint)
		return
	}
	for _, sp := range subpaths {
		c.strokeOutline(sp, false, paint)
	}
}

func (c *Canvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	face := layout.Face
	if face == nil {
		face = graphics.DefaultFace()
	}
	// Text honors the translation component of the transform only; the
	// clock never rotates or scales its label.
	origin := c.state.tf.applyOffset(position)
	drawer := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(toNRGBA(layout.Style.Color, 1)),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(origin.x),
			Y: floatToFixed(origin.y + layout.Ascent),
		},
	}
	drawer.DrawString(layout.Text)
}

func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: float64(c.width), Height: float64(c.height)}
}

// strokeWidth resolves the device-space stroke width for a paint.
func (c *Canvas) strokeWidth(paint graphics.Paint) float64 {
	w := paint.StrokeWidth
	if w <= 0 {
		w = 1
	}
	return w * c.state.tf.scaleFactor()
}

// strokeOutline strokes an already-flattened outline, applying the
// paint's dash pattern if any.
func (c *Canvas) strokeOutline(pts []point, closed bool, paint graphics.Paint) {
	width := c.strokeWidth(paint)
	if paint.Dash == nil {
		c.fill(strokePolyline(pts, width, paint.StrokeCap, closed), paint)
		return
	}
	scale := c.state.tf.scaleFactor()
	for _, run := range dashPolyline(pts, closed, paint.Dash, scale) {
		c.fill(strokePolyline(run, width, paint.StrokeCap, false), paint)
	}
}

// flattenEllipse flattens an axis-aligned ellipse under the current
// transform into a closed device-space polygon.
func (c *Canvas) flattenEllipse(center graphics.Offset, radiusX, radiusY float64) []point {
	return flattenPathSingle(graphics.NewEllipsePath(center, radiusX, radiusY), c.state.tf)
}

// fill rasterizes closed device-space polygons and composites them with
// the paint's color. Overlapping polygons of the same winding saturate,
// so stroke unions need no clipping.
func (c *Canvas) fill(subpaths [][]point, paint graphics.Paint) {
	if c.width == 0 || c.height == 0 {
		return
	}
	z := vector.NewRasterizer(c.width, c.height)
	drawn := false
	for _, sp := range subpaths {
		if len(sp) < 3 {
			continue
		}
		z.MoveTo(float32(sp[0].x), float32(sp[0].y))
		for _, pt := range sp[1:] {
			z.LineTo(float32(pt.x), float32(pt.y))
		}
		z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	c.composite(mask, paint.Color, paint.Opacity())
}

// composite blends a coverage mask with the given color over the backing
// image. With antialiasing off, coverage snaps to all-or-nothing.
func (c *Canvas) composite(mask *image.Alpha, col graphics.Color, alpha float64) {
	r, g, b, a := col.RGBAF()
	a *= alpha
	if a <= 0 {
		return
	}
	threshold := !c.state.antialias
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cov := float64(mask.AlphaAt(x, y).A) / 255
			if cov == 0 {
				continue
			}
			if threshold {
				if cov < 0.5 {
					continue
				}
				cov = 1
			}
			srcA := a * cov
			i := c.dst.PixOffset(x, y)
			pix := c.dst.Pix[i : i+4 : i+4]
			inv := 1 - srcA
			// image.RGBA is alpha-premultiplied.
			pix[0] = clamp8(r*srcA*255 + float64(pix[0])*inv)
			pix[1] = clamp8(g*srcA*255 + float64(pix[1])*inv)
			pix[2] = clamp8(b*srcA*255 + float64(pix[2])*inv)
			pix[3] = clamp8(srcA*255 + float64(pix[3])*inv)
		}
	}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func toNRGBA(c graphics.Color, alpha float64) color.NRGBA {
	r, g, b, a := c.RGBAF()
	return color.NRGBA{
		R: clamp8(r * 255),
		G: clamp8(g * 255),
		B: clamp8(b * 255),
		A: clamp8(a * alpha * 255),
	}
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}
