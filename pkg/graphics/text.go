package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color Color
	Face  font.Face // nil selects DefaultFace
}

// TextLayout contains a single measured line of text and its resolved face.
//
// The clock label is always one line, so there is no wrapping here; Size
// covers the full advance width and the line height (ascent + descent).
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    Size
	Ascent  float64
	Descent float64
	Face    font.Face
}

// DefaultFace returns the bundled fallback font face.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// LayoutText measures the given single-line text using the style's font
// face, falling back to DefaultFace when none is set.
func LayoutText(text string, style TextStyle) *TextLayout {
	face := style.Face
	if face == nil {
		face = DefaultFace()
	}
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	width := fixedToFloat(font.MeasureString(face, text))
	return &TextLayout{
		Text:    text,
		Style:   style,
		Size:    Size{Width: width, Height: ascent + descent},
		Ascent:  ascent,
		Descent: descent,
		Face:    face,
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
