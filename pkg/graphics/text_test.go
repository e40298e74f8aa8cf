package graphics

import "testing"

func TestLayoutText_Measures(t *testing.T) {
	layout := LayoutText("12:00:00", TextStyle{Color: ColorBlack})

	if layout.Face == nil {
		t.Fatal("expected a resolved font face")
	}
	if layout.Size.Width <= 0 {
		t.Errorf("expected positive advance width, got %v", layout.Size.Width)
	}
	if layout.Size.Height != layout.Ascent+layout.Descent {
		t.Errorf("expected height %v to equal ascent %v + descent %v",
			layout.Size.Height, layout.Ascent, layout.Descent)
	}
}

func TestLayoutText_WidthScalesWithLength(t *testing.T) {
	short := LayoutText("1:00", TextStyle{})
	long := LayoutText("11:00:00 PM", TextStyle{})
	if long.Size.Width <= short.Size.Width {
		t.Errorf("expected longer text to be wider: %v vs %v",
			long.Size.Width, short.Size.Width)
	}
}

func TestLayoutText_DefaultFaceIsFixedWidth(t *testing.T) {
	a := LayoutText("00:00", TextStyle{})
	b := LayoutText("11:11", TextStyle{})
	if a.Size.Width != b.Size.Width {
		t.Errorf("expected equal widths with the bundled monospace face, got %v and %v",
			a.Size.Width, b.Size.Width)
	}
}
