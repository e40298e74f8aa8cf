package clock

import (
	"math"
	"testing"
	"time"

	"github.com/sjamesr/goclock/pkg/graphics"
)

// at builds a DisplayTime on a fixed UTC date.
func at(hour, minute, second, nanosecond int) DisplayTime {
	return DisplayTimeOf(time.Date(2024, 6, 1, hour, minute, second, nanosecond, time.UTC))
}

func sizeOf(width, height float64) graphics.Size {
	return graphics.Size{Width: width, Height: height}
}

// normalizeDeg maps an angle into [0, 360).
func normalizeDeg(angle float64) float64 {
	m := math.Mod(angle, 360)
	if m < 0 {
		m += 360
	}
	return m
}

func TestHourHandAngle_TwelveHourPeriodicity(t *testing.T) {
	times := []DisplayTime{
		at(0, 0, 0, 0),
		at(1, 30, 15, 0),
		at(9, 59, 59, 0),
		at(11, 11, 11, 0),
	}
	for _, tm := range times {
		later := DisplayTimeOf(tm.Time().Add(12 * time.Hour))
		a, b := normalizeDeg(hourHandAngle(tm)), normalizeDeg(hourHandAngle(later))
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("hour angle at %v is %v, +12h is %v; want equal mod 360", tm.Time(), a, b)
		}
	}
}

func TestHandAngles_Noon(t *testing.T) {
	noon := at(12, 0, 0, 0)
	if got := hourHandAngle(noon); got != 90 {
		t.Errorf("expected hour hand straight up (90) at noon, got %v", got)
	}
	if got := minuteHandAngle(noon); got != 90 {
		t.Errorf("expected minute hand straight up (90) at noon, got %v", got)
	}
}

func TestHandAngles_ThreeOClock(t *testing.T) {
	three := at(3, 0, 0, 0)
	if got := hourHandAngle(three); got != 0 {
		t.Errorf("expected hour hand at 0 degrees at 3:00, got %v", got)
	}
	if got := minuteHandAngle(three); got != 90 {
		t.Errorf("expected minute hand straight up (90) at 3:00, got %v", got)
	}
}

func TestSecondHandAngle_OppositeAtThirty(t *testing.T) {
	top := secondHandAngle(at(0, 0, 0, 0), false)
	bottom := secondHandAngle(at(0, 0, 30, 0), false)
	diff := normalizeDeg(top - bottom)
	if diff != 180 {
		t.Errorf("expected second hand at :30 diametrically opposite :00, got %v degrees apart", diff)
	}
}

func TestSecondHandAngle_DiscreteIgnoresNanoseconds(t *testing.T) {
	base := secondHandAngle(at(0, 0, 42, 0), false)
	for _, ns := range []int{1, 250_000_000, 500_000_000, 999_999_999} {
		if got := secondHandAngle(at(0, 0, 42, ns), false); got != base {
			t.Errorf("expected constant angle within the second, got %v at ns=%d (base %v)", got, ns, base)
		}
	}
}

func TestSecondHandAngle_SweepMonotonicClockwise(t *testing.T) {
	prev := secondHandAngle(at(0, 0, 42, 0), true)
	for ns := 100_000_000; ns < 1_000_000_000; ns += 100_000_000 {
		got := secondHandAngle(at(0, 0, 42, ns), true)
		if got >= prev {
			t.Fatalf("expected angle to decrease (clockwise sweep) at ns=%d, got %v after %v", ns, got, prev)
		}
		prev = got
	}
}

func TestSecondHandAngle_SweepSpansFullSecond(t *testing.T) {
	start := secondHandAngle(at(0, 0, 42, 0), true)
	end := secondHandAngle(at(0, 0, 42, 999_999_999), true)
	if swept := start - end; math.Abs(swept-6) > 1e-6 {
		t.Errorf("expected one second to sweep 6 degrees, got %v", swept)
	}
}

func TestFaceGeometryFor_ForcedCircle(t *testing.T) {
	geom := FaceGeometryFor(sizeOf(300, 100), false)
	if geom.RadiusX != 50 || geom.RadiusY != 50 {
		t.Errorf("expected both radii forced to 50, got (%v, %v)", geom.RadiusX, geom.RadiusY)
	}
	if geom.Center.X != 150 || geom.Center.Y != 50 {
		t.Errorf("expected center (150, 50), got %+v", geom.Center)
	}
}

func TestFaceGeometryFor_Elliptical(t *testing.T) {
	geom := FaceGeometryFor(sizeOf(300, 100), true)
	if geom.RadiusX != 150 || geom.RadiusY != 50 {
		t.Errorf("expected independent radii (150, 50), got (%v, %v)", geom.RadiusX, geom.RadiusY)
	}
}

func TestFaceGeometry_Degenerate(t *testing.T) {
	if !FaceGeometryFor(sizeOf(0, 100), false).IsDegenerate() {
		t.Error("expected zero-width canvas to be degenerate")
	}
	if !FaceGeometryFor(sizeOf(100, 0), true).IsDegenerate() {
		t.Error("expected zero-height canvas to be degenerate")
	}
	if FaceGeometryFor(sizeOf(100, 100), false).IsDegenerate() {
		t.Error("expected square canvas not to be degenerate")
	}
}
