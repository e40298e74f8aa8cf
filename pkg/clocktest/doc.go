// Package clocktest provides test doubles for exercising the clock face
// without real rendering.
//
// # Quick Start
//
// Record a frame and make assertions about the draw calls:
//
//	func TestFace(t *testing.T) {
//	    face := clock.NewClockFace()
//	    rec := clocktest.NewRecorder(graphics.Size{Width: 200, Height: 200})
//	    face.Render(rec)
//
//	    if got := rec.Count("drawLine"); got != 3 {
//	        t.Errorf("expected 3 hands, got %d", got)
//	    }
//	}
//
// # Controlling time
//
// FakeClock stands in for the system clock behind package ticker:
//
//	clk := clocktest.NewFakeClock()
//	prev := ticker.SetClock(clk)
//	defer ticker.SetClock(prev)
//	clk.Advance(time.Second)
package clocktest
