package clock

import "math"

// radiansPerDegree converts the degree-based hand angles to radians.
const radiansPerDegree = math.Pi / 180

// Hand angles are expressed in degrees with 0 pointing along +x and
// positive angles counterclockwise. The +90 offset together with the
// negated time terms makes 12:00 point straight up and all hands sweep
// clockwise as time advances; every hand shares this convention.

// hourHandAngle returns the hour hand angle for the given time. The hand
// creeps forward within the hour as minutes and seconds pass.
func hourHandAngle(t DisplayTime) float64 {
	angle := -30 * float64(t.Hour()%12)
	angle -= 0.5 * float64(t.Minute())
	angle -= (0.5 / 60) * float64(t.Second())
	return angle + 90
}

// minuteHandAngle returns the minute hand angle for the given time,
// including the sub-second creep that keeps sweep rendering smooth.
func minuteHandAngle(t DisplayTime) float64 {
	angle := -6 * float64(t.Minute())
	angle -= 0.1 * float64(t.Second())
	angle -= 0.1e-9 * float64(t.Nanosecond())
	return angle + 90
}

// secondHandAngle returns the second hand angle for the given time. With
// sweep enabled the hand moves continuously through the second; otherwise
// it jumps once per second.
func secondHandAngle(t DisplayTime, sweep bool) float64 {
	angle := -6 * float64(t.Second())
	if sweep {
		angle -= 6 * float64(t.Nanosecond()) / 1e9
	}
	return angle + 90
}
