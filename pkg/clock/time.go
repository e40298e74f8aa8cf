package clock

import "time"

// DisplayTime is an instant in time paired with the zone it is displayed
// in. It is an immutable value: setters on ClockFace replace it wholesale
// and never mutate it in place.
type DisplayTime struct {
	t time.Time
}

// DisplayTimeOf wraps a time.Time, keeping its location as the display zone.
func DisplayTimeOf(t time.Time) DisplayTime {
	return DisplayTime{t: t}
}

// Now returns the current time displayed in the given zone. A nil zone
// selects the system local zone.
func Now(zone *time.Location) DisplayTime {
	if zone == nil {
		zone = time.Local
	}
	return DisplayTime{t: time.Now().In(zone)}
}

// Hour returns the hour of day in the display zone (0-23).
func (d DisplayTime) Hour() int {
	return d.t.Hour()
}

// Minute returns the minute within the hour (0-59).
func (d DisplayTime) Minute() int {
	return d.t.Minute()
}

// Second returns the second within the minute (0-59).
func (d DisplayTime) Second() int {
	return d.t.Second()
}

// Nanosecond returns the sub-second fraction in nanoseconds (0-999999999).
func (d DisplayTime) Nanosecond() int {
	return d.t.Nanosecond()
}

// Zone returns the display zone.
func (d DisplayTime) Zone() *time.Location {
	return d.t.Location()
}

// Time returns the underlying instant.
func (d DisplayTime) Time() time.Time {
	return d.t
}

// In re-expresses the same absolute instant in another zone.
func (d DisplayTime) In(zone *time.Location) DisplayTime {
	if zone == nil {
		return d
	}
	return DisplayTime{t: d.t.In(zone)}
}

// StartOfDay returns midnight of the same calendar day in the display zone.
func (d DisplayTime) StartOfDay() DisplayTime {
	y, m, day := d.t.Date()
	return DisplayTime{t: time.Date(y, m, day, 0, 0, 0, 0, d.t.Location())}
}

// Add returns the display time shifted by the given duration, keeping the
// same zone.
func (d DisplayTime) Add(dur time.Duration) DisplayTime {
	return DisplayTime{t: d.t.Add(dur)}
}

// AtSecondOfDay returns the given second of the same calendar day in the
// display zone, counted from midnight. This backs time-of-day scrubbing.
func (d DisplayTime) AtSecondOfDay(second int) DisplayTime {
	return d.StartOfDay().Add(time.Duration(second) * time.Second)
}

// Format formats the instant with the given time layout.
func (d DisplayTime) Format(layout string) string {
	return d.t.Format(layout)
}
