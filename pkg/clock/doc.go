// Package clock implements an analog clock-face widget that renders onto
// a [graphics.Canvas].
//
// The central type is [ClockFace]: it owns a zoned display time, a set of
// render options, and a paused/running flag, and projects the time onto
// hour, minute and second hands each time [ClockFace.Render] is called.
// A periodic tick source (see package ticker) feeds the current time into
// the face via [ClockFace.Tick]; while paused, ticks are ignored and the
// last displayed time is retained.
//
// # Threading
//
// ClockFace is not synchronized. All mutating calls — SetTime, SetTimeZone,
// SetPaused, SetOptions, Tick, ScrubTo — must be made from the host's single
// rendering goroutine. Callers on other goroutines must marshal through
// package dispatch before touching the face; the core deliberately contains
// no thread checks of its own.
package clock
