// Package ticker supplies the periodic "render now" feed that drives a
// clock face. A Driver pushes the current wall-clock time into its target
// at a fixed period, marshaling every delivery through package dispatch so
// the target only ever sees calls on the rendering goroutine.
package ticker

import (
	"sync"
	"time"

	"github.com/sjamesr/goclock/pkg/dispatch"
)

// DefaultPeriod is the tick period used when none is configured: 40 Hz,
// comfortably above the point where the sweep second hand looks smooth.
const DefaultPeriod = 25 * time.Millisecond

// Target receives periodic time updates.
type Target interface {
	Tick(now time.Time)
}

// Driver delivers the current time to a Target on a fixed period.
//
// Start runs the feed on an internal goroutine; each delivery is handed to
// dispatch.Dispatch, so the host must have registered a dispatcher before
// starting. Deliveries with no registered dispatcher are dropped rather
// than invoked off-thread. Single-threaded hosts that pump frames
// themselves can skip Start entirely and call Step once per frame.
type Driver struct {
	mu     sync.Mutex
	period time.Duration
	target Target
	stop   chan struct{}
}

// NewDriver creates a driver for the given target. A non-positive period
// selects DefaultPeriod.
func NewDriver(target Target, period time.Duration) *Driver {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Driver{period: period, target: target}
}

// Period returns the configured tick period.
func (d *Driver) Period() time.Duration {
	return d.period
}

// Start begins periodic delivery. Starting an active driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return
	}
	stop := make(chan struct{})
	d.stop = stop

	go func() {
		t := time.NewTicker(d.period)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				dispatch.Dispatch(d.deliver)
			}
		}
	}()
}

// Stop ends periodic delivery. Stopping an inactive driver is a no-op.
// A delivery already handed to the dispatcher may still arrive after Stop
// returns.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop == nil {
		return
	}
	close(d.stop)
	d.stop = nil
}

// IsActive reports whether the driver is currently delivering ticks.
func (d *Driver) IsActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

// Step delivers a single tick synchronously on the calling goroutine.
func (d *Driver) Step() {
	d.deliver()
}

func (d *Driver) deliver() {
	d.target.Tick(Now())
}
