package ticker

import (
	"sync"
	"testing"
	"time"

	"github.com/sjamesr/goclock/pkg/clocktest"
	"github.com/sjamesr/goclock/pkg/dispatch"
)

// tickRecorder collects delivered times. Deliveries may arrive from the
// driver's goroutine, so access is guarded.
type tickRecorder struct {
	mu    sync.Mutex
	times []time.Time
}

func (r *tickRecorder) Tick(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.times = append(r.times, now)
}

func (r *tickRecorder) delivered() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Time(nil), r.times...)
}

func withFakeClock(t *testing.T) *clocktest.FakeClock {
	t.Helper()
	fake := clocktest.NewFakeClock()
	prev := SetClock(fake)
	t.Cleanup(func() { SetClock(prev) })
	return fake
}

func TestNow_UsesInjectedClock(t *testing.T) {
	fake := withFakeClock(t)
	fake.Set(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	if !Now().Equal(fake.Now()) {
		t.Errorf("expected Now to follow the injected clock, got %v", Now())
	}

	fake.Advance(90 * time.Second)
	if !Now().Equal(fake.Now()) {
		t.Errorf("expected Now to track an advanced clock, got %v", Now())
	}
}

func TestSetClock_ReturnsPrevious(t *testing.T) {
	fake := clocktest.NewFakeClock()
	prev := SetClock(fake)
	defer SetClock(prev)

	if restored := SetClock(prev); restored != Clock(fake) {
		t.Error("expected SetClock to hand back the clock it replaced")
	}
}

func TestDriver_StepDeliversSynchronously(t *testing.T) {
	fake := withFakeClock(t)
	target := &tickRecorder{}
	driver := NewDriver(target, time.Second)

	fake.Set(time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC))
	driver.Step()
	fake.Advance(time.Second)
	driver.Step()

	times := target.delivered()
	if len(times) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(times))
	}
	if got := times[1].Sub(times[0]); got != time.Second {
		t.Errorf("expected deliveries one second apart, got %v", got)
	}
}

func TestNewDriver_DefaultPeriod(t *testing.T) {
	if got := NewDriver(&tickRecorder{}, 0).Period(); got != DefaultPeriod {
		t.Errorf("expected zero period to select the default, got %v", got)
	}
	if got := NewDriver(&tickRecorder{}, -time.Second).Period(); got != DefaultPeriod {
		t.Errorf("expected negative period to select the default, got %v", got)
	}
	if got := NewDriver(&tickRecorder{}, 50*time.Millisecond).Period(); got != 50*time.Millisecond {
		t.Errorf("expected explicit period to stick, got %v", got)
	}
}

func TestDriver_StartStopIdempotent(t *testing.T) {
	withFakeClock(t)
	dispatch.RegisterDispatch(nil)

	driver := NewDriver(&tickRecorder{}, time.Hour)
	if driver.IsActive() {
		t.Fatal("expected a new driver to be inactive")
	}

	driver.Start()
	driver.Start()
	if !driver.IsActive() {
		t.Fatal("expected driver active after Start")
	}

	driver.Stop()
	driver.Stop()
	if driver.IsActive() {
		t.Fatal("expected driver inactive after Stop")
	}
}

func TestDriver_DeliversThroughDispatcher(t *testing.T) {
	fake := withFakeClock(t)
	fake.Set(time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC))

	// A synchronous dispatcher keeps the test on one goroutine.
	dispatch.RegisterDispatch(func(callback func()) { callback() })
	t.Cleanup(func() { dispatch.RegisterDispatch(nil) })

	target := &tickRecorder{}
	driver := NewDriver(target, 5*time.Millisecond)
	driver.Start()
	defer driver.Stop()

	deadline := time.After(2 * time.Second)
	for len(target.delivered()) == 0 {
		select {
		case <-deadline:
			t.Fatal("no tick delivered within deadline")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if first := target.delivered()[0]; !first.Equal(fake.Now()) {
		t.Errorf("expected delivery to carry the clock time, got %v", first)
	}
}
